package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// MaxNotes adalah batas jumlah catatan yang boleh tersimpan.
const MaxNotes = 50

// MaxContentLength adalah panjang maksimal isi catatan (setelah trim).
const MaxContentLength = 2000

type Person string

const (
	PersonFuad Person = "Fuad"
	PersonEli  Person = "Eli"
)

// NormalizePerson memetakan input bebas ke salah satu dari dua identitas.
// Nilai yang tidak dikenal tidak ditolak, melainkan jatuh ke Fuad.
func NormalizePerson(s string) Person {
	if s == string(PersonEli) {
		return PersonEli
	}
	return PersonFuad
}

type Note struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Person    Person    `gorm:"type:text;not null" json:"person"`
	Date      string    `gorm:"type:text;not null" json:"date"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index" json:"updatedAt"`
}

func (Note) TableName() string {
	return "notes"
}

// BeforeCreate menyamakan createdAt dan updatedAt pada saat pembuatan.
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.CreatedAt.IsZero() {
		now := time.Now()
		n.CreatedAt = now
		n.UpdatedAt = now
	}
	return nil
}

// ValidateContent men-trim isi catatan dan memeriksa batasnya.
// Mengembalikan isi yang sudah di-trim, atau pesan error bila tidak valid.
func ValidateContent(raw string) (string, string) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", "Isi catatan tidak boleh kosong."
	}
	if len([]rune(content)) > MaxContentLength {
		return "", "Isi catatan maksimal 2000 karakter."
	}
	return content, ""
}
