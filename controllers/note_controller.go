package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fuadnh/catatan-api/middleware"
	"github.com/fuadnh/catatan-api/models"
)

type NoteInput struct {
	ID      *int64 `json:"id"`
	Person  string `json:"person"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

type NoteResponse struct {
	ID        int64         `json:"id"`
	Person    models.Person `json:"person"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// GetNotes mengembalikan maksimal 50 catatan, yang terakhir diubah duluan.
func GetNotes(c *gin.Context) {
	db := middleware.GetDB(c)

	var notes []models.Note
	if err := db.
		Order("updated_at DESC").
		Limit(models.MaxNotes).
		Find(&notes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Tidak bisa mengambil catatan.",
			"details": err.Error(),
		})
		return
	}

	items := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		items = append(items, NoteResponse{
			ID:        n.ID,
			Person:    n.Person,
			Date:      n.Date,
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateOrUpdateNote menangani POST /api/notes. Body tanpa id berarti buat
// catatan baru; body dengan id jatuh ke jalur update.
func CreateOrUpdateNote(c *gin.Context) {
	var input NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body JSON tidak valid."})
		return
	}

	if input.ID != nil {
		if updateNote(c, input) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		}
		return
	}

	person := models.NormalizePerson(input.Person)
	content, errMsg := validateNoteInput(input)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	db := middleware.GetDB(c)

	// Cek limit dan insert dalam satu transaksi supaya dua request
	// bersamaan tidak bisa sama-sama lolos dari cek jumlah.
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Note{}).Count(&count).Error; err != nil {
			return err
		}
		if count >= models.MaxNotes {
			return errNoteLimit
		}
		note := models.Note{
			Person:  person,
			Date:    input.Date,
			Content: content,
		}
		return tx.Create(&note).Error
	})
	if err == errNoteLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Limit 50 note tercapai."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Tidak bisa menyimpan catatan.",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UpdateNote menangani PUT /api/notes dan ikut melaporkan jumlah baris
// yang berubah.
func UpdateNote(c *gin.Context) {
	var input NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body JSON tidak valid."})
		return
	}

	changed, ok := updateNoteRows(c, input)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "changed": changed})
}

// DeleteNote menghapus catatan berdasarkan ?id=. Menghapus id yang tidak
// ada bukan error.
func DeleteNote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid."})
		return
	}

	db := middleware.GetDB(c)
	if err := db.Delete(&models.Note{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Tidak bisa menghapus catatan.",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

var errNoteLimit = errors.New("limit catatan tercapai")

// validateNoteInput memeriksa tanggal lalu isi catatan. Urutan pengecekan
// dipertahankan supaya pesan error deterministik.
func validateNoteInput(input NoteInput) (string, string) {
	if input.Date == "" {
		return "", "Tanggal wajib diisi."
	}
	return models.ValidateContent(input.Content)
}

// updateNote menjalankan jalur update dan menulis response error sendiri.
// Mengembalikan true bila update berhasil.
func updateNote(c *gin.Context, input NoteInput) bool {
	_, ok := updateNoteRows(c, input)
	return ok
}

func updateNoteRows(c *gin.Context, input NoteInput) (int64, bool) {
	if input.ID == nil || *input.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid."})
		return 0, false
	}

	person := models.NormalizePerson(input.Person)
	content, errMsg := validateNoteInput(input)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return 0, false
	}

	db := middleware.GetDB(c)

	// id dan created_at tidak pernah ikut berubah. Update id yang tidak
	// ada dianggap sukses dengan nol baris.
	res := db.Model(&models.Note{}).
		Where("id = ?", *input.ID).
		Updates(map[string]interface{}{
			"person":     person,
			"date":       input.Date,
			"content":    content,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Tidak bisa mengubah catatan.",
			"details": res.Error.Error(),
		})
		return 0, false
	}

	return res.RowsAffected, true
}
