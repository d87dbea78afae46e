package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fuadnh/catatan-api/models"
)

// Config menampung seluruh konfigurasi proses dari environment.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	AccessCode string
	JWTSecret  []byte

	Port string
}

// Load membaca environment dan gagal bila ada variabel wajib yang kosong,
// supaya salah konfigurasi tidak berujung jadi request yang lolos diam-diam.
func Load() (*Config, error) {
	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		AccessCode: os.Getenv("ACCESS_CODE"),
		JWTSecret:  []byte(os.Getenv("JWT_SECRET")),
		Port:       os.Getenv("PORT"),
	}

	required := []struct {
		name, value string
	}{
		{"DB_HOST", cfg.DBHost},
		{"DB_PORT", cfg.DBPort},
		{"DB_USER", cfg.DBUser},
		{"DB_PASSWORD", cfg.DBPassword},
		{"DB_NAME", cfg.DBName},
		{"ACCESS_CODE", cfg.AccessCode},
		{"JWT_SECRET", string(cfg.JWTSecret)},
	}
	for _, v := range required {
		if v.value == "" {
			return nil, fmt.Errorf("Env %s belum diset.", v.name)
		}
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}

// InitDB membuka koneksi PostgreSQL, mengatur connection pool,
// dan memastikan skema tabel notes sudah ada.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("tidak bisa konek database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("tidak bisa ambil sql.DB dari gorm: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("postgreSQL connected & migrated successfully!")
	return db, nil
}

// Migrate membuat tabel notes beserta index updated_at bila belum ada.
// Idempoten, bukan sistem migrasi.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Note{}); err != nil {
		return fmt.Errorf("autoMigrate gagal: %w", err)
	}
	return nil
}
