package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fuadnh/catatan-api/config"
	"github.com/fuadnh/catatan-api/utils"
)

type AuthInput struct {
	Code string `json:"code"`
}

// ExchangeToken menukar kode akses bersama dengan token bertanda tangan.
// Ini satu-satunya endpoint yang menerima kode mentah; request lain wajib
// membawa token hasil penukaran ini.
func ExchangeToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AuthInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Body JSON tidak valid."})
			return
		}

		if cfg.AccessCode == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Env ACCESS_CODE belum diset."})
			return
		}

		if subtle.ConstantTimeCompare([]byte(input.Code), []byte(cfg.AccessCode)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Kode akses salah."})
			return
		}

		token, err := utils.GenerateToken(cfg.JWTSecret, "notes")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa membuat token."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
