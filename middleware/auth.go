package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fuadnh/catatan-api/utils"
)

// AuthMiddleware memverifikasi Bearer token pada setiap request.
// Semua kegagalan (header hilang, format salah, token kadaluarsa, signature
// salah) dijawab dengan pesan yang sama supaya penyebabnya tidak bocor.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			unauthorized(c)
			return
		}

		claims, err := utils.VerifyToken(secret, parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set("scope", claims.Scope)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
	c.Abort()
}
