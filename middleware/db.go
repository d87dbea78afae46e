package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dbKey = "db"

// DBMiddleware menaruh handle database ke context request,
// di-scope ke context request supaya query bisa dibatalkan.
func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbKey, db.WithContext(c.Request.Context()))
		c.Next()
	}
}

// GetDB mengambil handle database yang dipasang DBMiddleware.
func GetDB(c *gin.Context) *gorm.DB {
	return c.MustGet(dbKey).(*gorm.DB)
}
