package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles membatasi akses ke daftar role tertentu.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Jalankan AuthMiddleware dulu untuk verifikasi token
		AuthMiddleware()(c)

		if c.IsAborted() {
			return
		}

		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role pengguna tidak diketahui"})
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memproses role pengguna"})
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error": "Anda tidak punya akses ke resource ini",
		})
		c.Abort()
	}
}
