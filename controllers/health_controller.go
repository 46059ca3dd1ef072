package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoanfkransyh/e-learning-koperasi-backend/config"
)

// GET /health — cek server dan koneksi database.
func HealthCheck(c *gin.Context) {
	sqlDB, err := config.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "database": "down"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}
