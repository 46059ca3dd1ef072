package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yoanfkransyh/e-learning-koperasi-backend/config"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/models"
)

// GET /api/admin/stats/online-users — jumlah pengguna dengan aktivitas
// dalam 5 menit terakhir (dipakai kartu statistik dashboard admin).
func GetOnlineUsers(c *gin.Context) {
	threshold := time.Now().Add(-5 * time.Minute)

	var count int64
	if err := config.DB.Model(&models.Profile{}).
		Where("last_active >= ?", threshold).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghitung pengguna online"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"online_users": count})
}
