package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yoanfkransyh/e-learning-koperasi-backend/config"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/models"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/services"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/utils"
)

// GET /api/profil — profil milik pengguna yang sedang login.
func GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var profile models.Profile
	if err := config.DB.First(&profile, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profil tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// PUT /api/profil — perbarui nama, telepon, dan foto profil (form
// multipart). Foto baru di-crop persegi lalu foto lama dihapus dari
// storage (best-effort).
func UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var profile models.Profile
	if err := config.DB.First(&profile, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profil tidak ditemukan"})
		return
	}

	if fullName := c.PostForm("full_name"); fullName != "" {
		profile.FullName = fullName
	}
	if phone := c.PostForm("phone"); phone != "" {
		profile.Phone = &phone
	}

	if avatarFile, ferr := c.FormFile("avatar"); ferr == nil {
		rect, rerr := parseCropRect(c)
		if rerr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": rerr.Error()})
			return
		}

		src, oerr := avatarFile.Open()
		if oerr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membaca foto profil"})
			return
		}
		defer src.Close()

		cropped, cerr := services.CropAvatar(src, rect)
		if cerr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gagal memproses foto profil: " + cerr.Error()})
			return
		}

		// Foto lama dihapus dulu; kegagalan hanya dicatat
		if profile.AvatarURL != nil {
			if derr := utils.DeleteFileFromStorage(*profile.AvatarURL); derr != nil {
				log.Println("Gagal menghapus foto profil lama:", derr)
			}
		}

		objectPath := fmt.Sprintf("%s-%d.jpg", userID, time.Now().Unix())
		avatarURL, uerr := utils.UploadBytesToStorage(utils.BucketProfilePictures, objectPath, cropped, "image/jpeg")
		if uerr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengunggah foto profil: " + uerr.Error()})
			return
		}
		profile.AvatarURL = &avatarURL
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan profil: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profil berhasil diperbarui.",
		"data":    profile,
	})
}
