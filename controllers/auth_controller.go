package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yoanfkransyh/e-learning-koperasi-backend/config"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/models"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/utils"
)

// ====== INPUT STRUCTS ======
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func frontendURL() string {
	url := os.Getenv("FRONTEND_URL")
	if url == "" {
		url = "https://yoanfkransyh.github.io/E-LearningKoperasi"
	}
	return url
}

// ====== HANDLERS ======

// POST /api/auth/register
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Cek email sudah terpakai
	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email sudah terdaftar. Silakan login atau reset password."})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa meng-enkripsi password"})
		return
	}

	confirmToken, err := utils.RandomToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa membuat token konfirmasi"})
		return
	}

	newUser := models.User{
		// ID dibuat otomatis oleh gen_random_uuid()
		Email:        input.Email,
		Password:     string(hashed),
		ConfirmToken: &confirmToken,
	}

	// User + profile dibuat dalam satu transaksi
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		profile := models.Profile{
			ID:       newUser.ID,
			FullName: input.FullName,
			Role:     models.RoleUser,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat akun"})
		return
	}

	// Kirim email konfirmasi (tidak memblokir request)
	go func() {
		link := frontendURL() + "/#/confirm-email?token=" + confirmToken
		subject := "Konfirmasi akun E-Learning Koperasi Anda"
		body := `
		<h3>Halo ` + input.FullName + `,</h3>
		<p>Terima kasih sudah mendaftar di <b>E-Learning Koperasi</b>.</p>
		<p>Klik link berikut untuk mengaktifkan akun Anda:</p>
		<p><a href="` + link + `">` + link + `</a></p>
		<hr>
		<p><i>Email ini dikirim otomatis, mohon tidak dibalas.</i></p>
		`
		if err := utils.SendEmail(input.Email, subject, body); err != nil {
			println("Gagal mengirim email konfirmasi:", err.Error())
		}
	}()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Pendaftaran berhasil. Silakan cek email untuk konfirmasi.",
		"user": gin.H{
			"id":    newUser.ID,
			"email": newUser.Email,
		},
	})
}

type ConfirmEmailInput struct {
	Token string `json:"token" binding:"required"`
}

// POST /api/auth/confirm-email
func ConfirmEmail(c *gin.Context) {
	var input ConfirmEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("confirm_token = ?", input.Token).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Link konfirmasi tidak valid atau sudah dipakai"})
		return
	}

	now := time.Now()
	user.EmailConfirmedAt = &now
	user.ConfirmToken = nil
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengonfirmasi email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email berhasil dikonfirmasi. Silakan login."})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email atau password salah"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email atau password salah"})
		return
	}

	if !user.IsConfirmed() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Email belum dikonfirmasi. Silakan cek kotak masuk Anda."})
		return
	}

	// Profil dimuat bersamaan dengan login
	var profile models.Profile
	if err := config.DB.First(&profile, "id = ?", user.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat profil"})
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), string(profile.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa membuat token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login berhasil",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
		"profile": profile,
	})
}

// GET /api/auth/me — session fetch: user + profil untuk route guard.
func Me(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pengguna tidak ditemukan"})
		return
	}

	var profile models.Profile
	if err := config.DB.First(&profile, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profil tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
		"profile":  profile,
		"is_admin": profile.IsAdmin(),
	})
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/auth/forgot-password
func ForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Respons selalu sama supaya email terdaftar tidak bisa ditebak
	okResponse := gin.H{"message": "Jika email terdaftar, link reset password sudah dikirim."}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, okResponse)
		return
	}

	token, err := utils.RandomToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa membuat token reset"})
		return
	}

	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := config.DB.Create(&reset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan token reset"})
		return
	}

	go func() {
		link := frontendURL() + "/#/reset-password?token=" + token
		subject := "Reset password E-Learning Koperasi"
		body := `
		<h3>Halo,</h3>
		<p>Kami menerima permintaan reset password untuk akun Anda.</p>
		<p>Klik link berikut untuk membuat password baru (berlaku 1 jam):</p>
		<p><a href="` + link + `">` + link + `</a></p>
		<p>Abaikan email ini jika Anda tidak meminta reset password.</p>
		`
		if err := utils.SendEmail(user.Email, subject, body); err != nil {
			println("Gagal mengirim email reset:", err.Error())
		}
	}()

	c.JSON(http.StatusOK, okResponse)
}

type ResetPasswordInput struct {
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}

// POST /api/auth/reset-password
func ResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password dan konfirmasi tidak cocok atau kurang dari 6 karakter"})
		return
	}

	var reset models.PasswordReset
	if err := config.DB.Where("token = ?", input.Token).First(&reset).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Link reset password tidak valid atau sudah kadaluarsa. Silakan minta link baru."})
		return
	}

	if reset.IsExpired() {
		config.DB.Delete(&reset)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Link reset password tidak valid atau sudah kadaluarsa. Silakan minta link baru."})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa meng-enkripsi password baru"})
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", reset.UserID).Update("password", string(hashed)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengubah password"})
		return
	}

	// Token sekali pakai
	config.DB.Delete(&reset)

	c.JSON(http.StatusOK, gin.H{"message": "Password berhasil diubah! Silakan login dengan password baru."})
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// POST /api/auth/change-password
func ChangePassword(c *gin.Context) {
	db := config.DB
	userID := c.GetString("user_id")

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pengguna tidak ditemukan"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password lama salah"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tidak bisa meng-enkripsi password baru"})
		return
	}

	user.Password = string(hashed)
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengubah password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password berhasil diubah"})
}
