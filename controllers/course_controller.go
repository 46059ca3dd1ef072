package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/yoanfkransyh/e-learning-koperasi-backend/config"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/datatable"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/models"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/services"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/utils"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/ws"
)

/*========= PUBLIK ==========*/

// GET /api/kursus — daftar kursus dengan pencarian, sort az/za, dan
// pagination.
func GetCourses(c *gin.Context) {
	db := config.DB

	search := c.Query("search")
	sortOrder := c.DefaultQuery("sort", "terbaru")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "9"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 9
	}
	offset := (page - 1) * limit

	query := db.Model(&models.Course{})
	if search != "" {
		pattern := datatable.SearchPattern(search)
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghitung jumlah kursus"})
		return
	}

	switch sortOrder {
	case "az":
		query = query.Order("title ASC")
	case "za":
		query = query.Order("title DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var courses []models.Course
	if err := query.Limit(limit).Offset(offset).Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil daftar kursus"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": courses,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// GET /api/kursus/:slug — detail kursus untuk halaman DetailKursus.
func GetCourseDetail(c *gin.Context) {
	slugParam := c.Param("slug")

	var course models.Course
	if err := config.DB.Where("slug = ?", slugParam).First(&course).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kursus tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": course})
}

/*========= ADMIN ==========*/

// GET /api/admin/kursus — semua kursus, terbaru lebih dulu.
func GetCoursesAdmin(c *gin.Context) {
	var courses []models.Course
	if err := config.DB.Order("created_at DESC").Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil daftar kursus"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": courses})
}

// parseCropRect membaca field form "crop" (JSON persegi ternormalisasi).
// Tanpa field crop, seluruh gambar dipakai.
func parseCropRect(c *gin.Context) (services.CropRect, error) {
	raw := c.PostForm("crop")
	if raw == "" {
		return services.FullCrop(), nil
	}
	var rect services.CropRect
	if err := json.Unmarshal([]byte(raw), &rect); err != nil {
		return services.CropRect{}, fmt.Errorf("format area crop tidak valid: %w", err)
	}
	return rect, nil
}

// uploadCourseFiles mengunggah materi dan/atau thumbnail dari form
// multipart; mengembalikan URL hasil upload (kosong jika file tidak
// dikirim).
func uploadCourseFiles(c *gin.Context, courseSlug string) (pdfURL, imageURL string, err error) {
	if pdfFile, ferr := c.FormFile("pdf"); ferr == nil {
		ext := filepath.Ext(pdfFile.Filename)
		objectPath := fmt.Sprintf("%s-%d%s", courseSlug, time.Now().Unix(), ext)
		pdfURL, err = utils.UploadFileToStorage(utils.BucketCourseMaterials, objectPath, pdfFile)
		if err != nil {
			return "", "", fmt.Errorf("gagal mengunggah materi: %w", err)
		}
	}

	if imageFile, ferr := c.FormFile("image"); ferr == nil {
		rect, rerr := parseCropRect(c)
		if rerr != nil {
			return "", "", rerr
		}

		src, oerr := imageFile.Open()
		if oerr != nil {
			return "", "", oerr
		}
		defer src.Close()

		cropped, cerr := services.CropThumbnail(src, rect)
		if cerr != nil {
			return "", "", fmt.Errorf("gagal memproses thumbnail: %w", cerr)
		}

		objectPath := fmt.Sprintf("%s-thumbnail-%d.jpg", courseSlug, time.Now().Unix())
		imageURL, err = utils.UploadBytesToStorage(utils.BucketCourseThumbnails, objectPath, cropped, "image/jpeg")
		if err != nil {
			return "", "", fmt.Errorf("gagal mengunggah thumbnail: %w", err)
		}
	}

	return pdfURL, imageURL, nil
}

// POST /api/admin/kursus — buat kursus baru (form multipart:
// slug, title, description, crop, file pdf & image opsional).
func CreateCourse(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Judul dan deskripsi wajib diisi"})
		return
	}

	// Slug dibersihkan dari spasi; kalau kosong dibuat dari judul
	courseSlug := utils.SanitizeSlug(c.PostForm("slug"))
	if courseSlug == "" {
		courseSlug = slug.Make(title)
	}

	var count int64
	config.DB.Model(&models.Course{}).Where("slug = ?", courseSlug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug sudah dipakai kursus lain"})
		return
	}

	pdfURL, imageURL, err := uploadCourseFiles(c, courseSlug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	course := models.Course{
		Slug:        courseSlug,
		Title:       title,
		Description: description,
	}
	if pdfURL != "" {
		course.PDFURL = &pdfURL
	}
	if imageURL != "" {
		course.ImageURL = &imageURL
	}

	if err := config.DB.Create(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan kursus: " + err.Error()})
		return
	}

	ws.BroadcastCourseListChanged()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Kursus berhasil ditambahkan.",
		"data":    course,
	})
}

// PUT /api/admin/kursus/:id — perbarui kursus; thumbnail lama dihapus
// dulu dari storage (best-effort) sebelum yang baru diunggah.
func UpdateCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var course models.Course
	if err := config.DB.First(&course, "id = ?", courseID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kursus tidak ditemukan"})
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Judul dan deskripsi wajib diisi"})
		return
	}

	courseSlug := utils.SanitizeSlug(c.PostForm("slug"))
	if courseSlug == "" {
		courseSlug = course.Slug
	}

	var count int64
	config.DB.Model(&models.Course{}).Where("slug = ? AND id <> ?", courseSlug, courseID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug sudah dipakai kursus lain"})
		return
	}

	// Hapus thumbnail lama jika ada gambar baru; kegagalan hanya dicatat
	if _, ferr := c.FormFile("image"); ferr == nil && course.ImageURL != nil {
		if derr := utils.DeleteFileFromStorage(*course.ImageURL); derr != nil {
			log.Println("Gagal menghapus thumbnail lama:", derr)
		}
	}

	pdfURL, imageURL, err := uploadCourseFiles(c, courseSlug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	course.Slug = courseSlug
	course.Title = title
	course.Description = description
	if pdfURL != "" {
		course.PDFURL = &pdfURL
	}
	if imageURL != "" {
		course.ImageURL = &imageURL
	}

	if err := config.DB.Save(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan kursus: " + err.Error()})
		return
	}

	ws.BroadcastCourseListChanged()

	c.JSON(http.StatusOK, gin.H{
		"message": "Kursus berhasil diperbarui.",
		"data":    course,
	})
}

// DELETE /api/admin/kursus/:id — hapus kursus beserta file storage-nya
// (penghapusan file best-effort).
func DeleteCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var course models.Course
	if err := config.DB.First(&course, "id = ?", courseID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kursus tidak ditemukan"})
		return
	}

	if course.PDFURL != nil {
		if derr := utils.DeleteFileFromStorage(*course.PDFURL); derr != nil {
			log.Println("Gagal menghapus materi dari storage:", derr)
		}
	}
	if course.ImageURL != nil {
		if derr := utils.DeleteFileFromStorage(*course.ImageURL); derr != nil {
			log.Println("Gagal menghapus thumbnail dari storage:", derr)
		}
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		// Pertanyaan & jawaban kursus ikut terhapus
		if err := tx.Where("question_id IN (?)",
			tx.Model(&models.Question{}).Select("id").Where("course_id = ?", courseID),
		).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus kursus: " + err.Error()})
		return
	}

	ws.BroadcastCourseListChanged()

	c.JSON(http.StatusOK, gin.H{"message": "Kursus berhasil dihapus."})
}
