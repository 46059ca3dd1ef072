package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yoanfkransyh/e-learning-koperasi-backend/config"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/models"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/ws"
)

// GET /api/kursus/:slug/questions — tanya-jawab halaman detail kursus.
// Pertanyaan terbaru dulu; jawaban tiap pertanyaan urut naik.
func GetCourseQuestions(c *gin.Context) {
	slugParam := c.Param("slug")

	var course models.Course
	if err := config.DB.Select("id").Where("slug = ?", slugParam).First(&course).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kursus tidak ditemukan"})
		return
	}

	var questions []models.Question
	if err := config.DB.
		Preload("Profile").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Answers.Profile").
		Where("course_id = ?", course.ID).
		Order("created_at DESC").
		Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil pertanyaan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": questions})
}

type CreateQuestionInput struct {
	Question string `json:"question" binding:"required"`
}

// POST /api/kursus/:slug/questions — peserta mengajukan pertanyaan.
func CreateQuestion(c *gin.Context) {
	slugParam := c.Param("slug")

	var input CreateQuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pertanyaan wajib diisi"})
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id tidak valid"})
		return
	}

	var course models.Course
	if err := config.DB.Select("id").Where("slug = ?", slugParam).First(&course).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kursus tidak ditemukan"})
		return
	}

	question := models.Question{
		CourseID: course.ID,
		UserID:   userID,
		Question: input.Question,
	}
	if err := config.DB.Create(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan pertanyaan"})
		return
	}

	config.DB.Preload("Profile").First(&question, "id = ?", question.ID)

	// Kabari client yang sedang membuka kursus ini agar refetch
	ws.BroadcastQuestionsChanged(course.ID.String())

	c.JSON(http.StatusCreated, gin.H{
		"message": "Pertanyaan berhasil dikirim",
		"data":    question,
	})
}

type CreateAnswerInput struct {
	Answer string `json:"answer" binding:"required"`
}

// POST /api/questions/:id/answers — jawaban admin atas pertanyaan.
func CreateAnswer(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var input CreateAnswerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Jawaban wajib diisi"})
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id tidak valid"})
		return
	}

	var question models.Question
	if err := config.DB.First(&question, "id = ?", questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pertanyaan tidak ditemukan"})
		return
	}

	answer := models.Answer{
		QuestionID: questionID,
		UserID:     userID,
		Answer:     input.Answer,
	}
	if err := config.DB.Create(&answer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan jawaban"})
		return
	}

	config.DB.Preload("Profile").First(&answer, "id = ?", answer.ID)

	ws.BroadcastAnswersChanged(question.CourseID.String())

	c.JSON(http.StatusCreated, gin.H{
		"message": "Jawaban berhasil dikirim",
		"data":    answer,
	})
}
