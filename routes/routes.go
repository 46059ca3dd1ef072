package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yoanfkransyh/e-learning-koperasi-backend/controllers"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/middleware"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.Use(middleware.DBMiddleware(db))

	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/confirm-email", controllers.ConfirmEmail)
			auth.POST("/login", controllers.Login)
			auth.POST("/forgot-password", controllers.ForgotPassword)
			auth.POST("/reset-password", controllers.ResetPassword)

			auth.GET("/me", middleware.AuthMiddleware(), controllers.Me)
			auth.POST("/change-password", middleware.AuthMiddleware(), controllers.ChangePassword)
		}

		// Katalog kursus bisa diakses tanpa login
		api.GET("/kursus", controllers.GetCourses)
		api.GET("/kursus/:slug", controllers.GetCourseDetail)
		api.GET("/kursus/:slug/questions", middleware.OptionalAuthMiddleware(), controllers.GetCourseQuestions)

		api.POST("/kursus/:slug/questions", middleware.AuthMiddleware(), controllers.CreateQuestion)

		profil := api.Group("/profil", middleware.AuthMiddleware())
		{
			profil.GET("", controllers.GetProfile)
			profil.PUT("", controllers.UpdateProfile)
		}

		admin := api.Group("/admin", middleware.RequireRoles("admin"))
		{
			admin.GET("/kursus", controllers.GetCoursesAdmin)
			admin.POST("/kursus", controllers.CreateCourse)
			admin.PUT("/kursus/:id", controllers.UpdateCourse)
			admin.DELETE("/kursus/:id", controllers.DeleteCourse)

			admin.GET("/tables", controllers.ListTables)
			admin.GET("/tables/:table", controllers.GetTableRows)
			admin.GET("/tables/:table/export", controllers.ExportTable)
			admin.GET("/tables/:table/:id", controllers.GetTableRow)
			admin.PUT("/tables/:table/:id", controllers.UpdateTableRow)
			admin.DELETE("/tables/:table/:id", controllers.DeleteTableRow)

			admin.GET("/stats/online-users", controllers.GetOnlineUsers)
		}

		api.POST("/questions/:id/answers", middleware.RequireRoles("admin"), controllers.CreateAnswer)
	}

	r.GET("/ws/course/:id", ws.HandleCourseWebSocket)
	r.GET("/ws/status", ws.HandleGlobalWebSocket)

	return r
}
