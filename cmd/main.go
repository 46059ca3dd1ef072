package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoanfkransyh/e-learning-koperasi-backend/config"
	"github.com/yoanfkransyh/e-learning-koperasi-backend/routes"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("File .env tidak ditemukan")
	}

	config.InitDB()

	r := gin.Default()

	// Aktifkan CORS untuk front-end
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://yoanfkransyh.github.io"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, config.DB)

	// Route test server
	r.GET("/", func(c *gin.Context) {
		c.String(200, "E-Learning Koperasi server is running")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // default jika PORT tidak di-set
	}

	log.Println("Server running at Port:" + port)
	r.Run(":" + port)
}
