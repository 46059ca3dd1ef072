package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yoanfkransyh/e-learning-koperasi-backend/models"
)

var DB *gorm.DB

func dsnFromEnv() string {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		dbHost, dbUser, dbPass, dbName, dbPort,
	)
}

func InitDB() {
	db, err := gorm.Open(postgres.Open(dsnFromEnv()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatal("Tidak bisa terhubung ke database:", err)
	}

	DB = db

	// Ambil *sql.DB untuk konfigurasi connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Tidak bisa mengambil sql.DB dari gorm:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// AutoMigrate semua model
	err = DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Course{},
		&models.Question{},
		&models.Answer{},
		&models.PasswordReset{},
	)
	if err != nil {
		log.Fatal("autoMigrate gagal: ", err)
	}
	log.Println("postgreSQL connected & migrated successfully!")
}
