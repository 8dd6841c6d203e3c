package config

import (
	"errors"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nexlify/careers/internal/models"
)

var PostgresDB *gorm.DB

// InitPostgres connects to the managed Postgres endpoint. The connection
// string is injected through the environment, never compiled in.
func InitPostgres() error {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		uri = os.Getenv("POSTGRES_URI")
	}
	if uri == "" {
		return errors.New("DATABASE_URL (or POSTGRES_URI) environment variable is not set")
	}
	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// Connection pooling settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.AutoMigrate(&models.Applicant{}, &models.JobPosting{}); err != nil {
		return err
	}

	PostgresDB = db
	return nil
}
