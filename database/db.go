package database

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fatura-backend/logger"
	"fatura-backend/utils"
)

var DB *gorm.DB

const (
	connectAttempts = 3
	connectDelay    = 600 * time.Millisecond
)

// Connect opens the shared connection. The store may not be reachable
// the instant we ask for it (fresh container, proxy warm-up), so the
// attempt is retried a bounded number of times before giving up.
func Connect() {
	if err := godotenv.Load(); err != nil {
		logger.L.Infof("no .env file, using process environment")
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			envDefault("DB_HOST", "db"),
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"),
			envDefault("DB_PORT", "5432"))
	}

	err := utils.Retry(connectAttempts, connectDelay, func() error {
		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if openErr != nil {
			logger.L.Warnf("database not ready, retrying: %v", openErr)
			return openErr
		}
		DB = db
		return nil
	})
	if err != nil {
		logger.L.Fatalf("could not connect to database: %v", err)
	}
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
