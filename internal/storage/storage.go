// Package storage opens and migrates the application database.
package storage

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kirill-tkachenko7/yatube/internal/models"
)

// Open connects to PostgreSQL when DB_HOST is set, otherwise to a local
// SQLite file (path from DATABASE, default yatube.db).
func Open(logger *logrus.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	host := os.Getenv("DB_HOST")
	if host == "" {
		dbPath := os.Getenv("DATABASE")
		if dbPath == "" {
			dbPath = "yatube.db"
		}
		logger.WithField("path", dbPath).Info("Connecting to SQLite database")
		// _foreign_keys=on so the CASCADE / SET NULL rules actually fire.
		return gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), cfg)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=require",
		host,
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
	)
	logger.WithField("host", host).Info("Connecting to PostgreSQL database")
	return gorm.Open(postgres.Open(dsn), cfg)
}

// OpenMemory opens a private named in-memory SQLite database and migrates it.
// Each distinct name is an independent database.
func OpenMemory(name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
}
