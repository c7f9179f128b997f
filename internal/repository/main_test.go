package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wordlens/internal/model"
)

// setupTestDB opens a fresh in-memory SQLite database with the full schema.
// Each call gets its own database so tests stay independent.
func setupTestDB() *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		panic("failed to enable foreign keys: " + err.Error())
	}
	if err := db.AutoMigrate(
		&model.PromptTemplate{},
		&model.AppSettings{},
		&model.WordCacheEntry{},
	); err != nil {
		panic("failed to migrate database for testing: " + err.Error())
	}
	return db
}
