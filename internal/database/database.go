package database

import (
	"errors"

	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/craftstat/craftstat/internal/icon"
	"github.com/craftstat/craftstat/internal/identity"
	"github.com/craftstat/craftstat/internal/registry"
)

// NewSqliteDatabase opens the shared sqlite database and migrates every
// persisted model
func NewSqliteDatabase() (*gorm.DB, error) {
	filepath := viper.Get("database-file")

	dbFile, ok := filepath.(string)

	if !ok {
		return nil, errors.New("failed to find database file path config")
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})

	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&icon.Icon{},
		&identity.Identity{},
		&registry.RegistrationModel{},
	)

	if err != nil {
		return nil, err
	}

	return db, nil
}
