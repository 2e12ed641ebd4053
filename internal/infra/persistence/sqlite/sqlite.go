// Package sqlite opens the SQLite database used for local development and tests.
package sqlite

import (
	"strings"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const fileOptions = "_journal_mode=WAL&_busy_timeout=5000"

// Open opens the database at path. A nil gormLogger silences GORM.
func Open(path string, gormLogger logger.Interface) (*gorm.DB, error) {
	if gormLogger == nil {
		gormLogger = logger.Discard
	}

	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open SQLite database %s", path)
	}

	// Every connection to :memory: is a new empty database.
	if path == MemoryPath {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func dsn(path string) string {
	if path == MemoryPath {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&" + fileOptions
	}

	return path + "?" + fileOptions
}
