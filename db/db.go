package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"postboard/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotConfigured = errors.New("no database configured: set MYSQL_DSN, MYSQL_HOST/MYSQL_DATABASE or SQLITE_FILE")

// Open connects to MySQL when it is configured and falls back to SQLite otherwise.
// The returned handle is a connection pool shared by all callers.
func Open(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn := cfg.MySQLDSN(); dsn != "" {
		dialector = mysql.Open(dsn)
	} else if cfg.SQLiteFile != "" {
		dialector = sqlite.Open(cfg.SQLiteFile)
	} else {
		return nil, ErrNotConfigured
	}
	db, err := gorm.Open(dialector, gormConfig(cfg.DebugMode))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

// OpenMemory opens a private in-memory SQLite database, used by tests.
func OpenMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), gormConfig(false))
	if err != nil {
		return nil, err
	}
	// Every new connection to :memory: is a brand new database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func gormConfig(debug bool) *gorm.Config {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}
}
