package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Dishalex/PhotoShare/internal/config"
	"github.com/Dishalex/PhotoShare/internal/logging"
	"github.com/Dishalex/PhotoShare/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver for the configured database type.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Type {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.Name,
		)
		if cfg.SSL {
			dsn += "&tls=true"
		}
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(PostgresDSN(cfg)), nil
	case "sqlite", "":
		dbDir := filepath.Dir(cfg.Filename)
		if err := os.MkdirAll(dbDir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir %q: %w", dbDir, err)
		}
		return sqlite.Open(SQLiteDSN(cfg.Filename)), nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}

func PostgresDSN(cfg config.DatabaseConfig) string {
	sslMode := "disable"
	if cfg.SSL {
		sslMode = "require"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.Port,
		sslMode,
	)
}

// SQLiteDSN turns on foreign keys so ON DELETE CASCADE is honored, plus WAL and a busy timeout.
func SQLiteDSN(filename string) string {
	return filename + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

// Open connects, sizes the pool and migrates the schema.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if cfg.Type == "sqlite" || cfg.Type == "" {
		// SQLite serializes writers anyway.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetMaxIdleConns(10)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(gdb); err != nil {
		return nil, err
	}

	logging.Info().Str("type", cfg.Type).Msg("✅ database connected, schema migrated")
	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
