package database

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"surfcast/internal/config"
)

const sqlitePrefix = "sqlite://"

var ErrUnsupportedURL = errors.New("unsupported database URL")

// Open connects to postgres:// / postgresql:// URLs or to a sqlite file
// given as sqlite:///path (sqlite://:memory: for an in-memory database).
func Open(cfg config.DatabaseConfig, log *slog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.URL)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Lets the booking repository see unique violations as gorm.ErrDuplicatedKey
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if dialector.Name() == "sqlite" {
		// sqlite serializes writers; a single connection also keeps :memory: databases alive
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(1 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.With("component", "database").Info("database connected", "dialect", dialector.Name())
	return db, nil
}

func dialectorFor(url string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), nil
	case strings.HasPrefix(url, sqlitePrefix):
		// sqlite:///surf_school.db is relative, sqlite:////var/db/x.db absolute
		path := strings.TrimPrefix(strings.TrimPrefix(url, sqlitePrefix), "/")
		if path == "" {
			return nil, fmt.Errorf("%w: missing sqlite path in %q", ErrUnsupportedURL, url)
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, url)
	}
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migration is one schema step run after AutoMigrate
type Migration struct {
	Name string
	SQL  string
}

// Migrate creates or updates the tables for models, then runs the extra
// statements in order. Statements must be idempotent.
func Migrate(db *gorm.DB, models []any, migrations ...Migration) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	for _, m := range migrations {
		if err := db.Exec(m.SQL).Error; err != nil {
			return fmt.Errorf("failed to run migration %s: %w", m.Name, err)
		}
	}
	return nil
}
