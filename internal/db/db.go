package db

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/parlour-booking/internal/config"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

const pingTimeout = 5 * time.Second

// NewDB opens the shared connection pool, creates the schema and, when
// enabled, seeds the catalog. The returned handle is safe for concurrent use.
func NewDB(cfg config.DBConfig, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(cfg), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         newGormLogger(log),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	if cfg.Seed {
		if err := Seed(context.Background(), db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	log.Info("database ready", "driver", cfg.Driver, "max_open_conns", cfg.MaxOpenConns)
	return db, nil
}

// Migrate creates missing tables and columns. It is safe to run on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Parlour{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate")
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	return sqlDB.Close()
}

func dialector(cfg config.DBConfig) gorm.Dialector {
	if cfg.Driver == "postgres" {
		return postgres.Open(cfg.URL)
	}
	return sqlite.Open(sqliteDSN(cfg.URL))
}

// sqliteDSN turns on foreign key enforcement, which sqlite leaves off by default.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=1"
}
