package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/config"
)

// Connection holds the database handle and its configuration
type Connection struct {
	DB     *gorm.DB
	config config.DatabaseConfig
}

// NewConnection establishes a database connection with pool settings from
// the configuration
func NewConnection(cfg config.DatabaseConfig, log coreport.Logger, timeProvider coreport.TimeProvider) (*Connection, error) {
	if cfg.Driver != "postgres" {
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	log.Info("Connecting to database", map[string]any{
		"driver": cfg.Driver,
		"host":   cfg.Host,
		"port":   cfg.Port,
		"name":   cfg.Database,
	})

	db, err := gorm.Open(postgres.Open(dsn(cfg)), &gorm.Config{
		Logger: NewDatabaseLogger(log, "warn"),
		NowFunc: func() time.Time {
			return timeProvider.Now()
		},
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{DB: db, config: cfg}, nil
}

// Close closes the underlying connection pool
func (c *Connection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

func dsn(cfg config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database, cfg.SSLMode,
	)
}
