package app

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-tasks-api/internal/config"
	"github.com/adanyl0v/go-tasks-api/internal/models"
)

func MustConnectPostgres(logger zerolog.Logger, cfg config.DatabaseConfig) *gorm.DB {
	// The pool is pinged below with cfg.PingTimeout.
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger:               newGormLogger(logger, cfg.SlowQueryThreshold),
		DisableAutomaticPing: true,
	})
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to get postgres connection pool")
		panic(err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = sqlDB.PingContext(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to ping postgres")
		panic(err)
	}
	logger.Info().
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("connected to postgres")

	if cfg.AutoMigrate {
		err = db.AutoMigrate(&models.Task{})
		if err != nil {
			logger.Error().
				Err(err).
				Msg("failed to migrate tasks table")
			panic(err)
		}
		logger.Info().Msg("migrated tasks table")
	}

	return db
}

func DisconnectPostgres(logger zerolog.Logger, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to get postgres connection pool")
		return
	}

	err = sqlDB.Close()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to disconnect from postgres")
		return
	}
	logger.Info().Msg("disconnected from postgres")
}
