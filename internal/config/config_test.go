package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lootvalue/internal/config"
	"lootvalue/internal/domain/entity"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		rq := require.New(t)
		t.Setenv("CATALOG_DSN", "file:catalog.db")

		cfg, err := config.Load()
		rq.NoError(err)

		rq.Equal("lootvalue", cfg.App.Name)
		rq.Equal(slog.LevelInfo, cfg.App.LogLevel)
		rq.Equal(":8080", cfg.HTTP.ListenAddress)
		rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
		rq.Equal("pgx", cfg.Catalog.Driver)
		rq.Equal(map[string]int{"default": 1}, cfg.Asynq.Queues)
		rq.False(cfg.Bot.Enabled)
		rq.Equal(entity.Policy{
			DurabilityLossThreshold:  0.6,
			MinMarginFraction:        0.1,
			ValueNonVitalAttachments: true,
		}, cfg.Appraisal.Policy())
		rq.True(cfg.Appraisal.Display().ShowPricesInRaid)
	})

	t.Run("overrides", func(t *testing.T) {
		rq := require.New(t)
		t.Setenv("CATALOG_DSN", "file:catalog.db")
		t.Setenv("CATALOG_DRIVER", "sqlite")
		t.Setenv("APP_LOG_LEVEL", "debug")
		t.Setenv("ASYNQ_QUEUES", "critical:6,default:3")
		t.Setenv("BOT_ENABLED", "true")
		t.Setenv("BOT_ADMIN_ID", "42")
		t.Setenv("APPRAISAL_DURABILITY_LOSS_THRESHOLD", "0.5")
		t.Setenv("APPRAISAL_HIDE_LOWER_PRICE", "true")

		cfg, err := config.Load()
		rq.NoError(err)

		rq.Equal("sqlite", cfg.Catalog.Driver)
		rq.Equal(slog.LevelDebug, cfg.App.LogLevel)
		rq.Equal(map[string]int{"critical": 6, "default": 3}, cfg.Asynq.Queues)
		rq.True(cfg.Bot.Enabled)
		rq.Equal(int64(42), cfg.Bot.AdminID)
		rq.InDelta(0.5, cfg.Appraisal.Policy().DurabilityLossThreshold, 1e-9)
		rq.True(cfg.Appraisal.Display().HideLowerPrice)
	})

	t.Run("catalog dsn is required", func(t *testing.T) {
		rq := require.New(t)
		t.Setenv("CATALOG_DSN", "")

		_, err := config.Load()
		rq.Error(err)
	})
}
