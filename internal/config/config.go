package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"lootvalue/internal/domain/entity"
)

type Config struct {
	App       App       `envPrefix:"APP_"`
	HTTP      HTTP      `envPrefix:"HTTP_"`
	Probe     Probe     `envPrefix:"PROBE_"`
	Metrics   Metrics   `envPrefix:"METRICS_"`
	Catalog   Catalog   `envPrefix:"CATALOG_"`
	Redis     Redis     `envPrefix:"REDIS_"`
	Asynq     Asynq     `envPrefix:"ASYNQ_"`
	Bot       Bot       `envPrefix:"BOT_"`
	Appraisal Appraisal `envPrefix:"APPRAISAL_"`
}

type App struct {
	Name     string     `env:"NAME" envDefault:"lootvalue"`
	Version  string     `env:"VERSION" envDefault:"dev"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Console  bool       `env:"LOG_CONSOLE" envDefault:"false"`
}

type HTTP struct {
	ListenAddress   string        `env:"LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen  int           `env:"LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type Probe struct {
	ListenAddress string `env:"LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"LISTEN_ADDRESS" envDefault:":9090"`
}

// Load читает конфигурацию из окружения, подхватывая .env при наличии.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}

// Policy политика оценки по умолчанию.
func (a Appraisal) Policy() entity.Policy {
	return entity.Policy{
		DurabilityLossThreshold:  a.DurabilityLossThreshold,
		MinMarginFraction:        a.MinMarginFraction,
		ValueNonVitalAttachments: a.ValueNonVitalAttachments,
	}
}

// Display настройки отображения по умолчанию.
func (a Appraisal) Display() entity.DisplaySettings {
	return entity.DisplaySettings{
		HideLowerPrice:              a.HideLowerPrice,
		HideLowerPriceInRaid:        a.HideLowerPriceInRaid,
		ShowMarketEligibility:       a.ShowMarketEligibility,
		ShowPricePerKgAndSlotInRaid: a.ShowPricePerKgAndSlotInRaid,
		ShowPricesInRaid:            a.ShowPricesInRaid,
	}
}
