package config

import "time"

type Catalog struct {
	Driver          string        `env:"DRIVER" envDefault:"pgx"`
	DSN             string        `env:"DSN,notEmpty" json:"-"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"5m"`
}

type Redis struct {
	Address            string `env:"ADDRESS" envDefault:"localhost:6379"`
	Username           string `env:"USERNAME"`
	Password           string `env:"PASSWORD" json:"-"`
	DatabaseNumber     int    `env:"DB" envDefault:"0"`
	PoolSize           int    `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConnections int    `env:"MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConnections int    `env:"MAX_IDLE_CONNS" envDefault:"5"`
	// LocalTTL время жизни котировок в памяти процесса.
	LocalTTL time.Duration `env:"LOCAL_TTL" envDefault:"30s"`
}

type Asynq struct {
	Enabled       bool           `env:"ENABLED" envDefault:"true"`
	Concurrency   int            `env:"CONCURRENCY" envDefault:"2"`
	Queues        map[string]int `env:"QUEUES" envDefault:"default:1"`
	PriceSyncCron string         `env:"PRICE_SYNC_CRON" envDefault:"*/10 * * * *"`
}
