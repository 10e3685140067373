package application

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"lootvalue/internal/config"
	"lootvalue/internal/domain/service/appraisal"
	"lootvalue/internal/domain/service/pricing"
	"lootvalue/internal/infrastructure/persistence"
	"lootvalue/internal/infrastructure/pricecache"
	"lootvalue/pkg/application/connectors"
)

// Components сервисы оценки поверх каталога и кэша котировок.
type Components struct {
	Items      *persistence.ItemRepository
	Prices     *persistence.PriceRepository
	Quotes     *pricecache.QuoteStore
	Pricing    *pricing.Service
	Appraisals *appraisal.Service
}

// NewComponents rdb может быть nil, тогда котировки читаются только из базы.
func NewComponents(db *sqlx.DB, rdb redis.UniversalClient, localTTL time.Duration) Components {
	c := Components{
		Items:  persistence.NewItemRepository(db),
		Prices: persistence.NewPriceRepository(db),
	}

	c.Pricing = pricing.NewService(c.Prices).WithLocalTTL(localTTL)

	if rdb != nil {
		c.Quotes = pricecache.NewQuoteStore(rdb)
		c.Pricing.WithQuoteCache(c.Quotes)
	}

	c.Appraisals = appraisal.NewService(c.Items, c.Pricing)

	return c
}

func NewRedis(cfg config.Redis) *connectors.Redis {
	return &connectors.Redis{
		Address:            cfg.Address,
		Username:           cfg.Username,
		Password:           cfg.Password,
		DatabaseNumber:     cfg.DatabaseNumber,
		PoolSize:           cfg.PoolSize,
		MinIdleConnections: cfg.MinIdleConnections,
		MaxIdleConnections: cfg.MaxIdleConnections,
	}
}
