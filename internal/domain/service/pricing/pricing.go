package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"lootvalue/internal/domain"
	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/service/valuation"
	"lootvalue/pkg/errcodes"
	"lootvalue/pkg/logx"
	"lootvalue/pkg/lox"
)

const (
	defaultLocalTTL = time.Minute
	cleanupInterval = 10 * time.Minute
)

type PriceRepository interface {
	MarketPrice(ctx context.Context, templateID string) (entity.MarketQuote, error)
	BuyerOffers(ctx context.Context, templateID string) ([]entity.BuyerQuote, error)
}

// QuoteCache общий кэш котировок. ok == false означает промах.
type QuoteCache interface {
	MarketPrice(ctx context.Context, templateID string) (int64, bool, error)
	BuyerOffers(ctx context.Context, templateID string) ([]entity.BuyerQuote, bool, error)
}

// Service источник цен для оценки: котировки шаблонов с поправкой на
// состояние предмета и установленные модули.
// Котировки ищутся в локальном кэше, затем в Redis, затем в базе.
type Service struct {
	repo   PriceRepository
	quotes QuoteCache
	local  *cache.Cache
}

func NewService(repo PriceRepository) *Service {
	return &Service{
		repo:  repo,
		local: cache.New(defaultLocalTTL, cleanupInterval),
	}
}

func (s *Service) WithQuoteCache(quotes QuoteCache) *Service {
	s.quotes = quotes
	return s
}

func (s *Service) WithLocalTTL(ttl time.Duration) *Service {
	s.local = cache.New(ttl, cleanupInterval)
	return s
}

// Sources привязывает источники цен к контексту запроса.
func (s *Service) Sources(ctx context.Context) valuation.Sources {
	return valuation.Sources{
		MarketUnitPrice: func(item entity.Item) (int64, error) {
			return s.MarketUnitPrice(ctx, item)
		},
		BestBuyerOffer: func(item entity.Item) (entity.BuyerOffer, error) {
			return s.BestBuyerOffer(ctx, item)
		},
	}
}

// MarketUnitPrice цена единицы предмета на барахолке вместе с модулями.
func (s *Service) MarketUnitPrice(ctx context.Context, item entity.Item) (int64, error) {
	base, err := s.baseMarketPrice(ctx, item.TemplateID)
	if err != nil {
		return 0, err
	}

	mods, err := lox.SumErr(item.Mods, func(mod entity.Item) (int64, error) {
		price, err := s.MarketUnitPrice(ctx, mod)
		return price * max(mod.StackCount, 1), err
	})
	if err != nil {
		return 0, err
	}

	return conditioned(base, item.Durability) + mods, nil
}

// BestBuyerOffer лучшее предложение за весь стак. Каждый торговец
// оценивает предмет вместе с модулями по своим ценам.
func (s *Service) BestBuyerOffer(ctx context.Context, item entity.Item) (entity.BuyerOffer, error) {
	offers, err := s.baseBuyerOffers(ctx, item.TemplateID)
	if err != nil {
		return entity.BuyerOffer{}, err
	}

	var best entity.BuyerOffer

	for _, offer := range offers {
		unit, err := s.buyerUnitPrice(ctx, item, offer.BuyerName, offer.UnitPrice)
		if err != nil {
			return entity.BuyerOffer{}, err
		}

		if total := unit * item.StackCount; total > best.Price {
			best = entity.BuyerOffer{Price: total, BuyerName: offer.BuyerName}
		}
	}

	return best, nil
}

func (s *Service) buyerUnitPrice(ctx context.Context, item entity.Item, buyer string, base int64) (int64, error) {
	mods, err := lox.SumErr(item.Mods, func(mod entity.Item) (int64, error) {
		offers, err := s.baseBuyerOffers(ctx, mod.TemplateID)
		if err != nil {
			return 0, err
		}

		offer, ok := lo.Find(offers, func(q entity.BuyerQuote) bool { return q.BuyerName == buyer })
		if !ok {
			return 0, nil
		}

		price, err := s.buyerUnitPrice(ctx, mod, buyer, offer.UnitPrice)
		return price * max(mod.StackCount, 1), err
	})
	if err != nil {
		return 0, err
	}

	return conditioned(base, item.Durability) + mods, nil
}

func (s *Service) baseMarketPrice(ctx context.Context, templateID string) (int64, error) {
	key := "market:" + templateID
	if price, found := s.local.Get(key); found {
		return price.(int64), nil //nolint:forcetypeassert
	}

	if s.quotes != nil {
		price, ok, err := s.quotes.MarketPrice(ctx, templateID)
		switch {
		case err != nil:
			logger(ctx).Warn("quote cache unavailable, falling back to database",
				slog.String(logx.FieldTemplateID, templateID),
				logx.Error(err),
			)
		case ok:
			s.local.SetDefault(key, price)
			return price, nil
		}
	}

	quote, err := s.repo.MarketPrice(ctx, templateID)
	if err != nil {
		if code, _ := domain.GetCode(err); code != errcodes.PriceNotFound {
			return 0, domain.WrapError(err, errcodes.PriceLookupFailed,
				fmt.Sprintf("market price of %s", templateID))
		}

		// Не торгуется на барахолке
		quote.UnitPrice = 0
	}

	s.local.SetDefault(key, quote.UnitPrice)

	return quote.UnitPrice, nil
}

func (s *Service) baseBuyerOffers(ctx context.Context, templateID string) ([]entity.BuyerQuote, error) {
	key := "buyers:" + templateID
	if offers, found := s.local.Get(key); found {
		return offers.([]entity.BuyerQuote), nil //nolint:forcetypeassert
	}

	if s.quotes != nil {
		offers, ok, err := s.quotes.BuyerOffers(ctx, templateID)
		switch {
		case err != nil:
			logger(ctx).Warn("quote cache unavailable, falling back to database",
				slog.String(logx.FieldTemplateID, templateID),
				logx.Error(err),
			)
		case ok:
			s.local.SetDefault(key, offers)
			return offers, nil
		}
	}

	offers, err := s.repo.BuyerOffers(ctx, templateID)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.PriceLookupFailed,
			fmt.Sprintf("buyer offers of %s", templateID))
	}

	s.local.SetDefault(key, offers)

	return offers, nil
}

// conditioned цена с поправкой на износ, с округлением вниз.
func conditioned(base int64, durability float64) int64 {
	if durability >= 1 {
		return base
	}

	return decimal.NewFromInt(base).Mul(decimal.NewFromFloat(max(durability, 0))).Floor().IntPart()
}
