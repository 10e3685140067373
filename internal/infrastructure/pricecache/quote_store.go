package pricecache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"lootvalue/internal/domain/entity"
	"lootvalue/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const (
	KeyMarket = "quotes:market"
	KeyBuyers = "quotes:buyers"
)

// QuoteStore общий для всех инстансов кэш котировок в Redis.
// quotes:market хранит цену единицы по шаблону, quotes:buyers JSON со
// списком предложений торговцев по шаблону.
type QuoteStore struct {
	client redis.UniversalClient
}

func NewQuoteStore(client redis.UniversalClient) *QuoteStore {
	return &QuoteStore{client: client}
}

// MarketPrice ok == false, если котировки нет в кэше.
func (s *QuoteStore) MarketPrice(ctx context.Context, templateID string) (int64, bool, error) {
	raw, err := s.client.HGet(ctx, KeyMarket, templateID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("client.HGet: %w", err)
	}

	price, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("strconv.ParseInt: %w", err)
	}

	return price, true, nil
}

// BuyerOffers ok == false, если котировок нет в кэше.
func (s *QuoteStore) BuyerOffers(ctx context.Context, templateID string) ([]entity.BuyerQuote, bool, error) {
	raw, err := s.client.HGet(ctx, KeyBuyers, templateID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("client.HGet: %w", err)
	}

	var quotes []entity.BuyerQuote
	if err := json.Unmarshal(raw, &quotes); err != nil {
		return nil, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return quotes, true, nil
}

// ReplaceMarket атомарно заменяет все котировки барахолки.
func (s *QuoteStore) ReplaceMarket(ctx context.Context, quotes []entity.MarketQuote) error {
	values := make(map[string]any, len(quotes))
	for _, q := range quotes {
		values[q.TemplateID] = q.UnitPrice
	}

	if err := s.replace(ctx, KeyMarket, values); err != nil {
		return err
	}

	logger(ctx).Debug("market quotes replaced", slog.Int("count", len(values)))

	return nil
}

// ReplaceBuyers атомарно заменяет все предложения торговцев.
func (s *QuoteStore) ReplaceBuyers(ctx context.Context, quotes []entity.BuyerQuote) error {
	byTemplate := lo.GroupBy(quotes, func(q entity.BuyerQuote) string { return q.TemplateID })

	values := make(map[string]any, len(byTemplate))
	for templateID, offers := range byTemplate {
		raw, err := json.Marshal(offers)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}

		values[templateID] = raw
	}

	if err := s.replace(ctx, KeyBuyers, values); err != nil {
		return err
	}

	logger(ctx).Debug("buyer quotes replaced", slog.Int("templates", len(values)))

	return nil
}

func (s *QuoteStore) replace(ctx context.Context, key string, values map[string]any) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)

		if len(values) > 0 {
			pipe.HSet(ctx, key, values)
		}

		return nil
	})
	if err != nil {
		logger(ctx).Error("quote store replace failed", slog.String("key", key), logx.Error(err))
		return fmt.Errorf("client.TxPipelined: %w", err)
	}

	return nil
}
