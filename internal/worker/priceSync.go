package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/value"
	"lootvalue/pkg/contextx"
	"lootvalue/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const (
	TypePriceSync = "prices:sync"

	priceSyncTimeout  = time.Minute
	priceSyncMaxRetry = 3
)

type PriceLister interface {
	ListMarketPrices(ctx context.Context) ([]entity.MarketQuote, error)
	ListBuyerOffers(ctx context.Context) ([]entity.BuyerQuote, error)
}

type QuoteWriter interface {
	ReplaceMarket(ctx context.Context, quotes []entity.MarketQuote) error
	ReplaceBuyers(ctx context.Context, quotes []entity.BuyerQuote) error
}

type SyncMetrics interface {
	QuotesSynced(channel string, count int)
}

// PriceSyncPayload кто запросил синхронизацию: планировщик или админ.
type PriceSyncPayload struct {
	RequestedBy string `json:"requested_by"`
}

type SyncResult struct {
	Market int
	Buyers int
}

// PriceSync копирует котировки из базы в общий кэш Redis.
type PriceSync struct {
	prices  PriceLister
	quotes  QuoteWriter
	metrics SyncMetrics
}

func NewPriceSync(prices PriceLister, quotes QuoteWriter) *PriceSync {
	return &PriceSync{
		prices: prices,
		quotes: quotes,
	}
}

func (w *PriceSync) WithMetrics(metrics SyncMetrics) *PriceSync {
	w.metrics = metrics
	return w
}

func NewPriceSyncTask(requestedBy string) (*asynq.Task, error) {
	payload, err := json.Marshal(PriceSyncPayload{RequestedBy: requestedBy})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypePriceSync, payload,
		asynq.MaxRetry(priceSyncMaxRetry),
		asynq.Timeout(priceSyncTimeout),
		asynq.Unique(priceSyncTimeout),
	), nil
}

func (w *PriceSync) HandleTask(ctx context.Context, task *asynq.Task) error {
	var payload PriceSyncPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("json.Unmarshal: %w: %w", err, asynq.SkipRetry)
		}
	}

	ctx = contextWithTask(ctx, task.Type(), payload.RequestedBy)

	if _, err := w.Sync(ctx); err != nil {
		return err
	}

	return nil
}

func (w *PriceSync) Sync(ctx context.Context) (SyncResult, error) {
	started := time.Now()

	market, err := w.prices.ListMarketPrices(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("prices.ListMarketPrices: %w", err)
	}

	buyers, err := w.prices.ListBuyerOffers(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("prices.ListBuyerOffers: %w", err)
	}

	if err := w.quotes.ReplaceMarket(ctx, market); err != nil {
		return SyncResult{}, fmt.Errorf("quotes.ReplaceMarket: %w", err)
	}

	if err := w.quotes.ReplaceBuyers(ctx, buyers); err != nil {
		return SyncResult{}, fmt.Errorf("quotes.ReplaceBuyers: %w", err)
	}

	if w.metrics != nil {
		w.metrics.QuotesSynced(value.ChannelMarket.String(), len(market))
		w.metrics.QuotesSynced(value.ChannelBuyer.String(), len(buyers))
	}

	logger(ctx).Info("price sync finished",
		slog.Int("market", len(market)),
		slog.Int("buyers", len(buyers)),
		slog.Int64(logx.FieldDurationMs, time.Since(started).Milliseconds()),
	)

	return SyncResult{Market: len(market), Buyers: len(buyers)}, nil
}

func contextWithTask(ctx context.Context, taskType, requestedBy string) context.Context {
	log := logger(ctx).With(
		slog.String(logx.FieldTaskType, taskType),
		slog.String(logx.FieldRequestedBy, requestedBy),
	)

	return contextx.WithLogger(ctx, log)
}
