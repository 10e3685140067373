package appraisal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"lootvalue/internal/domain"
	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/service/valuation"
	"lootvalue/internal/domain/value"
	"lootvalue/pkg/contextx"
	"lootvalue/pkg/errcodes"
	"lootvalue/pkg/logx"
)

const (
	OutcomeRecommended = "recommended"
	OutcomeUnsellable  = "unsellable"
)

type ItemRepository interface {
	GetTree(ctx context.Context, id string) (entity.Item, error)
	ListContainer(ctx context.Context, containerID string) ([]entity.Item, error)
}

type PriceSource interface {
	Sources(ctx context.Context) valuation.Sources
}

type Metrics interface {
	Appraised(outcome, channel, reason string)
	Failed(code string)
}

// Service загружает предмет из каталога и прогоняет его через оценку.
type Service struct {
	items   ItemRepository
	prices  PriceSource
	metrics Metrics
}

func NewService(items ItemRepository, prices PriceSource) *Service {
	return &Service{
		items:   items,
		prices:  prices,
		metrics: nopMetrics{},
	}
}

func (s *Service) WithMetrics(metrics Metrics) *Service {
	s.metrics = metrics
	return s
}

// Appraise оценивает предмет игрока по идентификатору.
func (s *Service) Appraise(ctx context.Context, itemID string, policy entity.Policy) (entity.Appraisal, error) {
	ctx = contextx.WithItemID(ctx, contextx.ItemID(itemID))

	result, err := s.appraise(ctx, itemID, policy)
	if err != nil {
		code, _, _ := errcodes.Of(err)
		s.metrics.Failed(code.String())

		logger(ctx).Warn("appraisal failed",
			slog.String(logx.FieldItemID, itemID),
			logx.Error(err),
		)

		return entity.Appraisal{}, err
	}

	outcome, channel, reason := OutcomeUnsellable, "", ""
	if result.Recommendation != nil {
		outcome = OutcomeRecommended
		channel = result.Recommendation.PreferredChannel.String()
		reason = result.Recommendation.OverrideReason.String()
	}

	s.metrics.Appraised(outcome, channel, reason)

	logger(ctx).Debug("item appraised",
		slog.String(logx.FieldItemID, itemID),
		slog.String(logx.FieldOutcome, outcome),
		slog.String(logx.FieldChannel, channel),
		slog.String(logx.FieldReason, reason),
	)

	return result, nil
}

func (s *Service) appraise(ctx context.Context, itemID string, policy entity.Policy) (entity.Appraisal, error) {
	if strings.TrimSpace(itemID) == "" {
		return entity.Appraisal{}, domain.NewError(errcodes.InvalidItemID, errcodes.KindInvalidArgument, "item id is empty")
	}

	if err := ValidatePolicy(policy); err != nil {
		return entity.Appraisal{}, err
	}

	item, err := s.items.GetTree(ctx, itemID)
	if err != nil {
		return entity.Appraisal{}, fmt.Errorf("items.GetTree: %w", err)
	}

	if !item.Location.Owned() {
		return entity.Appraisal{}, domain.NewError(errcodes.ItemNotAppraisable, errcodes.KindUnprocessable,
			fmt.Sprintf("item is at %s", item.Location))
	}

	// Внутри рейда содержимое и допуск к продаже не перепроверить
	if item.Location == value.LocationRaid {
		policy.InRestrictedContext = true
	}

	var siblings []entity.Item
	if item.ContainerID != "" {
		siblings, err = s.items.ListContainer(ctx, item.ContainerID)
		if err != nil {
			return entity.Appraisal{}, fmt.Errorf("items.ListContainer: %w", err)
		}
	}

	result, err := valuation.Appraise(item, siblings, s.prices.Sources(ctx), policy)
	if err != nil {
		return entity.Appraisal{}, fmt.Errorf("valuation.Appraise: %w", err)
	}

	return result, nil
}

// ValidatePolicy доли в политике должны быть неотрицательными,
// порог износа не больше единицы.
func ValidatePolicy(policy entity.Policy) error {
	if policy.DurabilityLossThreshold < 0 || policy.DurabilityLossThreshold > 1 {
		return domain.NewError(errcodes.InvalidPolicy, errcodes.KindInvalidArgument,
			fmt.Sprintf("durability loss threshold %v is out of [0, 1]", policy.DurabilityLossThreshold))
	}

	if policy.MinMarginFraction < 0 {
		return domain.NewError(errcodes.InvalidPolicy, errcodes.KindInvalidArgument,
			fmt.Sprintf("min margin fraction %v is negative", policy.MinMarginFraction))
	}

	return nil
}

type nopMetrics struct{}

func (nopMetrics) Appraised(string, string, string) {}
func (nopMetrics) Failed(string)                    {}
