package valuation

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"lootvalue/internal/domain/entity"
)

// Classify выводит флаги состояния предмета. Проверки содержимого внутри
// рейда не выполняются: там их нельзя перепроверить.
func Classify(item entity.Item, market, buyer entity.ChannelPrice, policy entity.Policy) entity.ConditionFlags {
	restricted := policy.InRestrictedContext

	return entity.ConditionFlags{
		NonOperational:             item.Inoperable,
		BelowDurabilityThreshold:   belowDurabilityThreshold(item.Durability, policy.DurabilityLossThreshold),
		BelowProfitThreshold:       belowProfitThreshold(market.Total, buyer.Total, policy.MinMarginFraction),
		IneligibleForP2PSale:       !item.CanSellOnMarket || !item.SpawnedInSession,
		ContainsRestrictedContents: !restricted && containsRestricted(item.Contents),
		NonEmpty:                   !restricted && !item.Empty,
		InRestrictedContext:        restricted,
	}
}

// Нулевой порог отключает правило.
func belowDurabilityThreshold(durability, threshold float64) bool {
	if threshold <= 0 {
		return false
	}

	loss := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(durability))

	return loss.GreaterThanOrEqual(decimal.NewFromFloat(threshold))
}

func belowProfitThreshold(marketTotal, buyerTotal int64, margin float64) bool {
	if marketTotal <= 0 {
		return false
	}

	required := decimal.NewFromInt(buyerTotal).Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(margin)))

	return decimal.NewFromInt(marketTotal).LessThan(required)
}

func containsRestricted(contents []entity.Item) bool {
	return lo.ContainsBy(contents, func(c entity.Item) bool {
		return !c.CanSellOnMarket || containsRestricted(c.Contents)
	})
}
