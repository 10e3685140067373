package valuation

import (
	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/value"
)

// Recommend выбирает канал продажи. ok == false, если обе цены нулевые:
// предмет никто не купит и рекомендации нет.
func Recommend(market, buyer entity.ChannelPrice, flags entity.ConditionFlags) (entity.Recommendation, bool) {
	if market.Total == 0 && buyer.Total == 0 {
		return entity.Recommendation{}, false
	}

	rec := entity.Recommendation{
		PreferredChannel: value.ChannelBuyer,
		OverrideReason:   value.OverrideNone,
	}

	if market.Total > buyer.Total && !flags.IneligibleForP2PSale {
		rec.PreferredChannel = value.ChannelMarket
	}

	if rec.PreferredChannel != value.ChannelMarket || flags.InRestrictedContext {
		return rec, true
	}

	if reason := overrideReason(flags); reason != value.OverrideNone {
		rec.PreferredChannel = value.ChannelBuyer
		rec.OverrideApplied = true
		rec.OverrideReason = reason
	}

	return rec, true
}

// overrideReason первая сработавшая причина по убыванию серьёзности.
func overrideReason(flags entity.ConditionFlags) value.OverrideReason {
	rules := []struct {
		hit    bool
		reason value.OverrideReason
	}{
		{flags.NonOperational, value.OverrideNonOperational},
		{flags.BelowDurabilityThreshold, value.OverrideLowDurability},
		{flags.BelowProfitThreshold, value.OverrideLowProfit},
	}

	for _, rule := range rules {
		if rule.hit {
			return rule.reason
		}
	}

	return value.OverrideNone
}
