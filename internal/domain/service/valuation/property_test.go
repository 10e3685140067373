package valuation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/service/valuation"
	"lootvalue/internal/domain/value"
	"lootvalue/pkg/tests"
)

const propertyRuns = 500

func randomItem(r tests.Randomizer) entity.Item {
	return newItem(func(i *entity.Item) {
		i.StackCount = r.Int64Range(1, 60)
		i.Durability = r.Float64()
		i.CanSellOnMarket = r.Bool()
		i.SpawnedInSession = r.Bool()
		i.Empty = r.Bool()
		i.Inoperable = r.Bool()
		i.Footprint = entity.Footprint{Width: r.IntRange(1, 5), Height: r.IntRange(1, 5)}
	})
}

func randomPolicy(r tests.Randomizer) entity.Policy {
	return entity.Policy{
		DurabilityLossThreshold: r.Float64(),
		MinMarginFraction:       r.Float64(),
		InRestrictedContext:     r.Bool(),
	}
}

func TestValuationProperties(t *testing.T) {
	rq := require.New(t)
	r := tests.NewSeededRandomizer(42)

	for range propertyRuns {
		item := randomItem(r)
		if r.Bool() {
			item.StackCount = 1
		}

		market := fixedMarket(r.Int64Range(0, 100_000))
		buyer := stackBuyer(r.Int64Range(0, 50_000))

		got, err := valuation.Valuate(item, market, buyer, randomPolicy(r))
		rq.NoError(err)

		slots := int64(item.Footprint.Slots())
		for _, price := range []entity.ChannelPrice{got.Market, got.Buyer} {
			if item.StackCount == 1 {
				rq.Equal(price.Total, price.PerUnit)
			}

			rq.Equal(price.Total, price.PerUnit*item.StackCount)
			rq.LessOrEqual(price.PerSlot*slots, price.Total)
			rq.Less(price.Total, price.PerSlot*slots+slots)
		}
	}
}

func TestRecommendationProperties(t *testing.T) {
	rq := require.New(t)
	r := tests.NewSeededRandomizer(7)

	for range propertyRuns {
		item := randomItem(r)
		policy := randomPolicy(r)

		market := entity.ChannelPrice{Total: r.Int64Range(0, 2) * r.Int64Range(0, 10_000)}
		buyer := entity.ChannelPrice{Total: r.Int64Range(0, 2) * r.Int64Range(0, 10_000)}
		flags := valuation.Classify(item, market, buyer, policy)

		rec, ok := valuation.Recommend(market, buyer, flags)
		if market.Total == 0 && buyer.Total == 0 {
			rq.False(ok)
			continue
		}

		rq.True(ok)
		if rec.OverrideApplied {
			rq.Equal(value.ChannelBuyer, rec.PreferredChannel)
			rq.NotEqual(value.OverrideNone, rec.OverrideReason)
		} else {
			rq.Equal(value.OverrideNone, rec.OverrideReason)
		}
	}
}

func TestRecommendationMonotonicity(t *testing.T) {
	rq := require.New(t)
	r := tests.NewSeededRandomizer(1337)

	for range propertyRuns {
		flags := entity.ConditionFlags{
			NonOperational:           r.Bool(),
			BelowDurabilityThreshold: r.Bool(),
			BelowProfitThreshold:     r.Bool(),
			IneligibleForP2PSale:     r.Bool(),
		}
		if !flags.NonOperational && !flags.BelowDurabilityThreshold && !flags.BelowProfitThreshold {
			flags.NonOperational = true
		}

		buyer := entity.ChannelPrice{Total: r.Int64Range(1, 10_000)}
		market := entity.ChannelPrice{Total: r.Int64Range(0, 10_000)}

		rec, ok := valuation.Recommend(market, buyer, flags)
		rq.True(ok)
		rq.Equal(value.ChannelBuyer, rec.PreferredChannel)

		for range 5 {
			market.Total += r.Int64Range(1, 50_000)

			rec, ok = valuation.Recommend(market, buyer, flags)
			rq.True(ok)
			rq.Equal(value.ChannelBuyer, rec.PreferredChannel)
		}
	}
}
