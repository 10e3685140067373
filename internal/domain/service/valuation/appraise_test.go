package valuation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/service/valuation"
	"lootvalue/internal/domain/value"
)

func TestAppraiseScenarios(t *testing.T) {
	stackOfThree := func(durability float64) entity.Item {
		return newItem(func(i *entity.Item) {
			i.StackCount = 3
			i.Durability = durability
			i.Weight = 1.5
		})
	}

	testCases := []struct {
		name     string
		item     entity.Item
		siblings []entity.Item
		sources  valuation.Sources
		want     entity.Recommendation
		wantAgg  entity.AggregateSale
	}{
		{
			name:    "item from previous session goes to buyer",
			item:    newItem(func(i *entity.Item) { i.SpawnedInSession = false }),
			sources: valuation.Sources{MarketUnitPrice: fixedMarket(1500), BestBuyerOffer: fixedBuyer(1000)},
			want:    entity.Recommendation{PreferredChannel: value.ChannelBuyer},
		},
		{
			name:    "healthy stack goes to market",
			item:    stackOfThree(0.95),
			sources: valuation.Sources{MarketUnitPrice: fixedMarket(200), BestBuyerOffer: fixedBuyer(100)},
			want:    entity.Recommendation{PreferredChannel: value.ChannelMarket},
		},
		{
			name:    "worn stack is overridden to buyer",
			item:    stackOfThree(0.4),
			sources: valuation.Sources{MarketUnitPrice: fixedMarket(200), BestBuyerOffer: fixedBuyer(100)},
			want: entity.Recommendation{
				PreferredChannel: value.ChannelBuyer,
				OverrideApplied:  true,
				OverrideReason:   value.OverrideLowDurability,
			},
		},
		{
			name: "market pick aggregates the container",
			item: newItem(func(i *entity.Item) { i.ID = "a" }),
			siblings: []entity.Item{
				newItem(func(i *entity.Item) { i.ID = "a" }),
				newItem(func(i *entity.Item) { i.ID = "b" }),
				newItem(func(i *entity.Item) { i.ID = "c" }),
				newItem(func(i *entity.Item) { i.ID = "d" }),
			},
			sources: valuation.Sources{
				MarketUnitPrice: pricesByID(map[string]int64{"a": 100, "b": 110, "c": 90, "d": 95}),
				BestBuyerOffer:  fixedBuyer(10),
			},
			want:    entity.Recommendation{PreferredChannel: value.ChannelMarket},
			wantAgg: entity.AggregateSale{Count: 4, TotalValue: 395},
		},
		{
			name: "buyer pick skips aggregation",
			item: newItem(func(i *entity.Item) { i.ID = "a" }),
			siblings: []entity.Item{
				newItem(func(i *entity.Item) { i.ID = "a" }),
				newItem(func(i *entity.Item) { i.ID = "b" }),
			},
			sources: valuation.Sources{MarketUnitPrice: fixedMarket(100), BestBuyerOffer: fixedBuyer(500)},
			want:    entity.Recommendation{PreferredChannel: value.ChannelBuyer},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got, err := valuation.Appraise(tc.item, tc.siblings, tc.sources, defaultPolicy())
			rq.NoError(err)
			rq.False(got.Unsellable)
			rq.NotNil(got.Recommendation)
			rq.Equal(tc.want, *got.Recommendation)
			rq.Equal(tc.wantAgg, got.Aggregate)
		})
	}
}

func TestAppraiseDerivedFields(t *testing.T) {
	rq := require.New(t)

	item := newItem(func(i *entity.Item) {
		i.StackCount = 3
		i.Durability = 0.95
		i.Weight = 1.5
	})

	got, err := valuation.Appraise(item, nil, valuation.Sources{
		MarketUnitPrice: fixedMarket(200),
		BestBuyerOffer:  fixedBuyer(100),
	}, defaultPolicy())
	rq.NoError(err)

	rq.Equal(entity.ChannelPrice{Total: 600, PerUnit: 200, PerSlot: 600}, got.Valuation.Market)
	rq.Equal(entity.ChannelPrice{Total: 100, PerUnit: 33, PerSlot: 100}, got.Valuation.Buyer)
	rq.Equal(entity.SaleAvailability{Market: true, Buyer: true}, got.Availability)
	rq.Equal(int64(400), got.PricePerKg)
	rq.Equal(5, got.MissingDurabilityPercent)
	rq.Equal(got.Valuation.Market, got.Preferred())
}

func TestAppraiseAvailability(t *testing.T) {
	testCases := []struct {
		name string
		item entity.Item
		want entity.SaleAvailability
	}{
		{
			name: "sellable everywhere",
			item: newItem(),
			want: entity.SaleAvailability{Market: true, Buyer: true},
		},
		{
			name: "container with loot",
			item: newItem(func(i *entity.Item) { i.Empty = false }),
			want: entity.SaleAvailability{},
		},
		{
			name: "banned on market",
			item: newItem(func(i *entity.Item) { i.CanSellOnMarket = false }),
			want: entity.SaleAvailability{Buyer: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got, err := valuation.Appraise(tc.item, nil, valuation.Sources{
				MarketUnitPrice: fixedMarket(500),
				BestBuyerOffer:  fixedBuyer(100),
			}, defaultPolicy())
			rq.NoError(err)
			rq.Equal(tc.want, got.Availability)
		})
	}
}

func TestAppraiseUnsellable(t *testing.T) {
	rq := require.New(t)

	item := newItem(func(i *entity.Item) { i.Durability = 0.333 })

	got, err := valuation.Appraise(item, []entity.Item{item, item}, valuation.Sources{
		MarketUnitPrice: fixedMarket(0),
		BestBuyerOffer:  fixedBuyer(0),
	}, defaultPolicy())
	rq.NoError(err)
	rq.True(got.Unsellable)
	rq.Nil(got.Recommendation)
	rq.Equal(entity.AggregateSale{}, got.Aggregate)
	rq.Equal(66, got.MissingDurabilityPercent)
}

func TestAppraiseInvalidGeometry(t *testing.T) {
	rq := require.New(t)

	item := newItem(func(i *entity.Item) { i.Footprint.Width = 0 })

	_, err := valuation.Appraise(item, nil, valuation.Sources{
		MarketUnitPrice: failingMarket,
		BestBuyerOffer:  failingBuyer,
	}, defaultPolicy())
	rq.ErrorIs(err, valuation.ErrInvalidGeometry)
	rq.NotErrorIs(err, errLookup)
}
