package valuation_test

import (
	"errors"

	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/service/valuation"
	"lootvalue/internal/domain/value"
)

var errLookup = errors.New("price lookup failed")

func newItem(opts ...func(*entity.Item)) entity.Item {
	item := entity.Item{
		ID:               "item-1",
		TemplateID:       "tpl-bolts",
		Name:             "Bolts",
		StackCount:       1,
		Durability:       1,
		CanSellOnMarket:  true,
		SpawnedInSession: true,
		ContainerID:      "backpack-1",
		Footprint:        entity.Footprint{Width: 1, Height: 1},
		Weight:           0.5,
		Empty:            true,
		Location:         value.LocationStash,
	}

	for _, opt := range opts {
		opt(&item)
	}

	return item
}

func fixedMarket(unit int64) valuation.MarketUnitPriceFunc {
	return func(entity.Item) (int64, error) {
		return unit, nil
	}
}

func fixedBuyer(price int64) valuation.BuyerOfferFunc {
	return func(entity.Item) (entity.BuyerOffer, error) {
		return entity.BuyerOffer{Price: price, BuyerName: "Therapist"}, nil
	}
}

// stackBuyer платит unit за каждую единицу стака.
func stackBuyer(unit int64) valuation.BuyerOfferFunc {
	return func(item entity.Item) (entity.BuyerOffer, error) {
		return entity.BuyerOffer{Price: unit * item.StackCount, BuyerName: "Therapist"}, nil
	}
}

func pricesByID(prices map[string]int64) valuation.MarketUnitPriceFunc {
	return func(item entity.Item) (int64, error) {
		return prices[item.ID], nil
	}
}

func failingMarket(entity.Item) (int64, error) {
	return 0, errLookup
}

func failingBuyer(entity.Item) (entity.BuyerOffer, error) {
	return entity.BuyerOffer{}, errLookup
}

func defaultPolicy() entity.Policy {
	return entity.Policy{
		DurabilityLossThreshold: 0.5,
		MinMarginFraction:       0.1,
	}
}
