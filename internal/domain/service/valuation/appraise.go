package valuation

import (
	"github.com/shopspring/decimal"

	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/value"
)

// Sources внешние источники цен.
type Sources struct {
	MarketUnitPrice MarketUnitPriceFunc
	BestBuyerOffer  BuyerOfferFunc
}

// Appraise прогоняет предмет через оценку, классификацию, рекомендацию и
// агрегацию. Непродаваемый предмет это нормальный исход, а не ошибка.
func Appraise(item entity.Item, siblings []entity.Item, sources Sources, policy entity.Policy) (entity.Appraisal, error) {
	v, err := Valuate(item, sources.MarketUnitPrice, sources.BestBuyerOffer, policy)
	if err != nil {
		return entity.Appraisal{}, err
	}

	flags := Classify(item, v.Market, v.Buyer, policy)

	appraisal := entity.Appraisal{
		Item:                     item,
		Valuation:                v,
		Flags:                    flags,
		Availability:             availability(v, flags),
		MissingDurabilityPercent: missingDurabilityPercent(item.Durability),
	}

	rec, ok := Recommend(v.Market, v.Buyer, flags)
	if !ok {
		appraisal.Unsellable = true
		return appraisal, nil
	}

	appraisal.Recommendation = &rec
	appraisal.PricePerKg = pricePerKg(appraisal.Preferred().PerUnit, item.UnitWeight())

	if rec.PreferredChannel != value.ChannelMarket {
		return appraisal, nil
	}

	appraisal.Aggregate, err = AggregateSimilar(item, siblings, UnitPriceFunc(sources.MarketUnitPrice))
	if err != nil {
		return entity.Appraisal{}, err
	}

	return appraisal, nil
}

func availability(v entity.Valuation, flags entity.ConditionFlags) entity.SaleAvailability {
	return entity.SaleAvailability{
		Buyer: v.Buyer.Total > 0 && !flags.NonEmpty,
		Market: v.Market.Total > 0 &&
			!flags.IneligibleForP2PSale &&
			!flags.NonEmpty &&
			!flags.ContainsRestrictedContents,
	}
}

func pricePerKg(unitPrice int64, unitWeight float64) int64 {
	if unitWeight <= 0 {
		return 0
	}

	return decimal.NewFromInt(unitPrice).Div(decimal.NewFromFloat(unitWeight)).Floor().IntPart()
}

func missingDurabilityPercent(durability float64) int {
	missing := decimal.NewFromInt(100).Sub(decimal.NewFromFloat(durability).Mul(decimal.NewFromInt(100)))

	return int(max(missing.Floor().IntPart(), 0))
}
