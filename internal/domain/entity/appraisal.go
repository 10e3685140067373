package entity

import "lootvalue/internal/domain/value"

// SaleAvailability в каких каналах предмет можно продать прямо сейчас.
type SaleAvailability struct {
	Market bool `json:"market"`
	Buyer  bool `json:"buyer"`
}

// Appraisal результат полной оценки предмета.
type Appraisal struct {
	Item           Item             `json:"item"`
	Valuation      Valuation        `json:"valuation"`
	Flags          ConditionFlags   `json:"flags"`
	Recommendation *Recommendation  `json:"recommendation,omitempty"` // nil, если предмет никто не купит
	Unsellable     bool             `json:"unsellable"`
	Aggregate      AggregateSale    `json:"aggregate"`
	Availability   SaleAvailability `json:"availability"`
	// PricePerKg цена единицы в выбранном канале на килограмм.
	PricePerKg               int64 `json:"price_per_kg"`
	MissingDurabilityPercent int   `json:"missing_durability_percent"`
}

// Preferred цена в рекомендованном канале.
func (a Appraisal) Preferred() ChannelPrice {
	if a.Recommendation != nil && a.Recommendation.PreferredChannel == value.ChannelMarket {
		return a.Valuation.Market
	}

	return a.Valuation.Buyer
}
