package config

// Appraisal политика и отображение, которые применяются, если клиент не передал свои.
type Appraisal struct {
	DurabilityLossThreshold  float64 `env:"DURABILITY_LOSS_THRESHOLD" envDefault:"0.6"`
	MinMarginFraction        float64 `env:"MIN_MARGIN_FRACTION" envDefault:"0.1"`
	ValueNonVitalAttachments bool    `env:"VALUE_NON_VITAL_ATTACHMENTS" envDefault:"true"`

	HideLowerPrice              bool `env:"HIDE_LOWER_PRICE" envDefault:"false"`
	HideLowerPriceInRaid        bool `env:"HIDE_LOWER_PRICE_IN_RAID" envDefault:"false"`
	ShowMarketEligibility       bool `env:"SHOW_MARKET_ELIGIBILITY" envDefault:"true"`
	ShowPricePerKgAndSlotInRaid bool `env:"SHOW_PRICE_PER_KG_AND_SLOT_IN_RAID" envDefault:"true"`
	ShowPricesInRaid            bool `env:"SHOW_PRICES_IN_RAID" envDefault:"true"`
}
