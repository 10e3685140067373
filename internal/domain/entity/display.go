package entity

// DisplaySettings пользовательские настройки отображения оценки.
type DisplaySettings struct {
	HideLowerPrice              bool `json:"hideLowerPrice"`
	HideLowerPriceInRaid        bool `json:"hideLowerPriceInRaid"`
	ShowMarketEligibility       bool `json:"showMarketEligibility"`
	ShowPricePerKgAndSlotInRaid bool `json:"showPricePerKgAndSlotInRaid"`
	ShowPricesInRaid            bool `json:"showPricesInRaid"`
}
