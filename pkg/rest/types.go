// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// AppraisalRequest запрос на оценку предмета
type AppraisalRequest struct {
	// ItemID Идентификатор предмета в каталоге
	ItemID string `json:"itemId" validate:"required"`

	// Policy Политика оценки, по умолчанию из конфигурации
	Policy *Policy `json:"policy,omitempty"`

	// Display Настройки отображения, по умолчанию из конфигурации
	Display *Display `json:"display,omitempty"`
}

type Policy struct {
	DurabilityLossThreshold  float64 `json:"durabilityLossThreshold" validate:"gte=0,lte=1"`
	MinMarginFraction        float64 `json:"minMarginFraction" validate:"gte=0"`
	ValueNonVitalAttachments bool    `json:"valueNonVitalAttachments"`
	InRestrictedContext      bool    `json:"inRestrictedContext"`
}

type Display struct {
	HideLowerPrice              bool `json:"hideLowerPrice"`
	HideLowerPriceInRaid        bool `json:"hideLowerPriceInRaid"`
	ShowMarketEligibility       bool `json:"showMarketEligibility"`
	ShowPricePerKgAndSlotInRaid bool `json:"showPricePerKgAndSlotInRaid"`
	ShowPricesInRaid            bool `json:"showPricesInRaid"`
}

type ChannelPrice struct {
	Total   int64 `json:"total"`
	PerUnit int64 `json:"perUnit"`
	PerSlot int64 `json:"perSlot"`
}

type Flags struct {
	NonOperational             bool `json:"nonOperational"`
	BelowDurabilityThreshold   bool `json:"belowDurabilityThreshold"`
	BelowProfitThreshold       bool `json:"belowProfitThreshold"`
	IneligibleForP2PSale       bool `json:"ineligibleForP2PSale"`
	ContainsRestrictedContents bool `json:"containsRestrictedContents"`
	NonEmpty                   bool `json:"nonEmpty"`
	InRestrictedContext        bool `json:"inRestrictedContext"`
}

type Recommendation struct {
	// Channel Канал продажи: market или buyer
	Channel         string `json:"channel"`
	OverrideApplied bool   `json:"overrideApplied"`
	// OverrideReason Причина смены канала: none, non_operational, low_durability, low_profit
	OverrideReason string `json:"overrideReason"`
}

type Aggregate struct {
	Count      int   `json:"count"`
	TotalValue int64 `json:"totalValue"`
}

type ChannelSwitch struct {
	Market bool `json:"market"`
	Buyer  bool `json:"buyer"`
}

type Line struct {
	Text       string `json:"text"`
	Color      string `json:"color,omitempty"`
	Emphasized bool   `json:"emphasized,omitempty"`
	Separator  bool   `json:"separator,omitempty"`
}

// Appraisal Результат оценки предмета
type Appraisal struct {
	ItemID          string          `json:"itemId"`
	TemplateID      string          `json:"templateId"`
	Name            string          `json:"name"`
	StackCount      int64           `json:"stackCount"`
	Market          ChannelPrice    `json:"market"`
	Buyer           ChannelPrice    `json:"buyer"`
	BuyerName       string          `json:"buyerName"`
	ModsMarketValue int64           `json:"modsMarketValue"`
	ModsBuyerValue  int64           `json:"modsBuyerValue"`
	Flags           Flags           `json:"flags"`
	Recommendation  *Recommendation `json:"recommendation,omitempty"`
	Unsellable      bool            `json:"unsellable"`
	// Code Код исхода: Unsellable, если предмет никто не купит
	Code            ErrorCode       `json:"code,omitempty"`
	Aggregate       Aggregate       `json:"aggregate"`
	Availability    ChannelSwitch   `json:"availability"`
	Visible         ChannelSwitch   `json:"visible"`
	PricePerKg      int64           `json:"pricePerKg"`
	// MissingDurabilityPercent Потеря прочности в процентах
	MissingDurabilityPercent int    `json:"missingDurabilityPercent"`
	Lines                    []Line `json:"lines"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
