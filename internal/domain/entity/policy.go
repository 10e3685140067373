package entity

// Policy настройки оценки, передаются на каждый вызов.
type Policy struct {
	DurabilityLossThreshold  float64 `json:"durabilityLossThreshold"`
	MinMarginFraction        float64 `json:"minMarginFraction"`
	ValueNonVitalAttachments bool    `json:"valueNonVitalAttachments"`
	InRestrictedContext      bool    `json:"inRestrictedContext"`
}
