package entity

// ConditionFlags признаки состояния предмета, влияющие на рекомендацию.
type ConditionFlags struct {
	NonOperational             bool `json:"non_operational"`
	BelowDurabilityThreshold   bool `json:"below_durability_threshold"`
	BelowProfitThreshold       bool `json:"below_profit_threshold"`
	IneligibleForP2PSale       bool `json:"ineligible_for_p2p_sale"`
	ContainsRestrictedContents bool `json:"contains_restricted_contents"`
	NonEmpty                   bool `json:"non_empty"`
	InRestrictedContext        bool `json:"in_restricted_context"`
}
