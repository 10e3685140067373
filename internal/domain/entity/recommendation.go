package entity

import "lootvalue/internal/domain/value"

// Recommendation куда продавать предмет.
// OverrideApplied возможен только вместе с ChannelBuyer и непустой причиной.
type Recommendation struct {
	PreferredChannel value.Channel        `json:"preferred_channel"`
	OverrideApplied  bool                 `json:"override_applied"`
	OverrideReason   value.OverrideReason `json:"override_reason"`
}

// AggregateSale суммарная выручка за одинаковые предметы в одном контейнере.
type AggregateSale struct {
	Count      int   `json:"count"`
	TotalValue int64 `json:"total_value"`
}
