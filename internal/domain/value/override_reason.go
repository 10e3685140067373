package value

// OverrideReason причина принудительной смены канала с барахолки на торговца.
// Порядок констант совпадает с приоритетом: первая сработавшая причина побеждает.
type OverrideReason string

const (
	OverrideNone           OverrideReason = ""
	OverrideNonOperational OverrideReason = "non_operational"
	OverrideLowDurability  OverrideReason = "low_durability"
	OverrideLowProfit      OverrideReason = "low_profit"
)

func (r OverrideReason) String() string {
	if r == OverrideNone {
		return "none"
	}

	return string(r)
}

func (r OverrideReason) IsValid() bool {
	switch r {
	case OverrideNone, OverrideNonOperational, OverrideLowDurability, OverrideLowProfit:
		return true
	}

	return false
}
