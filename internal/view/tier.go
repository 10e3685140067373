package view

// Tier цветовая категория цены.
type Tier struct {
	Name  string
	Color string
}

var (
	TierCommon    = Tier{Name: "common", Color: "#ffffff"}
	TierUncommon  = Tier{Name: "uncommon", Color: "#5ad15a"}
	TierRare      = Tier{Name: "rare", Color: "#4ea5ff"}
	TierEpic      = Tier{Name: "epic", Color: "#b26cff"}
	TierLegendary = Tier{Name: "legendary", Color: "#ffa53d"}
	TierMuted     = Tier{Name: "muted", Color: "#444444"}
)

type threshold struct {
	below int64
	tier  Tier
}

// Пороги по цене за слот
var perSlotThresholds = []threshold{ //nolint:gochecknoglobals
	{below: 10_000, tier: TierCommon},
	{below: 20_000, tier: TierUncommon},
	{below: 40_000, tier: TierRare},
	{below: 60_000, tier: TierEpic},
}

// Пороги по общей стоимости, для обвеса
var totalThresholds = []threshold{ //nolint:gochecknoglobals
	{below: 50_000, tier: TierCommon},
	{below: 100_000, tier: TierUncommon},
	{below: 200_000, tier: TierRare},
	{below: 300_000, tier: TierEpic},
}

// ValueTier оценивает цену за один слот инвентаря.
func ValueTier(perSlot int64) Tier {
	return pick(perSlotThresholds, perSlot)
}

// TotalTier оценивает общую стоимость.
func TotalTier(total int64) Tier {
	return pick(totalThresholds, total)
}

func pick(thresholds []threshold, v int64) Tier {
	for _, t := range thresholds {
		if v < t.below {
			return t.tier
		}
	}

	return TierLegendary
}
