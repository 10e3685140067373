package view

import (
	"lootvalue/internal/domain/entity"
)

// Visibility какие цены показывать. На рекомендацию не влияет.
type Visibility struct {
	Market bool
	Buyer  bool
}

// Visible скрывает нулевые и более низкие цены по настройкам пользователя.
// Цена барахолки для предметов не из текущей сессии не показывается.
func Visible(a entity.Appraisal, display entity.DisplaySettings) Visibility {
	v := a.Valuation
	spawned := a.Item.SpawnedInSession
	inRaid := a.Flags.InRestrictedContext

	overridden := a.Recommendation != nil && a.Recommendation.OverrideApplied
	marketHigher := v.Market.Total > v.Buyer.Total && !overridden
	buyerHigher := v.Buyer.Total > v.Market.Total || overridden

	hide := func(otherHigher bool) bool {
		if !spawned || !otherHigher {
			return false
		}

		return display.HideLowerPrice || (display.HideLowerPriceInRaid && inRaid)
	}

	return Visibility{
		Buyer:  v.Buyer.Total > 0 && !hide(marketHigher),
		Market: spawned && v.Market.Total > 0 && !hide(buyerHigher),
	}
}
