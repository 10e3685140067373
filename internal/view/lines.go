package view

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/value"
)

const (
	colorWarning = "#AA3333"
	colorNotice  = "#AAAA33"
	colorHint    = "#555555"
	colorUnit    = "#333333"
	colorLoss    = "#AA1111"
)

// Line строка подсказки с оценкой.
type Line struct {
	Text       string `json:"text"`
	Color      string `json:"color,omitempty"`
	Emphasized bool   `json:"emphasized,omitempty"`
	Separator  bool   `json:"separator,omitempty"`
}

var overrideReasons = map[value.OverrideReason]string{ //nolint:gochecknoglobals
	value.OverrideNonOperational: "из-за того, что предмет не работает",
	value.OverrideLowDurability:  "из-за низкой прочности",
	value.OverrideLowProfit:      "из-за низкой прибыли от продажи на барахолке",
}

// Lines собирает текст подсказки по результату оценки.
func Lines(a entity.Appraisal, display entity.DisplaySettings) []Line {
	inRaid := a.Flags.InRestrictedContext
	if inRaid && !display.ShowPricesInRaid {
		return nil
	}

	if a.Unsellable || a.Recommendation == nil {
		return []Line{warning("[Предмет никто не покупает]")}
	}

	rec := *a.Recommendation
	v := a.Valuation
	visible := Visible(a, display)

	var lines []Line

	if rec.OverrideApplied {
		lines = append(lines, Line{
			Text:  fmt.Sprintf("[Следует продать Торговцу %s %s]", v.BuyerName, overrideReasons[rec.OverrideReason]),
			Color: colorNotice,
		})
	}

	lines = append(lines, Line{Separator: true})

	if visible.Buyer {
		lines = append(lines, buyerLine(a, rec.PreferredChannel == value.ChannelBuyer))
	}

	if visible.Market {
		lines = append(lines, marketLine(a, rec.PreferredChannel == value.ChannelMarket))

		if !inRaid && rec.PreferredChannel == value.ChannelMarket && a.Flags.ContainsRestrictedContents {
			lines = append(lines, warning("[Содержит внутри предметы запрещенные на барахолке]"))
		}
	}

	if v.ModsMarketValue > 0 {
		lines = append(lines, Line{
			Text:  fmt.Sprintf("₽ %s стоимость обвеса (на барахолке)", rub(v.ModsMarketValue)),
			Color: TotalTier(v.ModsMarketValue).Color,
		})
	}

	if v.ModsBuyerValue > 0 {
		lines = append(lines, Line{
			Text:  fmt.Sprintf("₽ %s стоимость обвеса (у торговцев)", rub(v.ModsBuyerValue)),
			Color: TotalTier(v.ModsBuyerValue).Color,
		})
	}

	if a.Flags.NonEmpty {
		lines = append(lines, warning("[Предмет не пуст]"))
	}

	if display.ShowMarketEligibility && !a.Item.CanSellOnMarket {
		lines = append(lines, warning("[Предмет запрещен к продаже на барахолке]"))
	}

	if inRaid && display.ShowPricePerKgAndSlotInRaid {
		lines = append(lines, Line{Separator: true})

		if a.PricePerKg > 0 {
			lines = append(lines, hint(fmt.Sprintf("₽/КГ: %s", rub(a.PricePerKg))))
		}

		lines = append(lines, hint(fmt.Sprintf("₽/СЛОТ: %s", rub(a.Preferred().PerSlot))))
	}

	if rec.PreferredChannel == value.ChannelMarket && a.Availability.Market && a.Aggregate.Count > 1 {
		lines = append(lines, hint(fmt.Sprintf("[Будет продано %d аналогичных предметов за ₽ %s]",
			a.Aggregate.Count, rub(a.Aggregate.TotalValue))))
	}

	return lines
}

func buyerLine(a entity.Appraisal, preferred bool) Line {
	price := a.Valuation.Buyer

	text := fmt.Sprintf("%s: ₽ %s", a.Valuation.BuyerName, rub(price.Total))
	if a.Item.StackCount > 1 {
		text += fmt.Sprintf(" (₽ %s шт)", rub(price.PerUnit))
	}

	return priceLine(text, price.PerSlot, preferred)
}

func marketLine(a entity.Appraisal, preferred bool) Line {
	price := a.Valuation.Market

	text := fmt.Sprintf("Барахолка: ₽ %s", rub(price.Total))
	if a.MissingDurabilityPercent >= 1 {
		text += fmt.Sprintf(" (-%d%%)", a.MissingDurabilityPercent)
	}

	if a.Item.StackCount > 1 {
		text += fmt.Sprintf(" (₽ %s шт)", rub(price.PerUnit))
	}

	return priceLine(text, price.PerSlot, preferred)
}

func priceLine(text string, perSlot int64, preferred bool) Line {
	if !preferred {
		return Line{Text: text, Color: TierMuted.Color}
	}

	return Line{Text: text, Color: ValueTier(perSlot).Color, Emphasized: true}
}

func warning(text string) Line {
	return Line{Text: text, Color: colorWarning}
}

func hint(text string) Line {
	return Line{Text: text, Color: colorHint}
}

// rub форматирует сумму с пробелами между разрядами: 1 234 567.
func rub(amount int64) string {
	return humanize.FormatInteger("# ###.", int(amount))
}
