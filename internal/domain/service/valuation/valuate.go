package valuation

import (
	"fmt"

	"lootvalue/internal/domain"
	"lootvalue/internal/domain/entity"
	"lootvalue/pkg/errcodes"
	"lootvalue/pkg/lox"
)

// MarketUnitPriceFunc цена одной единицы предмета на барахолке с учётом
// состояния и модулей.
type MarketUnitPriceFunc func(item entity.Item) (int64, error)

// BuyerOfferFunc лучшее предложение торговцев за весь стак.
type BuyerOfferFunc func(item entity.Item) (entity.BuyerOffer, error)

// Valuate считает цены предмета в обоих каналах. Источники цен не
// вызываются, если предмет не прошёл проверку размеров.
func Valuate(
	item entity.Item,
	marketUnitPrice MarketUnitPriceFunc,
	bestBuyerOffer BuyerOfferFunc,
	policy entity.Policy,
) (entity.Valuation, error) {
	v, err := valuate(item, marketUnitPrice, bestBuyerOffer)
	if err != nil {
		return entity.Valuation{}, err
	}

	if !policy.ValueNonVitalAttachments || len(item.Mods) == 0 {
		return v, nil
	}

	err = lox.Walk(item.Mods, mods, func(mod entity.Item) error {
		if mod.Vital {
			return nil
		}

		// Вложенные модули обходятся отдельно
		own := mod
		own.Mods = nil

		modValuation, err := valuate(own, marketUnitPrice, bestBuyerOffer)
		if err != nil {
			return fmt.Errorf("mod %s: %w", mod.ID, err)
		}

		v.ModsMarketValue += modValuation.Market.Total
		v.ModsBuyerValue += modValuation.Buyer.Total

		return nil
	})
	if err != nil {
		return entity.Valuation{}, err
	}

	return v, nil
}

func valuate(item entity.Item, marketUnitPrice MarketUnitPriceFunc, bestBuyerOffer BuyerOfferFunc) (entity.Valuation, error) {
	if err := validate(item); err != nil {
		return entity.Valuation{}, err
	}

	slots := int64(item.Footprint.Slots())

	var v entity.Valuation

	// Предметы не из текущей сессии на барахолку не выставить
	if item.SpawnedInSession {
		unit, err := marketUnitPrice(item)
		if err != nil {
			return entity.Valuation{}, fmt.Errorf("marketUnitPrice: %w", err)
		}

		unit = max(unit, 0)
		total := unit * item.StackCount

		v.Market = entity.ChannelPrice{
			Total:   total,
			PerUnit: unit,
			PerSlot: total / slots,
		}
	}

	offer, err := bestBuyerOffer(item)
	if err != nil {
		return entity.Valuation{}, fmt.Errorf("bestBuyerOffer: %w", err)
	}

	total := max(offer.Price, 0)

	v.Buyer = entity.ChannelPrice{
		Total:   total,
		PerUnit: total / item.StackCount,
		PerSlot: total / slots,
	}
	v.BuyerName = offer.BuyerName

	return v, nil
}

func validate(item entity.Item) error {
	if item.StackCount <= 0 {
		return domain.NewError(errcodes.InvalidQuantity, errcodes.KindInvalidArgument,
			fmt.Sprintf("item %s: stack count %d", item.ID, item.StackCount))
	}

	if item.Footprint.Width <= 0 || item.Footprint.Height <= 0 {
		return domain.NewError(errcodes.InvalidGeometry, errcodes.KindInvalidArgument,
			fmt.Sprintf("item %s: footprint %dx%d", item.ID, item.Footprint.Width, item.Footprint.Height))
	}

	return nil
}

func mods(item entity.Item) []entity.Item {
	return item.Mods
}
