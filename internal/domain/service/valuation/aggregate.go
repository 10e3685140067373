package valuation

import (
	"fmt"

	"github.com/samber/lo"

	"lootvalue/internal/domain/entity"
	"lootvalue/pkg/lox"
)

// UnitPriceFunc текущая цена единицы предмета на барахолке.
type UnitPriceFunc func(item entity.Item) (int64, error)

// AggregateSimilar считает, сколько одинаковых предметов из контейнера можно
// выставить одним лотом и сколько они стоят вместе. Каждый предмет
// оценивается отдельно: состояние у соседей может отличаться.
// Count <= 1 возвращается как есть, показывать такой результат не нужно.
func AggregateSimilar(item entity.Item, siblings []entity.Item, unitPrice UnitPriceFunc) (entity.AggregateSale, error) {
	matching := lo.Filter(siblings, func(sibling entity.Item, _ int) bool {
		return multiListable(sibling) && similar(item, sibling)
	})

	total, err := lox.SumErr(matching, func(sibling entity.Item) (int64, error) {
		price, err := unitPrice(sibling)
		if err != nil {
			return 0, fmt.Errorf("unitPrice %s: %w", sibling.ID, err)
		}

		return max(price, 0), nil
	})
	if err != nil {
		return entity.AggregateSale{}, err
	}

	return entity.AggregateSale{
		Count:      len(matching),
		TotalValue: total,
	}, nil
}

func multiListable(item entity.Item) bool {
	return item.CanSellOnMarket && item.SpawnedInSession && item.Empty
}

func similar(a, b entity.Item) bool {
	return a.TemplateID == b.TemplateID && a.SpawnedInSession == b.SpawnedInSession
}
