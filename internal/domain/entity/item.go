package entity

import "lootvalue/internal/domain/value"

// Footprint размер предмета в ячейках инвентаря.
type Footprint struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Slots площадь предмета в ячейках.
func (f Footprint) Slots() int {
	return f.Width * f.Height
}

// Item предмет в том виде, в каком его отдаёт каталог. Только чтение.
type Item struct {
	ID               string         `json:"id"`
	TemplateID       string         `json:"template_id"`
	Name             string         `json:"name"`
	StackCount       int64          `json:"stack_count"`
	Durability       float64        `json:"durability"` // доля от 0 до 1
	CanSellOnMarket  bool           `json:"can_sell_on_market"`
	SpawnedInSession bool           `json:"spawned_in_session"`
	ContainerID      string         `json:"container_id,omitempty"`
	Footprint        Footprint      `json:"footprint"`
	Weight           float64        `json:"weight"` // кг, на весь стак
	Vital            bool           `json:"vital"`  // обязательный модуль оружия
	Mods             []Item         `json:"mods,omitempty"`
	Contents         []Item         `json:"contents,omitempty"`
	Empty            bool           `json:"empty"`
	Inoperable       bool           `json:"inoperable"`
	Location         value.Location `json:"location"`
}

// UnitWeight вес одного предмета стака.
func (i Item) UnitWeight() float64 {
	if i.StackCount <= 0 {
		return 0
	}

	return i.Weight / float64(i.StackCount)
}
