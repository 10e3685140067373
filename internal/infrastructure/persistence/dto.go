package persistence

import (
	"database/sql"
	"time"

	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/value"
)

const (
	slotRoot    = "root"
	slotMod     = "mod"
	slotContent = "content"
)

// itemSchema строка items вместе с полями шаблона.
type itemSchema struct {
	ID               string         `db:"id"`
	TemplateID       string         `db:"template_id"`
	ParentID         sql.NullString `db:"parent_id"`
	SlotKind         string         `db:"slot_kind"`
	StackCount       int64          `db:"stack_count"`
	Durability       float64        `db:"durability"`
	SpawnedInSession bool           `db:"spawned_in_session"`
	Inoperable       bool           `db:"inoperable"`
	Location         string         `db:"location"`
	Name             string         `db:"name"`
	Width            int            `db:"width"`
	Height           int            `db:"height"`
	UnitWeight       float64        `db:"weight"`
	CanSellOnMarket  bool           `db:"can_sell_on_market"`
	Vital            bool           `db:"vital"`
}

func (s *itemSchema) toDomain() entity.Item {
	return entity.Item{
		ID:               s.ID,
		TemplateID:       s.TemplateID,
		Name:             s.Name,
		StackCount:       s.StackCount,
		Durability:       s.Durability,
		CanSellOnMarket:  s.CanSellOnMarket,
		SpawnedInSession: s.SpawnedInSession,
		ContainerID:      s.ParentID.String,
		Footprint:        entity.Footprint{Width: s.Width, Height: s.Height},
		Weight:           s.UnitWeight * float64(s.StackCount),
		Vital:            s.Vital,
		Empty:            true,
		Inoperable:       s.Inoperable,
		Location:         value.Location(s.Location),
	}
}

type marketQuoteSchema struct {
	TemplateID string `db:"template_id"`
	UnitPrice  int64  `db:"unit_price"`
	UpdatedAt  int64  `db:"updated_at"`
}

func (s *marketQuoteSchema) toDomain() entity.MarketQuote {
	return entity.MarketQuote{
		TemplateID: s.TemplateID,
		UnitPrice:  s.UnitPrice,
		UpdatedAt:  time.Unix(s.UpdatedAt, 0).UTC(),
	}
}

type buyerQuoteSchema struct {
	TemplateID string `db:"template_id"`
	BuyerName  string `db:"buyer_name"`
	UnitPrice  int64  `db:"unit_price"`
	UpdatedAt  int64  `db:"updated_at"`
}

func (s *buyerQuoteSchema) toDomain() entity.BuyerQuote {
	return entity.BuyerQuote{
		TemplateID: s.TemplateID,
		BuyerName:  s.BuyerName,
		UnitPrice:  s.UnitPrice,
		UpdatedAt:  time.Unix(s.UpdatedAt, 0).UTC(),
	}
}

func updatedAt(t time.Time) int64 {
	if t.IsZero() {
		return time.Now().Unix()
	}

	return t.Unix()
}
