package entity

import "time"

// MarketQuote цена единицы шаблона на барахолке в идеальном состоянии.
type MarketQuote struct {
	TemplateID string    `json:"template_id"`
	UnitPrice  int64     `json:"unit_price"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BuyerQuote цена, которую конкретный торговец платит за единицу шаблона.
type BuyerQuote struct {
	TemplateID string    `json:"template_id"`
	BuyerName  string    `json:"buyer_name"`
	UnitPrice  int64     `json:"unit_price"`
	UpdatedAt  time.Time `json:"updated_at"`
}
