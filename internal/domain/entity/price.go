package entity

// ChannelPrice цена предмета в одном канале продажи.
type ChannelPrice struct {
	Total   int64 `json:"total"`
	PerUnit int64 `json:"per_unit"`
	PerSlot int64 `json:"per_slot"`
}

// BuyerOffer лучшее предложение торговцев. Price уже за весь стак.
type BuyerOffer struct {
	Price     int64  `json:"price"`
	BuyerName string `json:"buyer_name"`
}

// Valuation цены по обоим каналам плюс стоимость несущественных модулей,
// которая в итоговые суммы не входит.
type Valuation struct {
	Market          ChannelPrice `json:"market"`
	Buyer           ChannelPrice `json:"buyer"`
	BuyerName       string       `json:"buyer_name"`
	ModsMarketValue int64        `json:"mods_market_value"`
	ModsBuyerValue  int64        `json:"mods_buyer_value"`
}

// Sellable false, если предмет никто не купит.
func (v Valuation) Sellable() bool {
	return v.Market.Total > 0 || v.Buyer.Total > 0
}
