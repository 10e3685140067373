package value

// Channel канал продажи предмета.
type Channel string

const (
	ChannelMarket Channel = "market" // Барахолка, продажа другим игрокам
	ChannelBuyer  Channel = "buyer"  // Торговец с фиксированной ценой
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelMarket, ChannelBuyer:
		return true
	}

	return false
}
