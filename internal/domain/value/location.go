package value

import "fmt"

// Location где сейчас находится предмет.
type Location string

const (
	LocationStash  Location = "stash"
	LocationRaid   Location = "raid"
	LocationTrader Location = "trader"
	LocationMarket Location = "market"
	LocationMail   Location = "mail"
)

func (l Location) String() string {
	return string(l)
}

func (l Location) IsValid() bool {
	switch l {
	case LocationStash, LocationRaid, LocationTrader, LocationMarket, LocationMail:
		return true
	}

	return false
}

// Owned сообщает, принадлежит ли предмет игроку. Предметы у торговца,
// на барахолке и в почте не оцениваются.
func (l Location) Owned() bool {
	return l == LocationStash || l == LocationRaid
}

func ParseLocation(s string) (Location, error) {
	l := Location(s)
	if !l.IsValid() {
		return "", fmt.Errorf("unknown location %q", s)
	}

	return l, nil
}
