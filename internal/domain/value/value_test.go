package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lootvalue/internal/domain/value"
)

func TestParseLocation(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    value.Location
		owned   bool
		wantErr bool
	}{
		{name: "stash", in: "stash", want: value.LocationStash, owned: true},
		{name: "raid", in: "raid", want: value.LocationRaid, owned: true},
		{name: "trader", in: "trader", want: value.LocationTrader},
		{name: "market", in: "market", want: value.LocationMarket},
		{name: "mail", in: "mail", want: value.LocationMail},
		{name: "unknown", in: "pocket", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got, err := value.ParseLocation(tc.in)
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			rq.Equal(tc.want, got)
			rq.Equal(tc.owned, got.Owned())
		})
	}
}

func TestOverrideReason(t *testing.T) {
	rq := require.New(t)

	rq.Equal("none", value.OverrideNone.String())
	rq.Equal("low_durability", value.OverrideLowDurability.String())
	rq.True(value.OverrideLowProfit.IsValid())
	rq.False(value.OverrideReason("broken").IsValid())

	rq.True(value.ChannelMarket.IsValid())
	rq.False(value.Channel("auction").IsValid())
}
