package handler_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"lootvalue/internal/domain"
	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/value"
	"lootvalue/internal/transport/bot/handler"
	"lootvalue/pkg/errcodes"
)

func TestParseAppraiseCommand(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		want   handler.AppraiseCommand
		wantOK bool
	}{
		{name: "stash", text: "/appraise ak-1", want: handler.AppraiseCommand{ItemID: "ak-1"}, wantOK: true},
		{name: "raid", text: "/appraise ak-1 raid", want: handler.AppraiseCommand{ItemID: "ak-1", Restricted: true}, wantOK: true},
		{name: "raid upper case", text: "/appraise  ak-1  RAID", want: handler.AppraiseCommand{ItemID: "ak-1", Restricted: true}, wantOK: true},
		{name: "no id", text: "/appraise", wantOK: false},
		{name: "unknown flag", text: "/appraise ak-1 stash", wantOK: false},
		{name: "too many args", text: "/appraise ak-1 raid now", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got, ok := handler.ParseAppraiseCommand(tc.text)
			rq.Equal(tc.wantOK, ok)
			rq.Equal(tc.want, got)
		})
	}
}

func TestCallbackData(t *testing.T) {
	rq := require.New(t)

	for _, cmd := range []handler.AppraiseCommand{
		{ItemID: "ak-1"},
		{ItemID: "ak-1", Restricted: true},
	} {
		got, ok := handler.ParseCallbackData(cmd.CallbackData())
		rq.True(ok)
		rq.Equal(cmd, got)
	}

	for _, data := range []string{"", "appraise:", "catalog_page:2", "appraise:ak-1:stash", "appraise::raid"} {
		_, ok := handler.ParseCallbackData(data)
		rq.False(ok, data)
	}
}

func TestAppraisalReply(t *testing.T) {
	a := entity.Appraisal{
		Item: entity.Item{ID: "ak-1", Name: "AK <74>", StackCount: 1, SpawnedInSession: true, CanSellOnMarket: true},
		Valuation: entity.Valuation{
			Market:    entity.ChannelPrice{Total: 20000, PerUnit: 20000, PerSlot: 2500},
			Buyer:     entity.ChannelPrice{Total: 12000, PerUnit: 12000, PerSlot: 1500},
			BuyerName: "Mechanic",
		},
		Recommendation: &entity.Recommendation{PreferredChannel: value.ChannelMarket},
	}

	t.Run("stash", func(t *testing.T) {
		rq := require.New(t)

		got := handler.AppraisalReply(a, entity.DisplaySettings{})
		rq.Equal("📦 <b>AK &lt;74&gt;</b> <code>ak-1</code>\n"+
			"──────────\n"+
			"Mechanic: ₽ 12 000\n"+
			"<b>Барахолка: ₽ 20 000</b>\n", got)
	})

	t.Run("raid prices hidden", func(t *testing.T) {
		rq := require.New(t)

		raid := a
		raid.Flags.InRestrictedContext = true

		got := handler.AppraisalReply(raid, entity.DisplaySettings{})
		rq.Contains(got, "Цены в рейде скрыты")
	})
}

func TestErrorReply(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  fmt.Errorf("items.GetTree: %w", domain.NewError(errcodes.ItemNotFound, errcodes.KindNotFound, "item not found")),
			want: "❌ Предмет не найден",
		},
		{
			name: "empty id",
			err:  domain.NewError(errcodes.InvalidItemID, errcodes.KindInvalidArgument, "item id is empty"),
			want: handler.AppraiseUsage,
		},
		{
			name: "prices down",
			err:  domain.WrapError(errors.New("timeout"), errcodes.PriceLookupFailed, "market price"),
			want: "⚠️ Цены временно недоступны, попробуйте позже",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "❌ Внутренняя ошибка",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)
			rq.Equal(tc.want, handler.ErrorReply(tc.err))
		})
	}
}

func TestToggleKeyboard(t *testing.T) {
	testCases := []struct {
		name     string
		location value.Location
		cmd      handler.AppraiseCommand
		wantText string
		wantData string
	}{
		{
			name:     "stash item offers raid",
			location: value.LocationStash,
			cmd:      handler.AppraiseCommand{ItemID: "ak-1"},
			wantText: "🎒 Оценить в рейде",
			wantData: "appraise:ak-1:raid",
		},
		{
			name:     "stash item appraised as raid offers stash",
			location: value.LocationStash,
			cmd:      handler.AppraiseCommand{ItemID: "ak-1", Restricted: true},
			wantText: "🏠 Оценить в схроне",
			wantData: "appraise:ak-1",
		},
		{
			name:     "raid item has no toggle",
			location: value.LocationRaid,
			cmd:      handler.AppraiseCommand{ItemID: "ak-1", Restricted: true},
		},
		{
			name:     "raid item has no toggle from stash command",
			location: value.LocationRaid,
			cmd:      handler.AppraiseCommand{ItemID: "ak-1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			a := entity.Appraisal{Item: entity.Item{ID: "ak-1", Location: tc.location}}

			keyboard := handler.ToggleKeyboard(a, tc.cmd)
			if tc.wantText == "" {
				rq.Nil(keyboard)
				return
			}

			rq.NotNil(keyboard)
			rq.Len(keyboard.InlineKeyboard, 1)
			rq.Len(keyboard.InlineKeyboard[0], 1)
			rq.Equal(tc.wantText, keyboard.InlineKeyboard[0][0].Text)
			rq.Equal(tc.wantData, keyboard.InlineKeyboard[0][0].CallbackData)
		})
	}
}
