package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"lootvalue/pkg/logx"
)

// OnAppraiseCallback переоценивает предмет по кнопке под сообщением.
func (h *Handler) OnAppraiseCallback(ctx *th.Context, query telego.CallbackQuery) error {
	cmd, ok := ParseCallbackData(query.Data)
	if !ok || query.Message == nil {
		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText("❌ Некорректная кнопка").WithShowAlert())
	}

	text, keyboard := h.appraise(ctx, cmd)

	_, err := ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:      tu.ID(query.Message.GetChat().ID),
		MessageID:   query.Message.GetMessageID(),
		Text:        text,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: keyboard,
	})
	// Telegram отвечает ошибкой, если текст не изменился
	if err != nil {
		logger(ctx).Warn("bot.EditMessageText", logx.Error(err))
	}

	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
}
