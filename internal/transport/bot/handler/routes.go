package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"lootvalue/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))
	bh.HandleMessage(h.OnAppraise, th.CommandEqual("appraise"))
	bh.HandleCallbackQuery(h.OnAppraiseCallback, th.CallbackDataPrefix(callbackPrefix))

	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnSync, th.CommandEqual("sync"))
}
