package handler

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"lootvalue/internal/worker"
	"lootvalue/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, StartMessage, nil)
}

func (h *Handler) OnAppraise(ctx *th.Context, msg telego.Message) error {
	cmd, ok := ParseAppraiseCommand(msg.Text)
	if !ok {
		return h.sendHTML(ctx, msg.Chat.ID, AppraiseUsage, nil)
	}

	text, keyboard := h.appraise(ctx, cmd)

	return h.sendHTML(ctx, msg.Chat.ID, text, keyboard)
}

// OnSync ставит синхронизацию цен в очередь asynq.
func (h *Handler) OnSync(ctx *th.Context, msg telego.Message) error {
	if h.tasks == nil {
		return h.sendHTML(ctx, msg.Chat.ID, SyncDisabled, nil)
	}

	requestedBy := "telegram"
	if msg.From != nil {
		requestedBy = "telegram:" + msg.From.Username
	}

	task, err := worker.NewPriceSyncTask(requestedBy)
	if err != nil {
		logger(ctx).Error("worker.NewPriceSyncTask", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, SyncFailed, nil)
	}

	info, err := h.tasks.EnqueueContext(ctx, task)
	if err != nil {
		logger(ctx).Error("tasks.EnqueueContext", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, SyncFailed, nil)
	}

	logger(ctx).Info("price sync enqueued",
		slog.String(logx.FieldRequestedBy, requestedBy),
		slog.String(logx.FieldTaskType, task.Type()),
		slog.String("task-id", info.ID),
	)

	return h.sendHTML(ctx, msg.Chat.ID, SyncQueued, nil)
}

// appraise возвращает текст ответа и кнопку оценки в другом контексте.
func (h *Handler) appraise(ctx *th.Context, cmd AppraiseCommand) (string, *telego.InlineKeyboardMarkup) {
	policy := h.policy
	policy.InRestrictedContext = cmd.Restricted

	a, err := h.appraisals.Appraise(ctx, cmd.ItemID, policy)
	if err != nil {
		return ErrorReply(err), nil
	}

	return AppraisalReply(a, h.display), ToggleKeyboard(a, cmd)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string, keyboard *telego.InlineKeyboardMarkup) error {
	params := tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML)
	if keyboard != nil {
		params = params.WithReplyMarkup(keyboard)
	}

	if _, err := ctx.Bot().SendMessage(ctx, params); err != nil {
		logger(ctx).Error("bot.SendMessage", logx.Error(err), slog.Int64(logx.FieldChatID, chatID))
		return err
	}

	return nil
}
