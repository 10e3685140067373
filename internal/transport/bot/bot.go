package bot

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"lootvalue/internal/transport/bot/handler"
	"lootvalue/pkg/contextx"
	"lootvalue/pkg/logx"
)

const longPollingTimeout = 60

// Bot Telegram-бот для оценки предметов
type Bot struct {
	bot     *telego.Bot
	handler *handler.Handler
	adminID int64
}

// New создает новый экземпляр бота. Запросы к Bot API идут через httpClient.
func New(token string, adminID int64, h *handler.Handler, httpClient *http.Client) (*Bot, error) {
	bot, err := telego.NewBot(token, telego.WithHTTPClient(httpClient), telego.WithDiscardLogger())
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &Bot{
		bot:     bot,
		handler: h,
		adminID: adminID,
	}, nil
}

// Run получает обновления через long polling до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.adminID)

	log := contextx.LoggerFromContextOrDefault(ctx)

	go func() {
		<-ctx.Done()

		if err := botHandler.Stop(); err != nil {
			log.Error("botHandler.Stop", logx.Error(err))
		}
	}()

	log.Info("telegram bot started")

	if err := botHandler.Start(); err != nil {
		return fmt.Errorf("botHandler.Start: %w", err)
	}

	log.Info("telegram bot stopped")

	return nil
}
