package handler

import (
	"fmt"
	"html"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"lootvalue/internal/domain/entity"
	"lootvalue/internal/domain/value"
	"lootvalue/internal/view"
	"lootvalue/pkg/errcodes"
)

const (
	StartMessage = "Пришлите <code>/appraise ID</code>, чтобы узнать, где выгоднее продать предмет.\n" +
		"<code>/appraise ID raid</code> оценит предмет как найденный в рейде."
	AppraiseUsage  = "❌ Использование: /appraise <code>ID</code> [raid]"
	SyncQueued     = "🔄 Синхронизация цен поставлена в очередь"
	SyncDisabled   = "⚠️ Очередь задач не настроена"
	SyncFailed     = "❌ Не удалось поставить синхронизацию в очередь"
	callbackPrefix = "appraise:"
	raidArgument   = "raid"
)

// AppraiseCommand разобранные аргументы /appraise.
type AppraiseCommand struct {
	ItemID     string
	Restricted bool
}

// ParseAppraiseCommand разбирает "/appraise <id> [raid]".
func ParseAppraiseCommand(text string) (AppraiseCommand, bool) {
	args := strings.Fields(text)
	if len(args) < 2 || len(args) > 3 {
		return AppraiseCommand{}, false
	}

	cmd := AppraiseCommand{ItemID: args[1]}

	if len(args) == 3 {
		if !strings.EqualFold(args[2], raidArgument) {
			return AppraiseCommand{}, false
		}

		cmd.Restricted = true
	}

	return cmd, true
}

// CallbackData данные кнопки повторной оценки.
func (c AppraiseCommand) CallbackData() string {
	if c.Restricted {
		return callbackPrefix + c.ItemID + ":" + raidArgument
	}

	return callbackPrefix + c.ItemID
}

// ParseCallbackData обратная операция к CallbackData.
func ParseCallbackData(data string) (AppraiseCommand, bool) {
	rest, ok := strings.CutPrefix(data, callbackPrefix)
	if !ok || rest == "" {
		return AppraiseCommand{}, false
	}

	id, flag, raid := strings.Cut(rest, ":")
	if id == "" || (raid && flag != raidArgument) {
		return AppraiseCommand{}, false
	}

	return AppraiseCommand{ItemID: id, Restricted: raid}, true
}

// ToggleKeyboard кнопка оценки того же предмета в другом контексте.
// Предмет в рейде всегда оценивается как в рейде, переключать нечего.
func ToggleKeyboard(a entity.Appraisal, cmd AppraiseCommand) *telego.InlineKeyboardMarkup {
	if a.Item.Location == value.LocationRaid {
		return nil
	}

	other := AppraiseCommand{ItemID: cmd.ItemID, Restricted: !cmd.Restricted}
	label := "🎒 Оценить в рейде"
	if cmd.Restricted {
		label = "🏠 Оценить в схроне"
	}

	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(tu.InlineKeyboardButton(label).WithCallbackData(other.CallbackData())),
	)
}

// AppraisalReply текст ответа с оценкой в HTML разметке Telegram.
func AppraisalReply(a entity.Appraisal, display entity.DisplaySettings) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📦 <b>%s</b> <code>%s</code>\n", html.EscapeString(a.Item.Name), html.EscapeString(a.Item.ID))

	lines := view.Lines(a, display)
	if len(lines) == 0 {
		b.WriteString("<i>Цены в рейде скрыты настройками</i>\n")
		return b.String()
	}

	b.WriteString(view.HTML(lines))

	return b.String()
}

// ErrorReply сообщение пользователю по коду ошибки.
func ErrorReply(err error) string {
	code, _, _ := errcodes.Of(err)

	switch code {
	case errcodes.ItemNotFound:
		return "❌ Предмет не найден"
	case errcodes.InvalidItemID:
		return AppraiseUsage
	case errcodes.ItemNotAppraisable:
		return "⚠️ Предмет сейчас не у вас: у торговца, на барахолке или в почте"
	case errcodes.InvalidGeometry, errcodes.InvalidQuantity:
		return "❌ В каталоге некорректные данные предмета"
	case errcodes.PriceLookupFailed:
		return "⚠️ Цены временно недоступны, попробуйте позже"
	default:
		return "❌ Внутренняя ошибка"
	}
}
