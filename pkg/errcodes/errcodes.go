package errcodes

// ErrorCode is a stable machine-readable error identifier returned to API
// clients.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	InternalServerError ErrorCode = "InternalServerError"
	TimeoutExceeded     ErrorCode = "TimeoutExceeded"
	Forbidden           ErrorCode = "Forbidden"
	ValidationError     ErrorCode = "ValidationError"
	NotFound            ErrorCode = "NotFound"

	// Оценка предметов
	InvalidGeometry    ErrorCode = "InvalidGeometry"    // Площадь предмета в ячейках <= 0
	InvalidQuantity    ErrorCode = "InvalidQuantity"    // Размер стака <= 0
	InvalidPolicy      ErrorCode = "InvalidPolicy"      // Порог вне диапазона [0, 1]
	Unsellable         ErrorCode = "Unsellable"         // Никто не покупает, это не ошибка
	ItemNotFound       ErrorCode = "ItemNotFound"       // Нет в каталоге
	InvalidItemID      ErrorCode = "InvalidItemID"      // Пустой или мусорный ID
	ItemNotAppraisable ErrorCode = "ItemNotAppraisable" // Лежит у торговца, на барахолке или в почте
	PriceLookupFailed  ErrorCode = "PriceLookupFailed"  // Источник цен недоступен
	PriceNotFound      ErrorCode = "PriceNotFound"      // Шаблон не торгуется
)
