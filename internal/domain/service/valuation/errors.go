package valuation

import (
	"lootvalue/internal/domain"
	"lootvalue/pkg/errcodes"
)

// Ошибки контракта каталога. Сравниваются по коду, поэтому
// errors.Is срабатывает и для ошибок с подробным сообщением.
var (
	ErrInvalidGeometry = domain.NewError(errcodes.InvalidGeometry, errcodes.KindInvalidArgument, "item footprint has no slots")
	ErrInvalidQuantity = domain.NewError(errcodes.InvalidQuantity, errcodes.KindInvalidArgument, "item stack count must be positive")
)
