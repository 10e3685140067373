package req

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"lootvalue/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

// Error is returned for malformed or invalid request bodies.
type Error struct {
	description string
	cause       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.description, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) ErrorCode() errcodes.ErrorCode {
	return errcodes.ValidationError
}

func (e *Error) ErrorKind() errcodes.Kind {
	return errcodes.KindInvalidArgument
}

func (e *Error) Description() string {
	return e.description
}

func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return &Error{description: "Empty body", cause: err}
		}

		return &Error{description: "Invalid JSON", cause: fmt.Errorf("json.Decode: %w", err)}
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return &Error{description: err.Error(), cause: err}
	}

	return nil
}
