package errcodes

import "errors"

// Kind classifies an error for transport layers (HTTP status, bot reply).
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindNotFound
	KindForbidden
	KindUnprocessable
)

type codedError interface {
	error
	ErrorCode() ErrorCode
	ErrorKind() Kind
	Description() string
}

// Of returns the code, kind and user-facing description of the first coded
// error in err's chain. Uncoded errors are internal.
func Of(err error) (ErrorCode, Kind, string) {
	var coded codedError
	if errors.As(err, &coded) {
		return coded.ErrorCode(), coded.ErrorKind(), coded.Description()
	}

	return "", KindInternal, ""
}
