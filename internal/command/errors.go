package command

import "errors"

// Kind classifies user-facing failures.
type Kind string

const (
	KindMissingArgument  Kind = "missing_argument"
	KindInvalidCount     Kind = "invalid_count"
	KindInvalidDateTime  Kind = "invalid_datetime"
	KindUnsupportedZone  Kind = "unsupported_timezone"
	KindMissingSeparator Kind = "missing_separator"
	KindUnknownOption    Kind = "unknown_option"
	KindUnknownCommand   Kind = "unknown_command"
)

// Error is a failure reported to the user as an "ERROR:" line followed by
// optional hint lines. Err keeps the underlying cause, if any.
type Error struct {
	Kind  Kind
	Msg   string
	Hints []string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

func newError(kind Kind, msg string, hints ...string) *Error {
	return &Error{Kind: kind, Msg: msg, Hints: hints}
}
