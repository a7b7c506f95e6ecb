package codec

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a decode failure.
type ErrorKind string

const (
	// InsufficientBytes means the buffer ended before a field could be read.
	// Supplying more data and retrying can succeed.
	InsufficientBytes ErrorKind = "INSUFFICIENT_BYTES"
	// InvalidFormat means enough bytes were present but they contradict the format.
	InvalidFormat ErrorKind = "INVALID_FORMAT"
)

// CodecError is the only error type returned by this package.
type CodecError struct {
	Kind ErrorKind
	Msg  string
}

var (
	ErrInsufficientBytes = &CodecError{Kind: InsufficientBytes}
	ErrInvalidFormat     = &CodecError{Kind: InvalidFormat}
)

func (e *CodecError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is matches any CodecError of the same kind, so callers can compare against
// ErrInsufficientBytes and ErrInvalidFormat with errors.Is.
func (e *CodecError) Is(target error) bool {
	t, ok := target.(*CodecError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf reports the kind of the first CodecError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var ce *CodecError
	if errors.As(err, &ce) && ce != nil {
		return ce.Kind, true
	}
	return "", false
}

func short(msg string) error {
	return &CodecError{Kind: InsufficientBytes, Msg: msg}
}

func invalid(msg string) error {
	return &CodecError{Kind: InvalidFormat, Msg: msg}
}

// NewError returns a CodecError of the given kind. Callers outside the package
// use it to report malformed input in the same vocabulary as the decoders.
func NewError(kind ErrorKind, msg string) error {
	return &CodecError{Kind: kind, Msg: msg}
}
