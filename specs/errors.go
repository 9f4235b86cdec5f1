package specs

import (
	"errors"
	"fmt"
)

const opCookie OpName = "cookie"

var (
	// ErrMalformedCookie is the base error for cookie headers or
	// attributes that cannot be parsed or validated.
	ErrMalformedCookie = errors.New("malformed cookie")
)

// NewMalformedCookie creates the error raised when a cookie attribute cannot
// be parsed, or a validation constraint relative to the origin is violated.
func NewMalformedCookie(format string, a ...any) error {
	return &OpError{
		Op:  opCookie,
		Err: fmt.Errorf("%w: %s", ErrMalformedCookie, fmt.Sprintf(format, a...)),
	}
}

// IsMalformedCookie reports whether err was raised by the cookie parser
// for an unparseable or invalid cookie.
func IsMalformedCookie(err error) bool {
	return errors.Is(err, ErrMalformedCookie)
}
