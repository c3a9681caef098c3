package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind partitions upstream failures into the categories callers act on.
type Kind int

const (
	// KindValidation covers 4xx responses other than auth failures: the
	// request was understood and rejected, and the upstream message is
	// safe to surface to the user.
	KindValidation Kind = iota
	// KindAuth covers 401 and 403: the bearer token was missing, expired,
	// or insufficient. The session is no longer usable.
	KindAuth
	// KindUnreachable covers transport-level failures: DNS, connection
	// refused, timeouts. No response was received.
	KindUnreachable
	// KindUnexpected covers 5xx responses and anything else that does not
	// fit the categories above.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindUnreachable:
		return "unreachable"
	case KindUnexpected:
		return "unexpected"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the single error type returned by the gateway client. Status is
// zero when no HTTP response was received.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("upstream %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.err }

// classifyStatus maps a non-2xx HTTP status to an error kind.
func classifyStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindUnexpected
	}
}

// IsAuth reports whether err is an upstream auth failure.
func IsAuth(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == KindAuth
}

// IsValidation reports whether err is an upstream validation rejection.
func IsValidation(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == KindValidation
}

// IsUnreachable reports whether err is a transport-level failure.
func IsUnreachable(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == KindUnreachable
}
