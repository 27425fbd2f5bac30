// Package apperr tags errors with a kind at the point they are first caught,
// so callers decide on retries and responses without looking at error text.
package apperr

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/lib/pq"
)

// Kind classifies a failure.
type Kind int

const (
	KindBackend Kind = iota
	KindValidation
	KindConnectivity
	// KindBlocked is a connection refused locally, typically by firewall or
	// endpoint-security software. Retrying does not help.
	KindBlocked
	KindAuthorization
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConnectivity:
		return "connectivity"
	case KindBlocked:
		return "blocked"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	default:
		return "backend"
	}
}

// Error is an error with a kind and the operation that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New tags err with kind. A nil err stays nil.
func New(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: kind, Op: op, Err: err}
}

// Validation builds a validation error from a message.
func Validation(op, msg string) error {
	return &Error{Kind: KindValidation, Op: op, Err: errors.New(msg)}
}

// KindOf returns the kind of the first tagged error in the chain, KindBackend otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindBackend
}

// Is reports whether err carries kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Retryable reports whether repeating the failed call may succeed.
func Retryable(err error) bool {
	if err == nil {
		return false
	}

	switch KindOf(err) {
	case KindConnectivity, KindBackend:
		return true
	default:
		return false
	}
}

// FromDB classifies an error returned by the database driver or the network below it.
func FromDB(op string, err error) error {
	if err == nil {
		return nil
	}

	var tagged *Error
	if errors.As(err, &tagged) {
		return err
	}

	return &Error{Kind: classify(err), Op: op, Err: err}
}

func classify(err error) Kind {
	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound
	}

	if errors.Is(err, syscall.EPERM) || errors.Is(err, syscall.EACCES) {
		return KindBlocked
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code.Class() == "08":
			return KindConnectivity
		case pqErr.Code.Class() == "28", pqErr.Code == "42501":
			return KindAuthorization
		case pqErr.Code.Class() == "22", pqErr.Code.Class() == "23":
			return KindValidation
		default:
			return KindBackend
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return KindConnectivity
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnectivity
	}

	return KindBackend
}
