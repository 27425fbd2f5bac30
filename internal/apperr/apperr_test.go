package apperr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestFromDB_Classification(t *testing.T) {
	blocked := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.EPERM)}
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"no rows", sql.ErrNoRows, KindNotFound},
		{"firewall", blocked, KindBlocked},
		{"refused", refused, KindConnectivity},
		{"deadline", context.DeadlineExceeded, KindConnectivity},
		{"pq connection", &pq.Error{Code: "08006"}, KindConnectivity},
		{"pq auth", &pq.Error{Code: "28P01"}, KindAuthorization},
		{"pq privilege", &pq.Error{Code: "42501"}, KindAuthorization},
		{"pq check", &pq.Error{Code: "23514"}, KindValidation},
		{"pq other", &pq.Error{Code: "42P01"}, KindBackend},
		{"plain", errors.New("boom"), KindBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromDB("op", fmt.Errorf("wrapped: %w", tt.err))
			assert.Equal(t, tt.want, KindOf(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFromDB_KeepsExistingKind(t *testing.T) {
	inner := New(KindBlocked, "dial", errors.New("blocked"))
	err := FromDB("list clients", fmt.Errorf("query: %w", inner))
	assert.Equal(t, KindBlocked, KindOf(err))
	assert.Nil(t, FromDB("op", nil))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(New(KindConnectivity, "op", errors.New("x"))))
	assert.True(t, Retryable(errors.New("untagged")))
	assert.False(t, Retryable(New(KindBlocked, "op", errors.New("x"))))
	assert.False(t, Retryable(Validation("op", "bad")))
	assert.False(t, Retryable(New(KindAuthorization, "op", errors.New("x"))))
	assert.False(t, Retryable(nil))
}
