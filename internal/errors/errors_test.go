package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestIsAny(t *testing.T) {
	err := Wrap(io.ErrUnexpectedEOF, "read body")

	assert.True(t, IsAny(err, io.EOF, io.ErrUnexpectedEOF))
	assert.False(t, IsAny(err, io.EOF))
	assert.False(t, IsAny(err))
}

func TestAsType(t *testing.T) {
	err := WithStack(fmt.Errorf("outer: %w", &codeError{code: "SESSION_EXPIRED"}))

	target, ok := AsType[*codeError](err)

	assert.True(t, ok)
	assert.Equal(t, "SESSION_EXPIRED", target.code)

	_, ok = AsType[*codeError](New("plain"))
	assert.False(t, ok)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, WithStack(nil))
}
