package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpErrorMatchesSentinelByCode(t *testing.T) {
	err := New(CodeDivisionByZero, "divide", "Cannot divide by zero")

	assert.True(t, errors.Is(err, ErrDivisionByZero))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
}

func TestOpErrorMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(CodeNotInteger, "factorial", "Factorial is only defined for integers"))

	assert.True(t, errors.Is(err, ErrNotInteger))
	assert.Equal(t, CodeNotInteger, CodeOf(err))
	assert.Equal(t, "Factorial is only defined for integers", MessageOf(err))
}

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  *OpError
		want string
	}{
		{
			name: "with op",
			err:  New(CodeInvalidArgument, "add", "Both arguments must be numbers"),
			want: "add: [INVALID_ARGUMENT] Both arguments must be numbers",
		},
		{
			name: "without op",
			err:  &OpError{Code: CodeInvalidCharacter, Message: "Second argument must be a single character"},
			want: "[INVALID_CHARACTER] Second argument must be a single character",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestCodeOfPlainError(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, CodeInternal, CodeOf(err))
	assert.Equal(t, "boom", MessageOf(err))
}
