package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "message only",
			err:  New(ErrCodeInvalidArgument, "invalid intent"),
			want: "invalid intent",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeInternal, "failed to write output", errors.New("disk full")),
			want: "failed to write output: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestStructuredError_Unwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := fmt.Errorf("outer: %w", Wrap(ErrCodeInvalidArgument, "bad", sentinel))

	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, ErrCodeInvalidArgument, CodeOf(err))
}

func TestCodeOf_PlainError(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("plain")))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"invalid argument", New(ErrCodeInvalidArgument, "x"), ExitUsage},
		{"wrapped invalid argument", fmt.Errorf("ctx: %w", New(ErrCodeInvalidArgument, "x")), ExitUsage},
		{"configuration gap", New(ErrCodeConfigurationGap, "x"), ExitFailure},
		{"internal", New(ErrCodeInternal, "x"), ExitFailure},
		{"plain", errors.New("x"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
