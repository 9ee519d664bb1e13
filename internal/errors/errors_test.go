package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironvale/guild-api/internal/errors"
)

func TestError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errors.New(errors.CodeNotFound, "run not found")
		assert.Equal(t, "NOT_FOUND: run not found", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := fmt.Errorf("connection refused")
		err := errors.Wrap(cause, "failed to load run")
		assert.Equal(t, "INTERNAL: failed to load run: connection refused", err.Error())
	})
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.NotFound("run not found")
	wrapped := errors.Wrap(inner, "advance floor")

	assert.Equal(t, errors.CodeNotFound, errors.GetCode(wrapped))
	assert.True(t, errors.IsNotFound(wrapped))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.Code
	}{
		{name: "nil error", err: nil, want: errors.CodeOK},
		{name: "plain error", err: fmt.Errorf("boom"), want: errors.CodeInternal},
		{name: "coded error", err: errors.InvalidArgument("bad quest"), want: errors.CodeInvalidArgument},
		{name: "wrapped coded error", err: fmt.Errorf("outer: %w", errors.FailedPrecondition("retreated")), want: errors.CodeFailedPrecondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.GetCode(tt.err))
		})
	}
}

func TestValidationBuilder(t *testing.T) {
	t.Run("no errors returns nil", func(t *testing.T) {
		assert.NoError(t, errors.NewValidationBuilder().Build())
	})

	t.Run("collects field errors", func(t *testing.T) {
		err := errors.NewValidationBuilder().
			RequiredField("Quest").
			InvalidField("Heroes", "must not be empty").
			Build()
		require.Error(t, err)

		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "Quest")
		assert.Contains(t, err.Error(), "Heroes")
	})
}

func TestWithMeta(t *testing.T) {
	err := errors.Internal("boom").WithMeta("run_id", "run_123")
	require.NotNil(t, err.Meta)
	assert.Equal(t, "run_123", err.Meta["run_id"])
}
