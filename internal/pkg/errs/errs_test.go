package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("partner", "P1")

		assert.Equal(t, "partner", err.ParamName)
		assert.Equal(t, "P1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: partner P1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("deleted concurrently")
		err := errs.NewObjectNotFoundErrorWithCause("order", "O1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: order O1 (cause: deleted concurrently)", err.Error())
	})

	t.Run("Error with non string ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 456)
		assert.Equal(t, "object not found: order 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("deliveryTime")

		assert.Equal(t, "deliveryTime", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: deliveryTime", err.Error())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("expected HH:MM")
		err := errs.NewValueIsInvalidErrorWithCause("deliveryTime", cause)

		assert.Equal(t, "value is invalid: deliveryTime (cause: expected HH:MM)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("hours", 25, 0, 23)

		assert.Equal(t, 25, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 23, err.Max)
		assert.Equal(t, "value is out of range: hours is 25, min value is 0, max value is 23", err.Error())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("clock overflow")
		err := errs.NewValueIsOutOfRangeErrorWithCause("minutes", 61, 0, 59, cause)

		assert.Equal(t,
			"value is out of range: minutes is 61, min value is 0, max value is 59 (cause: clock overflow)",
			err.Error())
	})

	t.Run("sanitize removes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("id")
	assert.Equal(t, "value is required: id", err.Error())

	withCause := errs.NewValueIsRequiredErrorWithCause("id", errors.New("empty path segment"))
	assert.Equal(t, "value is required: id (cause: empty path segment)", withCause.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("order", "O1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("time"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("hours", 30, 0, 23), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("id"), errs.ErrValueIsRequired)

	wrapped := fmt.Errorf("assign order: %w", errs.NewObjectNotFoundError("partner", "P9"))
	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "P9", notFound.ID)

	joined := errors.Join(errs.NewValueIsRequiredError("id"), errs.NewValueIsInvalidError("time"))
	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
}
