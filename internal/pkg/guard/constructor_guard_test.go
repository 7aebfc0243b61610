package guard_test

import (
	"errors"
	"testing"

	"tracker/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("shift not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("partner not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a small value
// object with its own constructor and Validate method.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Shift struct {
		partnerID string
		minutes   int
		guard     guard.ConstructorGuard
	}

	errShiftNotConstructed := errors.New("Shift must be created via NewShift")

	newShift := func(partnerID string, minutes int) (Shift, error) {
		if partnerID == "" {
			return Shift{}, errors.New("partner id is required")
		}
		if minutes <= 0 {
			return Shift{}, errors.New("shift length must be positive")
		}
		return Shift{partnerID: partnerID, minutes: minutes, guard: guard.NewConstructorGuard()}, nil
	}

	validateShift := func(s Shift) error {
		return s.guard.Validate(errShiftNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		shift, err := newShift("P1", 480)

		require.NoError(t, err)
		require.NoError(t, validateShift(shift))
		assert.Equal(t, "P1", shift.partnerID)
		assert.Equal(t, 480, shift.minutes)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var shift Shift

		err := validateShift(shift)

		assert.Equal(t, errShiftNotConstructed, err)
	})

	t.Run("constructor_rejects_invalid_input", func(t *testing.T) {
		_, err := newShift("", 480)
		require.Error(t, err)

		_, err = newShift("P1", 0)
		require.Error(t, err)
	})
}

func TestConstructorGuardCanBePassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	guardCopy := g
	testError := errors.New("test error")

	require.NoError(t, g.Validate(testError))
	require.NoError(t, guardCopy.Validate(testError))
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		for range b.N {
			_ = g.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var g guard.ConstructorGuard
		err := errors.New("not constructed")
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
