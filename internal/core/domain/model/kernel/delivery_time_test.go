package kernel_test

import (
	"testing"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryTime(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
		wantErr error
	}{
		{name: "midnight", minutes: 0, want: "00:00"},
		{name: "one hour fifteen", minutes: 75, want: "01:15"},
		{name: "ten past ten", minutes: 610, want: "10:10"},
		{name: "last minute of the day", minutes: kernel.MinutesPerDay - 1, want: "23:59"},
		{name: "negative", minutes: -1, wantErr: errs.ErrValueIsOutOfRange},
		{name: "full day", minutes: kernel.MinutesPerDay, wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := kernel.NewDeliveryTime(tt.minutes)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Error(t, got.Validate())
				return
			}
			require.NoError(t, err)
			require.NoError(t, got.Validate())
			assert.Equal(t, tt.minutes, got.Minutes())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseDeliveryTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		minutes int
		wantErr error
	}{
		{name: "zero padded", input: "03:20", minutes: 200},
		{name: "single digit fields", input: "9:5", minutes: 545},
		{name: "surrounding spaces", input: " 12:00 ", minutes: 720},
		{name: "end of day", input: "23:59", minutes: 1439},
		{name: "missing separator", input: "1230", wantErr: errs.ErrValueIsInvalid},
		{name: "empty", input: "", wantErr: errs.ErrValueIsInvalid},
		{name: "letters", input: "ab:cd", wantErr: errs.ErrValueIsInvalid},
		{name: "signed", input: "+1:00", wantErr: errs.ErrValueIsInvalid},
		{name: "three digit hours", input: "100:00", wantErr: errs.ErrValueIsInvalid},
		{name: "hours out of range", input: "24:00", wantErr: errs.ErrValueIsOutOfRange},
		{name: "minutes out of range", input: "10:60", wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := kernel.ParseDeliveryTime(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, got.Minutes())
		})
	}
}

func TestParseDeliveryTime_ReportsBothFieldsAtOnce(t *testing.T) {
	_, err := kernel.ParseDeliveryTime("25:61")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "hours is 25")
	assert.Contains(t, err.Error(), "minutes is 61")
}

func TestDeliveryTime_Comparisons(t *testing.T) {
	early, _ := kernel.NewDeliveryTime(90)
	late, _ := kernel.NewDeliveryTime(200)
	sameAsEarly, _ := kernel.ParseDeliveryTime("01:30")

	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(late))
	assert.False(t, early.IsAfter(sameAsEarly))
	assert.True(t, early.IsEqual(sameAsEarly))
}

func TestStartOfDay(t *testing.T) {
	start := kernel.StartOfDay()

	require.NoError(t, start.Validate())
	assert.Equal(t, 0, start.Minutes())
	assert.Equal(t, "00:00", start.String())
}

func TestDeliveryTime_ZeroValueIsNotConstructed(t *testing.T) {
	var zero kernel.DeliveryTime

	require.ErrorIs(t, zero.Validate(), errs.ErrValueIsRequired)
}
