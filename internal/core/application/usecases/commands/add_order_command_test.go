package commands_test

import (
	"testing"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAddOrderCommand("O1", "10:10")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "O1", cmd.OrderID())
	assert.Equal(t, 610, cmd.DeliveryTime().Minutes())
}

func TestNewAddOrderCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		deliveryTime string
		wantErr      error
	}{
		{name: "empty id", orderID: "", deliveryTime: "10:10", wantErr: errs.ErrValueIsRequired},
		{name: "blank id", orderID: "  ", deliveryTime: "10:10", wantErr: errs.ErrValueIsRequired},
		{name: "no colon", orderID: "O1", deliveryTime: "1010", wantErr: errs.ErrValueIsInvalid},
		{name: "letters", orderID: "O1", deliveryTime: "ab:cd", wantErr: errs.ErrValueIsInvalid},
		{name: "hours out of range", orderID: "O1", deliveryTime: "24:00", wantErr: errs.ErrValueIsOutOfRange},
		{name: "minutes out of range", orderID: "O1", deliveryTime: "10:60", wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewAddOrderCommand(tc.orderID, tc.deliveryTime)

			require.ErrorIs(t, err, tc.wantErr)
			assert.Zero(t, cmd)
		})
	}
}

func TestNewAddOrderCommand_ReportsAllFieldErrors(t *testing.T) {
	_, err := commands.NewAddOrderCommand("", "x")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAddOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.AddOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrAddOrderCommandIsNotConstructed)
}
