package commands_test

import (
	"testing"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeletePartnerCommand(t *testing.T) {
	cmd, err := commands.NewDeletePartnerCommand("P1")
	require.NoError(t, err)
	assert.Equal(t, "P1", cmd.PartnerID())

	_, err = commands.NewDeletePartnerCommand(" ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDeletePartnerCommandHandler_Handle_KeepsOrdersUnassigned(t *testing.T) {
	tr := newTracker()
	tr.mustAddOrder(t, "O1", "01:15")
	tr.mustAddOrder(t, "O2", "10:10")
	tr.mustAddPartner(t, "P1")
	require.NoError(t, tr.assign(t, "O1", "P1"))
	require.NoError(t, tr.assign(t, "O2", "P1"))

	cmd, err := commands.NewDeletePartnerCommand("P1")
	require.NoError(t, err)
	require.NoError(t, tr.deletePartner.Handle(t.Context(), cmd))

	_, err = tr.store.FindPartner(t.Context(), "P1")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	ids, err := tr.store.ListOrderIDs(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"O1", "O2"}, ids)

	summary, err := tr.store.Summarize(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.UnassignedOrders())
}

func TestDeletePartnerCommandHandler_Handle_UnknownPartner(t *testing.T) {
	tr := newTracker()

	cmd, err := commands.NewDeletePartnerCommand("missing")
	require.NoError(t, err)

	require.ErrorIs(t, tr.deletePartner.Handle(t.Context(), cmd), errs.ErrObjectNotFound)
}
