package dispatch_test

import (
	"context"
	"testing"
	"time"

	"github.com/shreyasbagave/warehouse/application/dispatch"
	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	dispatchrepo "github.com/shreyasbagave/warehouse/repository/dispatch"
	"github.com/shreyasbagave/warehouse/repository/sequence"
	cerr "github.com/shreyasbagave/warehouse/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatchApp() dispatch.DispatchApp {
	return dispatch.NewDispatchApp(dispatchrepo.NewDispatchRepository(sequence.New(0)))
}

func submitInput() *model.DispatchRequestInput {
	return &model.DispatchRequestInput{
		FarmerID:    "F001",
		FarmerName:  "Rajesh Kumar",
		InventoryID: 3,
		Product:     "Wheat",
		Quantity:    20,
		From:        "Pune Warehouse 1",
		To:          "APMC Market Pune",
	}
}

func TestSubmitRequest(t *testing.T) {
	app := newDispatchApp()

	created, err := app.SubmitRequest(context.Background(), submitInput())
	require.NoError(t, err)

	assert.Equal(t, uint64(1), created.ID)
	assert.Equal(t, constant.DispatchStatusPending, created.Status)
	assert.Equal(t, "tonnes", created.Unit)
	assert.Equal(t, time.Now().Format("2006-01-02"), created.RequestDate)
}

func TestApprove(t *testing.T) {
	app := newDispatchApp()
	ctx := context.Background()

	created, err := app.SubmitRequest(ctx, submitInput())
	require.NoError(t, err)

	approved, err := app.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, constant.DispatchStatusApproved, approved.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), approved.ApprovedDate)

	// approval is final
	_, err = app.Approve(ctx, created.ID)
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrInvalidStatus))
}

func TestApprove_Unknown(t *testing.T) {
	app := newDispatchApp()

	_, err := app.Approve(context.Background(), 404)
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrNotFound))
}

func TestListRequests(t *testing.T) {
	app := newDispatchApp()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := app.SubmitRequest(ctx, submitInput())
		require.NoError(t, err)
	}

	requests, err := app.ListRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 3)
	// insertion order is preserved
	for i, req := range requests {
		assert.Equal(t, uint64(i+1), req.ID)
	}
}
