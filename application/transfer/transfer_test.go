package transfer_test

import (
	"context"
	"testing"

	"github.com/shreyasbagave/warehouse/application/transfer"
	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	inventoryrepo "github.com/shreyasbagave/warehouse/repository/inventory"
	"github.com/shreyasbagave/warehouse/repository/sequence"
	transferrepo "github.com/shreyasbagave/warehouse/repository/transfer"
	triprepo "github.com/shreyasbagave/warehouse/repository/trip"
	cerr "github.com/shreyasbagave/warehouse/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	app       transfer.TransferApp
	transfers transferrepo.TransferRepository
	trips     triprepo.TripRepository
	inventory inventoryrepo.InventoryRepository
}

func newFixture() *fixture {
	seq := sequence.New(0)
	tr := transferrepo.NewTransferRepository(seq)
	tp := triprepo.NewTripRepository(seq)
	inv := inventoryrepo.NewInventoryRepository(seq)
	return &fixture{
		app:       transfer.NewTransferApp(tr, tp, inv, nil),
		transfers: tr,
		trips:     tp,
		inventory: inv,
	}
}

func wheatInput() *model.TransferRequestInput {
	return &model.TransferRequestInput{
		From:          "Pune Warehouse 1",
		FromWarehouse: "WH-001",
		To:            "Nashik Warehouse 1",
		ToWarehouse:   "WH-011",
		Product:       "Wheat",
		Quantity:      25,
	}
}

func driver() *model.AssignDriverRequest {
	return &model.AssignDriverRequest{
		DriverID:      7,
		DriverName:    "Vijay Singh",
		VehicleNumber: "MH-12-AB-1234",
	}
}

func (f *fixture) createApproved(t *testing.T) *model.TransferRequest {
	t.Helper()
	ctx := context.Background()
	created, err := f.app.CreateRequest(ctx, wheatInput())
	require.NoError(t, err)
	approved, err := f.app.Approve(ctx, created.ID)
	require.NoError(t, err)
	return approved
}

func TestCreateRequest(t *testing.T) {
	f := newFixture()

	created, err := f.app.CreateRequest(context.Background(), wheatInput())
	require.NoError(t, err)

	assert.Regexp(t, `^TRF-\d{6}$`, created.TransferID)
	assert.Equal(t, constant.TransferStatusPending, created.Status)
	assert.Equal(t, "Warehouse Manager", created.RequestedBy)
	assert.NotEmpty(t, created.RequestDate)
}

func TestApproveReject(t *testing.T) {
	tests := []struct {
		name       string
		decide     func(f *fixture, ctx context.Context, id uint64) (*model.TransferRequest, error)
		wantStatus constant.TransferStatus
	}{
		{
			name: "approve",
			decide: func(f *fixture, ctx context.Context, id uint64) (*model.TransferRequest, error) {
				return f.app.Approve(ctx, id)
			},
			wantStatus: constant.TransferStatusApproved,
		},
		{
			name: "reject",
			decide: func(f *fixture, ctx context.Context, id uint64) (*model.TransferRequest, error) {
				return f.app.Reject(ctx, id)
			},
			wantStatus: constant.TransferStatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			ctx := context.Background()

			created, err := f.app.CreateRequest(ctx, wheatInput())
			require.NoError(t, err)

			decided, err := tt.decide(f, ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, decided.Status)

			// decisions are final
			_, err = tt.decide(f, ctx, created.ID)
			require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrInvalidStatus))
		})
	}
}

func TestApprove_Unknown(t *testing.T) {
	f := newFixture()
	_, err := f.app.Approve(context.Background(), 404)
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrNotFound))
}

func TestAssignDriver(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	approved := f.createApproved(t)

	trip, err := f.app.AssignDriver(ctx, approved.ID, driver())
	require.NoError(t, err)

	assert.Regexp(t, `^TRP-\d{6}$`, trip.TripID)
	assert.Equal(t, constant.TripStatusAssigned, trip.Status)
	assert.Equal(t, approved.TransferID, trip.TransferID)
	assert.Equal(t, approved.From, trip.From)
	assert.Equal(t, approved.To, trip.To)
	assert.Equal(t, int64(180), trip.DistanceKM)
	assert.Equal(t, float64(15), trip.PaymentRate)
	assert.Equal(t, uint64(7), trip.DriverID)

	// the transfer carries the trip linkage
	updated, err := f.transfers.GetByID(ctx, approved.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, constant.TransferStatusInTransit, updated.Status)
	assert.Equal(t, trip.TripID, updated.TripID)
	assert.Equal(t, "MH-12-AB-1234", updated.Vehicle)
	assert.Equal(t, "Vijay Singh", updated.Driver)
}

func TestAssignDriver_Unknown(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.app.AssignDriver(ctx, 404, driver())
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrNotFound))

	trips, err := f.app.ListTrips(ctx)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestAssignDriver_NotApproved(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.app.CreateRequest(ctx, wheatInput())
	require.NoError(t, err)

	_, err = f.app.AssignDriver(ctx, created.ID, driver())
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrInvalidStatus))
}

func TestAssignDriver_Twice(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	approved := f.createApproved(t)

	_, err := f.app.AssignDriver(ctx, approved.ID, driver())
	require.NoError(t, err)

	second := driver()
	second.DriverID = 8
	_, err = f.app.AssignDriver(ctx, approved.ID, second)
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrInvalidStatus))

	// exactly one trip exists for the transfer
	trips, err := f.app.ListTrips(ctx)
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

func TestUpdateTripStatus_ForwardOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	approved := f.createApproved(t)

	trip, err := f.app.AssignDriver(ctx, approved.ID, driver())
	require.NoError(t, err)

	// a no-op move is rejected
	_, err = f.app.UpdateTripStatus(ctx, trip.TripID, &model.TripStatusRequest{Status: constant.TripStatusAssigned})
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrInvalidStatus))

	moved, err := f.app.UpdateTripStatus(ctx, trip.TripID, &model.TripStatusRequest{
		Status:          constant.TripStatusInTransit,
		CurrentLocation: "Sangamner",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.TripStatusInTransit, moved.Status)
	assert.Equal(t, "Sangamner", moved.CurrentLocation)

	_, err = f.app.UpdateTripStatus(ctx, trip.TripID, &model.TripStatusRequest{Status: constant.TripStatusAssigned})
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrInvalidStatus))
}

func TestUpdateTripStatus_Unknown(t *testing.T) {
	f := newFixture()

	_, err := f.app.UpdateTripStatus(context.Background(), "TRP-999999", &model.TripStatusRequest{
		Status: constant.TripStatusInTransit,
	})
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrNotFound))
}

func TestDelivery_CreditsInventoryAndSettlesTransfer(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	approved := f.createApproved(t)

	trip, err := f.app.AssignDriver(ctx, approved.ID, driver())
	require.NoError(t, err)

	delivered, err := f.app.UpdateTripStatus(ctx, trip.TripID, &model.TripStatusRequest{
		Status:        constant.TripStatusDelivered,
		DeliveredDate: "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.TripStatusDelivered, delivered.Status)
	assert.Equal(t, "2026-09-01", delivered.DeliveredDate)
	assert.Equal(t, constant.PaymentStatusPending, delivered.PaymentStatus)

	items, err := f.inventory.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	credit := items[0]
	assert.Equal(t, "TRANSFER", credit.FarmerID)
	assert.Equal(t, "Transferred from Pune Warehouse 1", credit.Farmer)
	assert.Equal(t, "Wheat", credit.Product)
	assert.Equal(t, int64(25), credit.Quantity)
	assert.Equal(t, "WH-011", credit.Warehouse)
	assert.Equal(t, "Section A-01", credit.Location)
	assert.Equal(t, "2026-09-01", credit.StoredDate)
	assert.Equal(t, constant.InventoryStatusStored, credit.Status)

	settled, err := f.transfers.GetByID(ctx, approved.ID)
	require.NoError(t, err)
	require.NotNil(t, settled)
	assert.Equal(t, constant.TransferStatusDelivered, settled.Status)
}

func TestDelivery_WithoutDateSkipsCredit(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	approved := f.createApproved(t)

	trip, err := f.app.AssignDriver(ctx, approved.ID, driver())
	require.NoError(t, err)

	_, err = f.app.UpdateTripStatus(ctx, trip.TripID, &model.TripStatusRequest{
		Status: constant.TripStatusDelivered,
	})
	require.NoError(t, err)

	items, err := f.inventory.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDelivery_UnlinkedTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// a trip created outside the transfer chain has no transfer to settle
	orphan, err := f.trips.Create(ctx, &model.Trip{
		Type:        "Internal",
		From:        "Kolhapur Warehouse 1",
		To:          "Satara Warehouse 1",
		Product:     "Rice",
		Quantity:    10,
		Status:      constant.TripStatusAssigned,
		DistanceKM:  180,
		PaymentRate: 15,
		DriverID:    9,
	})
	require.NoError(t, err)

	delivered, err := f.app.UpdateTripStatus(ctx, orphan.TripID, &model.TripStatusRequest{
		Status:        constant.TripStatusDelivered,
		DeliveredDate: "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.TripStatusDelivered, delivered.Status)

	items, err := f.inventory.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTripsByDriver(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, driverID := range []uint64{7, 8, 7} {
		approved := f.createApproved(t)
		req := driver()
		req.DriverID = driverID
		_, err := f.app.AssignDriver(ctx, approved.ID, req)
		require.NoError(t, err)
	}

	mine, err := f.app.TripsByDriver(ctx, 7)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, trip := range mine {
		assert.Equal(t, uint64(7), trip.DriverID)
	}
}

func TestEarnings(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	deliver := func(deliveredDate string) {
		approved := f.createApproved(t)
		trip, err := f.app.AssignDriver(ctx, approved.ID, driver())
		require.NoError(t, err)
		_, err = f.app.UpdateTripStatus(ctx, trip.TripID, &model.TripStatusRequest{
			Status:        constant.TripStatusDelivered,
			DeliveredDate: deliveredDate,
		})
		require.NoError(t, err)
	}

	deliver("2026-08-30")
	deliver("2026-08-31")

	// an assigned trip does not count towards earnings
	approved := f.createApproved(t)
	_, err := f.app.AssignDriver(ctx, approved.ID, driver())
	require.NoError(t, err)

	earnings, err := f.app.Earnings(ctx, 7)
	require.NoError(t, err)

	require.Len(t, earnings.Trips, 2)
	assert.Equal(t, uint64(7), earnings.DriverID)
	assert.Equal(t, float64(180*15*2), earnings.Total)
	for _, line := range earnings.Trips {
		assert.Equal(t, float64(180*15), line.Amount)
		assert.Equal(t, int64(180), line.DistanceKM)
		assert.Equal(t, constant.PaymentStatusPending, line.Status)
	}

	// fresh deliveries are all pending
	assert.Zero(t, earnings.Paid)
	assert.Equal(t, earnings.Total, earnings.Pending)
}

func TestEarnings_PaidPendingSplit(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// one settled payout alongside a fresh delivery
	_, err := f.trips.Create(ctx, &model.Trip{
		Type: "Internal", From: "Pune Warehouse 1", To: "Nashik Warehouse 1",
		Product: "Wheat", Quantity: 25,
		Status: constant.TripStatusDelivered, DistanceKM: 180, PaymentRate: 15,
		DriverID: 7, DeliveredDate: "2026-08-20",
		PaymentStatus: constant.PaymentStatusPaid,
	})
	require.NoError(t, err)

	approved := f.createApproved(t)
	trip, err := f.app.AssignDriver(ctx, approved.ID, driver())
	require.NoError(t, err)
	_, err = f.app.UpdateTripStatus(ctx, trip.TripID, &model.TripStatusRequest{
		Status:        constant.TripStatusDelivered,
		DeliveredDate: "2026-09-01",
	})
	require.NoError(t, err)

	earnings, err := f.app.Earnings(ctx, 7)
	require.NoError(t, err)

	require.Len(t, earnings.Trips, 2)
	assert.Equal(t, float64(180*15*2), earnings.Total)
	assert.Equal(t, float64(180*15), earnings.Paid)
	assert.Equal(t, float64(180*15), earnings.Pending)
	assert.Equal(t, earnings.Total, earnings.Paid+earnings.Pending)
}

func TestEarnings_NoDeliveredTrips(t *testing.T) {
	f := newFixture()

	earnings, err := f.app.Earnings(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, earnings.Trips)
	assert.Zero(t, earnings.Total)
}
