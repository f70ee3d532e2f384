package report_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/shreyasbagave/warehouse/application/report"
	"github.com/shreyasbagave/warehouse/catalog"
	"github.com/shreyasbagave/warehouse/constant"
	dispatchrepo "github.com/shreyasbagave/warehouse/repository/dispatch"
	inventoryrepo "github.com/shreyasbagave/warehouse/repository/inventory"
	"github.com/shreyasbagave/warehouse/repository/sequence"
	storagerepo "github.com/shreyasbagave/warehouse/repository/storage"
	transferrepo "github.com/shreyasbagave/warehouse/repository/transfer"
	triprepo "github.com/shreyasbagave/warehouse/repository/trip"
	warehouserepo "github.com/shreyasbagave/warehouse/repository/warehouse"
	"github.com/shreyasbagave/warehouse/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_Empty(t *testing.T) {
	seq := sequence.New(0)
	app := report.NewReportApp(
		storagerepo.NewStorageRepository(seq),
		inventoryrepo.NewInventoryRepository(seq),
		transferrepo.NewTransferRepository(seq),
		triprepo.NewTripRepository(seq),
		dispatchrepo.NewDispatchRepository(seq),
		warehouserepo.NewWarehouseRepository(nil),
	)

	summary, err := app.Summary(context.Background())
	require.NoError(t, err)

	assert.Empty(t, summary.StorageRequestsByStatus)
	assert.Zero(t, summary.InventoryItems)
	assert.Zero(t, summary.InventoryQuantity)
	assert.Zero(t, summary.Warehouses.TotalWarehouses)
}

func TestSummary_DemoData(t *testing.T) {
	ctx := context.Background()
	seq := sequence.New(0)

	repos := seed.Repos{
		Storage:   storagerepo.NewStorageRepository(seq),
		Inventory: inventoryrepo.NewInventoryRepository(seq),
		Transfer:  transferrepo.NewTransferRepository(seq),
		Trip:      triprepo.NewTripRepository(seq),
		Dispatch:  dispatchrepo.NewDispatchRepository(seq),
	}
	require.NoError(t, seed.Demo(ctx, repos))

	roster := catalog.Generate(rand.New(rand.NewSource(1)), 300)
	app := report.NewReportApp(
		repos.Storage,
		repos.Inventory,
		repos.Transfer,
		repos.Trip,
		repos.Dispatch,
		warehouserepo.NewWarehouseRepository(roster),
	)

	summary, err := app.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.StorageRequestsByStatus[string(constant.StorageStatusPending)])
	assert.Equal(t, 1, summary.DispatchRequestsByStatus[string(constant.DispatchStatusPending)])
	assert.Equal(t, 1, summary.TransfersByStatus[string(constant.TransferStatusPending)])
	assert.Equal(t, 1, summary.TransfersByStatus[string(constant.TransferStatusInTransit)])
	assert.Equal(t, 1, summary.TripsByStatus[string(constant.TripStatusAssigned)])
	assert.Equal(t, 1, summary.TripsByStatus[string(constant.TripStatusInTransit)])
	assert.Equal(t, 2, summary.InventoryItems)
	assert.Positive(t, summary.InventoryQuantity)
	assert.Equal(t, 300, summary.Warehouses.TotalWarehouses)
}
