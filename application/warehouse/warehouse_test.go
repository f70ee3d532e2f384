package warehouse_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/shreyasbagave/warehouse/application/warehouse"
	"github.com/shreyasbagave/warehouse/catalog"
	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	warehouserepo "github.com/shreyasbagave/warehouse/repository/warehouse"
	cerr "github.com/shreyasbagave/warehouse/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWarehouseApp(seed []model.Warehouse) warehouse.WarehouseApp {
	return warehouse.NewWarehouseApp(warehouserepo.NewWarehouseRepository(seed))
}

func TestAdd(t *testing.T) {
	app := newWarehouseApp(nil)

	created, err := app.Add(context.Background(), &model.WarehouseRequest{
		Name:     "Pune Warehouse 9",
		Location: "Pune",
		Region:   "Pune",
		District: "Pune",
		Capacity: 1000,
		Occupied: 650,
	})
	require.NoError(t, err)

	assert.Equal(t, "WH-001", created.ID)
	assert.Equal(t, int64(350), created.Available)
	assert.Equal(t, int64(65), created.Utilization)
}

func TestAdd_ContinuesCatalogNumbering(t *testing.T) {
	seed := catalog.Generate(rand.New(rand.NewSource(1)), 300)
	app := newWarehouseApp(seed)

	created, err := app.Add(context.Background(), &model.WarehouseRequest{
		Name: "New Warehouse", Location: "Pune", Region: "Pune", District: "Pune",
		Capacity: 800, Occupied: 400,
	})
	require.NoError(t, err)
	assert.Equal(t, "WH-301", created.ID)
}

func TestUpdate(t *testing.T) {
	app := newWarehouseApp(nil)
	ctx := context.Background()

	created, err := app.Add(ctx, &model.WarehouseRequest{
		Name: "Old Name", Location: "Pune", Region: "Pune", District: "Pune",
		Capacity: 1000, Occupied: 500,
	})
	require.NoError(t, err)

	updated, err := app.Update(ctx, created.ID, &model.WarehouseRequest{
		Name: "New Name", Location: "Pune", Region: "Pune", District: "Pune",
		Capacity: 1200, Occupied: 600,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, int64(600), updated.Available)
	assert.Equal(t, int64(50), updated.Utilization)

	fetched, err := app.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", fetched.Name)
}

func TestUpdate_Unknown(t *testing.T) {
	app := newWarehouseApp(nil)

	_, err := app.Update(context.Background(), "WH-999", &model.WarehouseRequest{
		Name: "Ghost", Location: "Pune", Region: "Pune", District: "Pune", Capacity: 100,
	})
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrNotFound))
}

func TestDelete(t *testing.T) {
	app := newWarehouseApp(nil)
	ctx := context.Background()

	created, err := app.Add(ctx, &model.WarehouseRequest{
		Name: "Doomed", Location: "Pune", Region: "Pune", District: "Pune",
		Capacity: 100, Occupied: 50,
	})
	require.NoError(t, err)

	require.NoError(t, app.Delete(ctx, created.ID))

	_, err = app.Get(ctx, created.ID)
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrNotFound))

	err = app.Delete(ctx, created.ID)
	require.ErrorIs(t, err, cerr.SetCustomError(constant.ErrNotFound))
}

func TestList_Filters(t *testing.T) {
	seed := catalog.Generate(rand.New(rand.NewSource(5)), 300)
	app := newWarehouseApp(seed)
	ctx := context.Background()

	all, err := app.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 300)

	pune, err := app.List(ctx, "Pune", "")
	require.NoError(t, err)
	require.NotEmpty(t, pune)
	for _, w := range pune {
		assert.Equal(t, "Pune", w.Region)
	}

	baramati, err := app.List(ctx, "Pune", "Baramati")
	require.NoError(t, err)
	require.NotEmpty(t, baramati)
	for _, w := range baramati {
		assert.Equal(t, "Baramati", w.District)
	}

	none, err := app.List(ctx, "Pune", "Nagpur")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStats_MatchesRoster(t *testing.T) {
	seed := catalog.Generate(rand.New(rand.NewSource(13)), 300)
	app := newWarehouseApp(seed)

	stats, err := app.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 300, stats.TotalWarehouses)
	assert.Equal(t, stats.TotalCapacity, stats.TotalOccupied+stats.TotalAvailable)
}
