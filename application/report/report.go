package report

import (
	"context"

	"github.com/shreyasbagave/warehouse/catalog"
	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	dispatchrepo "github.com/shreyasbagave/warehouse/repository/dispatch"
	inventoryrepo "github.com/shreyasbagave/warehouse/repository/inventory"
	storagerepo "github.com/shreyasbagave/warehouse/repository/storage"
	transferrepo "github.com/shreyasbagave/warehouse/repository/transfer"
	triprepo "github.com/shreyasbagave/warehouse/repository/trip"
	warehouserepo "github.com/shreyasbagave/warehouse/repository/warehouse"
	"github.com/shreyasbagave/warehouse/utils/errors"
	"github.com/shreyasbagave/warehouse/utils/logger"
	"go.uber.org/zap"
)

// ReportApp computes the dashboard summary across all collections.
type ReportApp interface {
	Summary(ctx context.Context) (*model.ReportSummary, error)
}

type reportAppImpl struct {
	storageRepo   storagerepo.StorageRepository
	inventoryRepo inventoryrepo.InventoryRepository
	transferRepo  transferrepo.TransferRepository
	tripRepo      triprepo.TripRepository
	dispatchRepo  dispatchrepo.DispatchRepository
	warehouseRepo warehouserepo.WarehouseRepository
}

func NewReportApp(
	storageRepo storagerepo.StorageRepository,
	inventoryRepo inventoryrepo.InventoryRepository,
	transferRepo transferrepo.TransferRepository,
	tripRepo triprepo.TripRepository,
	dispatchRepo dispatchrepo.DispatchRepository,
	warehouseRepo warehouserepo.WarehouseRepository,
) ReportApp {
	return &reportAppImpl{
		storageRepo:   storageRepo,
		inventoryRepo: inventoryRepo,
		transferRepo:  transferRepo,
		tripRepo:      tripRepo,
		dispatchRepo:  dispatchRepo,
		warehouseRepo: warehouseRepo,
	}
}

func (s *reportAppImpl) Summary(ctx context.Context) (*model.ReportSummary, error) {
	summary := &model.ReportSummary{
		StorageRequestsByStatus:  make(map[string]int),
		DispatchRequestsByStatus: make(map[string]int),
		TransfersByStatus:        make(map[string]int),
		TripsByStatus:            make(map[string]int),
	}

	storageRequests, err := s.storageRepo.List(ctx)
	if err != nil {
		logger.Error("[Summary] list storage requests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for _, r := range storageRequests {
		summary.StorageRequestsByStatus[string(r.Status)]++
	}

	dispatchRequests, err := s.dispatchRepo.List(ctx)
	if err != nil {
		logger.Error("[Summary] list dispatch requests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for _, r := range dispatchRequests {
		summary.DispatchRequestsByStatus[string(r.Status)]++
	}

	transfers, err := s.transferRepo.List(ctx)
	if err != nil {
		logger.Error("[Summary] list transfers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for _, t := range transfers {
		summary.TransfersByStatus[string(t.Status)]++
	}

	trips, err := s.tripRepo.List(ctx)
	if err != nil {
		logger.Error("[Summary] list trips", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for _, t := range trips {
		summary.TripsByStatus[string(t.Status)]++
	}

	items, err := s.inventoryRepo.List(ctx)
	if err != nil {
		logger.Error("[Summary] list inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	summary.InventoryItems = len(items)
	for _, it := range items {
		summary.InventoryQuantity += it.Quantity
	}

	warehouses, err := s.warehouseRepo.List(ctx)
	if err != nil {
		logger.Error("[Summary] list warehouses", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	summary.Warehouses = catalog.Stats(warehouses)

	return summary, nil
}
