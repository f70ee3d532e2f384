package warehouse

import (
	"context"

	"github.com/shreyasbagave/warehouse/catalog"
	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	warehouserepo "github.com/shreyasbagave/warehouse/repository/warehouse"
	"github.com/shreyasbagave/warehouse/utils/errors"
	"github.com/shreyasbagave/warehouse/utils/logger"
	"go.uber.org/zap"
)

// WarehouseApp is the admin surface over the warehouse roster.
type WarehouseApp interface {
	Add(ctx context.Context, req *model.WarehouseRequest) (*model.Warehouse, error)
	Update(ctx context.Context, warehouseID string, req *model.WarehouseRequest) (*model.Warehouse, error)
	Delete(ctx context.Context, warehouseID string) error
	List(ctx context.Context, region, district string) ([]model.Warehouse, error)
	Get(ctx context.Context, warehouseID string) (*model.Warehouse, error)
	Stats(ctx context.Context) (*model.WarehouseStats, error)
}

type warehouseAppImpl struct {
	warehouseRepo warehouserepo.WarehouseRepository
}

func NewWarehouseApp(warehouseRepo warehouserepo.WarehouseRepository) WarehouseApp {
	return &warehouseAppImpl{warehouseRepo: warehouseRepo}
}

func (s *warehouseAppImpl) Add(ctx context.Context, req *model.WarehouseRequest) (*model.Warehouse, error) {
	w := fromRequest(req)
	created, err := s.warehouseRepo.Create(ctx, w)
	if err != nil {
		logger.Error("[Add] create warehouse", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

// Update replaces the whole record with the submitted fields. Capacity
// figures are taken verbatim; nothing is reconciled against inventory.
func (s *warehouseAppImpl) Update(ctx context.Context, warehouseID string, req *model.WarehouseRequest) (*model.Warehouse, error) {
	existing, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[Update] get warehouse", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	w := fromRequest(req)
	w.ID = warehouseID
	if err := s.warehouseRepo.Update(ctx, w); err != nil {
		logger.Error("[Update] update warehouse", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return w, nil
}

func (s *warehouseAppImpl) Delete(ctx context.Context, warehouseID string) error {
	existing, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[Delete] get warehouse", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.warehouseRepo.Delete(ctx, warehouseID); err != nil {
		logger.Error("[Delete] delete warehouse", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *warehouseAppImpl) List(ctx context.Context, region, district string) ([]model.Warehouse, error) {
	warehouses, err := s.warehouseRepo.List(ctx)
	if err != nil {
		logger.Error("[List] list warehouses", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if region != "" {
		warehouses = catalog.ByRegion(warehouses, region)
	}
	if district != "" {
		warehouses = catalog.ByDistrict(warehouses, district)
	}
	return warehouses, nil
}

func (s *warehouseAppImpl) Get(ctx context.Context, warehouseID string) (*model.Warehouse, error) {
	w, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[Get] get warehouse", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if w == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return w, nil
}

func (s *warehouseAppImpl) Stats(ctx context.Context) (*model.WarehouseStats, error) {
	warehouses, err := s.warehouseRepo.List(ctx)
	if err != nil {
		logger.Error("[Stats] list warehouses", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	stats := catalog.Stats(warehouses)
	return &stats, nil
}

func fromRequest(req *model.WarehouseRequest) *model.Warehouse {
	available := req.Capacity - req.Occupied
	var utilization int64
	if req.Capacity > 0 {
		utilization = (req.Occupied*100 + req.Capacity/2) / req.Capacity
	}
	return &model.Warehouse{
		Name:        req.Name,
		Location:    req.Location,
		Region:      req.Region,
		District:    req.District,
		Capacity:    req.Capacity,
		Occupied:    req.Occupied,
		Available:   available,
		Utilization: utilization,
		Products:    req.Products,
	}
}
