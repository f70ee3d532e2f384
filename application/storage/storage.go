package storage

import (
	"context"
	"time"

	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	inventoryrepo "github.com/shreyasbagave/warehouse/repository/inventory"
	storagerepo "github.com/shreyasbagave/warehouse/repository/storage"
	"github.com/shreyasbagave/warehouse/utils/errors"
	"github.com/shreyasbagave/warehouse/utils/logger"
	"go.uber.org/zap"
)

// StorageApp covers the farmer storage workflow: submit a request, have it
// decided by the warehouse, and take approved goods into inventory.
type StorageApp interface {
	SubmitRequest(ctx context.Context, req *model.StorageRequestInput) (*model.StorageRequest, error)
	Decide(ctx context.Context, requestID uint64, paymentAmount *float64) (*model.StorageRequest, error)
	ListRequests(ctx context.Context) ([]model.StorageRequest, error)
	ListRequestsByFarmer(ctx context.Context, farmerID string) ([]model.StorageRequest, error)
	Intake(ctx context.Context, req *model.IntakeRequest) (*model.InventoryItem, error)
	ListInventory(ctx context.Context) ([]model.InventoryItem, error)
	ListInventoryByWarehouse(ctx context.Context, warehouse string) ([]model.InventoryItem, error)
}

type storageAppImpl struct {
	storageRepo   storagerepo.StorageRepository
	inventoryRepo inventoryrepo.InventoryRepository
}

func NewStorageApp(storageRepo storagerepo.StorageRepository, inventoryRepo inventoryrepo.InventoryRepository) StorageApp {
	return &storageAppImpl{
		storageRepo:   storageRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (s *storageAppImpl) SubmitRequest(ctx context.Context, req *model.StorageRequestInput) (*model.StorageRequest, error) {
	unit := req.Unit
	if unit == "" {
		unit = "tonnes"
	}

	request := &model.StorageRequest{
		FarmerID:     req.FarmerID,
		FarmerName:   req.FarmerName,
		Product:      req.Product,
		Quantity:     req.Quantity,
		Unit:         unit,
		Warehouse:    req.Warehouse,
		StorageType:  req.StorageType,
		Quality:      req.Quality,
		ExpectedDate: req.ExpectedDate,
		RequestDate:  today(),
		Status:       constant.StorageStatusPending,
	}

	created, err := s.storageRepo.Create(ctx, request)
	if err != nil {
		logger.Error("[SubmitRequest] create storage request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

// Decide settles a pending request. A nil payment amount rejects it; a value
// approves it and records the payment. Already-decided requests stay as they
// are.
func (s *storageAppImpl) Decide(ctx context.Context, requestID uint64, paymentAmount *float64) (*model.StorageRequest, error) {
	request, err := s.storageRepo.GetByID(ctx, requestID)
	if err != nil {
		logger.Error("[Decide] get storage request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if request == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if request.Status != constant.StorageStatusPending {
		return nil, errors.SetCustomError(constant.ErrInvalidStatus)
	}

	if paymentAmount == nil {
		request.Status = constant.StorageStatusRejected
	} else {
		request.Status = constant.StorageStatusApproved
		request.PaymentAmount = paymentAmount
	}
	request.ApprovedDate = today()

	if err := s.storageRepo.Update(ctx, request); err != nil {
		logger.Error("[Decide] update storage request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return request, nil
}

func (s *storageAppImpl) ListRequests(ctx context.Context) ([]model.StorageRequest, error) {
	requests, err := s.storageRepo.List(ctx)
	if err != nil {
		logger.Error("[ListRequests] list storage requests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return requests, nil
}

func (s *storageAppImpl) ListRequestsByFarmer(ctx context.Context, farmerID string) ([]model.StorageRequest, error) {
	requests, err := s.storageRepo.ListByFarmer(ctx, farmerID)
	if err != nil {
		logger.Error("[ListRequestsByFarmer] list storage requests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return requests, nil
}

// Intake records goods arriving at a warehouse as a new inventory item.
// Warehouse capacity figures are deliberately not touched.
func (s *storageAppImpl) Intake(ctx context.Context, req *model.IntakeRequest) (*model.InventoryItem, error) {
	unit := req.Unit
	if unit == "" {
		unit = "tonnes"
	}
	storedDate := req.StoredDate
	if storedDate == "" {
		storedDate = today()
	}

	item := &model.InventoryItem{
		FarmerID:   req.FarmerID,
		Farmer:     req.Farmer,
		Product:    req.Product,
		Quantity:   req.Quantity,
		Unit:       unit,
		Quality:    req.Quality,
		Status:     constant.InventoryStatusStored,
		Location:   req.Location,
		Warehouse:  req.Warehouse,
		StoredDate: storedDate,
	}

	created, err := s.inventoryRepo.Create(ctx, item)
	if err != nil {
		logger.Error("[Intake] create inventory item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

func (s *storageAppImpl) ListInventory(ctx context.Context) ([]model.InventoryItem, error) {
	items, err := s.inventoryRepo.List(ctx)
	if err != nil {
		logger.Error("[ListInventory] list inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *storageAppImpl) ListInventoryByWarehouse(ctx context.Context, warehouse string) ([]model.InventoryItem, error) {
	items, err := s.inventoryRepo.ListByWarehouse(ctx, warehouse)
	if err != nil {
		logger.Error("[ListInventoryByWarehouse] list inventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}
