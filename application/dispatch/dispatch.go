package dispatch

import (
	"context"
	"time"

	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	dispatchrepo "github.com/shreyasbagave/warehouse/repository/dispatch"
	"github.com/shreyasbagave/warehouse/utils/errors"
	"github.com/shreyasbagave/warehouse/utils/logger"
	"go.uber.org/zap"
)

// DispatchApp covers the farmer dispatch workflow: produce leaving a
// warehouse for sale or transfer out of the system.
type DispatchApp interface {
	SubmitRequest(ctx context.Context, req *model.DispatchRequestInput) (*model.DispatchRequest, error)
	Approve(ctx context.Context, requestID uint64) (*model.DispatchRequest, error)
	ListRequests(ctx context.Context) ([]model.DispatchRequest, error)
}

type dispatchAppImpl struct {
	dispatchRepo dispatchrepo.DispatchRepository
}

func NewDispatchApp(dispatchRepo dispatchrepo.DispatchRepository) DispatchApp {
	return &dispatchAppImpl{dispatchRepo: dispatchRepo}
}

func (s *dispatchAppImpl) SubmitRequest(ctx context.Context, req *model.DispatchRequestInput) (*model.DispatchRequest, error) {
	unit := req.Unit
	if unit == "" {
		unit = "tonnes"
	}

	request := &model.DispatchRequest{
		FarmerID:    req.FarmerID,
		FarmerName:  req.FarmerName,
		InventoryID: req.InventoryID,
		Product:     req.Product,
		Quantity:    req.Quantity,
		Unit:        unit,
		From:        req.From,
		To:          req.To,
		RequestDate: today(),
		Status:      constant.DispatchStatusPending,
	}

	created, err := s.dispatchRepo.Create(ctx, request)
	if err != nil {
		logger.Error("[SubmitRequest] create dispatch request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

func (s *dispatchAppImpl) Approve(ctx context.Context, requestID uint64) (*model.DispatchRequest, error) {
	request, err := s.dispatchRepo.GetByID(ctx, requestID)
	if err != nil {
		logger.Error("[Approve] get dispatch request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if request == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if request.Status != constant.DispatchStatusPending {
		return nil, errors.SetCustomError(constant.ErrInvalidStatus)
	}

	request.Status = constant.DispatchStatusApproved
	request.ApprovedDate = today()

	if err := s.dispatchRepo.Update(ctx, request); err != nil {
		logger.Error("[Approve] update dispatch request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return request, nil
}

func (s *dispatchAppImpl) ListRequests(ctx context.Context) ([]model.DispatchRequest, error) {
	requests, err := s.dispatchRepo.List(ctx)
	if err != nil {
		logger.Error("[ListRequests] list dispatch requests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return requests, nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}
