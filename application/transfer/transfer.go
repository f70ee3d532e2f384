package transfer

import (
	"context"
	"time"

	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	inventoryrepo "github.com/shreyasbagave/warehouse/repository/inventory"
	transferrepo "github.com/shreyasbagave/warehouse/repository/transfer"
	triprepo "github.com/shreyasbagave/warehouse/repository/trip"
	"github.com/shreyasbagave/warehouse/thirdparty/rabbitmq"
	"github.com/shreyasbagave/warehouse/utils/errors"
	"github.com/shreyasbagave/warehouse/utils/logger"
	"go.uber.org/zap"
)

// Flat mock figures for every trip; route-derived values are out of scope.
const (
	tripDistanceKM  = 180
	tripPaymentRate = 15
	tripDuration    = 8 * time.Hour
)

// TransferApp covers warehouse-to-warehouse movements: the transfer request
// chain (approve, assign a driver, deliver) and the trips executing it.
type TransferApp interface {
	CreateRequest(ctx context.Context, req *model.TransferRequestInput) (*model.TransferRequest, error)
	Approve(ctx context.Context, transferID uint64) (*model.TransferRequest, error)
	Reject(ctx context.Context, transferID uint64) (*model.TransferRequest, error)
	AssignDriver(ctx context.Context, transferID uint64, req *model.AssignDriverRequest) (*model.Trip, error)
	UpdateTripStatus(ctx context.Context, tripID string, req *model.TripStatusRequest) (*model.Trip, error)
	ListTransfers(ctx context.Context) ([]model.TransferRequest, error)
	ListTrips(ctx context.Context) ([]model.Trip, error)
	TripsByDriver(ctx context.Context, driverID uint64) ([]model.Trip, error)
	Earnings(ctx context.Context, driverID uint64) (*model.EarningsResponse, error)
}

type transferAppImpl struct {
	transferRepo  transferrepo.TransferRepository
	tripRepo      triprepo.TripRepository
	inventoryRepo inventoryrepo.InventoryRepository
	publisher     *rabbitmq.Publisher
}

func NewTransferApp(transferRepo transferrepo.TransferRepository, tripRepo triprepo.TripRepository, inventoryRepo inventoryrepo.InventoryRepository, publisher *rabbitmq.Publisher) TransferApp {
	return &transferAppImpl{
		transferRepo:  transferRepo,
		tripRepo:      tripRepo,
		inventoryRepo: inventoryRepo,
		publisher:     publisher,
	}
}

func (s *transferAppImpl) CreateRequest(ctx context.Context, req *model.TransferRequestInput) (*model.TransferRequest, error) {
	requestedBy := req.RequestedBy
	if requestedBy == "" {
		requestedBy = "Warehouse Manager"
	}

	transfer := &model.TransferRequest{
		From:          req.From,
		FromWarehouse: req.FromWarehouse,
		To:            req.To,
		ToWarehouse:   req.ToWarehouse,
		Product:       req.Product,
		Quantity:      req.Quantity,
		RequestDate:   today(),
		RequestedBy:   requestedBy,
		Status:        constant.TransferStatusPending,
	}

	created, err := s.transferRepo.Create(ctx, transfer)
	if err != nil {
		logger.Error("[CreateRequest] create transfer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

func (s *transferAppImpl) Approve(ctx context.Context, transferID uint64) (*model.TransferRequest, error) {
	transfer, err := s.getPending(ctx, transferID)
	if err != nil {
		return nil, err
	}

	transfer.Status = constant.TransferStatusApproved
	transfer.ApprovedDate = today()

	if err := s.transferRepo.Update(ctx, transfer); err != nil {
		logger.Error("[Approve] update transfer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return transfer, nil
}

func (s *transferAppImpl) Reject(ctx context.Context, transferID uint64) (*model.TransferRequest, error) {
	transfer, err := s.getPending(ctx, transferID)
	if err != nil {
		return nil, err
	}

	transfer.Status = constant.TransferStatusRejected
	transfer.RejectedDate = today()

	if err := s.transferRepo.Update(ctx, transfer); err != nil {
		logger.Error("[Reject] update transfer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return transfer, nil
}

func (s *transferAppImpl) getPending(ctx context.Context, transferID uint64) (*model.TransferRequest, error) {
	transfer, err := s.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		logger.Error("[getPending] get transfer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if transfer == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if transfer.Status != constant.TransferStatusPending {
		return nil, errors.SetCustomError(constant.ErrInvalidStatus)
	}
	return transfer, nil
}

// AssignDriver creates the trip executing an approved transfer and moves the
// transfer to In Transit. A transfer that is already on the road cannot be
// assigned again, so no duplicate trips can exist for one transfer.
func (s *transferAppImpl) AssignDriver(ctx context.Context, transferID uint64, req *model.AssignDriverRequest) (*model.Trip, error) {
	transfer, err := s.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		logger.Error("[AssignDriver] get transfer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if transfer == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if transfer.Status != constant.TransferStatusApproved {
		return nil, errors.SetCustomError(constant.ErrInvalidStatus)
	}

	now := time.Now()
	trip := &model.Trip{
		Type:           "Internal",
		TransferID:     transfer.TransferID,
		From:           transfer.From,
		To:             transfer.To,
		Product:        transfer.Product,
		Quantity:       transfer.Quantity,
		ScheduledStart: now.Format(time.RFC3339),
		ScheduledEnd:   now.Add(tripDuration).Format(time.RFC3339),
		Status:         constant.TripStatusAssigned,
		DistanceKM:     tripDistanceKM,
		PaymentRate:    tripPaymentRate,
		VehicleNumber:  req.VehicleNumber,
		DriverID:       req.DriverID,
		DriverName:     req.DriverName,
		AssignedDate:   today(),
	}

	trip, err = s.tripRepo.Create(ctx, trip)
	if err != nil {
		logger.Error("[AssignDriver] create trip", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	transfer.Status = constant.TransferStatusInTransit
	transfer.Vehicle = req.VehicleNumber
	transfer.Driver = req.DriverName
	transfer.TripID = trip.TripID
	if err := s.transferRepo.Update(ctx, transfer); err != nil {
		logger.Error("[AssignDriver] update transfer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publish(trip)
	return trip, nil
}

var tripStatusRank = map[constant.TripStatus]int{
	constant.TripStatusAssigned:  0,
	constant.TripStatusInTransit: 1,
	constant.TripStatusDelivered: 2,
}

// UpdateTripStatus moves a trip forward through its lifecycle. Delivery with
// a delivered date credits the destination warehouse's inventory and settles
// the linked transfer; a trip without a matching transfer still delivers,
// just without the inventory credit.
func (s *transferAppImpl) UpdateTripStatus(ctx context.Context, tripID string, req *model.TripStatusRequest) (*model.Trip, error) {
	trip, err := s.tripRepo.GetByTripID(ctx, tripID)
	if err != nil {
		logger.Error("[UpdateTripStatus] get trip", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if trip == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if tripStatusRank[req.Status] <= tripStatusRank[trip.Status] {
		return nil, errors.SetCustomError(constant.ErrInvalidStatus)
	}

	trip.Status = req.Status
	if req.CurrentLocation != "" {
		trip.CurrentLocation = req.CurrentLocation
	}
	if req.DeliveredDate != "" {
		trip.DeliveredDate = req.DeliveredDate
	}
	if req.Status == constant.TripStatusDelivered {
		trip.PaymentStatus = constant.PaymentStatusPending
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		logger.Error("[UpdateTripStatus] update trip", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if req.Status == constant.TripStatusDelivered && req.DeliveredDate != "" {
		if err := s.settleDelivery(ctx, trip, req.DeliveredDate); err != nil {
			return nil, err
		}
	}

	s.publish(trip)
	return trip, nil
}

// settleDelivery credits the destination warehouse and marks the transfer
// Delivered. A missing transfer link skips the credit without failing the
// trip update.
func (s *transferAppImpl) settleDelivery(ctx context.Context, trip *model.Trip, deliveredDate string) error {
	transfer, err := s.transferRepo.GetByTripID(ctx, trip.TripID)
	if err != nil {
		logger.Error("[settleDelivery] get transfer", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if transfer == nil {
		logger.Warn("[settleDelivery] no transfer linked to trip", zap.String("trip_id", trip.TripID))
		return nil
	}

	item := &model.InventoryItem{
		FarmerID:   "TRANSFER",
		Farmer:     "Transferred from " + transfer.From,
		Product:    trip.Product,
		Quantity:   trip.Quantity,
		Unit:       "tonnes",
		Quality:    "A",
		Status:     constant.InventoryStatusStored,
		Location:   "Section A-01",
		Warehouse:  transfer.ToWarehouse,
		StoredDate: deliveredDate,
	}
	if _, err := s.inventoryRepo.Create(ctx, item); err != nil {
		logger.Error("[settleDelivery] create inventory", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	transfer.Status = constant.TransferStatusDelivered
	if err := s.transferRepo.Update(ctx, transfer); err != nil {
		logger.Error("[settleDelivery] update transfer", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *transferAppImpl) ListTransfers(ctx context.Context) ([]model.TransferRequest, error) {
	transfers, err := s.transferRepo.List(ctx)
	if err != nil {
		logger.Error("[ListTransfers] list transfers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return transfers, nil
}

func (s *transferAppImpl) ListTrips(ctx context.Context) ([]model.Trip, error) {
	trips, err := s.tripRepo.List(ctx)
	if err != nil {
		logger.Error("[ListTrips] list trips", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return trips, nil
}

func (s *transferAppImpl) TripsByDriver(ctx context.Context, driverID uint64) ([]model.Trip, error) {
	trips, err := s.tripRepo.ListByDriver(ctx, driverID)
	if err != nil {
		logger.Error("[TripsByDriver] list trips", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return trips, nil
}

// Earnings sums delivered-trip payouts for one driver: distance times the
// flat payment rate per trip, split into paid and still-pending totals.
func (s *transferAppImpl) Earnings(ctx context.Context, driverID uint64) (*model.EarningsResponse, error) {
	trips, err := s.tripRepo.ListByDriver(ctx, driverID)
	if err != nil {
		logger.Error("[Earnings] list trips", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.EarningsResponse{DriverID: driverID, Trips: make([]model.TripEarning, 0)}
	for _, t := range trips {
		if t.Status != constant.TripStatusDelivered {
			continue
		}
		amount := float64(t.DistanceKM) * t.PaymentRate
		paymentStatus := t.PaymentStatus
		if paymentStatus == "" {
			paymentStatus = constant.PaymentStatusPending
		}
		resp.Trips = append(resp.Trips, model.TripEarning{
			TripID:     t.TripID,
			From:       t.From,
			To:         t.To,
			DistanceKM: t.DistanceKM,
			Amount:     amount,
			Date:       t.DeliveredDate,
			Status:     paymentStatus,
		})
		resp.Total += amount
		if paymentStatus == constant.PaymentStatusPaid {
			resp.Paid += amount
		} else {
			resp.Pending += amount
		}
	}
	return resp, nil
}

func (s *transferAppImpl) publish(trip *model.Trip) {
	msg := rabbitmq.TripEventMessage{
		TripID:     trip.TripID,
		TransferID: trip.TransferID,
		Status:     string(trip.Status),
		DriverID:   trip.DriverID,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishTripEvent(msg); err != nil {
		logger.Error("[publish] publish trip event", zap.String("error", err.Error()))
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}
