package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	ctxutil "github.com/shreyasbagave/warehouse/utils/context"
	"github.com/shreyasbagave/warehouse/utils/errors"
	validatorx "github.com/shreyasbagave/warehouse/utils/validator"
)

// driverIDFor resolves the driver a trips/earnings query is about. A caller
// with the driver role is always scoped to their own ID; other roles may query
// any driver by path.
func driverIDFor(r *http.Request) (uint64, error) {
	if role, ok := ctxutil.GetUserRole(r.Context()); ok && role == constant.RoleDriver {
		if id, ok := ctxutil.GetUserID(r.Context()); ok {
			return id, nil
		}
	}
	return pathID(r, "driverId")
}

// ListTransfers handler
// @Summary List transfer requests
// @Tags Transfers
// @Produce json
// @Success 200 {array} model.TransferRequest
// @Router /transfers [get]
func (s *RestHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	res, err := s.TransferApp.ListTransfers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateTransfer handler
// @Summary Create transfer request
// @Description Request a warehouse-to-warehouse movement
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body model.TransferRequestInput true "Transfer Request"
// @Success 200 {object} model.TransferRequest
// @Failure 400 {object} transport.Response
// @Router /transfers [post]
func (s *RestHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req model.TransferRequestInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransferApp.CreateRequest(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ApproveTransfer handler
// @Summary Approve transfer
// @Tags Transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} model.TransferRequest
// @Failure 400 {object} transport.Response
// @Router /transfers/{id}/approve [post]
func (s *RestHandler) ApproveTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransferApp.Approve(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RejectTransfer handler
// @Summary Reject transfer
// @Tags Transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} model.TransferRequest
// @Failure 400 {object} transport.Response
// @Router /transfers/{id}/reject [post]
func (s *RestHandler) RejectTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransferApp.Reject(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AssignDriver handler
// @Summary Assign driver to transfer
// @Description Creates the trip and moves the transfer to In Transit
// @Tags Transfers
// @Accept json
// @Produce json
// @Param id path int true "Transfer ID"
// @Param request body model.AssignDriverRequest true "Driver assignment"
// @Success 200 {object} model.Trip
// @Failure 400 {object} transport.Response
// @Router /transfers/{id}/assign [post]
func (s *RestHandler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AssignDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransferApp.AssignDriver(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListTrips handler
// @Summary List trips
// @Tags Trips
// @Produce json
// @Success 200 {array} model.Trip
// @Router /trips [get]
func (s *RestHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	res, err := s.TransferApp.ListTrips(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateTripStatus handler
// @Summary Update trip status
// @Description Move a trip forward; delivery credits the destination warehouse
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID (TRP-NNNNNN)"
// @Param request body model.TripStatusRequest true "Status update"
// @Success 200 {object} model.Trip
// @Failure 400 {object} transport.Response
// @Router /trips/{tripId}/status [post]
func (s *RestHandler) UpdateTripStatus(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["tripId"]

	var req model.TripStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransferApp.UpdateTripStatus(r.Context(), tripID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DriverTrips handler
// @Summary Trips for a driver
// @Tags Trips
// @Produce json
// @Param driverId path int true "Driver ID"
// @Success 200 {array} model.Trip
// @Failure 400 {object} transport.Response
// @Router /drivers/{driverId}/trips [get]
func (s *RestHandler) DriverTrips(w http.ResponseWriter, r *http.Request) {
	driverID, err := driverIDFor(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransferApp.TripsByDriver(r.Context(), driverID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DriverEarnings handler
// @Summary Driver earnings
// @Description Delivered-trip payouts for one driver
// @Tags Trips
// @Produce json
// @Param driverId path int true "Driver ID"
// @Success 200 {object} model.EarningsResponse
// @Failure 400 {object} transport.Response
// @Router /drivers/{driverId}/earnings [get]
func (s *RestHandler) DriverEarnings(w http.ResponseWriter, r *http.Request) {
	driverID, err := driverIDFor(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransferApp.Earnings(r.Context(), driverID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
