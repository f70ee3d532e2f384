package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	"github.com/shreyasbagave/warehouse/utils/errors"
	validatorx "github.com/shreyasbagave/warehouse/utils/validator"
)

func pathID(r *http.Request, key string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[key], 10, 64)
}

// ListStorageRequests handler
// @Summary List storage requests
// @Tags Storage
// @Produce json
// @Param farmer_id query string false "Filter by farmer"
// @Success 200 {array} model.StorageRequest
// @Router /storage-requests [get]
func (s *RestHandler) ListStorageRequests(w http.ResponseWriter, r *http.Request) {
	farmerID := r.URL.Query().Get("farmer_id")

	var (
		res []model.StorageRequest
		err error
	)
	if farmerID != "" {
		res, err = s.StorageApp.ListRequestsByFarmer(r.Context(), farmerID)
	} else {
		res, err = s.StorageApp.ListRequests(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubmitStorageRequest handler
// @Summary Submit storage request
// @Description Farmer asks to place produce into a warehouse
// @Tags Storage
// @Accept json
// @Produce json
// @Param request body model.StorageRequestInput true "Storage Request"
// @Success 200 {object} model.StorageRequest
// @Failure 400 {object} transport.Response
// @Router /storage-requests [post]
func (s *RestHandler) SubmitStorageRequest(w http.ResponseWriter, r *http.Request) {
	var req model.StorageRequestInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StorageApp.SubmitRequest(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DecideStorageRequest handler
// @Summary Decide storage request
// @Description Approve (payment_amount set) or reject (payment_amount null) a pending request
// @Tags Storage
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body model.StorageDecisionRequest true "Decision"
// @Success 200 {object} model.StorageRequest
// @Failure 400 {object} transport.Response
// @Router /storage-requests/{id}/decision [post]
func (s *RestHandler) DecideStorageRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.StorageDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StorageApp.Decide(r.Context(), id, req.PaymentAmount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListInventory handler
// @Summary List inventory
// @Tags Inventory
// @Produce json
// @Param warehouse query string false "Filter by warehouse"
// @Success 200 {array} model.InventoryItem
// @Router /inventory [get]
func (s *RestHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	warehouse := r.URL.Query().Get("warehouse")

	var (
		res []model.InventoryItem
		err error
	)
	if warehouse != "" {
		res, err = s.StorageApp.ListInventoryByWarehouse(r.Context(), warehouse)
	} else {
		res, err = s.StorageApp.ListInventory(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// IntakeInventory handler
// @Summary Intake goods
// @Description Record goods arriving at a warehouse as a new inventory item
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.IntakeRequest true "Intake"
// @Success 200 {object} model.InventoryItem
// @Failure 400 {object} transport.Response
// @Router /inventory [post]
func (s *RestHandler) IntakeInventory(w http.ResponseWriter, r *http.Request) {
	var req model.IntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StorageApp.Intake(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
