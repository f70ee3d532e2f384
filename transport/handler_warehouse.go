package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	"github.com/shreyasbagave/warehouse/utils/errors"
	validatorx "github.com/shreyasbagave/warehouse/utils/validator"
)

// ListWarehouses handler
// @Summary List warehouses
// @Description List warehouses, optionally filtered by region and district
// @Tags Warehouses
// @Produce json
// @Param region query string false "Region name"
// @Param district query string false "District name"
// @Success 200 {array} model.Warehouse
// @Router /warehouses [get]
func (s *RestHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	district := r.URL.Query().Get("district")

	res, err := s.WarehouseApp.List(r.Context(), region, district)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddWarehouse handler
// @Summary Add warehouse
// @Description Add a warehouse to the roster; the id is assigned
// @Tags Warehouses
// @Accept json
// @Produce json
// @Param request body model.WarehouseRequest true "Warehouse"
// @Success 200 {object} model.Warehouse
// @Failure 400 {object} transport.Response
// @Router /warehouses [post]
func (s *RestHandler) AddWarehouse(w http.ResponseWriter, r *http.Request) {
	var req model.WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.Add(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetWarehouse handler
// @Summary Get warehouse
// @Tags Warehouses
// @Produce json
// @Param id path string true "Warehouse ID (WH-NNN)"
// @Success 200 {object} model.Warehouse
// @Failure 400 {object} transport.Response
// @Router /warehouses/{id} [get]
func (s *RestHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	res, err := s.WarehouseApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateWarehouse handler
// @Summary Update warehouse
// @Description Replace a warehouse record; capacity figures are taken verbatim
// @Tags Warehouses
// @Accept json
// @Produce json
// @Param id path string true "Warehouse ID (WH-NNN)"
// @Param request body model.WarehouseRequest true "Warehouse"
// @Success 200 {object} model.Warehouse
// @Failure 400 {object} transport.Response
// @Router /warehouses/{id} [put]
func (s *RestHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteWarehouse handler
// @Summary Delete warehouse
// @Description Remove a warehouse; references elsewhere are left dangling
// @Tags Warehouses
// @Produce json
// @Param id path string true "Warehouse ID (WH-NNN)"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /warehouses/{id} [delete]
func (s *RestHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.WarehouseApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// WarehouseStats handler
// @Summary Warehouse statistics
// @Description Aggregate capacity/occupancy/utilization over the roster
// @Tags Warehouses
// @Produce json
// @Success 200 {object} model.WarehouseStats
// @Router /warehouses/stats [get]
func (s *RestHandler) WarehouseStats(w http.ResponseWriter, r *http.Request) {
	res, err := s.WarehouseApp.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
