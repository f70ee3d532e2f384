package transport

import (
	"encoding/json"
	"net/http"

	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	"github.com/shreyasbagave/warehouse/utils/errors"
	validatorx "github.com/shreyasbagave/warehouse/utils/validator"
)

// ListDispatchRequests handler
// @Summary List dispatch requests
// @Tags Dispatch
// @Produce json
// @Success 200 {array} model.DispatchRequest
// @Router /dispatch-requests [get]
func (s *RestHandler) ListDispatchRequests(w http.ResponseWriter, r *http.Request) {
	res, err := s.DispatchApp.ListRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubmitDispatchRequest handler
// @Summary Submit dispatch request
// @Description Farmer asks to move produce out of a warehouse
// @Tags Dispatch
// @Accept json
// @Produce json
// @Param request body model.DispatchRequestInput true "Dispatch Request"
// @Success 200 {object} model.DispatchRequest
// @Failure 400 {object} transport.Response
// @Router /dispatch-requests [post]
func (s *RestHandler) SubmitDispatchRequest(w http.ResponseWriter, r *http.Request) {
	var req model.DispatchRequestInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DispatchApp.SubmitRequest(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ApproveDispatchRequest handler
// @Summary Approve dispatch request
// @Tags Dispatch
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} model.DispatchRequest
// @Failure 400 {object} transport.Response
// @Router /dispatch-requests/{id}/approve [post]
func (s *RestHandler) ApproveDispatchRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DispatchApp.Approve(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReportSummary handler
// @Summary Report summary
// @Description Cross-collection dashboard counts
// @Tags Reports
// @Produce json
// @Success 200 {object} model.ReportSummary
// @Router /reports/summary [get]
func (s *RestHandler) ReportSummary(w http.ResponseWriter, r *http.Request) {
	res, err := s.ReportApp.Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
