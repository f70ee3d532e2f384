package transport

import (
	"encoding/json"
	"net/http"

	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/utils/errors"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	custom, ok := err.(errors.CustomError)
	if !ok {
		custom = errors.SetCustomError(constant.ErrInternal)
	}

	w.WriteHeader(custom.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(Response{
		Code:    custom.ErrorCode(),
		Message: custom.Error(),
	})
}
