package model

import "github.com/shreyasbagave/warehouse/constant"

// StorageRequest is a farmer's ask to place produce into a warehouse.
type StorageRequest struct {
	ID            uint64                 `json:"id"`
	FarmerID      string                 `json:"farmer_id"`
	FarmerName    string                 `json:"farmer_name"`
	Product       string                 `json:"product"`
	Quantity      int64                  `json:"quantity"`
	Unit          string                 `json:"unit"`
	Warehouse     string                 `json:"warehouse"`
	StorageType   string                 `json:"storage_type"`
	Quality       string                 `json:"quality"`
	ExpectedDate  string                 `json:"expected_date,omitempty"`
	RequestDate   string                 `json:"request_date"`
	Status        constant.StorageStatus `json:"status"`
	PaymentAmount *float64               `json:"payment_amount,omitempty"`
	ApprovedDate  string                 `json:"approved_date,omitempty"`
}

// StorageRequestInput for farmer submission
type StorageRequestInput struct {
	FarmerID     string `json:"farmer_id" validate:"required"`
	FarmerName   string `json:"farmer_name"`
	Product      string `json:"product" validate:"required"`
	Quantity     int64  `json:"quantity" validate:"required,gt=0"`
	Unit         string `json:"unit"`
	Warehouse    string `json:"warehouse" validate:"required"`
	StorageType  string `json:"storage_type"`
	Quality      string `json:"quality"`
	ExpectedDate string `json:"expected_date"`
}

// StorageDecisionRequest decides a pending storage request. A nil payment
// amount rejects the request, a value approves it.
type StorageDecisionRequest struct {
	PaymentAmount *float64 `json:"payment_amount" validate:"omitempty,gt=0"`
}
