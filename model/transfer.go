package model

import "github.com/shreyasbagave/warehouse/constant"

// TransferRequest is a warehouse-to-warehouse movement request.
type TransferRequest struct {
	ID               uint64                  `json:"id"`
	TransferID       string                  `json:"transfer_id"`
	From             string                  `json:"from"`
	FromWarehouse    string                  `json:"from_warehouse"`
	To               string                  `json:"to"`
	ToWarehouse      string                  `json:"to_warehouse"`
	Product          string                  `json:"product"`
	Quantity         int64                   `json:"quantity"`
	RequestDate      string                  `json:"request_date"`
	RequestedBy      string                  `json:"requested_by"`
	Status           constant.TransferStatus `json:"status"`
	Vehicle          string                  `json:"vehicle,omitempty"`
	Driver           string                  `json:"driver,omitempty"`
	TripID           string                  `json:"trip_id,omitempty"`
	ApprovedDate     string                  `json:"approved_date,omitempty"`
	RejectedDate     string                  `json:"rejected_date,omitempty"`
	EstimatedArrival string                  `json:"estimated_arrival,omitempty"`
}

// TransferRequestInput for warehouse submission
type TransferRequestInput struct {
	From          string `json:"from" validate:"required"`
	FromWarehouse string `json:"from_warehouse" validate:"required"`
	To            string `json:"to" validate:"required"`
	ToWarehouse   string `json:"to_warehouse" validate:"required,nefield=FromWarehouse"`
	Product       string `json:"product" validate:"required"`
	Quantity      int64  `json:"quantity" validate:"required,gt=0"`
	RequestedBy   string `json:"requested_by"`
}

// AssignDriverRequest puts an approved transfer on the road.
type AssignDriverRequest struct {
	DriverID      uint64 `json:"driver_id" validate:"required"`
	DriverName    string `json:"driver_name" validate:"required"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
}
