package model

import "github.com/shreyasbagave/warehouse/constant"

// DispatchRequest is a farmer's ask to move produce out of a warehouse.
type DispatchRequest struct {
	ID           uint64                  `json:"id"`
	FarmerID     string                  `json:"farmer_id"`
	FarmerName   string                  `json:"farmer_name"`
	InventoryID  uint64                  `json:"inventory_id"`
	Product      string                  `json:"product"`
	Quantity     int64                   `json:"quantity"`
	Unit         string                  `json:"unit"`
	From         string                  `json:"from"`
	To           string                  `json:"to"`
	RequestDate  string                  `json:"request_date"`
	Status       constant.DispatchStatus `json:"status"`
	ApprovedDate string                  `json:"approved_date,omitempty"`
}

// DispatchRequestInput for farmer submission
type DispatchRequestInput struct {
	FarmerID    string `json:"farmer_id" validate:"required"`
	FarmerName  string `json:"farmer_name"`
	InventoryID uint64 `json:"inventory_id" validate:"required"`
	Product     string `json:"product" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	Unit        string `json:"unit"`
	From        string `json:"from"`
	To          string `json:"to" validate:"required"`
}
