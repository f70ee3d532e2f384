package model

import "github.com/shreyasbagave/warehouse/constant"

// InventoryItem is goods held in a warehouse. Items are append-only: stock
// movements create new items rather than mutating existing ones.
type InventoryItem struct {
	ID         uint64                   `json:"id"`
	IntakeID   string                   `json:"intake_id"`
	FarmerID   string                   `json:"farmer_id"`
	Farmer     string                   `json:"farmer"`
	Product    string                   `json:"product"`
	Quantity   int64                    `json:"quantity"`
	Unit       string                   `json:"unit"`
	Quality    string                   `json:"quality"`
	Status     constant.InventoryStatus `json:"status"`
	Location   string                   `json:"location"`
	Warehouse  string                   `json:"warehouse"`
	StoredDate string                   `json:"stored_date"`
}

// IntakeRequest records goods arriving at a warehouse.
type IntakeRequest struct {
	FarmerID  string `json:"farmer_id" validate:"required"`
	Farmer    string `json:"farmer"`
	Product   string `json:"product" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Unit      string `json:"unit"`
	Quality   string `json:"quality"`
	Location  string `json:"location"`
	Warehouse string `json:"warehouse" validate:"required"`
	// StoredDate overrides the default of today, used by transfer delivery.
	StoredDate string `json:"stored_date"`
}
