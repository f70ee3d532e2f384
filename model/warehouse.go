package model

// WarehouseProduct is one line of a warehouse's product breakdown.
type WarehouseProduct struct {
	Product  string `json:"product"`
	Quantity int64  `json:"quantity"`
	Unit     string `json:"unit"`
}

// Warehouse is a storage facility record. Capacity figures are assigned at
// generation time (or by admin edits) and are not recomputed from inventory.
type Warehouse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Location    string             `json:"location"`
	Region      string             `json:"region"`
	District    string             `json:"district"`
	Capacity    int64              `json:"capacity"`
	Occupied    int64              `json:"occupied"`
	Available   int64              `json:"available"`
	Utilization int64              `json:"utilization"`
	Products    []WarehouseProduct `json:"products"`
}

// WarehouseRequest for admin add/edit
type WarehouseRequest struct {
	Name     string             `json:"name" validate:"required"`
	Location string             `json:"location" validate:"required"`
	Region   string             `json:"region" validate:"required"`
	District string             `json:"district" validate:"required"`
	Capacity int64              `json:"capacity" validate:"required,gt=0"`
	Occupied int64              `json:"occupied" validate:"gte=0"`
	Products []WarehouseProduct `json:"products"`
}

// WarehouseStats is the aggregate view over a warehouse collection.
type WarehouseStats struct {
	TotalWarehouses int   `json:"total_warehouses"`
	TotalCapacity   int64 `json:"total_capacity"`
	TotalOccupied   int64 `json:"total_occupied"`
	TotalAvailable  int64 `json:"total_available"`
	AvgUtilization  int64 `json:"avg_utilization"`
	Regions         int   `json:"regions"`
	Districts       int   `json:"districts"`
}
