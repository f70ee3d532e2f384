package model

// ReportSummary is the cross-collection dashboard view. Everything here is
// derived state; nothing is stored.
type ReportSummary struct {
	StorageRequestsByStatus  map[string]int `json:"storage_requests_by_status"`
	DispatchRequestsByStatus map[string]int `json:"dispatch_requests_by_status"`
	TransfersByStatus        map[string]int `json:"transfers_by_status"`
	TripsByStatus            map[string]int `json:"trips_by_status"`
	InventoryItems           int            `json:"inventory_items"`
	InventoryQuantity        int64          `json:"inventory_quantity"`
	Warehouses               WarehouseStats `json:"warehouses"`
}
