package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	dispatchapp "github.com/shreyasbagave/warehouse/application/dispatch"
	reportapp "github.com/shreyasbagave/warehouse/application/report"
	storageapp "github.com/shreyasbagave/warehouse/application/storage"
	transferapp "github.com/shreyasbagave/warehouse/application/transfer"
	userapp "github.com/shreyasbagave/warehouse/application/user"
	warehouseapp "github.com/shreyasbagave/warehouse/application/warehouse"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	StorageApp   storageapp.StorageApp
	TransferApp  transferapp.TransferApp
	DispatchApp  dispatchapp.DispatchApp
	WarehouseApp warehouseapp.WarehouseApp
	ReportApp    reportapp.ReportApp
}

func NewTransport(rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	// Warehouses (admin)
	mux.HandleFunc("/warehouses", rh.ListWarehouses).Methods(http.MethodGet)
	mux.HandleFunc("/warehouses", rh.AddWarehouse).Methods(http.MethodPost)
	mux.HandleFunc("/warehouses/stats", rh.WarehouseStats).Methods(http.MethodGet)
	mux.HandleFunc("/warehouses/{id}", rh.GetWarehouse).Methods(http.MethodGet)
	mux.HandleFunc("/warehouses/{id}", rh.UpdateWarehouse).Methods(http.MethodPut)
	mux.HandleFunc("/warehouses/{id}", rh.DeleteWarehouse).Methods(http.MethodDelete)

	// Storage requests (farmer -> warehouse)
	mux.HandleFunc("/storage-requests", rh.ListStorageRequests).Methods(http.MethodGet)
	mux.HandleFunc("/storage-requests", rh.SubmitStorageRequest).Methods(http.MethodPost)
	mux.HandleFunc("/storage-requests/{id}/decision", rh.DecideStorageRequest).Methods(http.MethodPost)

	// Inventory
	mux.HandleFunc("/inventory", rh.ListInventory).Methods(http.MethodGet)
	mux.HandleFunc("/inventory", rh.IntakeInventory).Methods(http.MethodPost)

	// Transfers and trips
	mux.HandleFunc("/transfers", rh.ListTransfers).Methods(http.MethodGet)
	mux.HandleFunc("/transfers", rh.CreateTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/transfers/{id}/approve", rh.ApproveTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/transfers/{id}/reject", rh.RejectTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/transfers/{id}/assign", rh.AssignDriver).Methods(http.MethodPost)
	mux.HandleFunc("/trips", rh.ListTrips).Methods(http.MethodGet)
	mux.HandleFunc("/trips/{tripId}/status", rh.UpdateTripStatus).Methods(http.MethodPost)
	mux.HandleFunc("/drivers/{driverId}/trips", rh.DriverTrips).Methods(http.MethodGet)
	mux.HandleFunc("/drivers/{driverId}/earnings", rh.DriverEarnings).Methods(http.MethodGet)

	// Dispatch requests (farmer -> out of system)
	mux.HandleFunc("/dispatch-requests", rh.ListDispatchRequests).Methods(http.MethodGet)
	mux.HandleFunc("/dispatch-requests", rh.SubmitDispatchRequest).Methods(http.MethodPost)
	mux.HandleFunc("/dispatch-requests/{id}/approve", rh.ApproveDispatchRequest).Methods(http.MethodPost)

	// Reports
	mux.HandleFunc("/reports/summary", rh.ReportSummary).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}
