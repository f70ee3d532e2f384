package constant

// Status values are the exact strings the console renders; they double as the
// wire format, so they are not normalized to enums.

type StorageStatus string

const (
	StorageStatusPending  StorageStatus = "Pending Approval"
	StorageStatusApproved StorageStatus = "Approved"
	StorageStatusRejected StorageStatus = "Rejected"
)

type InventoryStatus string

const (
	InventoryStatusStored    InventoryStatus = "Stored"
	InventoryStatusPendingQC InventoryStatus = "Pending QC"
)

type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "Pending Approval"
	TransferStatusApproved  TransferStatus = "Approved"
	TransferStatusInTransit TransferStatus = "In Transit"
	TransferStatusDelivered TransferStatus = "Delivered"
	TransferStatusRejected  TransferStatus = "Rejected"
)

type TripStatus string

const (
	TripStatusAssigned  TripStatus = "ASSIGNED"
	TripStatusInTransit TripStatus = "IN_TRANSIT"
	TripStatusDelivered TripStatus = "DELIVERED"
)

// PaymentStatus tracks the payout of a delivered trip. Settlement is
// simulated: delivered trips start PENDING and there is no payment rail
// behind PAID.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPending PaymentStatus = "PENDING"
)

type DispatchStatus string

const (
	DispatchStatusPending  DispatchStatus = "Pending Approval"
	DispatchStatusApproved DispatchStatus = "Approved"
)

type UserRole string

const (
	RoleFarmer    UserRole = "farmer"
	RoleWarehouse UserRole = "warehouse"
	RoleTransport UserRole = "transport"
	RoleDriver    UserRole = "driver"
	RoleAdmin     UserRole = "admin"
)
