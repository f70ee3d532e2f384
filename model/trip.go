package model

import "github.com/shreyasbagave/warehouse/constant"

// Trip is a driver's assignment to execute a transfer.
type Trip struct {
	ID              uint64              `json:"id"`
	TripID          string              `json:"trip_id"`
	Type            string              `json:"type"`
	TransferID      string              `json:"transfer_id,omitempty"`
	From            string              `json:"from"`
	To              string              `json:"to"`
	Product         string              `json:"product"`
	Quantity        int64               `json:"quantity"`
	ScheduledStart  string              `json:"scheduled_start"`
	ScheduledEnd    string              `json:"scheduled_end"`
	Status          constant.TripStatus `json:"status"`
	DistanceKM      int64               `json:"distance"`
	PaymentRate     float64             `json:"payment_rate"`
	VehicleNumber   string              `json:"vehicle_number"`
	DriverID        uint64              `json:"driver_id,omitempty"`
	DriverName      string              `json:"driver_name,omitempty"`
	AssignedDate    string              `json:"assigned_date"`
	DeliveredDate   string              `json:"delivered_date,omitempty"`
	CurrentLocation string              `json:"current_location,omitempty"`
	// PaymentStatus is set once the trip is delivered.
	PaymentStatus constant.PaymentStatus `json:"payment_status,omitempty"`
}

// TripStatusRequest moves a trip along ASSIGNED -> IN_TRANSIT -> DELIVERED.
type TripStatusRequest struct {
	Status          constant.TripStatus `json:"status" validate:"required,oneof=ASSIGNED IN_TRANSIT DELIVERED"`
	DeliveredDate   string              `json:"delivered_date"`
	CurrentLocation string              `json:"current_location"`
}

// TripEarning is one delivered trip's payout line.
type TripEarning struct {
	TripID     string                 `json:"trip_id"`
	From       string                 `json:"from"`
	To         string                 `json:"to"`
	DistanceKM int64                  `json:"distance"`
	Amount     float64                `json:"amount"`
	Date       string                 `json:"date"`
	Status     constant.PaymentStatus `json:"status"`
}

// EarningsResponse summarizes a driver's delivered trips with the paid and
// still-pending portions of the total.
type EarningsResponse struct {
	DriverID uint64        `json:"driver_id"`
	Trips    []TripEarning `json:"trips"`
	Total    float64       `json:"total"`
	Paid     float64       `json:"paid"`
	Pending  float64       `json:"pending"`
}
