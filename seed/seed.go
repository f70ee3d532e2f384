// Package seed installs the demo records the console starts with. The data
// mirrors a small working day: two pending storage requests, stocked
// inventory, one transfer already on the road, and a pending dispatch.
package seed

import (
	"context"

	"github.com/shreyasbagave/warehouse/constant"
	"github.com/shreyasbagave/warehouse/model"
	dispatchrepo "github.com/shreyasbagave/warehouse/repository/dispatch"
	inventoryrepo "github.com/shreyasbagave/warehouse/repository/inventory"
	storagerepo "github.com/shreyasbagave/warehouse/repository/storage"
	transferrepo "github.com/shreyasbagave/warehouse/repository/transfer"
	triprepo "github.com/shreyasbagave/warehouse/repository/trip"
)

type Repos struct {
	Storage   storagerepo.StorageRepository
	Inventory inventoryrepo.InventoryRepository
	Transfer  transferrepo.TransferRepository
	Trip      triprepo.TripRepository
	Dispatch  dispatchrepo.DispatchRepository
}

// Demo populates the collections with the starter records.
func Demo(ctx context.Context, r Repos) error {
	if _, err := r.Storage.Create(ctx, &model.StorageRequest{
		FarmerID: "FARM-001", FarmerName: "Rajesh Kumar", Product: "Wheat",
		Quantity: 50, Unit: "tonnes", Warehouse: "WH-101", StorageType: "normal",
		Quality: "A", ExpectedDate: "2024-01-28", RequestDate: "2024-01-26",
		Status: constant.StorageStatusPending,
	}); err != nil {
		return err
	}
	if _, err := r.Storage.Create(ctx, &model.StorageRequest{
		FarmerID: "FARM-002", FarmerName: "Priya Singh", Product: "Rice",
		Quantity: 30, Unit: "tonnes", Warehouse: "WH-101", StorageType: "cold",
		Quality: "A", ExpectedDate: "2024-01-29", RequestDate: "2024-01-27",
		Status: constant.StorageStatusPending,
	}); err != nil {
		return err
	}

	wheat, err := r.Inventory.Create(ctx, &model.InventoryItem{
		FarmerID: "FARM-001", Farmer: "Rajesh Kumar", Product: "Wheat",
		Quantity: 50, Unit: "tonnes", Quality: "A",
		Status: constant.InventoryStatusStored, Location: "Section A-12",
		Warehouse: "WH-101", StoredDate: "2024-01-15",
	})
	if err != nil {
		return err
	}
	if _, err := r.Inventory.Create(ctx, &model.InventoryItem{
		FarmerID: "FARM-002", Farmer: "Priya Singh", Product: "Rice",
		Quantity: 30, Unit: "tonnes", Quality: "A",
		Status: constant.InventoryStatusPendingQC, Location: "Section B-05",
		Warehouse: "WH-101", StoredDate: "2024-01-20",
	}); err != nil {
		return err
	}

	if _, err := r.Transfer.Create(ctx, &model.TransferRequest{
		From: "WH-101, Pune", FromWarehouse: "WH-101",
		To: "WH-103, Nagpur", ToWarehouse: "WH-103",
		Product: "Wheat", Quantity: 25, RequestDate: "2024-01-26",
		RequestedBy: "Warehouse Manager", Status: constant.TransferStatusPending,
	}); err != nil {
		return err
	}

	// One transfer already on the road, linked to its trip both ways.
	onRoad, err := r.Transfer.Create(ctx, &model.TransferRequest{
		From: "WH-102, Nashik", FromWarehouse: "WH-102",
		To: "WH-101, Pune", ToWarehouse: "WH-101",
		Product: "Rice", Quantity: 30, RequestDate: "2024-01-27",
		RequestedBy: "Warehouse Manager", Status: constant.TransferStatusInTransit,
		Vehicle: "TRK-5678", Driver: "Suresh Patel", EstimatedArrival: "2024-01-29",
	})
	if err != nil {
		return err
	}

	if _, err := r.Trip.Create(ctx, &model.Trip{
		Type: "Internal", From: "WH-101, Pune", To: "WH-103, Nagpur",
		Product: "Wheat", Quantity: 25,
		ScheduledStart: "2024-01-28T08:00:00+05:30", ScheduledEnd: "2024-01-28T18:00:00+05:30",
		Status: constant.TripStatusAssigned, DistanceKM: 480, PaymentRate: 15,
		VehicleNumber: "TRK-1234", AssignedDate: "2024-01-27",
	}); err != nil {
		return err
	}

	linked, err := r.Trip.Create(ctx, &model.Trip{
		Type: "Internal", TransferID: onRoad.TransferID,
		From: "WH-102, Nashik", To: "WH-101, Pune",
		Product: "Rice", Quantity: 30,
		ScheduledStart: "2024-01-27T10:00:00+05:30", ScheduledEnd: "2024-01-27T16:00:00+05:30",
		Status: constant.TripStatusInTransit, DistanceKM: 180, PaymentRate: 15,
		VehicleNumber: "TRK-5678", DriverID: 1, DriverName: "Suresh Patel",
		AssignedDate: "2024-01-27", CurrentLocation: "Highway NH-44, 120km away",
	})
	if err != nil {
		return err
	}
	onRoad.TripID = linked.TripID
	if err := r.Transfer.Update(ctx, onRoad); err != nil {
		return err
	}

	if _, err := r.Dispatch.Create(ctx, &model.DispatchRequest{
		FarmerID: "FARM-001", FarmerName: "Rajesh Kumar", InventoryID: wheat.ID,
		Product: "Wheat", Quantity: 25, Unit: "tonnes",
		From: "WH-101, Pune", To: "Market Hub, Delhi",
		RequestDate: "2024-01-27", Status: constant.DispatchStatusPending,
	}); err != nil {
		return err
	}

	return nil
}
