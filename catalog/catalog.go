// Package catalog generates the synthetic warehouse roster the console is
// seeded with and answers aggregate queries over warehouse collections.
package catalog

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/shreyasbagave/warehouse/model"
)

// DefaultSize is the roster size generated at startup.
const DefaultSize = 300

type location struct {
	region   string
	district string
}

// Generate produces exactly size warehouses distributed over the static
// region/district table. Slots are spread evenly: with remainder r, the first
// r locations receive one extra warehouse. Capacity is drawn from [500,1500),
// occupancy from 50-80% of capacity, and the product breakdown is a fixed
// wheat/rice/soybeans/corn split of the occupied tonnage.
//
// Pass a seeded rand.Rand for a reproducible catalog.
func Generate(rng *rand.Rand, size int) []model.Warehouse {
	if size <= 0 {
		size = DefaultSize
	}

	var locations []location
	for _, region := range maharashtraRegions {
		for _, district := range region.Districts {
			locations = append(locations, location{region: region.Name, district: district})
		}
	}

	base := size / len(locations)
	remainder := size % len(locations)

	warehouses := make([]model.Warehouse, 0, size)
	id := 1
	for idx, loc := range locations {
		count := base
		if idx < remainder {
			count++
		}
		for i := 0; i < count; i++ {
			capacity := int64(rng.Intn(1000) + 500)
			occupied := int64(float64(capacity) * (0.5 + rng.Float64()*0.3))
			available := capacity - occupied
			utilization := int64(math.Round(float64(occupied) / float64(capacity) * 100))

			warehouses = append(warehouses, model.Warehouse{
				ID:          fmt.Sprintf("WH-%03d", id),
				Name:        fmt.Sprintf("%s Warehouse %d", loc.district, i+1),
				Location:    loc.district,
				Region:      loc.region,
				District:    loc.district,
				Capacity:    capacity,
				Occupied:    occupied,
				Available:   available,
				Utilization: utilization,
				Products:    productSplit(occupied),
			})
			id++
		}
	}

	return warehouses[:size]
}

func productSplit(occupied int64) []model.WarehouseProduct {
	return []model.WarehouseProduct{
		{Product: "Wheat", Quantity: int64(float64(occupied) * 0.5), Unit: "tonnes"},
		{Product: "Rice", Quantity: int64(float64(occupied) * 0.3), Unit: "tonnes"},
		{Product: "Soybeans", Quantity: int64(float64(occupied) * 0.15), Unit: "tonnes"},
		{Product: "Corn", Quantity: int64(float64(occupied) * 0.05), Unit: "tonnes"},
	}
}

// ByRegion filters warehouses by region name.
func ByRegion(warehouses []model.Warehouse, region string) []model.Warehouse {
	out := make([]model.Warehouse, 0)
	for _, w := range warehouses {
		if w.Region == region {
			out = append(out, w)
		}
	}
	return out
}

// ByDistrict filters warehouses by district name.
func ByDistrict(warehouses []model.Warehouse, district string) []model.Warehouse {
	out := make([]model.Warehouse, 0)
	for _, w := range warehouses {
		if w.District == district {
			out = append(out, w)
		}
	}
	return out
}

// Stats aggregates capacity figures over a warehouse collection.
func Stats(warehouses []model.Warehouse) model.WarehouseStats {
	stats := model.WarehouseStats{TotalWarehouses: len(warehouses)}
	if len(warehouses) == 0 {
		return stats
	}

	regions := make(map[string]struct{})
	districts := make(map[string]struct{})
	var utilizationSum int64
	for _, w := range warehouses {
		stats.TotalCapacity += w.Capacity
		stats.TotalOccupied += w.Occupied
		stats.TotalAvailable += w.Available
		utilizationSum += w.Utilization
		regions[w.Region] = struct{}{}
		districts[w.District] = struct{}{}
	}
	stats.AvgUtilization = int64(math.Round(float64(utilizationSum) / float64(len(warehouses))))
	stats.Regions = len(regions)
	stats.Districts = len(districts)
	return stats
}
