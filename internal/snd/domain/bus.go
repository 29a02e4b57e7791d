package domain

import "github.com/google/uuid"

// BusID identifies one physical vehicle. Two buses with identical attributes
// are still distinct vehicles, so identity lives in a separate token rather
// than in the value fields.
type BusID string

// Bus describes a vehicle type deployed on a route.
type Bus struct {
	ID                    BusID   `json:"id"`
	Name                  string  `json:"name"`
	Capacity              int     `json:"capacity"`
	PerMileEmissions      float64 `json:"per_mile_emissions"`
	ProcurementPrice      int     `json:"procurement_price"`
	AnnualMaintenanceCost int     `json:"annual_maintenance_cost"`
	DiscomfortLevel       int     `json:"discomfort_level"`
	AvgSpeed              float64 `json:"avg_speed"`
}

// NewBus builds a Bus with a freshly generated identity token.
func NewBus(name string, capacity int, perMileEmissions float64, procurementPrice, annualMaintenanceCost, discomfortLevel int, avgSpeed float64) Bus {
	return Bus{
		ID:                    BusID(uuid.New().String()),
		Name:                  name,
		Capacity:              capacity,
		PerMileEmissions:      perMileEmissions,
		ProcurementPrice:      procurementPrice,
		AnnualMaintenanceCost: annualMaintenanceCost,
		DiscomfortLevel:       discomfortLevel,
		AvgSpeed:              avgSpeed,
	}
}
