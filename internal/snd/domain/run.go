package domain

import "time"

// EvaluationRun records one evaluated service network design attempt.
type EvaluationRun struct {
	RunID         string            `json:"run_id"`
	UserID        string            `json:"user_id"`
	DemandProfile string            `json:"demand_profile"`
	Status        string            `json:"status"` // pending, completed, failed
	Metrics       EvaluationMetrics `json:"metrics"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// RunStatus constants
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// EvaluationMetrics are the demand-weighted aggregates of one completed
// assignment plus the design-level cost and coverage figures.
type EvaluationMetrics struct {
	AvgTravelTime        float64          `json:"avg_travel_time"`
	AvgDiscomfort        float64          `json:"avg_discomfort"`
	AvgTransfers         float64          `json:"avg_transfers"`
	AvgHops              float64          `json:"avg_hops"`
	TotalEmissions       float64          `json:"total_emissions"`
	TotalCapitalCost     int              `json:"total_capital_cost"`
	TotalOperationalCost int              `json:"total_operational_cost"`
	SatisfiedDemand      []DemandCoverage `json:"satisfied_demand"`
}

// DemandCoverage is the capacity-proxy coverage of one OD flow.
type DemandCoverage struct {
	Origin            int `json:"origin"`
	Destination       int `json:"destination"`
	Flow              int `json:"flow"`
	SatisfiedCapacity int `json:"satisfied_capacity"`
}
