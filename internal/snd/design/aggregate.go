package design

import (
	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
	"github.com/transit-design-lab/snd-backend/internal/snd/fleet"
)

// weightedMean re-runs the flow analysis for every OD flow of the assignment
// and averages the selected metric weighted by flow volume. Aggregates are
// derived views: nothing is cached, every call recomputes from the current
// history.
func (d *Design) weightedMean(a *fleet.Assignment, metric func(FlowMetrics) float64) (float64, error) {
	weightedSum := 0.0
	totalFlow := 0
	for _, flow := range d.odFlows {
		m, err := d.AnalyzeFlow(a, flow)
		if err != nil {
			return 0, err
		}
		weightedSum += metric(m) * float64(flow.Flow)
		totalFlow += flow.Flow
	}
	if totalFlow == 0 {
		return 0, domain.ErrZeroDemand
	}
	return weightedSum / float64(totalFlow), nil
}

func (d *Design) perAssignment(metric func(FlowMetrics) float64) ([]float64, error) {
	values := make([]float64, 0, len(d.assignments))
	for _, a := range d.assignments {
		v, err := d.weightedMean(a, metric)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// AvgTravelTimeForAssignment is the demand-weighted mean travel time across
// OD flows for one assignment.
func (d *Design) AvgTravelTimeForAssignment(a *fleet.Assignment) (float64, error) {
	return d.weightedMean(a, func(m FlowMetrics) float64 { return m.AvgTravelTime })
}

// AvgTravelTimes lists the demand-weighted mean travel time per assignment,
// in history order.
func (d *Design) AvgTravelTimes() ([]float64, error) {
	return d.perAssignment(func(m FlowMetrics) float64 { return m.AvgTravelTime })
}

// AvgDiscomfortForAssignment is the demand-weighted mean discomfort across OD
// flows for one assignment.
func (d *Design) AvgDiscomfortForAssignment(a *fleet.Assignment) (float64, error) {
	return d.weightedMean(a, func(m FlowMetrics) float64 { return m.AvgDiscomfort })
}

// AvgDiscomfortLevels lists the demand-weighted mean discomfort per
// assignment, in history order.
func (d *Design) AvgDiscomfortLevels() ([]float64, error) {
	return d.perAssignment(func(m FlowMetrics) float64 { return m.AvgDiscomfort })
}

// AvgTransfersForAssignment is the demand-weighted mean transfer count across
// OD flows for one assignment.
func (d *Design) AvgTransfersForAssignment(a *fleet.Assignment) (float64, error) {
	return d.weightedMean(a, func(m FlowMetrics) float64 { return float64(m.Transfers) })
}

// AvgTransfers lists the demand-weighted mean transfer count per assignment,
// in history order.
func (d *Design) AvgTransfers() ([]float64, error) {
	return d.perAssignment(func(m FlowMetrics) float64 { return float64(m.Transfers) })
}

// AvgHopsForAssignment is the demand-weighted mean hop count across OD flows
// for one assignment.
func (d *Design) AvgHopsForAssignment(a *fleet.Assignment) (float64, error) {
	return d.weightedMean(a, func(m FlowMetrics) float64 { return float64(m.NumHops) })
}

// AvgHops lists the demand-weighted mean hop count per assignment, in
// history order.
func (d *Design) AvgHops() ([]float64, error) {
	return d.perAssignment(func(m FlowMetrics) float64 { return float64(m.NumHops) })
}

// TotalEmissions sums emissions of assigned buses across all assignments.
func (d *Design) TotalEmissions() float64 {
	total := 0.0
	for _, a := range d.assignments {
		total += a.TotalEmissions()
	}
	return total
}

// TotalCapitalCost sums the composition's capital cost across all
// assignments.
func (d *Design) TotalCapitalCost() int {
	total := 0
	for _, a := range d.assignments {
		total += a.Composition().TotalCapitalCost()
	}
	return total
}

// TotalOperationalCost sums per-route operational cost across all
// assignments and routes.
func (d *Design) TotalOperationalCost() int {
	total := 0
	for _, a := range d.assignments {
		for _, route := range d.routes {
			total += a.OperationalCostForRoute(route)
		}
	}
	return total
}

// SatisfiedDemand is a capacity-based coverage proxy: for each OD flow it
// sums, over every assignment, the capacity assigned to routes whose node
// sequence contains both the flow's origin and destination. It is
// independent of the shortest-path analysis.
func (d *Design) SatisfiedDemand() map[domain.ODFlow]int {
	satisfied := make(map[domain.ODFlow]int, len(d.odFlows))
	for _, flow := range d.odFlows {
		satisfied[flow] = 0
	}
	for _, a := range d.assignments {
		for _, route := range d.routes {
			for _, flow := range d.odFlows {
				if route.Contains(flow.Origin) && route.Contains(flow.Destination) {
					satisfied[flow] += a.CapacityForRoute(route)
				}
			}
		}
	}
	return satisfied
}

// NumBusesAssignedToRoute counts buses assigned to the route across all
// assignments.
func (d *Design) NumBusesAssignedToRoute(route domain.Route) int {
	count := 0
	for _, a := range d.assignments {
		count += a.NumBusesAssignedToRoute(route)
	}
	return count
}
