package design

import (
	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
	"github.com/transit-design-lab/snd-backend/internal/snd/fleet"
	"github.com/transit-design-lab/snd-backend/internal/snd/graph"
)

// FlowMetrics is the per-OD-flow result of analyzing one service network.
type FlowMetrics struct {
	AvgTravelTime float64 `json:"average_travel_time"`
	NumHops       int     `json:"number_of_hops"`
	NumServices   int     `json:"number_of_services"`
	Transfers     int     `json:"transfers"`
	AvgDiscomfort float64 `json:"average_discomfort"`
}

// AnalyzeFlow computes the minimum-travel-time path for the OD flow on the
// service network derived from the given assignment and walks it edge by
// edge. A transfer is counted each time a bus edge's route differs from the
// previous bus edge's route; the first bus edge is never a transfer.
func (d *Design) AnalyzeFlow(a *fleet.Assignment, flow domain.ODFlow) (FlowMetrics, error) {
	i, ok := d.indexOf(a)
	if !ok {
		return FlowMetrics{}, domain.ErrAssignmentNotFound
	}

	path, ok := d.serviceNetworks[i].ShortestPath(flow.Origin, flow.Destination)
	if !ok {
		return FlowMetrics{}, domain.ErrNoPath
	}

	totalTime := 0.0
	discomfort := 0
	transfers := 0
	busSegments := 0
	services := map[string]bool{}
	prevRoute := ""

	for _, e := range path {
		totalTime += e.Weight
		if e.Type != graph.EdgeTypeBus {
			continue
		}
		services[e.RouteID] = true
		discomfort += e.Discomfort
		if prevRoute != "" && prevRoute != e.RouteID {
			transfers++
		}
		prevRoute = e.RouteID
		busSegments++
	}

	metrics := FlowMetrics{
		NumHops:     len(path),
		NumServices: len(services),
		Transfers:   transfers,
	}
	if len(path) > 0 {
		metrics.AvgTravelTime = totalTime / float64(len(path))
	}
	if busSegments > 0 {
		metrics.AvgDiscomfort = float64(discomfort) / float64(busSegments)
	}
	return metrics, nil
}
