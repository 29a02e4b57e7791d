package design

import (
	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
	"github.com/transit-design-lab/snd-backend/internal/snd/fleet"
	"github.com/transit-design-lab/snd-backend/internal/snd/graph"
)

// Snapshot is the read-only view of a design handed to an assignment
// routine. The nested structures are shared with the live design, so
// routines must not retain or mutate it after returning.
type Snapshot struct {
	Routes  []domain.Route
	ODFlows []domain.ODFlow
	Fleet   *fleet.Composition
	Street  *graph.Street
}

// AssignmentRoutine produces a candidate fleet assignment for a design
// snapshot. Routines are expected to be pure.
type AssignmentRoutine func(Snapshot) (*fleet.Assignment, error)

// Snapshot returns the current design state for assignment routines.
func (d *Design) Snapshot() Snapshot {
	routes := make([]domain.Route, len(d.routes))
	copy(routes, d.routes)
	flows := make([]domain.ODFlow, len(d.odFlows))
	copy(flows, d.odFlows)
	return Snapshot{Routes: routes, ODFlows: flows, Fleet: d.fleet, Street: d.street}
}

// AssignBuses runs the routine against a snapshot and, if the returned
// assignment covers every bus, appends it to the history together with its
// derived service network. Nothing is recorded when the routine fails or the
// assignment is incomplete.
func (d *Design) AssignBuses(routine AssignmentRoutine) error {
	assignment, err := routine(d.Snapshot())
	if err != nil {
		return err
	}
	if !assignment.FullyAssigned() {
		return domain.ErrIncompleteAssignment
	}

	d.assignments = append(d.assignments, assignment)
	d.serviceNetworks = append(d.serviceNetworks, d.buildServiceNetwork(assignment))
	return nil
}

// RemoveAssignment drops the assignment and its service network from the
// history. Both histories stay 1:1: the graph at the same index is removed
// with the assignment.
func (d *Design) RemoveAssignment(a *fleet.Assignment) error {
	i, ok := d.indexOf(a)
	if !ok {
		return domain.ErrAssignmentNotFound
	}
	d.assignments = append(d.assignments[:i], d.assignments[i+1:]...)
	d.serviceNetworks = append(d.serviceNetworks[:i], d.serviceNetworks[i+1:]...)
	return nil
}

// RemoveAllAssignments clears both histories.
func (d *Design) RemoveAllAssignments() {
	d.assignments = nil
	d.serviceNetworks = nil
}

// buildServiceNetwork overlays the assignment's bus service onto the street
// network. Street edges not tagged as pure distance edges are carried over in
// both directions; every bus on a route contributes one directed edge per
// segment weighted by segment distance over the bus's average speed.
func (d *Design) buildServiceNetwork(a *fleet.Assignment) *graph.ServiceNetwork {
	sn := graph.NewServiceNetwork()

	for _, e := range d.street.Edges() {
		if e.Attrs.Type == graph.EdgeTypeDistance {
			continue
		}
		sn.AddEdge(graph.ServiceEdge{From: e.U, To: e.V, Weight: e.Attrs.Weight, Type: e.Attrs.Type})
		sn.AddEdge(graph.ServiceEdge{From: e.V, To: e.U, Weight: e.Attrs.Weight, Type: e.Attrs.Type})
	}

	for _, route := range d.routes {
		for _, bus := range d.fleet.Buses() {
			assignedRoute, ok := a.RouteFor(bus)
			if !ok || assignedRoute.Name != route.Name {
				continue
			}
			for _, seg := range route.Segments() {
				distance, _ := d.street.EdgeWeight(seg[0], seg[1])
				sn.AddEdge(graph.ServiceEdge{
					From:       seg[0],
					To:         seg[1],
					Weight:     distance / bus.AvgSpeed,
					Type:       graph.EdgeTypeBus,
					RouteID:    route.Name,
					Discomfort: bus.DiscomfortLevel,
				})
			}
		}
	}

	return sn
}
