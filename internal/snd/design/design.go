// Package design implements the service-network design orchestrator: it
// validates a design's topology, accepts fleet assignments, overlays bus
// service onto the street network per assignment, and aggregates
// shortest-path flow metrics by demand weight.
package design

import (
	"fmt"
	"strings"

	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
	"github.com/transit-design-lab/snd-backend/internal/snd/fleet"
	"github.com/transit-design-lab/snd-backend/internal/snd/graph"
)

// Design is one evaluated service-network scenario. Routes, OD flows, the
// fleet composition and the street network are fixed at construction; fleet
// assignments and their derived service networks accumulate as an ordered,
// index-aligned history.
type Design struct {
	routes          []domain.Route
	odFlows         []domain.ODFlow
	fleet           *fleet.Composition
	street          *graph.Street
	assignments     []*fleet.Assignment
	serviceNetworks []*graph.ServiceNetwork
}

// New validates the scenario and constructs the design. Validation runs in a
// fixed order and fails on the first violation with an InvalidDesignError
// carrying the reason.
func New(routes []domain.Route, odFlows []domain.ODFlow, comp *fleet.Composition, street *graph.Street) (*Design, error) {
	if len(routes) < 1 {
		return nil, &domain.InvalidDesignError{Reason: "at least one route must be provided"}
	}
	if len(odFlows) < 1 {
		return nil, &domain.InvalidDesignError{Reason: "at least one OD flow must be provided"}
	}
	if comp.NumBuses() < len(routes) {
		return nil, &domain.InvalidDesignError{Reason: "at least one bus must be provided for each route"}
	}

	names := map[string]bool{}
	for _, route := range routes {
		if names[route.Name] {
			return nil, &domain.InvalidDesignError{Reason: "all routes must have a unique name"}
		}
		names[route.Name] = true
	}

	for _, flow := range odFlows {
		if !street.HasPath(flow.Origin, flow.Destination) {
			return nil, &domain.InvalidDesignError{
				Reason: fmt.Sprintf("no path between OD pair %d and %d", flow.Origin, flow.Destination),
			}
		}
	}

	for _, route := range routes {
		for _, seg := range route.Segments() {
			if !street.HasEdge(seg[0], seg[1]) {
				return nil, &domain.InvalidDesignError{
					Reason: fmt.Sprintf("no edge between nodes %d and %d in route %s", seg[0], seg[1], route.Name),
				}
			}
		}
	}

	for _, e := range street.Edges() {
		if !e.Attrs.Weighted {
			return nil, &domain.InvalidDesignError{Reason: "all edges in the street network must carry a weight"}
		}
	}

	return &Design{
		routes:  routes,
		odFlows: odFlows,
		fleet:   comp,
		street:  street,
	}, nil
}

func (d *Design) Routes() []domain.Route           { return d.routes }
func (d *Design) ODFlows() []domain.ODFlow         { return d.odFlows }
func (d *Design) Fleet() *fleet.Composition        { return d.fleet }
func (d *Design) Street() *graph.Street            { return d.street }
func (d *Design) Assignments() []*fleet.Assignment { return d.assignments }

// ServiceNetworks returns the derived service-network history, index-aligned
// with Assignments.
func (d *Design) ServiceNetworks() []*graph.ServiceNetwork { return d.serviceNetworks }

// DemandProfileName encodes the OD flows as a deterministic cache/report key,
// e.g. demand_1_8_190__2_6_10.
func (d *Design) DemandProfileName() string {
	parts := make([]string, len(d.odFlows))
	for i, od := range d.odFlows {
		parts[i] = fmt.Sprintf("%d_%d_%d", od.Origin, od.Destination, od.Flow)
	}
	return "demand_" + strings.Join(parts, "__")
}

// indexOf resolves an assignment to its position in the history by identity.
func (d *Design) indexOf(a *fleet.Assignment) (int, bool) {
	for i, existing := range d.assignments {
		if existing == a {
			return i, true
		}
	}
	return 0, false
}
