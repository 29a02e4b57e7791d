// Package mapper turns parsed design descriptions into validated engine
// objects.
package mapper

import (
	"fmt"

	"github.com/transit-design-lab/snd-backend/internal/snd/catalog"
	"github.com/transit-design-lab/snd-backend/internal/snd/design"
	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
	"github.com/transit-design-lab/snd-backend/internal/snd/fleet"
	"github.com/transit-design-lab/snd-backend/internal/snd/graph"
	"github.com/transit-design-lab/snd-backend/internal/snd/ingest/parser"
)

// ToDesign builds a validated Design from a parsed description, resolving
// bus types against the catalog. defaultSalary is used unless the design
// overrides it.
func ToDesign(y *parser.YDesign, cat *catalog.Catalog, defaultSalary int) (*design.Design, error) {
	street := ToStreet(y.Street)

	routes := make([]domain.Route, 0, len(y.Routes))
	for _, yr := range y.Routes {
		route, err := domain.NewRoute(yr.Name, yr.Nodes)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", yr.Name, err)
		}
		routes = append(routes, route)
	}

	flows := make([]domain.ODFlow, 0, len(y.ODFlows))
	for _, yf := range y.ODFlows {
		flow, err := domain.NewODFlow(yf.Origin, yf.Destination, yf.Flow)
		if err != nil {
			return nil, fmt.Errorf("od flow %d->%d: %w", yf.Origin, yf.Destination, err)
		}
		flows = append(flows, flow)
	}

	var buses []domain.Bus
	for _, yb := range y.Fleet.Buses {
		for i := 0; i < yb.Count; i++ {
			bus, err := cat.Bus(yb.Type)
			if err != nil {
				return nil, err
			}
			buses = append(buses, bus)
		}
	}

	salary := defaultSalary
	if y.Fleet.OperatorSalary != nil {
		salary = *y.Fleet.OperatorSalary
	}
	comp, err := fleet.NewCompositionWithDefaults(buses, salary)
	if err != nil {
		return nil, err
	}

	return design.New(routes, flows, comp, street)
}

// ToStreet builds the street network from either the grid shorthand or
// explicit weighted edges.
func ToStreet(y parser.YStreet) *graph.Street {
	if y.Grid != nil {
		street, _ := graph.NewGrid(y.Grid.Rows, y.Grid.Cols)
		return street
	}
	street := graph.NewStreet()
	for _, e := range y.Edges {
		street.AddEdge(e.U, e.V, e.Weight)
	}
	return street
}
