package fleet

import "github.com/transit-design-lab/snd-backend/internal/snd/domain"

// Assignment is one candidate deployment of a composition onto routes. State
// is held in arrays index-aligned with the composition's fixed bus ordering.
// Assigning is append-only: a bus is never unassigned short of discarding the
// whole assignment.
type Assignment struct {
	comp     *Composition
	assigned []bool
	routes   []domain.Route
}

// NewAssignment builds an assignment with every bus unassigned.
func NewAssignment(comp *Composition) *Assignment {
	return &Assignment{
		comp:     comp,
		assigned: make([]bool, comp.NumBuses()),
		routes:   make([]domain.Route, comp.NumBuses()),
	}
}

// Composition returns the shared fleet composition.
func (a *Assignment) Composition() *Composition {
	return a.comp
}

// AssignBusToRoute marks the bus as deployed on the route. The bus must
// belong to the composition and must not already be assigned.
func (a *Assignment) AssignBusToRoute(bus domain.Bus, route domain.Route) error {
	i, ok := a.comp.indexOf(bus)
	if !ok {
		return domain.ErrUnknownBus
	}
	if a.assigned[i] {
		return domain.ErrBusAlreadyAssigned
	}
	a.assigned[i] = true
	a.routes[i] = route
	return nil
}

// RouteFor returns the route the bus is assigned to, if any.
func (a *Assignment) RouteFor(bus domain.Bus) (domain.Route, bool) {
	i, ok := a.comp.indexOf(bus)
	if !ok || !a.assigned[i] {
		return domain.Route{}, false
	}
	return a.routes[i], true
}

// CapacityForRoute sums the capacity of buses assigned to the route.
func (a *Assignment) CapacityForRoute(route domain.Route) int {
	total := 0
	for i, bus := range a.comp.buses {
		if a.assigned[i] && a.routes[i].Name == route.Name {
			total += bus.Capacity
		}
	}
	return total
}

// CapitalCostForRoute sums the procurement price of buses assigned to the
// route.
func (a *Assignment) CapitalCostForRoute(route domain.Route) int {
	total := 0
	for i, bus := range a.comp.buses {
		if a.assigned[i] && a.routes[i].Name == route.Name {
			total += bus.ProcurementPrice
		}
	}
	return total
}

// OperationalCostForRoute sums operator salaries and maintenance costs of
// buses assigned to the route.
func (a *Assignment) OperationalCostForRoute(route domain.Route) int {
	total := 0
	for i := range a.comp.buses {
		if a.assigned[i] && a.routes[i].Name == route.Name {
			total += a.comp.operators[i].AnnualSalary
			total += a.comp.buses[i].AnnualMaintenanceCost
		}
	}
	return total
}

// EmissionsForRoute sums per-mile emissions of buses assigned to the route.
func (a *Assignment) EmissionsForRoute(route domain.Route) float64 {
	total := 0.0
	for i, bus := range a.comp.buses {
		if a.assigned[i] && a.routes[i].Name == route.Name {
			total += bus.PerMileEmissions
		}
	}
	return total
}

// NumBusesAssignedToRoute counts buses assigned to the route.
func (a *Assignment) NumBusesAssignedToRoute(route domain.Route) int {
	count := 0
	for i := range a.comp.buses {
		if a.assigned[i] && a.routes[i].Name == route.Name {
			count++
		}
	}
	return count
}

// TotalEmissions sums per-mile emissions of every assigned bus.
func (a *Assignment) TotalEmissions() float64 {
	total := 0.0
	for i, bus := range a.comp.buses {
		if a.assigned[i] {
			total += bus.PerMileEmissions
		}
	}
	return total
}

func (a *Assignment) NumBuses() int {
	return a.comp.NumBuses()
}

// NumBusesAssigned counts buses that have been assigned to a route.
func (a *Assignment) NumBusesAssigned() int {
	count := 0
	for _, assigned := range a.assigned {
		if assigned {
			count++
		}
	}
	return count
}

// FullyAssigned reports whether every bus in the fleet has been assigned.
func (a *Assignment) FullyAssigned() bool {
	for _, assigned := range a.assigned {
		if !assigned {
			return false
		}
	}
	return true
}
