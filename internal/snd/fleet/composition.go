// Package fleet models a fixed set of buses with matched operators and the
// per-attempt mapping of those buses onto routes.
package fleet

import "github.com/transit-design-lab/snd-backend/internal/snd/domain"

// Composition is a fixed, ordered set of buses with one operator per bus. It
// is shared by reference between a design and each of its assignments and is
// read-only after construction.
type Composition struct {
	buses     []domain.Bus
	operators []domain.Operator
}

// NewComposition builds a composition from a non-empty fleet and a matched
// operator list.
func NewComposition(buses []domain.Bus, operators []domain.Operator) (*Composition, error) {
	if len(buses) < 1 {
		return nil, domain.ErrEmptyFleet
	}
	if len(operators) != len(buses) {
		return nil, domain.ErrOperatorMismatch
	}
	return &Composition{buses: buses, operators: operators}, nil
}

// NewCompositionWithDefaults builds a composition giving every bus an
// operator at the supplied default salary.
func NewCompositionWithDefaults(buses []domain.Bus, defaultSalary int) (*Composition, error) {
	op, err := domain.NewOperator(defaultSalary)
	if err != nil {
		return nil, err
	}
	operators := make([]domain.Operator, len(buses))
	for i := range operators {
		operators[i] = op
	}
	return NewComposition(buses, operators)
}

// Buses returns the fleet in its fixed ordering.
func (c *Composition) Buses() []domain.Bus {
	return c.buses
}

// Operators returns the operator list, index-aligned with Buses.
func (c *Composition) Operators() []domain.Operator {
	return c.operators
}

func (c *Composition) NumBuses() int {
	return len(c.buses)
}

// TotalCapacity sums the capacity of every bus in the fleet.
func (c *Composition) TotalCapacity() int {
	total := 0
	for _, bus := range c.buses {
		total += bus.Capacity
	}
	return total
}

// TotalCapitalCost sums the procurement price of every bus in the fleet.
func (c *Composition) TotalCapitalCost() int {
	total := 0
	for _, bus := range c.buses {
		total += bus.ProcurementPrice
	}
	return total
}

// TotalOperationalCost sums operator salaries and bus maintenance costs.
func (c *Composition) TotalOperationalCost() int {
	total := 0
	for _, op := range c.operators {
		total += op.AnnualSalary
	}
	for _, bus := range c.buses {
		total += bus.AnnualMaintenanceCost
	}
	return total
}

// indexOf resolves a bus to its position in the fleet by identity token.
func (c *Composition) indexOf(bus domain.Bus) (int, bool) {
	for i, b := range c.buses {
		if b.ID == bus.ID {
			return i, true
		}
	}
	return 0, false
}
