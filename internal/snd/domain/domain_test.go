package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBus(t *testing.T) {
	bus := NewBus("Standard 40-Foot Diesel Bus", 60, 0.0148, 300000, 25000, 2, 20)

	assert.Equal(t, "Standard 40-Foot Diesel Bus", bus.Name)
	assert.Equal(t, 60, bus.Capacity)
	assert.Equal(t, 0.0148, bus.PerMileEmissions)
	assert.Equal(t, 300000, bus.ProcurementPrice)
	assert.Equal(t, 25000, bus.AnnualMaintenanceCost)
	assert.Equal(t, 2, bus.DiscomfortLevel)
	assert.Equal(t, 20.0, bus.AvgSpeed)
	assert.NotEmpty(t, bus.ID)
}

func TestNewBus_DistinctIdentities(t *testing.T) {
	a := NewBus("Standard Bus", 60, 0.0148, 300000, 25000, 2, 20)
	b := NewBus("Standard Bus", 60, 0.0148, 300000, 25000, 2, 20)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewRoute(t *testing.T) {
	route, err := NewRoute("Route_1", []int{0, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, "Route_1", route.Name)
	assert.Equal(t, []int{0, 1, 2}, route.Nodes)
	assert.Equal(t, 2, route.Len())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, route.Segments())
}

func TestNewRoute_TooShort(t *testing.T) {
	_, err := NewRoute("Route_1", []int{0})
	assert.ErrorIs(t, err, ErrRouteTooShort)

	_, err = NewRoute("Route_1", nil)
	assert.ErrorIs(t, err, ErrRouteTooShort)
}

func TestRoute_Contains(t *testing.T) {
	route, err := NewRoute("Route_1", []int{1, 2, 5, 8})
	require.NoError(t, err)

	assert.True(t, route.Contains(5))
	assert.False(t, route.Contains(3))
}

func TestNewODFlow(t *testing.T) {
	flow, err := NewODFlow(0, 1, 100)
	require.NoError(t, err)

	assert.Equal(t, 0, flow.Origin)
	assert.Equal(t, 1, flow.Destination)
	assert.Equal(t, 100, flow.Flow)
}

func TestNewODFlow_Invalid(t *testing.T) {
	_, err := NewODFlow(0, 1, -5)
	assert.ErrorIs(t, err, ErrNegativeFlow)

	_, err = NewODFlow(3, 3, 10)
	assert.ErrorIs(t, err, ErrSameOriginAndDest)
}

func TestNewODFlow_ZeroFlow(t *testing.T) {
	flow, err := NewODFlow(0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, flow.Flow)
}

func TestNewOperator(t *testing.T) {
	op, err := NewOperator(45028)
	require.NoError(t, err)
	assert.Equal(t, 45028, op.AnnualSalary)

	_, err = NewOperator(-1)
	assert.ErrorIs(t, err, ErrNegativeSalary)
}

func TestInvalidDesignError(t *testing.T) {
	err := &InvalidDesignError{Reason: "at least one route must be provided"}
	assert.Equal(t, "invalid service network design: at least one route must be provided", err.Error())
}
