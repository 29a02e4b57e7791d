package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
	"github.com/transit-design-lab/snd-backend/internal/snd/graph"
)

func TestAggregates_GridScenario(t *testing.T) {
	d := gridDesign(t)
	require.NoError(t, d.AssignBuses(roundRobin))
	a := d.Assignments()[0]

	travelTime, err := d.AvgTravelTimeForAssignment(a)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, travelTime, 1e-9)

	// (190*3 + 10*4) / 200
	hops, err := d.AvgHopsForAssignment(a)
	require.NoError(t, err)
	assert.InDelta(t, 3.05, hops, 1e-9)

	discomfort, err := d.AvgDiscomfortForAssignment(a)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, discomfort, 1e-9)

	transfers, err := d.AvgTransfersForAssignment(a)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, transfers, 1e-9)
}

func TestAggregates_ZeroTotalDemand(t *testing.T) {
	street := graph.NewStreet()
	street.AddEdge(0, 1, 1)
	street.AddEdge(1, 2, 1)

	routes := []domain.Route{mustRoute(t, "Route_1", []int{0, 1, 2})}
	flows := []domain.ODFlow{mustFlow(t, 0, 2, 0)}
	comp := mustComposition(t, standardBus())

	d, err := New(routes, flows, comp, street)
	require.NoError(t, err)
	require.NoError(t, d.AssignBuses(roundRobin))

	_, err = d.AvgTravelTimeForAssignment(d.Assignments()[0])
	assert.ErrorIs(t, err, domain.ErrZeroDemand)
	_, err = d.AvgHops()
	assert.ErrorIs(t, err, domain.ErrZeroDemand)
}

func TestAggregates_RepeatedCallsAgree(t *testing.T) {
	d := gridDesign(t)
	require.NoError(t, d.AssignBuses(roundRobin))
	a := d.Assignments()[0]

	// Aggregates are recomputed on every call and must not disturb the
	// assignment history.
	first, err := d.AvgTravelTimeForAssignment(a)
	require.NoError(t, err)
	second, err := d.AvgTravelTimeForAssignment(a)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	hops1, err := d.AvgHops()
	require.NoError(t, err)
	hops2, err := d.AvgHops()
	require.NoError(t, err)
	assert.Equal(t, hops1, hops2)
	assert.Len(t, d.Assignments(), 1)
}

func TestAggregates_PerAssignmentLists(t *testing.T) {
	d := gridDesign(t)
	require.NoError(t, d.AssignBuses(roundRobin))
	require.NoError(t, d.AssignBuses(roundRobin))

	times, err := d.AvgTravelTimes()
	require.NoError(t, err)
	require.Len(t, times, 2)
	assert.InDelta(t, times[0], times[1], 1e-9)

	hops, err := d.AvgHops()
	require.NoError(t, err)
	require.Len(t, hops, 2)

	levels, err := d.AvgDiscomfortLevels()
	require.NoError(t, err)
	require.Len(t, levels, 2)

	transfers, err := d.AvgTransfers()
	require.NoError(t, err)
	require.Len(t, transfers, 2)
}

func TestTotals(t *testing.T) {
	d := gridDesign(t)
	require.NoError(t, d.AssignBuses(roundRobin))

	assert.InDelta(t, 0.0399, d.TotalEmissions(), 1e-9)
	assert.Equal(t, 1050000, d.TotalCapitalCost())
	assert.Equal(t, 25000+40000+2*testSalary, d.TotalOperationalCost())

	// Totals accumulate over the assignment history.
	require.NoError(t, d.AssignBuses(roundRobin))
	assert.InDelta(t, 2*0.0399, d.TotalEmissions(), 1e-9)
	assert.Equal(t, 2*1050000, d.TotalCapitalCost())
}

func TestSatisfiedDemand(t *testing.T) {
	d := gridDesign(t)
	require.NoError(t, d.AssignBuses(roundRobin))

	satisfied := d.SatisfiedDemand()
	require.Len(t, satisfied, 2)

	// Both routes contain nodes 1 and 8, and both contain 2 and 6, so each
	// flow is covered by the full fleet capacity.
	assert.Equal(t, 150, satisfied[d.ODFlows()[0]])
	assert.Equal(t, 150, satisfied[d.ODFlows()[1]])
}

func TestSatisfiedDemand_NoAssignments(t *testing.T) {
	d := gridDesign(t)

	satisfied := d.SatisfiedDemand()
	require.Len(t, satisfied, 2)
	assert.Equal(t, 0, satisfied[d.ODFlows()[0]])
}

func TestNumBusesAssignedToRoute(t *testing.T) {
	d := gridDesign(t)
	require.NoError(t, d.AssignBuses(roundRobin))
	require.NoError(t, d.AssignBuses(roundRobin))

	assert.Equal(t, 2, d.NumBusesAssignedToRoute(d.Routes()[0]))
	assert.Equal(t, 2, d.NumBusesAssignedToRoute(d.Routes()[1]))
}
