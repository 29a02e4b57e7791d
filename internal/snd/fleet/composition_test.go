package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
)

const testSalary = 45028

func testBuses() (domain.Bus, domain.Bus) {
	standard := domain.NewBus("Standard Bus", 60, 0.0148, 300000, 25000, 2, 20)
	articulated := domain.NewBus("Articulated Bus", 90, 0.0251, 750000, 40000, 3, 10)
	return standard, articulated
}

func TestNewComposition(t *testing.T) {
	standard, articulated := testBuses()
	op, err := domain.NewOperator(testSalary)
	require.NoError(t, err)

	comp, err := NewComposition([]domain.Bus{standard, articulated}, []domain.Operator{op, op})
	require.NoError(t, err)

	assert.Equal(t, 2, comp.NumBuses())
	assert.Equal(t, 150, comp.TotalCapacity())
	assert.Equal(t, 1050000, comp.TotalCapitalCost())
	assert.Equal(t, 25000+40000+2*testSalary, comp.TotalOperationalCost())
}

func TestNewComposition_Invalid(t *testing.T) {
	standard, _ := testBuses()
	op, err := domain.NewOperator(testSalary)
	require.NoError(t, err)

	_, err = NewComposition(nil, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyFleet)

	_, err = NewComposition([]domain.Bus{standard}, []domain.Operator{op, op})
	assert.ErrorIs(t, err, domain.ErrOperatorMismatch)
}

func TestNewCompositionWithDefaults(t *testing.T) {
	standard, articulated := testBuses()

	comp, err := NewCompositionWithDefaults([]domain.Bus{standard, articulated}, testSalary)
	require.NoError(t, err)

	require.Len(t, comp.Operators(), 2)
	for _, op := range comp.Operators() {
		assert.Equal(t, testSalary, op.AnnualSalary)
	}
}

func TestNewCompositionWithDefaults_NegativeSalary(t *testing.T) {
	standard, _ := testBuses()

	_, err := NewCompositionWithDefaults([]domain.Bus{standard}, -1)
	assert.ErrorIs(t, err, domain.ErrNegativeSalary)
}
