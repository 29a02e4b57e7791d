package unit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-design-lab/snd-backend/internal/snd/catalog"
	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
	"github.com/transit-design-lab/snd-backend/internal/snd/repository"
	"github.com/transit-design-lab/snd-backend/internal/snd/service"
)

const gridDesignYAML = `
street:
  grid:
    rows: 3
    cols: 3
routes:
  - name: Route_1
    nodes: [1, 2, 5, 8, 7, 6]
  - name: Route_2
    nodes: [1, 2, 5, 4, 3, 6, 7, 8]
od_flows:
  - origin: 1
    destination: 8
    flow: 190
  - origin: 2
    destination: 6
    flow: 10
fleet:
  buses:
    - type: Standard 40-Foot Diesel Bus
      count: 2
`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	dir := t.TempDir()
	lookups := map[string]string{
		"bus_per_mile_emissions.json": `{"Standard 40-Foot Diesel Bus": 0.0148}`,
		"bus_prices.json":             `{"Standard 40-Foot Diesel Bus": 300000}`,
		"bus_capacity.json":           `{"Standard 40-Foot Diesel Bus": 60}`,
		"bus_avg_mph.json":            `{"Standard 40-Foot Diesel Bus": 20}`,
		"bus_discomfort_levels.json":  `{"Standard 40-Foot Diesel Bus": 2}`,
	}
	for name, body := range lookups {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	cat, err := catalog.Load(catalog.FilesInDir(dir))
	require.NoError(t, err)
	return cat
}

func setupEvaluationService(t *testing.T) *service.EvaluationService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	runs := repository.NewRunRepository(client)
	return service.NewEvaluationService(runs, nil, testCatalog(t), 45028)
}

func TestEvaluationService_Evaluate(t *testing.T) {
	svc := setupEvaluationService(t)

	run, err := svc.Evaluate("user-1", []byte(gridDesignYAML))
	require.NoError(t, err)

	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, "user-1", run.UserID)
	assert.Equal(t, domain.StatusCompleted, run.Status)
	assert.Equal(t, "demand_1_8_190__2_6_10", run.DemandProfile)

	assert.InDelta(t, 0.05, run.Metrics.AvgTravelTime, 1e-9)
	assert.InDelta(t, 3.05, run.Metrics.AvgHops, 1e-9)
	assert.InDelta(t, 2.0, run.Metrics.AvgDiscomfort, 1e-9)
	assert.InDelta(t, 2*0.0148, run.Metrics.TotalEmissions, 1e-9)
	assert.Equal(t, 600000, run.Metrics.TotalCapitalCost)
	assert.Equal(t, 2*(45028+300000), run.Metrics.TotalOperationalCost)

	require.Len(t, run.Metrics.SatisfiedDemand, 2)
	assert.Equal(t, 120, run.Metrics.SatisfiedDemand[0].SatisfiedCapacity)

	stored, err := svc.GetRun(run.RunID)
	require.NoError(t, err)
	assert.Equal(t, run.RunID, stored.RunID)
}

func TestEvaluationService_EvaluateInvalidYAML(t *testing.T) {
	svc := setupEvaluationService(t)

	_, err := svc.Evaluate("user-1", []byte("street: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse design")
}

func TestEvaluationService_EvaluateInvalidDesign(t *testing.T) {
	svc := setupEvaluationService(t)

	// Route_2 has no bus: one bus for two routes fails validation.
	doc := `
street:
  grid:
    rows: 3
    cols: 3
routes:
  - name: Route_1
    nodes: [1, 2, 5]
  - name: Route_2
    nodes: [3, 4, 5]
od_flows:
  - origin: 1
    destination: 5
    flow: 10
fleet:
  buses:
    - type: Standard 40-Foot Diesel Bus
`
	_, err := svc.Evaluate("user-1", []byte(doc))
	require.Error(t, err)

	var invalid *domain.InvalidDesignError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "at least one bus must be provided for each route", invalid.Reason)
}

func TestEvaluationService_ListAndDelete(t *testing.T) {
	svc := setupEvaluationService(t)

	run, err := svc.Evaluate("user-1", []byte(gridDesignYAML))
	require.NoError(t, err)

	ids, err := svc.ListRunsByUser("user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{run.RunID}, ids)

	require.NoError(t, svc.DeleteRun(run.RunID))

	_, err = svc.GetRun(run.RunID)
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestRoundRobin_CoversEveryRoute(t *testing.T) {
	svc := setupEvaluationService(t)

	run, err := svc.Evaluate("user-1", []byte(gridDesignYAML))
	require.NoError(t, err)

	// Two buses over two routes: each route is covered once, so every OD
	// pair served by either route sees 60 seats of capacity.
	for _, coverage := range run.Metrics.SatisfiedDemand {
		assert.Equal(t, 120, coverage.SatisfiedCapacity)
	}
}
