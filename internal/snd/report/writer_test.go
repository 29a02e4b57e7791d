package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testEntry() Entry {
	return Entry{
		DemandProfile:    "demand_1_8_190__2_6_10",
		FleetComposition: []string{"Standard 40-Foot Diesel Bus", "Articulated Diesel Bus"},
		AvgTravelTime:    0.05,
		AvgDiscomfort:    2.0,
		AvgTransfers:     0,
		AvgHops:          3.05,
		TotalEmissions:   0.0399,
	}
}

func readDoc(t *testing.T, path string) document {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc document
	require.NoError(t, yaml.Unmarshal(b, &doc))
	return doc
}

func TestAppend_CreatesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, Append(path, testEntry()))

	doc := readDoc(t, path)
	assert.Equal(t, []string{"`satisfied_demand"}, doc.F)
	assert.Equal(t, []string{"car", "car", "s", "Reals", "Reals", "Reals", "kg/year"}, doc.R)

	require.Contains(t, doc.Implementations, "model1")
	impl := doc.Implementations["model1"]
	assert.Equal(t, []string{"`satisfied_demand: demand_1_8_190__2_6_10"}, impl.FMax)
	require.Len(t, impl.RMin, 7)
	assert.Equal(t, "Standard 40-Foot Diesel Bus car", impl.RMin[0])
	assert.Equal(t, "0.05 s", impl.RMin[2])
	assert.Equal(t, "0.0399 kg/year", impl.RMin[6])
}

func TestAppend_AccumulatesImplementations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, Append(path, testEntry()))

	second := testEntry()
	second.DemandProfile = "demand_0_4_25"
	require.NoError(t, Append(path, second))

	doc := readDoc(t, path)
	require.Len(t, doc.Implementations, 2)
	assert.Contains(t, doc.Implementations, "model1")
	assert.Contains(t, doc.Implementations, "model2")
	assert.Equal(t, []string{"`satisfied_demand: demand_1_8_190__2_6_10"}, doc.Implementations["model1"].FMax)
	assert.Equal(t, []string{"`satisfied_demand: demand_0_4_25"}, doc.Implementations["model2"].FMax)
}

func TestAppend_RejectsCorruptReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte("F: ["), 0o644))

	err := Append(path, testEntry())
	assert.Error(t, err)
}
