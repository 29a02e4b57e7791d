// Package report appends evaluated designs to a persisted YAML report. Each
// completed assignment becomes a new numbered "implementation" entry; prior
// entries are never overwritten.
package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry carries one completed assignment's composition and aggregate
// metrics.
type Entry struct {
	DemandProfile    string
	FleetComposition []string
	AvgTravelTime    float64
	AvgDiscomfort    float64
	AvgTransfers     float64
	AvgHops          float64
	TotalEmissions   float64
}

type document struct {
	F               []string                  `yaml:"F"`
	R               []string                  `yaml:"R"`
	Implementations map[string]implementation `yaml:"implementations"`
}

type implementation struct {
	FMax []string `yaml:"f_max"`
	RMin []string `yaml:"r_min"`
}

// Append adds the entry to the report at path as the next modelN
// implementation, creating the file and its header rows if needed.
func Append(path string, entry Entry) error {
	doc := document{}
	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return fmt.Errorf("parse report %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if len(doc.F) == 0 || len(doc.R) == 0 {
		doc.F = []string{"`satisfied_demand"}
		doc.R = make([]string, 0, len(entry.FleetComposition)+5)
		for range entry.FleetComposition {
			doc.R = append(doc.R, "car")
		}
		doc.R = append(doc.R, "s", "Reals", "Reals", "Reals", "kg/year")
	}
	if doc.Implementations == nil {
		doc.Implementations = map[string]implementation{}
	}

	rMin := make([]string, 0, len(entry.FleetComposition)+5)
	for _, name := range entry.FleetComposition {
		rMin = append(rMin, fmt.Sprintf("%s car", name))
	}
	rMin = append(rMin,
		fmt.Sprintf("%v s", entry.AvgTravelTime),
		fmt.Sprintf("%v Reals", entry.AvgDiscomfort),
		fmt.Sprintf("%v Reals", entry.AvgTransfers),
		fmt.Sprintf("%v Reals", entry.AvgHops),
		fmt.Sprintf("%v kg/year", entry.TotalEmissions),
	)

	name := fmt.Sprintf("model%d", len(doc.Implementations)+1)
	doc.Implementations[name] = implementation{
		FMax: []string{fmt.Sprintf("`satisfied_demand: %s", entry.DemandProfile)},
		RMin: rMin,
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
