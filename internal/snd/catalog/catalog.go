// Package catalog loads bus types from the five parallel JSON lookups the
// data pipeline produces (emissions, prices, capacity, average mph,
// discomfort), all keyed by bus-type name.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
)

// Catalog maps bus-type names to fully populated Bus values.
type Catalog struct {
	emissions  map[string]float64
	prices     map[string]int
	capacity   map[string]int
	avgMph     map[string]float64
	discomfort map[string]int
}

// Files names the five lookup files a catalog is loaded from.
type Files struct {
	Emissions  string
	Prices     string
	Capacity   string
	AvgMph     string
	Discomfort string
}

// FilesInDir returns the conventional lookup file layout under dir.
func FilesInDir(dir string) Files {
	return Files{
		Emissions:  filepath.Join(dir, "bus_per_mile_emissions.json"),
		Prices:     filepath.Join(dir, "bus_prices.json"),
		Capacity:   filepath.Join(dir, "bus_capacity.json"),
		AvgMph:     filepath.Join(dir, "bus_avg_mph.json"),
		Discomfort: filepath.Join(dir, "bus_discomfort_levels.json"),
	}
}

// Load reads the five lookup files.
func Load(files Files) (*Catalog, error) {
	c := &Catalog{}
	if err := readJSON(files.Emissions, &c.emissions); err != nil {
		return nil, err
	}
	if err := readJSON(files.Prices, &c.prices); err != nil {
		return nil, err
	}
	if err := readJSON(files.Capacity, &c.capacity); err != nil {
		return nil, err
	}
	if err := readJSON(files.AvgMph, &c.avgMph); err != nil {
		return nil, err
	}
	if err := readJSON(files.Discomfort, &c.discomfort); err != nil {
		return nil, err
	}
	return c, nil
}

// Bus builds a new Bus value for the named type. Each call mints a distinct
// vehicle identity. Annual maintenance is sourced from the price lookup, per
// the data pipeline's contract.
func (c *Catalog) Bus(busType string) (domain.Bus, error) {
	emissions, ok := c.emissions[busType]
	if !ok {
		return domain.Bus{}, fmt.Errorf("bus type %q missing from emissions lookup", busType)
	}
	price, ok := c.prices[busType]
	if !ok {
		return domain.Bus{}, fmt.Errorf("bus type %q missing from prices lookup", busType)
	}
	capacity, ok := c.capacity[busType]
	if !ok {
		return domain.Bus{}, fmt.Errorf("bus type %q missing from capacity lookup", busType)
	}
	speed, ok := c.avgMph[busType]
	if !ok {
		return domain.Bus{}, fmt.Errorf("bus type %q missing from avg mph lookup", busType)
	}
	discomfort, ok := c.discomfort[busType]
	if !ok {
		return domain.Bus{}, fmt.Errorf("bus type %q missing from discomfort lookup", busType)
	}

	return domain.NewBus(busType, capacity, emissions, price, price, discomfort, speed), nil
}

// Types lists the bus-type names present in the capacity lookup, sorted.
func (c *Catalog) Types() []string {
	types := make([]string, 0, len(c.capacity))
	for name := range c.capacity {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read lookup %s: %w", path, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse lookup %s: %w", path, err)
	}
	return nil
}
