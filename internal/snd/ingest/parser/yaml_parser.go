package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YDesign is the on-disk YAML description of a service network design
// scenario.
type YDesign struct {
	Street  YStreet  `yaml:"street"`
	Routes  []YRoute `yaml:"routes"`
	ODFlows []YFlow  `yaml:"od_flows"`
	Fleet   YFleet   `yaml:"fleet"`
}

// YStreet describes the street network either as a grid or as explicit
// weighted edges.
type YStreet struct {
	Grid  *YGrid  `yaml:"grid"`
	Edges []YEdge `yaml:"edges"`
}

type YGrid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type YEdge struct {
	U      int     `yaml:"u"`
	V      int     `yaml:"v"`
	Weight float64 `yaml:"weight"`
}

type YRoute struct {
	Name  string `yaml:"name"`
	Nodes []int  `yaml:"nodes"`
}

type YFlow struct {
	Origin      int `yaml:"origin"`
	Destination int `yaml:"destination"`
	Flow        int `yaml:"flow"`
}

// YFleet lists the buses to deploy by catalog type. OperatorSalary, when
// set, overrides the configured default for this design only.
type YFleet struct {
	Buses          []YBus `yaml:"buses"`
	OperatorSalary *int   `yaml:"operator_salary"`
}

type YBus struct {
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
}

// ParseYAML reads a design description from disk.
func ParseYAML(path string) (*YDesign, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(b)
}

// FromYAML decodes a design description and applies defaults.
func FromYAML(b []byte) (*YDesign, error) {
	var d YDesign
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	if d.Street.Grid == nil && len(d.Street.Edges) == 0 {
		return nil, fmt.Errorf("street network requires either a grid or explicit edges")
	}
	for i := range d.Fleet.Buses {
		if d.Fleet.Buses[i].Count == 0 {
			d.Fleet.Buses[i].Count = 1
		}
	}
	return &d, nil
}
