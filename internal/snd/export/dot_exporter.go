package export

import (
	"fmt"
	"strings"

	"github.com/transit-design-lab/snd-backend/internal/snd/graph"
)

// ToDOT renders a Graphviz DOT for a service network. Bus edges are labeled
// with their route and drawn solid; carried-over street edges are dashed.
// Usage: dotBytes, _ := ToDOT(sn); os.WriteFile("service.dot", dotBytes, 0644)
func ToDOT(sn *graph.ServiceNetwork) ([]byte, error) {
	var b strings.Builder
	b.WriteString("digraph G {\n")
	b.WriteString(`  rankdir=LR; node [shape=circle];` + "\n")

	for _, n := range sn.Nodes() {
		fmt.Fprintf(&b, "  %d;\n", n)
	}
	for _, n := range sn.Nodes() {
		for _, e := range sn.OutEdges(n) {
			if e.Type == graph.EdgeTypeBus {
				fmt.Fprintf(&b, "  %d -> %d [label=\"%s\"];\n", e.From, e.To, e.RouteID)
			} else {
				fmt.Fprintf(&b, "  %d -> %d [style=dashed];\n", e.From, e.To)
			}
		}
	}
	b.WriteString("}\n")
	return []byte(b.String()), nil
}
