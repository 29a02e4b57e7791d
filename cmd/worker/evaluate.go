package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/transit-design-lab/snd-backend/config"
	"github.com/transit-design-lab/snd-backend/internal/snd/catalog"
	"github.com/transit-design-lab/snd-backend/internal/snd/export"
	"github.com/transit-design-lab/snd-backend/internal/snd/ingest/mapper"
	"github.com/transit-design-lab/snd-backend/internal/snd/ingest/parser"
	"github.com/transit-design-lab/snd-backend/internal/snd/report"
	"github.com/transit-design-lab/snd-backend/internal/snd/service"
)

// RunEvaluate parses a design file, assigns the fleet round-robin, and
// appends the aggregate metrics to the YAML report. Each resulting service
// network is also written out as a DOT file for inspection.
func RunEvaluate(args []string) {
	if len(args) < 1 {
		log.Fatal("usage: evaluate <designYAML> [reportPath] [dotDir]")
	}
	designPath := args[0]
	reportPath := "report.yaml"
	if len(args) > 1 {
		reportPath = args[1]
	}
	dotDir := "out"
	if len(args) > 2 {
		dotDir = args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	cat, err := catalog.Load(catalog.FilesInDir(filepath.Join(cfg.Feeds.DataDir, "lookups")))
	if err != nil {
		log.Fatalf("bus catalog: %v", err)
	}

	y, err := parser.ParseYAML(designPath)
	if err != nil {
		log.Fatalf("parse %s: %v", designPath, err)
	}

	d, err := mapper.ToDesign(y, cat, cfg.Engine.OperatorSalary)
	if err != nil {
		log.Fatalf("build design: %v", err)
	}

	if err := d.AssignBuses(service.RoundRobin); err != nil {
		log.Fatalf("assign buses: %v", err)
	}

	assignments := d.Assignments()
	last := assignments[len(assignments)-1]

	travelTime, err := d.AvgTravelTimeForAssignment(last)
	if err != nil {
		log.Fatalf("avg travel time: %v", err)
	}
	discomfort, err := d.AvgDiscomfortForAssignment(last)
	if err != nil {
		log.Fatalf("avg discomfort: %v", err)
	}
	transfers, err := d.AvgTransfersForAssignment(last)
	if err != nil {
		log.Fatalf("avg transfers: %v", err)
	}
	hops, err := d.AvgHopsForAssignment(last)
	if err != nil {
		log.Fatalf("avg hops: %v", err)
	}

	fleetNames := make([]string, 0, d.Fleet().NumBuses())
	for _, bus := range d.Fleet().Buses() {
		fleetNames = append(fleetNames, bus.Name)
	}

	entry := report.Entry{
		DemandProfile:    d.DemandProfileName(),
		FleetComposition: fleetNames,
		AvgTravelTime:    travelTime,
		AvgDiscomfort:    discomfort,
		AvgTransfers:     transfers,
		AvgHops:          hops,
		TotalEmissions:   d.TotalEmissions(),
	}
	if err := report.Append(reportPath, entry); err != nil {
		log.Fatalf("append report: %v", err)
	}

	if err := os.MkdirAll(dotDir, 0o755); err != nil {
		log.Fatalf("create %s: %v", dotDir, err)
	}
	for i, sn := range d.ServiceNetworks() {
		b, err := export.ToDOT(sn)
		if err != nil {
			log.Fatalf("render dot: %v", err)
		}
		path := filepath.Join(dotDir, fmt.Sprintf("service_network_%d.dot", i))
		if err := os.WriteFile(path, b, 0o644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		fmt.Printf("Wrote: %s\n", path)
	}

	fmt.Printf("Appended %s to %s\n", entry.DemandProfile, reportPath)
	fmt.Printf("avg_travel_time=%.3f avg_discomfort=%.3f avg_transfers=%.3f avg_hops=%.3f total_emissions=%.1f\n",
		travelTime, discomfort, transfers, hops, d.TotalEmissions())
}
