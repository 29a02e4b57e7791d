package service

import (
	"fmt"
	"log"
	"time"

	"github.com/transit-design-lab/snd-backend/internal/snd/catalog"
	"github.com/transit-design-lab/snd-backend/internal/snd/design"
	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
	"github.com/transit-design-lab/snd-backend/internal/snd/fleet"
	"github.com/transit-design-lab/snd-backend/internal/snd/ingest/mapper"
	"github.com/transit-design-lab/snd-backend/internal/snd/ingest/parser"
	"github.com/transit-design-lab/snd-backend/internal/snd/repository"
)

// EvaluationService runs the design evaluation pipeline and records results.
type EvaluationService struct {
	runs           *repository.RunRepository
	summaries      *repository.SummaryRepository
	catalog        *catalog.Catalog
	operatorSalary int
}

// NewEvaluationService creates a new EvaluationService. summaries may be nil
// when postgres persistence is disabled.
func NewEvaluationService(runs *repository.RunRepository, summaries *repository.SummaryRepository, cat *catalog.Catalog, operatorSalary int) *EvaluationService {
	return &EvaluationService{
		runs:           runs,
		summaries:      summaries,
		catalog:        cat,
		operatorSalary: operatorSalary,
	}
}

// RoundRobin is the default assignment routine: bus i is deployed on route
// i mod route count, so each route receives at least one bus whenever the
// fleet is large enough.
func RoundRobin(snap design.Snapshot) (*fleet.Assignment, error) {
	assignment := fleet.NewAssignment(snap.Fleet)
	for i, bus := range snap.Fleet.Buses() {
		if err := assignment.AssignBusToRoute(bus, snap.Routes[i%len(snap.Routes)]); err != nil {
			return nil, err
		}
	}
	return assignment, nil
}

// Evaluate parses the design description, builds and validates the design,
// performs one round-robin fleet assignment, and aggregates the resulting
// flow metrics. The run is stored in redis and, when configured, summarized
// in postgres.
func (s *EvaluationService) Evaluate(userID string, designYAML []byte) (*domain.EvaluationRun, error) {
	y, err := parser.FromYAML(designYAML)
	if err != nil {
		return nil, fmt.Errorf("parse design: %w", err)
	}

	d, err := mapper.ToDesign(y, s.catalog, s.operatorSalary)
	if err != nil {
		return nil, err
	}

	if err := d.AssignBuses(RoundRobin); err != nil {
		return nil, err
	}

	metrics, err := Aggregate(d)
	if err != nil {
		return nil, err
	}

	run := &domain.EvaluationRun{
		UserID:        userID,
		DemandProfile: d.DemandProfileName(),
		Status:        domain.StatusCompleted,
		Metrics:       metrics,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.runs.Create(run); err != nil {
		return nil, err
	}

	if s.summaries != nil {
		summary := &repository.EvaluationSummary{
			RunID:         run.RunID,
			DemandProfile: run.DemandProfile,
			FleetSize:     d.Fleet().NumBuses(),
			NumRoutes:     len(d.Routes()),
			Metrics:       metrics,
		}
		if err := s.summaries.CreateOrUpdate(summary); err != nil {
			// The run itself is already recorded; summary persistence is
			// best-effort.
			log.Printf("failed to persist summary for run %s: %v", run.RunID, err)
		}
	}

	return run, nil
}

// GetRun retrieves a run by its ID
func (s *EvaluationService) GetRun(runID string) (*domain.EvaluationRun, error) {
	return s.runs.GetByRunID(runID)
}

// ListRunsByUser retrieves all run IDs for a user
func (s *EvaluationService) ListRunsByUser(userID string) ([]string, error) {
	return s.runs.ListByUserID(userID)
}

// DeleteRun deletes a run
func (s *EvaluationService) DeleteRun(runID string) error {
	return s.runs.Delete(runID)
}

// Aggregate computes the evaluation metrics of a design's most recent
// assignment together with the design-level cost and coverage figures.
func Aggregate(d *design.Design) (domain.EvaluationMetrics, error) {
	assignments := d.Assignments()
	if len(assignments) == 0 {
		return domain.EvaluationMetrics{}, fmt.Errorf("design has no fleet assignments")
	}
	last := assignments[len(assignments)-1]

	avgTT, err := d.AvgTravelTimeForAssignment(last)
	if err != nil {
		return domain.EvaluationMetrics{}, err
	}
	avgDiscomfort, err := d.AvgDiscomfortForAssignment(last)
	if err != nil {
		return domain.EvaluationMetrics{}, err
	}
	avgTransfers, err := d.AvgTransfersForAssignment(last)
	if err != nil {
		return domain.EvaluationMetrics{}, err
	}
	avgHops, err := d.AvgHopsForAssignment(last)
	if err != nil {
		return domain.EvaluationMetrics{}, err
	}

	satisfied := d.SatisfiedDemand()
	coverage := make([]domain.DemandCoverage, 0, len(satisfied))
	for _, flow := range d.ODFlows() {
		coverage = append(coverage, domain.DemandCoverage{
			Origin:            flow.Origin,
			Destination:       flow.Destination,
			Flow:              flow.Flow,
			SatisfiedCapacity: satisfied[flow],
		})
	}

	return domain.EvaluationMetrics{
		AvgTravelTime:        avgTT,
		AvgDiscomfort:        avgDiscomfort,
		AvgTransfers:         avgTransfers,
		AvgHops:              avgHops,
		TotalEmissions:       d.TotalEmissions(),
		TotalCapitalCost:     d.TotalCapitalCost(),
		TotalOperationalCost: d.TotalOperationalCost(),
		SatisfiedDemand:      coverage,
	}, nil
}
