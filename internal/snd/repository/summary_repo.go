package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
)

// EvaluationSummary is the persisted aggregate record of one run.
type EvaluationSummary struct {
	ID             string                   `json:"id"`
	RunID          string                   `json:"run_id"`
	DemandProfile  string                   `json:"demand_profile"`
	FleetSize      int                      `json:"fleet_size"`
	NumRoutes      int                      `json:"num_routes"`
	Metrics        domain.EvaluationMetrics `json:"metrics"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// SummaryRepository handles PostgreSQL operations for evaluation summaries
type SummaryRepository struct {
	db *sql.DB
}

// NewSummaryRepository creates a new SummaryRepository
func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// CreateOrUpdate creates or updates an evaluation summary
// Uses ON CONFLICT to upsert based on run_id
func (r *SummaryRepository) CreateOrUpdate(summary *EvaluationSummary) error {
	if summary.ID == "" {
		summary.ID = uuid.New().String()
	}

	query := `
		INSERT INTO evaluation_summaries (
			id, run_id, demand_profile, fleet_size, num_routes, metrics
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (run_id) DO UPDATE SET
			demand_profile = EXCLUDED.demand_profile,
			fleet_size = EXCLUDED.fleet_size,
			num_routes = EXCLUDED.num_routes,
			metrics = EXCLUDED.metrics,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	metricsJSON, err := json.Marshal(summary.Metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	err = r.db.QueryRow(
		query,
		summary.ID,
		summary.RunID,
		summary.DemandProfile,
		summary.FleetSize,
		summary.NumRoutes,
		metricsJSON,
	).Scan(&summary.CreatedAt, &summary.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert summary: %w", err)
	}

	return nil
}

// GetByRunID retrieves a summary by run ID
func (r *SummaryRepository) GetByRunID(runID string) (*EvaluationSummary, error) {
	query := `
		SELECT id, run_id, demand_profile, fleet_size, num_routes, metrics, created_at, updated_at
		FROM evaluation_summaries
		WHERE run_id = $1
	`

	var summary EvaluationSummary
	var metricsJSON []byte

	err := r.db.QueryRow(query, runID).Scan(
		&summary.ID,
		&summary.RunID,
		&summary.DemandProfile,
		&summary.FleetSize,
		&summary.NumRoutes,
		&metricsJSON,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	if err := json.Unmarshal(metricsJSON, &summary.Metrics); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metrics: %w", err)
	}

	return &summary, nil
}

// ListByDemandProfile retrieves run IDs that evaluated the same demand
// profile, most recent first
func (r *SummaryRepository) ListByDemandProfile(demandProfile string) ([]string, error) {
	query := `
		SELECT run_id
		FROM evaluation_summaries
		WHERE demand_profile = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, demandProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	defer rows.Close()

	var runIDs []string
	for rows.Next() {
		var runID string
		if err := rows.Scan(&runID); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		runIDs = append(runIDs, runID)
	}
	return runIDs, rows.Err()
}
