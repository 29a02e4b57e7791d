package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
)

const (
	runKeyPrefix     = "snd:run:"          // Key prefix for run data: snd:run:{run_id}
	userRunSetPrefix = "snd:user:"         // Set of run IDs for a user: snd:user:{user_id}
	runTTL           = 30 * 24 * time.Hour // TTL for run data (30 days)
)

// RunRepository handles Redis operations for evaluation runs
type RunRepository struct {
	client *redis.Client
	ctx    context.Context
}

// NewRunRepository creates a new RunRepository
func NewRunRepository(client *redis.Client) *RunRepository {
	return &RunRepository{
		client: client,
		ctx:    context.Background(),
	}
}

// Create stores a new evaluation run and indexes it under its user
func (r *RunRepository) Create(run *domain.EvaluationRun) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if run.UpdatedAt.IsZero() {
		run.UpdatedAt = time.Now()
	}

	runData, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run data: %w", err)
	}

	runKey := r.runKey(run.RunID)
	userRunSetKey := r.userRunSetKey(run.UserID)

	// Use pipeline for atomic operations
	pipe := r.client.Pipeline()
	pipe.Set(r.ctx, runKey, runData, runTTL)
	pipe.SAdd(r.ctx, userRunSetKey, run.RunID)
	pipe.Expire(r.ctx, userRunSetKey, runTTL)

	if _, err := pipe.Exec(r.ctx); err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// GetByRunID retrieves a run by its ID
func (r *RunRepository) GetByRunID(runID string) (*domain.EvaluationRun, error) {
	data, err := r.client.Get(r.ctx, r.runKey(runID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var run domain.EvaluationRun
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run data: %w", err)
	}

	return &run, nil
}

// Update overwrites an existing run
func (r *RunRepository) Update(run *domain.EvaluationRun) error {
	run.UpdatedAt = time.Now()

	runData, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run data: %w", err)
	}

	if err := r.client.Set(r.ctx, r.runKey(run.RunID), runData, runTTL).Err(); err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	return nil
}

// ListByUserID retrieves all run IDs for a user
func (r *RunRepository) ListByUserID(userID string) ([]string, error) {
	ids, err := r.client.SMembers(r.ctx, r.userRunSetKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return ids, nil
}

// Delete removes a run and its user index entry
func (r *RunRepository) Delete(runID string) error {
	run, err := r.GetByRunID(runID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(r.ctx, r.runKey(runID))
	pipe.SRem(r.ctx, r.userRunSetKey(run.UserID), runID)

	if _, err := pipe.Exec(r.ctx); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	return nil
}

func (r *RunRepository) runKey(runID string) string {
	return runKeyPrefix + runID
}

func (r *RunRepository) userRunSetKey(userID string) string {
	return userRunSetPrefix + userID
}
