package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/transit-design-lab/snd-backend/internal/snd/domain"
)

// CreateEvaluation evaluates a submitted design and records the run
func (h *Handler) CreateEvaluation(c *gin.Context) {
	// Get user ID from context (set by Firebase auth middleware if authenticated)
	userID := c.GetString("firebase_uid")
	if userID == "" {
		// Fallback to header for development
		userID = c.GetHeader("X-User-Id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}
	}

	var body EvaluateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	run, err := h.evalService.Evaluate(userID, []byte(body.DesignYAML))
	if err != nil {
		var invalid *domain.InvalidDesignError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": invalid.Error()})
		case errors.Is(err, domain.ErrIncompleteAssignment),
			errors.Is(err, domain.ErrNoPath),
			errors.Is(err, domain.ErrZeroDemand),
			errors.Is(err, domain.ErrRouteTooShort),
			errors.Is(err, domain.ErrNegativeFlow),
			errors.Is(err, domain.ErrSameOriginAndDest):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"run": run})
}

// GetEvaluation retrieves an evaluation run by ID
func (h *Handler) GetEvaluation(c *gin.Context) {
	runID := c.Param("id")
	if runID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "run ID is required"})
		return
	}

	run, err := h.evalService.GetRun(runID)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get run"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"run": run})
}

// ListEvaluations lists the caller's evaluation run IDs
func (h *Handler) ListEvaluations(c *gin.Context) {
	userID := c.GetString("firebase_uid")
	if userID == "" {
		userID = c.GetHeader("X-User-Id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}
	}

	runIDs, err := h.evalService.ListRunsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"run_ids": runIDs})
}

// DeleteEvaluation deletes an evaluation run
func (h *Handler) DeleteEvaluation(c *gin.Context) {
	runID := c.Param("id")
	if runID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "run ID is required"})
		return
	}

	if err := h.evalService.DeleteRun(runID); err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete run"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": runID})
}
