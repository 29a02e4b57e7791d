package http

import "github.com/transit-design-lab/snd-backend/internal/snd/service"

// Handler handles HTTP requests for design evaluations
type Handler struct {
	evalService *service.EvaluationService
}

// New creates a new Handler
func New(evalService *service.EvaluationService) *Handler {
	return &Handler{evalService: evalService}
}

// EvaluateRequest carries the YAML design description to evaluate.
type EvaluateRequest struct {
	DesignYAML string `json:"design_yaml" binding:"required"`
}
