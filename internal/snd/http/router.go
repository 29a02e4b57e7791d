package http

import "github.com/gin-gonic/gin"

// Register registers the evaluation routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/evaluations", h.CreateEvaluation)
	rg.GET("/evaluations", h.ListEvaluations)
	rg.GET("/evaluations/:id", h.GetEvaluation)
	rg.DELETE("/evaluations/:id", h.DeleteEvaluation)
}
