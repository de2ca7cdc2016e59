package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/m-mizutani/briefhub/pkg/model"
)

type createBriefRequest struct {
	SourceText string `json:"sourceText"`
	SessionID  string `json:"sessionId"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errKind maps a pipeline error to an HTTP status and a stable error kind
func errKind(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, model.ErrModelUnavailable):
		return http.StatusServiceUnavailable, "model_unavailable"
	case errors.Is(err, model.ErrGenerationFailed):
		return http.StatusInternalServerError, "generation_failed"
	case errors.Is(err, model.ErrStorageFailed):
		return http.StatusInternalServerError, "storage_failed"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func respondError(c *gin.Context, err error) {
	status, kind := errKind(err)
	c.JSON(status, errorResponse{Error: kind, Message: err.Error()})
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "briefhub",
		"endpoints": gin.H{
			"briefs": "/api/briefs",
			"health": "/health",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	health := gin.H{"status": "ok"}

	// Cheap single-field query as a store liveness probe
	if _, err := s.repo.ListByFingerprint(c.Request.Context(), "health-check"); err != nil {
		health["status"] = "degraded"
		health["store"] = err.Error()
	} else {
		health["store"] = "connected"
	}

	c.JSON(http.StatusOK, health)
}

func (s *Server) handleCreateBrief(c *gin.Context) {
	var req createBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_input", Message: "request body must be JSON with sourceText and sessionId"})
		return
	}

	result, created, err := s.uc.Produce(c.Request.Context(), req.SourceText, model.SessionID(req.SessionID))
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

func (s *Server) handleListBriefs(c *gin.Context) {
	session := model.SessionID(c.Query("sessionId"))

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_input", Message: "limit must be an integer"})
			return
		}
		limit = parsed
	}

	summaries, err := s.uc.ListRecent(c.Request.Context(), session, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (s *Server) handleGetBrief(c *gin.Context) {
	id := model.BriefID(c.Param("id"))
	session := model.SessionID(c.Query("sessionId"))

	result, err := s.uc.Get(c.Request.Context(), id, session)
	if err != nil {
		respondError(c, err)
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "not_found", Message: "brief not found"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleDeleteBrief(c *gin.Context) {
	id := model.BriefID(c.Param("id"))
	session := model.SessionID(c.Query("sessionId"))

	deleted, err := s.uc.Remove(c.Request.Context(), id, session)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, errorResponse{Error: "not_found", Message: "brief not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
