package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/hirehub/internal/auth"
	"github.com/justsurfingit/hirehub/internal/dtos"
	"github.com/justsurfingit/hirehub/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
	log  *slog.Logger
}

func NewJobHandler(jobService *services.JobService, log *slog.Logger) *JobHandler {
	return &JobHandler{Jobs: jobService, log: log}
}

// List is GET /api/jobs with search/location/type filters and pagination.
func (h *JobHandler) List(c *gin.Context) {
	var q dtos.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters"})
		return
	}

	resp, err := h.Jobs.List(c.Request.Context(), &q)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get is GET /api/jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	post, err := h.Jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobPost": post})
}

// Create is POST /api/jobs (recruiter only).
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.CreateJobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	post, err := h.Jobs.Create(c.Request.Context(), c.GetString(auth.ContextAccountID), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Job post created successfully", "jobPost": post})
}

// Update is PUT /api/jobs/:id (owner only).
func (h *JobHandler) Update(c *gin.Context) {
	var req dtos.UpdateJobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	post, err := h.Jobs.Update(c.Request.Context(), c.Param("id"), c.GetString(auth.ContextAccountID), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job post updated successfully", "jobPost": post})
}

// Delete is DELETE /api/jobs/:id (owner only).
func (h *JobHandler) Delete(c *gin.Context) {
	err := h.Jobs.Delete(c.Request.Context(), c.Param("id"), c.GetString(auth.ContextAccountID))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job post deleted successfully"})
}
