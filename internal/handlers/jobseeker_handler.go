package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/hirehub/internal/auth"
	"github.com/justsurfingit/hirehub/internal/dtos"
	"github.com/justsurfingit/hirehub/internal/models"
	"github.com/justsurfingit/hirehub/internal/services"
)

type JobSeekerHandler struct {
	Auth          *services.AuthService
	Applications  *services.ApplicationService
	Notifications *services.NotificationService
	log           *slog.Logger
}

func NewJobSeekerHandler(
	authService *services.AuthService,
	appService *services.ApplicationService,
	noteService *services.NotificationService,
	log *slog.Logger,
) *JobSeekerHandler {
	return &JobSeekerHandler{
		Auth:          authService,
		Applications:  appService,
		Notifications: noteService,
		log:           log,
	}
}

// Apply is POST /api/jobseeker/apply/:jobId.
func (h *JobSeekerHandler) Apply(c *gin.Context) {
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	err := h.Applications.Apply(c.Request.Context(), c.GetString(auth.ContextAccountID), c.Param("jobId"), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application submitted successfully"})
}

// AppliedJobs is GET /api/jobseeker/applied-jobs.
func (h *JobSeekerHandler) AppliedJobs(c *gin.Context) {
	jobs, err := h.Applications.AppliedJobs(c.Request.Context(), c.GetString(auth.ContextAccountID))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appliedJobs": jobs})
}

// UpdateApplicationStatus is PUT /api/jobseeker/application/:jobId/status.
func (h *JobSeekerHandler) UpdateApplicationStatus(c *gin.Context) {
	var req dtos.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	err := h.Applications.UpdateStatusBySeeker(c.Request.Context(),
		c.GetString(auth.ContextAccountID), c.Param("jobId"), req.Status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application status updated successfully"})
}

// ListNotifications is GET /api/jobseeker/notifications.
func (h *JobSeekerHandler) ListNotifications(c *gin.Context) {
	notes, err := h.Notifications.List(c.Request.Context(), c.GetString(auth.ContextAccountID))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notes})
}

// MarkNotificationRead is PUT /api/jobseeker/notifications/:notificationId/read.
func (h *JobSeekerHandler) MarkNotificationRead(c *gin.Context) {
	err := h.Notifications.MarkRead(c.Request.Context(),
		c.GetString(auth.ContextAccountID), c.Param("notificationId"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// PublicProfile is GET /api/jobseeker/profile/:id (no auth).
func (h *JobSeekerHandler) PublicProfile(c *gin.Context) {
	account, err := h.Auth.GetPublicProfile(c.Request.Context(), c.Param("id"), models.RoleJobSeeker)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobSeeker": account})
}
