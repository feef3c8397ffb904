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

type RecruiterHandler struct {
	Auth          *services.AuthService
	Jobs          *services.JobService
	Applications  *services.ApplicationService
	Notifications *services.NotificationService
	log           *slog.Logger
}

func NewRecruiterHandler(
	authService *services.AuthService,
	jobService *services.JobService,
	appService *services.ApplicationService,
	noteService *services.NotificationService,
	log *slog.Logger,
) *RecruiterHandler {
	return &RecruiterHandler{
		Auth:          authService,
		Jobs:          jobService,
		Applications:  appService,
		Notifications: noteService,
		log:           log,
	}
}

// PostedJobs is GET /api/recruiter/jobs.
func (h *RecruiterHandler) PostedJobs(c *gin.Context) {
	posts, err := h.Jobs.ListByRecruiter(c.Request.Context(), c.GetString(auth.ContextAccountID))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"postedJobs": posts})
}

// Applicants is GET /api/recruiter/jobs/:jobId/applicants (owner only).
func (h *RecruiterHandler) Applicants(c *gin.Context) {
	applicants, err := h.Applications.ListApplicants(c.Request.Context(),
		c.GetString(auth.ContextAccountID), c.Param("jobId"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applicants": applicants})
}

// UpdateApplicantStatus is PUT /api/recruiter/jobs/:jobId/applicants/:seekerId/status.
func (h *RecruiterHandler) UpdateApplicantStatus(c *gin.Context) {
	var req dtos.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	err := h.Applications.UpdateStatusByRecruiter(c.Request.Context(),
		c.GetString(auth.ContextAccountID), c.Param("jobId"), c.Param("seekerId"), req.Status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application status updated successfully"})
}

// UpdateJobStatus is PUT /api/recruiter/jobs/:jobId/status.
func (h *RecruiterHandler) UpdateJobStatus(c *gin.Context) {
	var req dtos.JobStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	err := h.Jobs.UpdateStatus(c.Request.Context(), c.Param("jobId"),
		c.GetString(auth.ContextAccountID), req.Status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job status updated successfully"})
}

// ListNotifications is GET /api/recruiter/notifications.
func (h *RecruiterHandler) ListNotifications(c *gin.Context) {
	notes, err := h.Notifications.List(c.Request.Context(), c.GetString(auth.ContextAccountID))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notes})
}

// MarkNotificationRead is PUT /api/recruiter/notifications/:notificationId/read.
func (h *RecruiterHandler) MarkNotificationRead(c *gin.Context) {
	err := h.Notifications.MarkRead(c.Request.Context(),
		c.GetString(auth.ContextAccountID), c.Param("notificationId"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// PublicProfile is GET /api/recruiter/profile/:id (no auth).
func (h *RecruiterHandler) PublicProfile(c *gin.Context) {
	account, err := h.Auth.GetPublicProfile(c.Request.Context(), c.Param("id"), models.RoleRecruiter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recruiter": account})
}
