package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/hirehub/internal/auth"
	"github.com/justsurfingit/hirehub/internal/models"
)

// HealthCheck is GET /api/health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is running", "status": "OK"})
}

// RegisterRoutes wires the full API surface onto r. authLimiter (may be nil)
// throttles only the credential endpoints.
func RegisterRoutes(
	r *gin.Engine,
	secret []byte,
	authLimiter gin.HandlerFunc,
	authHandler *AuthHandler,
	jobHandler *JobHandler,
	seekerHandler *JobSeekerHandler,
	recruiterHandler *RecruiterHandler,
	uploadHandler *UploadHandler,
) {
	authn := auth.RequireAuth(secret)
	seekerOnly := auth.RequireRole(models.RoleJobSeeker)
	recruiterOnly := auth.RequireRole(models.RoleRecruiter)

	api := r.Group("/api")
	api.GET("/health", HealthCheck)

	authGroup := api.Group("/auth")
	if authLimiter != nil {
		authGroup.POST("/register", authLimiter, authHandler.Register)
		authGroup.POST("/login", authLimiter, authHandler.Login)
	} else {
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}
	authGroup.GET("/me", authn, authHandler.GetProfile)
	authGroup.GET("/profile", authn, authHandler.GetProfile)
	authGroup.PUT("/profile", authn, authHandler.UpdateProfile)

	jobs := api.Group("/jobs")
	jobs.GET("", jobHandler.List)
	jobs.GET("/:id", jobHandler.Get)
	jobs.POST("", authn, recruiterOnly, jobHandler.Create)
	jobs.PUT("/:id", authn, recruiterOnly, jobHandler.Update)
	jobs.DELETE("/:id", authn, recruiterOnly, jobHandler.Delete)

	seeker := api.Group("/jobseeker")
	seeker.GET("/profile/:id", seekerHandler.PublicProfile)
	seeker.POST("/apply/:jobId", authn, seekerOnly, seekerHandler.Apply)
	seeker.GET("/applied-jobs", authn, seekerOnly, seekerHandler.AppliedJobs)
	seeker.PUT("/application/:jobId/status", authn, seekerOnly, seekerHandler.UpdateApplicationStatus)
	seeker.GET("/notifications", authn, seekerOnly, seekerHandler.ListNotifications)
	seeker.PUT("/notifications/:notificationId/read", authn, seekerOnly, seekerHandler.MarkNotificationRead)
	seeker.POST("/upload-resume", authn, seekerOnly, uploadHandler.Resume)
	seeker.POST("/upload-profile-pic", authn, seekerOnly, uploadHandler.ProfilePic)

	recruiter := api.Group("/recruiter")
	recruiter.GET("/profile/:id", recruiterHandler.PublicProfile)
	recruiter.GET("/jobs", authn, recruiterOnly, recruiterHandler.PostedJobs)
	recruiter.GET("/jobs/:jobId/applicants", authn, recruiterOnly, recruiterHandler.Applicants)
	recruiter.PUT("/jobs/:jobId/applicants/:seekerId/status", authn, recruiterOnly, recruiterHandler.UpdateApplicantStatus)
	recruiter.PUT("/jobs/:jobId/status", authn, recruiterOnly, recruiterHandler.UpdateJobStatus)
	recruiter.GET("/notifications", authn, recruiterOnly, recruiterHandler.ListNotifications)
	recruiter.PUT("/notifications/:notificationId/read", authn, recruiterOnly, recruiterHandler.MarkNotificationRead)
	recruiter.POST("/upload-profile-pic", authn, recruiterOnly, uploadHandler.ProfilePic)
	recruiter.POST("/upload-company-logo", authn, recruiterOnly, uploadHandler.CompanyLogo)
}
