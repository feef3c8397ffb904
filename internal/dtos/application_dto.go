package dtos

import (
	"time"

	"github.com/justsurfingit/hirehub/internal/models"
)

type ApplyRequest struct {
	CoverLetter string `json:"coverLetter"`
	ResumeURL   string `json:"resumeUrl"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AppliedJob is the seeker-side view of one application with its job post.
type AppliedJob struct {
	JobID     string         `json:"jobId"`
	Status    string         `json:"status"`
	AppliedAt time.Time      `json:"appliedAt"`
	ResumeURL string         `json:"resumeUrl,omitempty"`
	JobPost   models.JobPost `json:"jobPost"`
}

// Applicant is the recruiter-side view of one application with a short
// seeker summary.
type Applicant struct {
	SeekerID  string    `json:"seekerId"`
	AppliedAt time.Time `json:"appliedAt"`
	Status    string    `json:"status"`
	ResumeURL string    `json:"resumeUrl,omitempty"`

	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	Location      string   `json:"location,omitempty"`
	ProfilePicURL string   `json:"profilePicUrl,omitempty"`
}

func NewAppliedJob(app models.Application) AppliedJob {
	return AppliedJob{
		JobID:     app.JobPostID,
		Status:    app.Status,
		AppliedAt: app.AppliedAt,
		ResumeURL: app.ResumeURL,
		JobPost:   app.JobPost,
	}
}

func NewApplicant(app models.Application) Applicant {
	return Applicant{
		SeekerID:      app.SeekerID,
		AppliedAt:     app.AppliedAt,
		Status:        app.Status,
		ResumeURL:     app.ResumeURL,
		Name:          app.Seeker.Name,
		Email:         app.Seeker.Email,
		Phone:         app.Seeker.Phone,
		Skills:        app.Seeker.Skills,
		Location:      app.Seeker.Location,
		ProfilePicURL: app.Seeker.ProfilePicURL,
	}
}
