package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/justsurfingit/hirehub/internal/common"
	"github.com/justsurfingit/hirehub/internal/dtos"
	"github.com/justsurfingit/hirehub/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ApplicationService is the workflow around applications: applying to a
// post, listing both sides, and moving an application through its statuses.
// Every multi-row effect (application + notification) commits in a single
// transaction, so there is no partially-applied state to reconcile.
type ApplicationService struct {
	DB  *gorm.DB
	log *slog.Logger
}

func NewApplicationService(db *gorm.DB, log *slog.Logger) *ApplicationService {
	return &ApplicationService{DB: db, log: log}
}

// Apply records a seeker's application to a job and notifies the owning
// recruiter. A second apply to the same job is rejected before any write,
// and the unique (seeker, post) index backstops the check under concurrency.
func (s *ApplicationService) Apply(ctx context.Context, seekerID, jobID string, req *dtos.ApplyRequest) error {
	var seeker models.Account
	err := s.DB.WithContext(ctx).
		Where("id = ? AND role = ?", seekerID, models.RoleJobSeeker).
		First(&seeker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFound("Job seeker not found")
		}
		return err
	}

	var job models.JobPost
	if err := s.DB.WithContext(ctx).First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFound("Job post not found")
		}
		return err
	}

	var existing int64
	err = s.DB.WithContext(ctx).Model(&models.Application{}).
		Where("seeker_id = ? AND job_post_id = ?", seekerID, jobID).
		Count(&existing).Error
	if err != nil {
		return err
	}
	if existing > 0 {
		return common.Duplicate("Already applied for this job")
	}

	resumeURL := req.ResumeURL
	if resumeURL == "" {
		resumeURL = seeker.ResumeURL
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		app := &models.Application{
			SeekerID:    seekerID,
			JobPostID:   jobID,
			Status:      models.StatusApplied,
			CoverLetter: req.CoverLetter,
			ResumeURL:   resumeURL,
		}
		if err := tx.Create(app).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return common.Duplicate("Already applied for this job")
			}
			return err
		}

		note := &models.Notification{
			AccountID: job.RecruiterID,
			Message:   fmt.Sprintf("%s has applied for the position: %s", seeker.Name, job.Title),
			Type:      models.NotificationApplication,
			Data:      notificationData(job.ID, seekerID),
		}
		return tx.Create(note).Error
	})
	if err != nil {
		return err
	}

	s.log.Info("application submitted", "seeker", seekerID, "job", jobID)
	return nil
}

// AppliedJobs lists the seeker's applications with their postings, newest
// first.
func (s *ApplicationService) AppliedJobs(ctx context.Context, seekerID string) ([]dtos.AppliedJob, error) {
	var apps []models.Application
	err := s.DB.WithContext(ctx).
		Preload("JobPost").
		Where("seeker_id = ?", seekerID).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	out := make([]dtos.AppliedJob, 0, len(apps))
	for _, app := range apps {
		out = append(out, dtos.NewAppliedJob(app))
	}
	return out, nil
}

// UpdateStatusBySeeker lets a seeker move their own application forward.
func (s *ApplicationService) UpdateStatusBySeeker(ctx context.Context, seekerID, jobID, status string) error {
	if !models.ValidApplicationStatus(status) {
		return common.Validation("Invalid status")
	}

	var app models.Application
	err := s.DB.WithContext(ctx).
		Where("seeker_id = ? AND job_post_id = ?", seekerID, jobID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFound("Application not found")
		}
		return err
	}

	if !models.CanTransition(app.Status, status) {
		return common.Validation(fmt.Sprintf("Cannot change status from %s to %s", app.Status, status))
	}

	return s.DB.WithContext(ctx).Model(&app).Update("status", status).Error
}

// ListApplicants returns the applications for a posting the caller owns,
// with seeker summaries.
func (s *ApplicationService) ListApplicants(ctx context.Context, recruiterID, jobID string) ([]dtos.Applicant, error) {
	var job models.JobPost
	if err := s.DB.WithContext(ctx).First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("Job post not found")
		}
		return nil, err
	}
	if job.RecruiterID != recruiterID {
		return nil, common.Forbidden("Unauthorized to view applicants for this job")
	}

	var apps []models.Application
	err := s.DB.WithContext(ctx).
		Preload("Seeker").
		Where("job_post_id = ?", jobID).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	out := make([]dtos.Applicant, 0, len(apps))
	for _, app := range apps {
		out = append(out, dtos.NewApplicant(app))
	}
	return out, nil
}

// UpdateStatusByRecruiter moves an applicant's status on a posting the
// caller owns. A move to shortlisted also notifies the seeker, in the same
// transaction as the status write.
func (s *ApplicationService) UpdateStatusByRecruiter(ctx context.Context, recruiterID, jobID, seekerID, status string) error {
	if !models.ValidApplicationStatus(status) {
		return common.Validation("Invalid status")
	}

	var job models.JobPost
	if err := s.DB.WithContext(ctx).First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFound("Job post not found")
		}
		return err
	}
	if job.RecruiterID != recruiterID {
		return common.Forbidden("Unauthorized to update application status")
	}

	var app models.Application
	err := s.DB.WithContext(ctx).
		Where("seeker_id = ? AND job_post_id = ?", seekerID, jobID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFound("Applicant not found")
		}
		return err
	}

	if !models.CanTransition(app.Status, status) {
		return common.Validation(fmt.Sprintf("Cannot change status from %s to %s", app.Status, status))
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&app).Update("status", status).Error; err != nil {
			return err
		}

		if status != models.StatusShortlisted {
			return nil
		}
		note := &models.Notification{
			AccountID: seekerID,
			Message: fmt.Sprintf("Congratulations! You have been shortlisted for the position: %s at %s",
				job.Title, job.Company),
			Type: models.NotificationApplication,
			Data: notificationData(job.ID, seekerID),
		}
		return tx.Create(note).Error
	})
	if err != nil {
		return err
	}

	s.log.Info("application status updated",
		"job", jobID, "seeker", seekerID, "status", status)
	return nil
}

func notificationData(jobID, seekerID string) datatypes.JSON {
	data, _ := json.Marshal(map[string]string{"jobId": jobID, "seekerId": seekerID})
	return datatypes.JSON(data)
}
