package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/justsurfingit/hirehub/internal/common"
	"github.com/justsurfingit/hirehub/internal/dtos"
	"github.com/justsurfingit/hirehub/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB  *gorm.DB
	log *slog.Logger
}

func NewJobService(db *gorm.DB, log *slog.Logger) *JobService {
	return &JobService{DB: db, log: log}
}

// Create stores a new posting owned by the calling recruiter.
func (s *JobService) Create(ctx context.Context, recruiterID string, req *dtos.CreateJobPostRequest) (*models.JobPost, error) {
	var recruiter models.Account
	err := s.DB.WithContext(ctx).
		Where("id = ? AND role = ?", recruiterID, models.RoleRecruiter).
		First(&recruiter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("Recruiter not found")
		}
		return nil, err
	}

	post := &models.JobPost{
		RecruiterID:  recruiterID,
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		Experience:   req.Experience,
		Status:       models.JobStatusOpen,
	}
	if post.Type == "" {
		post.Type = "Full-time"
	}

	if err := s.DB.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}

	s.log.Info("job post created", "id", post.ID, "recruiter", recruiterID)
	return post, nil
}

// List returns one page of postings matching the free-text and field
// filters, newest first.
func (s *JobService) List(ctx context.Context, q *dtos.JobListQuery) (*dtos.JobListResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	tx := s.DB.WithContext(ctx).Model(&models.JobPost{})

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where(
			"LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if q.Location != "" {
		tx = tx.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(q.Location)+"%")
	}
	if q.Type != "" {
		tx = tx.Where("type = ?", q.Type)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []models.JobPost
	err := tx.Order("posted_date DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &dtos.JobListResponse{
		JobPosts:    posts,
		TotalPages:  totalPages,
		CurrentPage: page,
		TotalJobs:   total,
	}, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*models.JobPost, error) {
	var post models.JobPost
	if err := s.DB.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("Job post not found")
		}
		return nil, err
	}
	return &post, nil
}

// Update modifies a posting after checking the caller owns it.
func (s *JobService) Update(ctx context.Context, id, recruiterID string, req *dtos.UpdateJobPostRequest) (*models.JobPost, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.RecruiterID != recruiterID {
		return nil, common.Forbidden("Unauthorized to update this job post")
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Company != nil {
		post.Company = *req.Company
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if req.Type != nil {
		post.Type = *req.Type
	}
	if req.Salary != nil {
		post.Salary = *req.Salary
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Requirements != nil {
		post.Requirements = *req.Requirements
	}
	if req.Skills != nil {
		post.Skills = *req.Skills
	}
	if req.Experience != nil {
		post.Experience = *req.Experience
	}

	if err := s.DB.WithContext(ctx).Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a posting and its applications in one transaction.
func (s *JobService) Delete(ctx context.Context, id, recruiterID string) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.RecruiterID != recruiterID {
		return common.Forbidden("Unauthorized to delete this job post")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_post_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}

// UpdateStatus sets the open/closed/draft state of an owned posting.
func (s *JobService) UpdateStatus(ctx context.Context, id, recruiterID, status string) error {
	if !models.ValidJobStatus(status) {
		return common.Validation("Invalid status")
	}

	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.RecruiterID != recruiterID {
		return common.Forbidden("Unauthorized to update this job")
	}

	return s.DB.WithContext(ctx).Model(post).Update("status", status).Error
}

// ListByRecruiter returns all postings owned by the recruiter, newest first.
func (s *JobService) ListByRecruiter(ctx context.Context, recruiterID string) ([]models.JobPost, error) {
	var posts []models.JobPost
	err := s.DB.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Order("posted_date DESC").
		Find(&posts).Error
	return posts, err
}
