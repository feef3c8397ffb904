package dtos

import "github.com/justsurfingit/hirehub/internal/models"

type CreateJobPostRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional fields
	Type         string   `json:"type" binding:"omitempty,oneof=Full-time Part-time Contract Internship Temporary"`
	Salary       string   `json:"salary"`
	Requirements []string `json:"requirements"`
	Skills       []string `json:"skills"`
	Experience   string   `json:"experience"`
}

type UpdateJobPostRequest struct {
	Title        *string   `json:"title"`
	Company      *string   `json:"company"`
	Location     *string   `json:"location"`
	Type         *string   `json:"type" binding:"omitempty,oneof=Full-time Part-time Contract Internship Temporary"`
	Salary       *string   `json:"salary"`
	Description  *string   `json:"description"`
	Requirements *[]string `json:"requirements"`
	Skills       *[]string `json:"skills"`
	Experience   *string   `json:"experience"`
}

type JobListQuery struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Search   string `form:"search"`
	Location string `form:"location"`
	Type     string `form:"type"`
}

type JobListResponse struct {
	JobPosts    []models.JobPost `json:"jobPosts"`
	TotalPages  int64            `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	TotalJobs   int64            `json:"totalJobs"`
}

type JobStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=open closed draft"`
}
