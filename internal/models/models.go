package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Account is the single identity table for both roles. Seeker-only and
// recruiter-only attributes live side by side as nullable columns; the Role
// column decides which set is meaningful. Email is unique per role, so the
// same address may register once as a seeker and once as a recruiter.
type Account struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"not null;uniqueIndex:idx_accounts_role_email" json:"email"`
	Role         string `gorm:"not null;uniqueIndex:idx_accounts_role_email" json:"role"`
	PasswordHash string `gorm:"not null" json:"-"`

	Phone         string `json:"phone,omitempty"`
	Bio           string `gorm:"type:text" json:"bio,omitempty"`
	Location      string `json:"location,omitempty"`
	ProfilePicURL string `json:"profilePicUrl"`

	// Job seeker attributes.
	ResumeURL    string      `json:"resumeUrl,omitempty"`
	Skills       []string    `gorm:"serializer:json" json:"skills,omitempty"`
	Experience   string      `json:"experience,omitempty"`
	Education    []Education `gorm:"serializer:json" json:"education,omitempty"`
	LinkedinURL  string      `json:"linkedinUrl,omitempty"`
	GithubURL    string      `json:"githubUrl,omitempty"`
	PortfolioURL string      `json:"portfolioUrl,omitempty"`

	// Recruiter attributes.
	CompanyName        string `json:"companyName,omitempty"`
	CompanyDescription string `gorm:"type:text" json:"companyDescription,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
	CompanyLogoURL     string `json:"companyLogoUrl,omitempty"`

	Applications  []Application  `gorm:"foreignKey:SeekerID" json:"-"`
	PostedJobs    []JobPost      `gorm:"foreignKey:RecruiterID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:AccountID" json:"notifications,omitempty"`
}

// Education is one entry of a seeker's education history, stored as JSON.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// JobPost carries its owner directly via RecruiterID, so ownership checks are
// a single indexed comparison. The open/closed/draft status lives here too.
type JobPost struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RecruiterID string `gorm:"type:uuid;not null;index" json:"recruiterId"`

	Title        string    `gorm:"not null" json:"title"`
	Company      string    `gorm:"not null" json:"company"`
	Location     string    `gorm:"not null" json:"location"`
	Type         string    `gorm:"default:'Full-time'" json:"type"`
	Salary       string    `json:"salary,omitempty"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Requirements []string  `gorm:"serializer:json" json:"requirements,omitempty"`
	Skills       []string  `gorm:"serializer:json" json:"skills,omitempty"`
	Experience   string    `json:"experience,omitempty"`
	Status       string    `gorm:"default:'open'" json:"status"`
	PostedDate   time.Time `json:"postedDate"`

	Applications []Application `gorm:"foreignKey:JobPostID" json:"applicants,omitempty"`
}

func (j *JobPost) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.PostedDate.IsZero() {
		j.PostedDate = time.Now()
	}
	return nil
}

// Application is the single record of one seeker applying to one post. Both
// the seeker's applied-jobs view and the post's applicant view project from
// it, and the composite unique index makes a duplicate apply impossible even
// under concurrent requests.
type Application struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	SeekerID  string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_seeker_post" json:"seekerId"`
	JobPostID string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_seeker_post" json:"jobId"`

	Status      string    `gorm:"default:'applied'" json:"status"`
	CoverLetter string    `gorm:"type:text" json:"coverLetter,omitempty"`
	ResumeURL   string    `json:"resumeUrl,omitempty"`
	AppliedAt   time.Time `json:"appliedAt"`

	Seeker  Account `gorm:"foreignKey:SeekerID" json:"-"`
	JobPost JobPost `gorm:"foreignKey:JobPostID" json:"-"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now()
	}
	return nil
}

// Notification belongs to exactly one account. Data carries related ids
// (job post, seeker) as a JSON payload for clients that want to link through.
type Notification struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	AccountID string         `gorm:"type:uuid;not null;index" json:"-"`
	Message   string         `gorm:"not null" json:"message"`
	Type      string         `gorm:"default:'system'" json:"type"`
	Read      bool           `gorm:"default:false" json:"read"`
	ReadAt    *time.Time     `json:"readAt,omitempty"`
	Data      datatypes.JSON `json:"data,omitempty"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
