package dtos

import "github.com/justsurfingit/hirehub/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=jobseeker recruiter"`

	// Optional profile fields
	Phone    string   `json:"phone"`
	Bio      string   `json:"bio"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`

	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription"`
	CompanyWebsite     string `json:"companyWebsite"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=jobseeker recruiter"`
}

// UserSummary is the slim account view returned alongside a token.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

// UpdateProfileRequest is a partial update; email and password are immutable
// through this path, so they are simply not part of the shape.
type UpdateProfileRequest struct {
	Name          *string             `json:"name"`
	Phone         *string             `json:"phone"`
	Bio           *string             `json:"bio"`
	Location      *string             `json:"location"`
	Skills        *[]string           `json:"skills"`
	Experience    *string             `json:"experience"`
	Education     *[]models.Education `json:"education"`
	LinkedinURL   *string             `json:"linkedinUrl"`
	GithubURL     *string             `json:"githubUrl"`
	PortfolioURL  *string             `json:"portfolioUrl"`
	ProfilePicURL *string             `json:"profilePicUrl"`

	CompanyName        *string `json:"companyName"`
	CompanyDescription *string `json:"companyDescription"`
	CompanyWebsite     *string `json:"companyWebsite"`
}

func Summary(a *models.Account) UserSummary {
	return UserSummary{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}
