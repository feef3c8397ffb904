package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/justsurfingit/hirehub/internal/auth"
	"github.com/justsurfingit/hirehub/internal/common"
	"github.com/justsurfingit/hirehub/internal/config"
	"github.com/justsurfingit/hirehub/internal/dtos"
	"github.com/justsurfingit/hirehub/internal/models"
	"gorm.io/gorm"
)

// Account columns the upload endpoints may overwrite.
const (
	FileColumnResume      = "resume_url"
	FileColumnProfilePic  = "profile_pic_url"
	FileColumnCompanyLogo = "company_logo_url"
)

type AuthService struct {
	DB  *gorm.DB
	cfg *config.Config
	log *slog.Logger
}

func NewAuthService(db *gorm.DB, cfg *config.Config, log *slog.Logger) *AuthService {
	return &AuthService{DB: db, cfg: cfg, log: log}
}

// Register creates the account and issues its first token. Duplicate
// (role, email) pairs are rejected by the unique index.
func (s *AuthService) Register(ctx context.Context, req *dtos.RegisterRequest) (*models.Account, string, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	account := &models.Account{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		Role:         req.Role,
		PasswordHash: hash,
		Phone:        req.Phone,
		Bio:          req.Bio,
		Location:     req.Location,
		Skills:       req.Skills,

		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		CompanyWebsite:     req.CompanyWebsite,
	}

	if err := s.DB.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", common.Duplicate("Email already exists")
		}
		return nil, "", err
	}

	token, err := auth.GenerateToken(account.ID, account.Role, []byte(s.cfg.JWTSecret), s.cfg.TokenValidity)
	if err != nil {
		return nil, "", err
	}

	s.log.Info("account registered", "id", account.ID, "role", account.Role)
	return account, token, nil
}

// Login verifies credentials within the claimed role's namespace and issues
// a token identical in shape to registration's.
func (s *AuthService) Login(ctx context.Context, req *dtos.LoginRequest) (*models.Account, string, error) {
	var account models.Account
	err := s.DB.WithContext(ctx).
		Where("email = ? AND role = ?", strings.ToLower(req.Email), req.Role).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", common.Validation("Invalid credentials")
		}
		return nil, "", err
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, "", common.Validation("Invalid credentials")
	}

	token, err := auth.GenerateToken(account.ID, account.Role, []byte(s.cfg.JWTSecret), s.cfg.TokenValidity)
	if err != nil {
		return nil, "", err
	}
	return &account, token, nil
}

// GetProfile returns the caller's account with notifications, newest first.
func (s *AuthService) GetProfile(ctx context.Context, accountID string) (*models.Account, error) {
	var account models.Account
	err := s.DB.WithContext(ctx).
		Preload("Notifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&account, "id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("User not found")
		}
		return nil, err
	}
	return &account, nil
}

// GetPublicProfile looks up an account of the given role for the public
// profile pages.
func (s *AuthService) GetPublicProfile(ctx context.Context, accountID, role string) (*models.Account, error) {
	var account models.Account
	err := s.DB.WithContext(ctx).
		Where("id = ? AND role = ?", accountID, role).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if role == models.RoleRecruiter {
				return nil, common.NotFound("Recruiter not found")
			}
			return nil, common.NotFound("Job seeker not found")
		}
		return nil, err
	}
	return &account, nil
}

// UpdateProfile applies a partial update. Email and password never change
// through this path.
func (s *AuthService) UpdateProfile(ctx context.Context, accountID string, req *dtos.UpdateProfileRequest) (*models.Account, error) {
	var account models.Account
	err := s.DB.WithContext(ctx).First(&account, "id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("User not found")
		}
		return nil, err
	}

	applyProfileUpdates(&account, req)

	if err := s.DB.WithContext(ctx).Save(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// SetFileURL persists the URL an upload produced into one of the allowed
// account columns.
func (s *AuthService) SetFileURL(ctx context.Context, accountID, column, url string) error {
	switch column {
	case FileColumnResume, FileColumnProfilePic, FileColumnCompanyLogo:
	default:
		return common.Validation("Invalid upload target")
	}

	res := s.DB.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", accountID).
		Update(column, url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.NotFound("User not found")
	}
	return nil
}

func applyProfileUpdates(account *models.Account, req *dtos.UpdateProfileRequest) {
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Phone != nil {
		account.Phone = *req.Phone
	}
	if req.Bio != nil {
		account.Bio = *req.Bio
	}
	if req.Location != nil {
		account.Location = *req.Location
	}
	if req.Skills != nil {
		account.Skills = *req.Skills
	}
	if req.Experience != nil {
		account.Experience = *req.Experience
	}
	if req.Education != nil {
		account.Education = *req.Education
	}
	if req.LinkedinURL != nil {
		account.LinkedinURL = *req.LinkedinURL
	}
	if req.GithubURL != nil {
		account.GithubURL = *req.GithubURL
	}
	if req.PortfolioURL != nil {
		account.PortfolioURL = *req.PortfolioURL
	}
	if req.ProfilePicURL != nil {
		account.ProfilePicURL = *req.ProfilePicURL
	}
	if req.CompanyName != nil {
		account.CompanyName = *req.CompanyName
	}
	if req.CompanyDescription != nil {
		account.CompanyDescription = *req.CompanyDescription
	}
	if req.CompanyWebsite != nil {
		account.CompanyWebsite = *req.CompanyWebsite
	}
}
