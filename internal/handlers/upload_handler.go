package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/hirehub/internal/auth"
	"github.com/justsurfingit/hirehub/internal/services"
	"github.com/justsurfingit/hirehub/internal/storage"
)

type UploadHandler struct {
	Auth    *services.AuthService
	Store   storage.FileStore
	MaxSize int64
	log     *slog.Logger
}

func NewUploadHandler(authService *services.AuthService, store storage.FileStore, maxSize int64, log *slog.Logger) *UploadHandler {
	return &UploadHandler{Auth: authService, Store: store, MaxSize: maxSize, log: log}
}

// Resume is POST /api/jobseeker/upload-resume (field "resume").
func (h *UploadHandler) Resume(c *gin.Context) {
	h.save(c, "resume", "resumes", services.FileColumnResume, "Resume uploaded successfully", "resumeUrl")
}

// ProfilePic serves both roles' POST .../upload-profile-pic (field "profilePic").
func (h *UploadHandler) ProfilePic(c *gin.Context) {
	h.save(c, "profilePic", "profile-pics", services.FileColumnProfilePic, "Profile picture uploaded successfully", "profilePicUrl")
}

// CompanyLogo is POST /api/recruiter/upload-company-logo (field "companyLogo").
func (h *UploadHandler) CompanyLogo(c *gin.Context) {
	h.save(c, "companyLogo", "company-logos", services.FileColumnCompanyLogo, "Company logo uploaded successfully", "companyLogoUrl")
}

func (h *UploadHandler) save(c *gin.Context, field, prefix, column, message, urlKey string) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}
	if h.MaxSize > 0 && fileHeader.Size > h.MaxSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	defer f.Close()

	key := storage.ObjectKey(prefix, fileHeader.Filename)
	url, err := h.Store.Save(c.Request.Context(), key, f, fileHeader.Size,
		fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.Auth.SetFileURL(c.Request.Context(), c.GetString(auth.ContextAccountID), column, url); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, urlKey: url})
}
