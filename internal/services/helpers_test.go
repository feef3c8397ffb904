package services

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/justsurfingit/hirehub/internal/config"
	"github.com/justsurfingit/hirehub/internal/database"
	"github.com/justsurfingit/hirehub/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.JWTSecret = "test-secret"
	return cfg
}

func createAccount(t *testing.T, db *gorm.DB, role, email string) *models.Account {
	t.Helper()

	acc := &models.Account{
		Name:         strings.Split(email, "@")[0],
		Email:        email,
		Role:         role,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(acc).Error)
	return acc
}

func createJob(t *testing.T, db *gorm.DB, recruiterID, title string, postedAt time.Time) *models.JobPost {
	t.Helper()

	post := &models.JobPost{
		RecruiterID: recruiterID,
		Title:       title,
		Company:     "Acme",
		Location:    "Berlin",
		Description: "desc",
		PostedDate:  postedAt,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
