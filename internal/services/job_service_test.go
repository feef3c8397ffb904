package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/justsurfingit/hirehub/internal/common"
	"github.com/justsurfingit/hirehub/internal/dtos"
	"github.com/justsurfingit/hirehub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestJobCreate(t *testing.T) {
	db := newTestDB(t)
	s := NewJobService(db, newTestLogger())
	rec := createAccount(t, db, models.RoleRecruiter, "rec@acme.com")

	post, err := s.Create(context.Background(), rec.ID, &dtos.CreateJobPostRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Build services",
		Skills:      []string{"go", "postgres"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusOpen, post.Status)
	assert.Equal(t, "Full-time", post.Type)
	assert.Equal(t, rec.ID, post.RecruiterID)
	assert.False(t, post.PostedDate.IsZero())
}

func TestJobCreate_UnknownRecruiter(t *testing.T) {
	db := newTestDB(t)
	s := NewJobService(db, newTestLogger())

	_, err := s.Create(context.Background(), "00000000-0000-0000-0000-000000000000", &dtos.CreateJobPostRequest{
		Title: "X", Company: "Y", Location: "Z", Description: "D",
	})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func seedSearchFixtures(t *testing.T, db *gorm.DB) {
	rec := createAccount(t, db, models.RoleRecruiter, "rec@acme.com")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		post := &models.JobPost{
			RecruiterID: rec.ID,
			Title:       fmt.Sprintf("Go Developer %d", i),
			Company:     "Acme",
			Location:    "Remote (EU)",
			Type:        "Full-time",
			Description: "Backend work",
			PostedDate:  base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(post).Error)
	}

	onsite := &models.JobPost{
		RecruiterID: rec.ID,
		Title:       "Office Manager",
		Company:     "Bravo",
		Location:    "Munich",
		Type:        "Part-time",
		Description: "Front desk",
		PostedDate:  base.Add(100 * time.Hour),
	}
	require.NoError(t, db.Create(onsite).Error)
}

func TestJobList_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	db := newTestDB(t)
	s := NewJobService(db, newTestLogger())
	seedSearchFixtures(t, db)

	resp, err := s.List(context.Background(), &dtos.JobListQuery{Search: "gO DeV"})
	require.NoError(t, err)
	assert.EqualValues(t, 8, resp.TotalJobs)

	// Substring match also covers company and description.
	resp, err = s.List(context.Background(), &dtos.JobListQuery{Search: "front DESK"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.TotalJobs)
}

func TestJobList_LocationFilter(t *testing.T) {
	db := newTestDB(t)
	s := NewJobService(db, newTestLogger())
	seedSearchFixtures(t, db)

	resp, err := s.List(context.Background(), &dtos.JobListQuery{Location: "remote"})
	require.NoError(t, err)
	assert.EqualValues(t, 8, resp.TotalJobs)
	for _, p := range resp.JobPosts {
		assert.Contains(t, p.Location, "Remote")
	}
}

func TestJobList_TypeFilterIsExact(t *testing.T) {
	db := newTestDB(t)
	s := NewJobService(db, newTestLogger())
	seedSearchFixtures(t, db)

	resp, err := s.List(context.Background(), &dtos.JobListQuery{Type: "Part-time"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.TotalJobs)
	assert.Equal(t, "Office Manager", resp.JobPosts[0].Title)
}

func TestJobList_PaginationAndOrder(t *testing.T) {
	db := newTestDB(t)
	s := NewJobService(db, newTestLogger())
	seedSearchFixtures(t, db)

	page1, err := s.List(context.Background(), &dtos.JobListQuery{Page: 1, Limit: 5})
	require.NoError(t, err)
	require.Len(t, page1.JobPosts, 5)
	assert.EqualValues(t, 9, page1.TotalJobs)
	assert.EqualValues(t, 2, page1.TotalPages)

	// Newest first: the standalone Munich post has the latest date.
	assert.Equal(t, "Office Manager", page1.JobPosts[0].Title)

	page2, err := s.List(context.Background(), &dtos.JobListQuery{Page: 2, Limit: 5})
	require.NoError(t, err)
	require.Len(t, page2.JobPosts, 4)
	assert.Equal(t, 2, page2.CurrentPage)

	// Page 2 skips exactly the first five results.
	seen := map[string]bool{}
	for _, p := range page1.JobPosts {
		seen[p.ID] = true
	}
	for _, p := range page2.JobPosts {
		assert.False(t, seen[p.ID], "post %s appeared on both pages", p.ID)
	}
}

func TestJobUpdate_NonOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	s := NewJobService(db, newTestLogger())

	owner := createAccount(t, db, models.RoleRecruiter, "owner@acme.com")
	other := createAccount(t, db, models.RoleRecruiter, "other@acme.com")
	post := createJob(t, db, owner.ID, "Go Developer", time.Now())

	title := "Hijacked"
	_, err := s.Update(context.Background(), post.ID, other.ID, &dtos.UpdateJobPostRequest{Title: &title})
	assert.ErrorIs(t, err, common.ErrForbidden)

	got, err := s.Get(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Developer", got.Title)
}

func TestJobDelete_RemovesApplications(t *testing.T) {
	db := newTestDB(t)
	s := NewJobService(db, newTestLogger())

	owner := createAccount(t, db, models.RoleRecruiter, "owner@acme.com")
	seeker := createAccount(t, db, models.RoleJobSeeker, "dev@mail.com")
	post := createJob(t, db, owner.ID, "Go Developer", time.Now())

	app := &models.Application{SeekerID: seeker.ID, JobPostID: post.ID, Status: models.StatusApplied}
	require.NoError(t, db.Create(app).Error)

	require.NoError(t, s.Delete(context.Background(), post.ID, owner.ID))

	_, err := s.Get(context.Background(), post.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Where("job_post_id = ?", post.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestJobDelete_NonOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	s := NewJobService(db, newTestLogger())

	owner := createAccount(t, db, models.RoleRecruiter, "owner@acme.com")
	other := createAccount(t, db, models.RoleRecruiter, "other@acme.com")
	post := createJob(t, db, owner.ID, "Go Developer", time.Now())

	err := s.Delete(context.Background(), post.ID, other.ID)
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, err = s.Get(context.Background(), post.ID)
	assert.NoError(t, err)
}

func TestJobUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	s := NewJobService(db, newTestLogger())

	owner := createAccount(t, db, models.RoleRecruiter, "owner@acme.com")
	post := createJob(t, db, owner.ID, "Go Developer", time.Now())

	require.NoError(t, s.UpdateStatus(context.Background(), post.ID, owner.ID, models.JobStatusClosed))

	got, err := s.Get(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, got.Status)

	err = s.UpdateStatus(context.Background(), post.ID, owner.ID, "archived")
	assert.ErrorIs(t, err, common.ErrValidation)
}
