package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskStore(dir, "/uploads")

	key := ObjectKey("resumes", "cv.pdf")
	url, err := s.Save(context.Background(), key, strings.NewReader("%PDF-1.4"), 8, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/"+key, url)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("profile-pics", "me.png")

	parts := strings.Split(key, "/")
	require.Len(t, parts, 4)
	assert.Equal(t, "profile-pics", parts[0])
	assert.True(t, strings.HasSuffix(key, ".png"), "extension survives: %s", key)

	// Keys are unique even for the same filename.
	assert.NotEqual(t, key, ObjectKey("profile-pics", "me.png"))
}
