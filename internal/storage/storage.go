// Package storage persists uploaded files (resumes, profile pictures, logos)
// and returns the URL stored on the account.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileStore saves a file under a key and returns its public URL.
type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// ObjectKey builds a collision-free storage key, keeping the original
// extension: <prefix>/<year>/<month>/<uuid><ext>.
func ObjectKey(prefix, filename string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%d/%s%s", prefix, d.Year(), int(d.Month()), uuid.New(), filepath.Ext(filename))
}
