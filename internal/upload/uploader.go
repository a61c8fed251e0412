// Package upload turns local image paths into hosted photo references.
//
// The default Placeholder uploader fabricates a CDN URL without any I/O,
// which is all the onboarding flow needs. The S3 uploader pushes the file
// bytes to S3-compatible object storage for installations that want real
// hosting.
package upload

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/kindling-app/kindling/internal/profile"
)

// Uploader turns a local file path into a photo reference.
type Uploader interface {
	Upload(ctx context.Context, path string) (profile.Photo, error)
}

// DefaultBaseURL is where placeholder photo URLs point.
const DefaultBaseURL = "https://cdn.kindling.app/photos"

// Placeholder fabricates photo references without touching the file or the
// network. It never fails.
type Placeholder struct {
	// BaseURL overrides DefaultBaseURL when set.
	BaseURL string
}

// Upload implements Uploader.
func (p *Placeholder) Upload(_ context.Context, path string) (profile.Photo, error) {
	base := p.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	id := uuid.NewString()
	ext := filepath.Ext(path)
	if ext == "" {
		ext = ".jpg"
	}

	return profile.Photo{
		ID:         id,
		URL:        fmt.Sprintf("%s/%s%s", base, id, ext),
		SourcePath: path,
	}, nil
}
