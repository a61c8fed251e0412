package upload

import (
	"context"
	"strings"
	"testing"
)

func TestPlaceholderUpload(t *testing.T) {
	up := &Placeholder{}

	photo, err := up.Upload(context.Background(), "/tmp/me.png")
	if err != nil {
		t.Fatalf("Upload returned %v", err)
	}

	if photo.ID == "" {
		t.Error("expected a generated ID")
	}
	if !strings.HasPrefix(photo.URL, DefaultBaseURL+"/") {
		t.Errorf("URL %q should start with %q", photo.URL, DefaultBaseURL)
	}
	if !strings.HasSuffix(photo.URL, ".png") {
		t.Errorf("URL %q should keep the source extension", photo.URL)
	}
	if photo.SourcePath != "/tmp/me.png" {
		t.Errorf("SourcePath = %q", photo.SourcePath)
	}
}

func TestPlaceholderUploadDefaultsExtension(t *testing.T) {
	up := &Placeholder{}

	photo, err := up.Upload(context.Background(), "selfie")
	if err != nil {
		t.Fatalf("Upload returned %v", err)
	}
	if !strings.HasSuffix(photo.URL, ".jpg") {
		t.Errorf("URL %q should fall back to .jpg", photo.URL)
	}
}

func TestPlaceholderUploadUniqueIDs(t *testing.T) {
	up := &Placeholder{BaseURL: "https://cdn.example.test"}

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		photo, err := up.Upload(context.Background(), "a.jpg")
		if err != nil {
			t.Fatalf("Upload returned %v", err)
		}
		if seen[photo.ID] {
			t.Fatalf("duplicate photo ID %q", photo.ID)
		}
		seen[photo.ID] = true

		if !strings.HasPrefix(photo.URL, "https://cdn.example.test/") {
			t.Errorf("URL %q should use the custom base", photo.URL)
		}
	}
}
