// Package tui provides a Bubble Tea-based terminal UI for profile onboarding.
package tui

import "github.com/kindling-app/kindling/internal/profile"

// UploadResultMsg reports the outcome of a photo upload started from the
// photos step.
type UploadResultMsg struct {
	Photo profile.Photo
	Err   error
}
