package wizard

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/kindling-app/kindling/internal/profile"
)

// InterestOptions converts the interest catalog to huh options.
func InterestOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(profile.Interests))
	for i, it := range profile.Interests {
		opts[i] = huh.NewOption(it.Label, it.Tag)
	}
	return opts
}

// PreferenceOptions returns the match preference options.
func PreferenceOptions() []huh.Option[profile.MatchPreference] {
	return []huh.Option[profile.MatchPreference]{
		huh.NewOption("Anyone", profile.PreferenceAnyone),
		huh.NewOption("Men", profile.PreferenceMen),
		huh.NewOption("Women", profile.PreferenceWomen),
	}
}

// parsePhotoPaths parses a comma-separated list of photo file paths.
func parsePhotoPaths(input string) []string {
	parts := strings.Split(input, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			paths = append(paths, trimmed)
		}
	}
	return paths
}

// validateName enforces the step 1 predicate plus the name length cap.
func validateName(s string) error {
	n := len(strings.TrimSpace(s))
	if n < profile.MinNameLen {
		return errNameTooShort
	}
	if n > profile.MaxNameLen {
		return errNameTooLong
	}
	return nil
}

// validatePhotoPaths enforces the step 2 photo count bounds.
func validatePhotoPaths(s string) error {
	n := len(parsePhotoPaths(s))
	if n < profile.MinPhotos {
		return errTooFewPhotos
	}
	if n > profile.MaxPhotos {
		return errTooManyPhotos
	}
	return nil
}

// validateBio enforces the step 3 predicate plus the bio length cap.
func validateBio(s string) error {
	n := len(strings.TrimSpace(s))
	if n < profile.MinBioLen {
		return errBioTooShort
	}
	if n > profile.MaxBioLen {
		return errBioTooLong
	}
	return nil
}

// validateInterests enforces the step 4 interest count bounds.
func validateInterests(tags []string) error {
	if len(tags) < profile.MinInterests {
		return errTooFewInterests
	}
	if len(tags) > profile.MaxInterests {
		return errTooManyInterests
	}
	return nil
}
