package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/kindling-app/kindling/internal/profile"
	"github.com/kindling-app/kindling/internal/upload"
)

// RunForm collects the whole profile in a single scrolling form instead of
// the full-screen step wizard. The answers are replayed through a Wizard so
// finalization and the one-shot completion callback behave identically in
// both modes.
func RunForm(ctx context.Context, cfg Config, up upload.Uploader) error {
	var seed profile.Draft
	if cfg.Seed != nil {
		seed = profile.Normalize(*cfg.Seed)
	} else {
		seed.Preference = profile.PreferenceAnyone
	}

	name := seed.Name
	bio := seed.Bio
	interests := append([]string(nil), seed.Interests...)
	pref := seed.Preference

	var photoInput string
	if len(seed.Photos) > 0 {
		paths := make([]string, 0, len(seed.Photos))
		for _, p := range seed.Photos {
			if p.SourcePath != "" {
				paths = append(paths, p.SourcePath)
			}
		}
		photoInput = strings.Join(paths, ", ")
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Description("2-20 characters, shown on your profile").
				Placeholder("Sam").
				Value(&name).
				Validate(validateName),
		).Title("Name"),

		huh.NewGroup(
			huh.NewInput().
				Title("Photos").
				Description("2-6 comma-separated image paths. The first one becomes your main photo.").
				Placeholder("me.jpg, hiking.jpg").
				Value(&photoInput).
				Validate(validatePhotoPaths),
		).Title("Photos"),

		huh.NewGroup(
			huh.NewText().
				Title("About you").
				Description("20-500 characters").
				CharLimit(profile.MaxBioLen).
				Value(&bio).
				Validate(validateBio),
		).Title("About you"),

		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Interests").
				Description("Pick 3-10").
				Options(InterestOptions()...).
				Limit(profile.MaxInterests).
				Validate(validateInterests).
				Value(&interests),
			huh.NewSelect[profile.MatchPreference]().
				Title("Match me with").
				Options(PreferenceOptions()...).
				Value(&pref),
		).Title("Interests"),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return fmt.Errorf("onboarding canceled: %w", err)
	}

	photos := make([]profile.Photo, 0, profile.MaxPhotos)
	for _, path := range parsePhotoPaths(photoInput) {
		photo, err := up.Upload(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", path, err)
		}
		photos = append(photos, photo)
	}

	draft := profile.Draft{
		Name:       name,
		Photos:     photos,
		Bio:        bio,
		Interests:  interests,
		Preference: pref,
	}

	w := New(Config{
		Seed:               &draft,
		OnComplete:         cfg.OnComplete,
		Premium:            cfg.Premium,
		OnUpgradeRequested: cfg.OnUpgradeRequested,
	})
	for i := 0; i < StepCount; i++ {
		if !w.Advance() {
			return fmt.Errorf("profile incomplete at step %q", w.Step().Title())
		}
	}
	return nil
}
