package wizard

import (
	"strings"

	"github.com/kindling-app/kindling/internal/profile"
)

// Step identifies one of the four wizard screens.
type Step int

// Wizard steps, in order.
const (
	StepName Step = iota + 1
	StepPhotos
	StepBio
	StepInterests
)

// StepCount is the number of wizard steps.
const StepCount = 4

// Title returns the display name of the step.
func (s Step) Title() string {
	switch s {
	case StepName:
		return "Name"
	case StepPhotos:
		return "Photos"
	case StepBio:
		return "About you"
	case StepInterests:
		return "Interests"
	}
	return ""
}

// Config wires a wizard to its surroundings.
type Config struct {
	// Seed optionally pre-fills the draft. It is normalized on New, so a
	// seed may carry more photos or interests than the limits allow.
	Seed *profile.Draft

	// OnComplete receives the finished profile. Called exactly once, from
	// the Continue action of the final step.
	OnComplete func(profile.Profile)

	// Premium and OnUpgradeRequested are part of the onboarding contract
	// for premium accounts. No wizard logic consults them.
	Premium            bool
	OnUpgradeRequested func()
}

// Wizard walks a member through assembling a profile draft. All methods are
// synchronous and must be called from a single goroutine.
type Wizard struct {
	cfg       Config
	step      Step
	draft     profile.Draft
	completed bool
}

// New creates a wizard positioned on the first step.
func New(cfg Config) *Wizard {
	draft := profile.Draft{Preference: profile.PreferenceAnyone}
	if cfg.Seed != nil {
		draft = profile.Normalize(*cfg.Seed)
	}
	return &Wizard{cfg: cfg, step: StepName, draft: draft}
}

// Step returns the current step, in [StepName, StepInterests].
func (w *Wizard) Step() Step { return w.step }

// Completed reports whether the final step's Continue has fired.
func (w *Wizard) Completed() bool { return w.completed }

// Draft returns a copy of the current draft. The wizard keeps sole ownership
// of the live draft.
func (w *Wizard) Draft() profile.Draft {
	d := w.draft
	d.Photos = append([]profile.Photo(nil), w.draft.Photos...)
	d.Interests = append([]string(nil), w.draft.Interests...)
	return d
}

// CanAdvance reports whether the current step's validity predicate holds.
// When it does not, Continue is a disabled affordance: Advance is a no-op
// and no error is raised.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepName:
		return profile.NameValid(w.draft.Name)
	case StepPhotos:
		return len(w.draft.Photos) >= profile.MinPhotos
	case StepBio:
		return profile.BioValid(w.draft.Bio)
	case StepInterests:
		return len(w.draft.Interests) >= profile.MinInterests
	}
	return false
}

// Advance moves to the next step when the current step is valid. On the
// final step it finalizes instead: the completed profile is emitted through
// OnComplete exactly once. Returns false when the step is invalid or the
// wizard already completed.
func (w *Wizard) Advance() bool {
	if w.completed || !w.CanAdvance() {
		return false
	}

	if w.step < StepInterests {
		w.step++
		return true
	}

	w.completed = true
	if w.cfg.OnComplete != nil {
		w.cfg.OnComplete(w.finish())
	}
	return true
}

// Retreat moves back one step. Always permitted; from the first step it is
// a no-op.
func (w *Wizard) Retreat() bool {
	if w.step <= StepName {
		return false
	}
	w.step--
	return true
}

// Progress returns the fraction of completed steps, for the progress bar.
func (w *Wizard) Progress() float64 {
	if w.completed {
		return 1.0
	}
	return float64(w.step-1) / float64(StepCount)
}

// SetName replaces the draft name.
func (w *Wizard) SetName(name string) { w.draft.Name = name }

// SetBio replaces the draft bio.
func (w *Wizard) SetBio(bio string) { w.draft.Bio = bio }

// SetPreference replaces the match preference. Unknown values are ignored.
func (w *Wizard) SetPreference(p profile.MatchPreference) {
	if p.Valid() {
		w.draft.Preference = p
	}
}

// AddPhoto appends a photo. At the cap of profile.MaxPhotos the add is
// silently ignored and false is returned.
func (w *Wizard) AddPhoto(p profile.Photo) bool {
	if len(w.draft.Photos) >= profile.MaxPhotos {
		return false
	}
	w.draft.Photos = append(w.draft.Photos, p)
	return true
}

// RemovePhotoAt removes the photo at index i. Out-of-range indexes are a
// no-op.
func (w *Wizard) RemovePhotoAt(i int) bool {
	if i < 0 || i >= len(w.draft.Photos) {
		return false
	}
	w.draft.Photos = append(w.draft.Photos[:i], w.draft.Photos[i+1:]...)
	return true
}

// ToggleInterest flips membership of a catalog tag. Removal is always
// allowed; adding is silently ignored at the cap of profile.MaxInterests or
// for tags outside the catalog.
func (w *Wizard) ToggleInterest(tag string) {
	for i, t := range w.draft.Interests {
		if t == tag {
			w.draft.Interests = append(w.draft.Interests[:i], w.draft.Interests[i+1:]...)
			return
		}
	}

	if len(w.draft.Interests) >= profile.MaxInterests || !profile.KnownInterest(tag) {
		return
	}
	w.draft.Interests = append(w.draft.Interests, tag)
}

// finish assembles the completion payload: trimmed name and bio, photos and
// interests as collected, the selected preference.
func (w *Wizard) finish() profile.Profile {
	return profile.Profile{
		Name:       strings.TrimSpace(w.draft.Name),
		Photos:     append([]profile.Photo(nil), w.draft.Photos...),
		Bio:        strings.TrimSpace(w.draft.Bio),
		Interests:  append([]string(nil), w.draft.Interests...),
		Preference: w.draft.Preference,
	}
}
