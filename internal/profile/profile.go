// Package profile defines the profile draft assembled by the onboarding
// wizard and the validation rules each field must satisfy.
package profile

import "strings"

// Field limits enforced by the wizard. Mutating operations keep the draft
// inside these bounds at all times; the Min* values gate step advancement.
const (
	MinNameLen = 2
	MaxNameLen = 20

	MinPhotos = 2
	MaxPhotos = 6

	MinBioLen = 20
	MaxBioLen = 500

	MinInterests = 3
	MaxInterests = 10
)

// MatchPreference selects who a member wants to be matched with.
type MatchPreference string

// Valid match preferences.
const (
	PreferenceAnyone MatchPreference = "anyone"
	PreferenceMen    MatchPreference = "men"
	PreferenceWomen  MatchPreference = "women"
)

// Valid reports whether p is one of the known preferences.
func (p MatchPreference) Valid() bool {
	switch p {
	case PreferenceAnyone, PreferenceMen, PreferenceWomen:
		return true
	}
	return false
}

// Photo is an uploaded photo reference. The first photo in a draft is the
// member's main photo.
type Photo struct {
	ID         string `yaml:"id"`
	URL        string `yaml:"url"`
	SourcePath string `yaml:"source_path,omitempty"`
}

// Draft is the in-progress profile assembled across the wizard steps.
// It is mutated in place and owned by a single wizard for its lifetime.
type Draft struct {
	Name       string          `yaml:"name"`
	Photos     []Photo         `yaml:"photos,omitempty"`
	Bio        string          `yaml:"bio"`
	Interests  []string        `yaml:"interests,omitempty"`
	Preference MatchPreference `yaml:"match_preference"`
}

// Profile is the completed profile emitted exactly once when the final
// wizard step is confirmed. Name and Bio are trimmed.
type Profile struct {
	Name       string          `yaml:"name"`
	Photos     []Photo         `yaml:"photos"`
	Bio        string          `yaml:"bio"`
	Interests  []string        `yaml:"interests"`
	Preference MatchPreference `yaml:"match_preference"`
}

// NameValid reports whether the trimmed name is within [MinNameLen, MaxNameLen].
func NameValid(name string) bool {
	n := len(strings.TrimSpace(name))
	return n >= MinNameLen && n <= MaxNameLen
}

// BioValid reports whether the trimmed bio is within [MinBioLen, MaxBioLen].
func BioValid(bio string) bool {
	n := len(strings.TrimSpace(bio))
	return n >= MinBioLen && n <= MaxBioLen
}

// HasInterest reports whether tag is present in the interest list.
func HasInterest(interests []string, tag string) bool {
	for _, t := range interests {
		if t == tag {
			return true
		}
	}
	return false
}
