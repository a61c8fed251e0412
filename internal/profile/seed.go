package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSeed reads a partial draft from a YAML file. Any subset of fields may
// be present. The result always satisfies the draft invariants: photos are
// clamped to MaxPhotos, interests are de-duplicated, filtered to the catalog
// and clamped to MaxInterests, and an absent or unknown preference falls back
// to PreferenceAnyone.
func LoadSeed(path string) (Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Draft{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var d Draft
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Draft{}, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return Normalize(d), nil
}

// Normalize clamps a draft back into its invariants. Used on seed data; the
// wizard's own mutations never violate them.
func Normalize(d Draft) Draft {
	if len(d.Photos) > MaxPhotos {
		d.Photos = d.Photos[:MaxPhotos]
	}

	seen := make(map[string]bool, len(d.Interests))
	interests := make([]string, 0, len(d.Interests))
	for _, tag := range d.Interests {
		if seen[tag] || !KnownInterest(tag) {
			continue
		}
		seen[tag] = true
		interests = append(interests, tag)
		if len(interests) == MaxInterests {
			break
		}
	}
	d.Interests = interests

	if !d.Preference.Valid() {
		d.Preference = PreferenceAnyone
	}

	return d
}
