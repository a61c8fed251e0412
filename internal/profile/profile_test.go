package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNameValid(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Sam", true},
		{"Jo", true},
		{"  Jo  ", true},
		{"J", false},
		{"  J  ", false},
		{"", false},
		{"   ", false},
		{strings.Repeat("a", 20), true},
		{strings.Repeat("a", 21), false},
		{"  " + strings.Repeat("a", 20) + "  ", true},
	}

	for _, tt := range tests {
		if got := NameValid(tt.name); got != tt.want {
			t.Errorf("NameValid(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBioValid(t *testing.T) {
	tests := []struct {
		bio  string
		want bool
	}{
		{strings.Repeat("a", 20), true},
		{strings.Repeat("a", 19), false},
		{"   " + strings.Repeat("a", 19) + "   ", false},
		{"  " + strings.Repeat("a", 20) + "  ", true},
		{strings.Repeat("a", 500), true},
		{strings.Repeat("a", 501), false},
		{"", false},
	}

	for _, tt := range tests {
		if got := BioValid(tt.bio); got != tt.want {
			t.Errorf("BioValid(len=%d trimmed=%d) = %v, want %v",
				len(tt.bio), len(strings.TrimSpace(tt.bio)), got, tt.want)
		}
	}
}

func TestMatchPreferenceValid(t *testing.T) {
	for _, p := range []MatchPreference{PreferenceAnyone, PreferenceMen, PreferenceWomen} {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	for _, p := range []MatchPreference{"", "everyone", "ANYONE"} {
		if p.Valid() {
			t.Errorf("%q should not be valid", p)
		}
	}
}

func TestInterestCatalog(t *testing.T) {
	if len(Interests) != 24 {
		t.Fatalf("catalog has %d tags, want 24", len(Interests))
	}

	seen := make(map[string]bool)
	for _, opt := range Interests {
		if opt.Tag == "" || opt.Label == "" {
			t.Errorf("catalog entry %+v has empty tag or label", opt)
		}
		if seen[opt.Tag] {
			t.Errorf("duplicate catalog tag %q", opt.Tag)
		}
		seen[opt.Tag] = true

		if !KnownInterest(opt.Tag) {
			t.Errorf("KnownInterest(%q) = false for catalog tag", opt.Tag)
		}
	}

	if KnownInterest("underwater-basket-weaving") {
		t.Error("KnownInterest should reject tags outside the catalog")
	}
}

func TestInterestLabel(t *testing.T) {
	if got := InterestLabel("travel"); got != "Travel" {
		t.Errorf("InterestLabel(travel) = %q, want Travel", got)
	}
	if got := InterestLabel("nope"); got != "nope" {
		t.Errorf("InterestLabel(nope) = %q, want nope", got)
	}
}

func TestNormalizeClampsPhotosAndInterests(t *testing.T) {
	d := Draft{}
	for i := 0; i < 9; i++ {
		d.Photos = append(d.Photos, Photo{ID: string(rune('a' + i))})
	}
	for _, opt := range Interests {
		d.Interests = append(d.Interests, opt.Tag)
	}
	d.Interests = append(d.Interests, "travel", "bogus")

	got := Normalize(d)

	if len(got.Photos) != MaxPhotos {
		t.Errorf("photos = %d, want %d", len(got.Photos), MaxPhotos)
	}
	if len(got.Interests) != MaxInterests {
		t.Errorf("interests = %d, want %d", len(got.Interests), MaxInterests)
	}
	if got.Preference != PreferenceAnyone {
		t.Errorf("preference = %q, want anyone", got.Preference)
	}
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	seed := `name: Sam
bio: just here for the hiking photos honestly
interests: [hiking, coffee, hiking, not-a-tag]
match_preference: women
`
	if err := os.WriteFile(path, []byte(seed), 0600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	d, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}

	if d.Name != "Sam" {
		t.Errorf("name = %q, want Sam", d.Name)
	}
	if len(d.Interests) != 2 {
		t.Errorf("interests = %v, want [hiking coffee]", d.Interests)
	}
	if d.Preference != PreferenceWomen {
		t.Errorf("preference = %q, want women", d.Preference)
	}
}

func TestLoadSeedErrors(t *testing.T) {
	if _, err := LoadSeed("/nonexistent/seed.yaml"); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte(":\t not yaml ["), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSeed(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
