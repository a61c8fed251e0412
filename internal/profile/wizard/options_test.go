package wizard

import (
	"strings"
	"testing"

	"github.com/kindling-app/kindling/internal/profile"
)

func TestParsePhotoPaths(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "me.jpg", []string{"me.jpg"}},
		{"multiple", "me.jpg,hiking.jpg", []string{"me.jpg", "hiking.jpg"}},
		{"with spaces", " me.jpg , hiking.jpg ", []string{"me.jpg", "hiking.jpg"}},
		{"trailing comma", "me.jpg,", []string{"me.jpg"}},
		{"only commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePhotoPaths(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parsePhotoPaths(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("path %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	if err := validateName("J"); err == nil {
		t.Error("1 character should fail")
	}
	if err := validateName("  Jo  "); err != nil {
		t.Errorf("trimmed 2 characters should pass: %v", err)
	}
	if err := validateName(strings.Repeat("x", 21)); err == nil {
		t.Error("21 characters should fail")
	}
}

func TestValidatePhotoPaths(t *testing.T) {
	if err := validatePhotoPaths("me.jpg"); err == nil {
		t.Error("1 path should fail")
	}
	if err := validatePhotoPaths("a.jpg, b.jpg"); err != nil {
		t.Errorf("2 paths should pass: %v", err)
	}
	if err := validatePhotoPaths("a,b,c,d,e,f,g"); err == nil {
		t.Error("7 paths should fail")
	}
}

func TestValidateBio(t *testing.T) {
	if err := validateBio(strings.Repeat("a", 19)); err == nil {
		t.Error("19 characters should fail")
	}
	if err := validateBio(strings.Repeat("a", 20)); err != nil {
		t.Errorf("20 characters should pass: %v", err)
	}
	if err := validateBio(strings.Repeat("a", 501)); err == nil {
		t.Error("501 characters should fail")
	}
}

func TestValidateInterests(t *testing.T) {
	if err := validateInterests([]string{"travel", "music"}); err == nil {
		t.Error("2 interests should fail")
	}
	if err := validateInterests([]string{"travel", "music", "hiking"}); err != nil {
		t.Errorf("3 interests should pass: %v", err)
	}
	if err := validateInterests(make([]string, 11)); err == nil {
		t.Error("11 interests should fail")
	}
}

func TestInterestOptionsCoverCatalog(t *testing.T) {
	opts := InterestOptions()
	if len(opts) != len(profile.Interests) {
		t.Fatalf("option count = %d, want %d", len(opts), len(profile.Interests))
	}
	for i, opt := range opts {
		if opt.Value != profile.Interests[i].Tag {
			t.Errorf("option %d value = %q, want %q", i, opt.Value, profile.Interests[i].Tag)
		}
	}
}

func TestPreferenceOptions(t *testing.T) {
	opts := PreferenceOptions()
	if len(opts) != 3 {
		t.Fatalf("option count = %d, want 3", len(opts))
	}
	for _, opt := range opts {
		if !opt.Value.Valid() {
			t.Errorf("option value %q is not a valid preference", opt.Value)
		}
	}
}
