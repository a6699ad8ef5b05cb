package storage

import (
	"testing"
	"time"
)

func TestSanitizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Sunset Beach", "Sunset Beach"},
		{"city_lights_4k", "city_lights_4k"},
		{"forest (night) #2!", "forest night 2"},
		{"trailing spaces !! ", "trailing spaces"},
		{"../../etc/passwd", "etcpasswd"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeTitle(tt.in); got != tt.want {
			t.Fatalf("SanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestObjectName(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)
	if got, want := ObjectName("Sunset Beach!", now), "Sunset Beach_1700000000"; got != want {
		t.Fatalf("ObjectName = %q, want %q", got, want)
	}
}

func TestPublicURL(t *testing.T) {
	t.Parallel()

	// Shared with stored records; the format is load-bearing
	if got, want := PublicURL("abc123"), "https://drive.google.com/uc?export=view&id=abc123"; got != want {
		t.Fatalf("PublicURL = %q, want %q", got, want)
	}
}
