package validation

import (
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"simple title", "Buy milk", true},
		{"single char", "a", true},
		{"max length", strings.Repeat("a", 255), true},
		{"too long", strings.Repeat("a", 256), false},
		{"empty", "", false},
		{"whitespace only", "   \t  ", false},
		{"padded but valid", "  Buy milk  ", true},
		{"padded up to limit", " " + strings.Repeat("a", 255) + " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateTitle(tt.title); got != tt.want {
				t.Errorf("ValidateTitle(%q): got %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	long := strings.Repeat("d", 501)
	max := strings.Repeat("d", 500)

	tests := []struct {
		name        string
		description *string
		want        bool
	}{
		{"absent", nil, true},
		{"empty", ptr(""), true},
		{"normal", ptr("Milk, eggs, bread"), true},
		{"max length", &max, true},
		{"too long", &long, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateDescription(tt.description); got != tt.want {
				t.Errorf("ValidateDescription: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSanitizeTitle(t *testing.T) {
	if got := SanitizeTitle(" a "); got != "a" {
		t.Errorf("SanitizeTitle(\" a \"): got %q, want %q", got, "a")
	}
	if got := SanitizeTitle("Buy  milk"); got != "Buy  milk" {
		t.Errorf("interior whitespace must be preserved: got %q", got)
	}
	if got := SanitizeTitle("Buy MILK"); got != "Buy MILK" {
		t.Errorf("casing must be preserved: got %q", got)
	}
}

func TestSanitizeDescription(t *testing.T) {
	if got := SanitizeDescription(nil); got != nil {
		t.Errorf("SanitizeDescription(nil): got %v, want nil", got)
	}
	if got := SanitizeDescription(ptr("  note  ")); got == nil || *got != "note" {
		t.Errorf("SanitizeDescription(\"  note  \"): got %v, want \"note\"", got)
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  MILK  ", "milk"},
		{"Buy Milk", "buy milk"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeQuery(tt.in); got != tt.want {
			t.Errorf("NormalizeQuery(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func ptr(s string) *string {
	return &s
}
