package stringutils

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		suffix    string
		want      string
	}{
		{"short enough", "hello", 10, "...", "hello"},
		{"exact length", "hello", 5, "...", "hello"},
		{"truncated", "hello world", 8, "...", "hello..."},
		{"empty", "", 5, "...", ""},
		{"suffix longer than limit", "hello world", 2, "...", "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.maxLength, tt.suffix); got != tt.want {
				t.Errorf("Truncate(%q, %d, %q): got %q, want %q", tt.text, tt.maxLength, tt.suffix, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hello World  ", "hello world"},
		{"ALL CAPS", "all caps"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Buy milk, eggs & bread!", "buy-milk-eggs-bread"},
		{"  spaced  out  ", "spaced-out"},
		{"already-slugged", "already-slugged"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHighlightSearch(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		searchTerm string
		want       string
	}{
		{"simple match", "Buy milk today", "milk", "Buy **milk** today"},
		{"case-insensitive", "Buy MILK today", "milk", "Buy **milk** today"},
		{"no match", "Buy bread", "milk", "Buy bread"},
		{"empty term", "Buy milk", "", "Buy milk"},
		{"empty text", "", "milk", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HighlightSearch(tt.text, tt.searchTerm); got != tt.want {
				t.Errorf("HighlightSearch(%q, %q): got %q, want %q", tt.text, tt.searchTerm, got, tt.want)
			}
		})
	}
}
