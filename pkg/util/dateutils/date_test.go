package dateutils

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC)
	if got := Format(ts); got != "2024-02-01 10:30:00" {
		t.Errorf("Format: got %q, want %q", got, "2024-02-01 10:30:00")
	}
}

func TestISOFormat(t *testing.T) {
	ts := time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC)
	if got := ISOFormat(ts); got != "2024-02-01T10:30:00Z" {
		t.Errorf("ISOFormat: got %q, want %q", got, "2024-02-01T10:30:00Z")
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5 minute(s) ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hour(s) ago"},
		{"days", now.Add(-48 * time.Hour), "2 day(s) ago"},
		{"months", now.Add(-40 * 24 * time.Hour), "1 month(s) ago"},
		{"years", now.Add(-800 * 24 * time.Hour), "2 year(s) ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeAgo(tt.t); got != tt.want {
				t.Errorf("TimeAgo: got %q, want %q", got, tt.want)
			}
		})
	}
}
