package numberutils

import "testing"

func TestToIntWithDefault(t *testing.T) {
	tests := []struct {
		in         string
		defaultVal int
		want       int
	}{
		{"42", 0, 42},
		{"-7", 0, -7},
		{"", 10, 10},
		{"abc", 10, 10},
		{"3.5", 10, 10},
	}

	for _, tt := range tests {
		if got := ToIntWithDefault(tt.in, tt.defaultVal); got != tt.want {
			t.Errorf("ToIntWithDefault(%q, %d): got %d, want %d", tt.in, tt.defaultVal, got, tt.want)
		}
	}
}

func TestToIntWithError(t *testing.T) {
	if got, err := ToIntWithError("15"); err != nil || got != 15 {
		t.Errorf("ToIntWithError(\"15\"): got %d, %v", got, err)
	}
	if _, err := ToIntWithError("abc"); err == nil {
		t.Errorf("ToIntWithError(\"abc\"): expected error")
	}
}

func TestIsIntInRange(t *testing.T) {
	tests := []struct {
		num, min, max int
		want          bool
	}{
		{5, 1, 100, true},
		{1, 1, 100, true},
		{100, 1, 100, true},
		{0, 1, 100, false},
		{101, 1, 100, false},
	}

	for _, tt := range tests {
		if got := IsIntInRange(tt.num, tt.min, tt.max); got != tt.want {
			t.Errorf("IsIntInRange(%d, %d, %d): got %v, want %v", tt.num, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestIsIntPositive(t *testing.T) {
	if !IsIntPositive(1) || IsIntPositive(0) || IsIntPositive(-1) {
		t.Errorf("IsIntPositive: unexpected results for 1, 0, -1")
	}
}

func TestMaxMinInt(t *testing.T) {
	if got := MaxInt(3, 9, 1); got != 9 {
		t.Errorf("MaxInt: got %d, want 9", got)
	}
	if got := MinInt(3, 9, 1); got != 1 {
		t.Errorf("MinInt: got %d, want 1", got)
	}
}

func TestToBoolWithError(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"false", false, false},
		{"1", true, false},
		{"0", false, false},
		{"yes", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		got, err := ToBoolWithError(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ToBoolWithError(%q): error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ToBoolWithError(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToBoolWithDefault(t *testing.T) {
	if got := ToBoolWithDefault("true", false); got != true {
		t.Errorf("ToBoolWithDefault(\"true\", false): got %v", got)
	}
	if got := ToBoolWithDefault("junk", true); got != true {
		t.Errorf("ToBoolWithDefault(\"junk\", true): got %v", got)
	}
}
