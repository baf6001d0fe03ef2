package maputils

import (
	"reflect"
	"testing"
)

func TestGetNested(t *testing.T) {
	data := map[string]any{
		"app": map[string]any{
			"db": map[string]any{
				"host": "localhost",
			},
			"port": 8080,
		},
	}

	tests := []struct {
		name         string
		keyPath      string
		defaultValue any
		want         any
	}{
		{"deep hit", "app.db.host", "fallback", "localhost"},
		{"shallow hit", "app.port", 0, 8080},
		{"missing leaf", "app.db.user", "fallback", "fallback"},
		{"missing branch", "nope.db.host", "fallback", "fallback"},
		{"path through non-map", "app.port.extra", "fallback", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetNested(data, tt.keyPath, tt.defaultValue); got != tt.want {
				t.Errorf("GetNested(%q): got %v, want %v", tt.keyPath, got, tt.want)
			}
		})
	}
}

func TestFilterKeys(t *testing.T) {
	data := map[string]int{"a": 1, "b": 2, "c": 3}

	got := FilterKeys(data, []string{"a", "c", "missing"})
	want := map[string]int{"a": 1, "c": 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterKeys: got %v, want %v", got, want)
	}
}

func TestExcludeKeys(t *testing.T) {
	data := map[string]int{"a": 1, "b": 2, "c": 3}

	got := ExcludeKeys(data, []string{"b"})
	want := map[string]int{"a": 1, "c": 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExcludeKeys: got %v, want %v", got, want)
	}
}

func TestMerge(t *testing.T) {
	got := Merge(
		map[string]int{"a": 1, "b": 2},
		map[string]int{"b": 20, "c": 3},
	)
	want := map[string]int{"a": 1, "b": 20, "c": 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge: got %v, want %v", got, want)
	}

	if empty := Merge[int](); len(empty) != 0 {
		t.Errorf("Merge with no input: got %v, want empty map", empty)
	}
}
