package listutils

import (
	"reflect"
	"testing"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name      string
		items     []int
		chunkSize int
		want      [][]int
	}{
		{"even split", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"uneven split", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"chunk larger than input", []int{1, 2}, 5, [][]int{{1, 2}}},
		{"empty input", []int{}, 3, [][]int{}},
		{"invalid chunk size", []int{1, 2}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Chunk(tt.items, tt.chunkSize); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Chunk(%v, %d): got %v, want %v", tt.items, tt.chunkSize, got, tt.want)
			}
		})
	}
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{"duplicates removed", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"order preserved", []string{"c", "a", "c", "b"}, []string{"c", "a", "b"}},
		{"no duplicates", []string{"x", "y"}, []string{"x", "y"}},
		{"empty", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unique(tt.items); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unique(%v): got %v, want %v", tt.items, got, tt.want)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name   string
		nested [][]int
		want   []int
	}{
		{"simple", [][]int{{1, 2}, {3}, {4, 5}}, []int{1, 2, 3, 4, 5}},
		{"with empty inner", [][]int{{}, {1}, {}}, []int{1}},
		{"empty", [][]int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.nested); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Flatten(%v): got %v, want %v", tt.nested, got, tt.want)
			}
		})
	}
}
