package align

import (
	"errors"
	"reflect"
	"testing"
)

func TestMismatches(t *testing.T) {
	tests := []struct {
		name         string
		alignment    []int
		predictedLen int
		want         []Mismatch
	}{
		{
			name:         "no mismatches",
			alignment:    []int{0, 1, 2},
			predictedLen: 3,
			want:         nil,
		},
		{
			name:         "adjacent matches leave empty candidate",
			alignment:    []int{0, NoMatch, 1},
			predictedLen: 2,
			want:         []Mismatch{{Truth: []int{1}, Predicted: []int{}}},
		},
		{
			name:         "leading run",
			alignment:    []int{NoMatch, NoMatch, 3},
			predictedLen: 4,
			want:         []Mismatch{{Truth: []int{0, 1}, Predicted: []int{0, 1, 2}}},
		},
		{
			name:         "two runs",
			alignment:    []int{0, NoMatch, 3, NoMatch, NoMatch, 5},
			predictedLen: 6,
			want: []Mismatch{
				{Truth: []int{1}, Predicted: []int{1, 2}},
				{Truth: []int{3, 4}, Predicted: []int{4}},
			},
		},
		{
			name:         "trailing run takes predicted tail",
			alignment:    []int{0, NoMatch, NoMatch},
			predictedLen: 4,
			want:         []Mismatch{{Truth: []int{1, 2}, Predicted: []int{1, 2, 3}}},
		},
		{
			name:         "trailing run without predicted tail",
			alignment:    []int{0, NoMatch},
			predictedLen: 1,
			want:         []Mismatch{{Truth: []int{1}, Predicted: []int{}}},
		},
		{
			name:         "legacy mode drops trailing run",
			alignment:    []int{0, NoMatch, 2, NoMatch},
			predictedLen: -1,
			want:         []Mismatch{{Truth: []int{1}, Predicted: []int{1}}},
		},
		{
			name:         "all unmatched",
			alignment:    []int{NoMatch, NoMatch},
			predictedLen: 2,
			want:         []Mismatch{{Truth: []int{0, 1}, Predicted: []int{0, 1}}},
		},
		{
			name:         "empty alignment",
			alignment:    []int{},
			predictedLen: 0,
			want:         nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mismatches(tt.alignment, tt.predictedLen)
			if err != nil {
				t.Fatalf("Mismatches returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Mismatches(%v) = %+v, want %+v", tt.alignment, got, tt.want)
			}
		})
	}
}

func TestMismatchesRejectsInvalidAlignment(t *testing.T) {
	tests := []struct {
		name         string
		alignment    []int
		predictedLen int
	}{
		{name: "negative index", alignment: []int{0, -3}, predictedLen: 2},
		{name: "out of range", alignment: []int{0, 5}, predictedLen: 2},
		{name: "not increasing", alignment: []int{1, NoMatch, 1}, predictedLen: 3},
		{name: "decreasing", alignment: []int{2, 0}, predictedLen: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Mismatches(tt.alignment, tt.predictedLen)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
