package search

import (
	"slices"
	"testing"
)

func TestExpand(t *testing.T) {
	tc := []struct {
		name        string
		input       string
		wantPresent []string
		wantAbsent  []string
	}{
		{
			name:        "conf three way",
			input:       "conf",
			wantPresent: []string{"conf", "conference", "conferencia"},
		},
		{
			name:        "conferencia three way",
			input:       "conferencia",
			wantPresent: []string{"conf", "conference", "conferencia"},
		},
		{
			name:        "jovenes two way",
			input:       "jovenes",
			wantPresent: []string{"jovenes", "youth"},
			wantAbsent:  []string{"conf"},
		},
		{
			name:  "youth conference compound",
			input: "youth conference",
			wantPresent: []string{
				"youth conference",
				"youth conf",
				"youth conferencia",
				"jovenes conference",
				"youth",
				"jovenes",
			},
		},
		{
			name:  "jovenes conf compound",
			input: "jovenes conf",
			wantPresent: []string{
				"jovenes conf",
				"jovenes conference",
				"jovenes conferencia",
				"youth conf",
				"jovenes",
				"youth",
			},
		},
		{
			name:        "whole word only",
			input:       "confidence",
			wantPresent: []string{"confidence"},
			wantAbsent:  []string{"conferenceidence", "conference"},
		},
		{
			name:        "substitution preserves surrounding words",
			input:       "gran conferencia anual",
			wantPresent: []string{"gran conferencia anual", "gran conf anual", "gran conference anual"},
		},
		{
			name:        "no synonyms",
			input:       "worship night",
			wantPresent: []string{"worship night"},
		},
		{
			name:        "empty input",
			input:       "",
			wantPresent: []string{""},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.input)

			if !slices.Contains(got, tt.input) {
				t.Errorf("Expand(%q) does not contain the input itself: %v", tt.input, got)
			}
			for _, want := range tt.wantPresent {
				if !slices.Contains(got, want) {
					t.Errorf("Expand(%q) missing %q, got %v", tt.input, want, got)
				}
			}
			for _, absent := range tt.wantAbsent {
				if slices.Contains(got, absent) {
					t.Errorf("Expand(%q) unexpectedly contains %q", tt.input, absent)
				}
			}

			if !slices.IsSorted(got) {
				t.Errorf("Expand(%q) not sorted: %v", tt.input, got)
			}
			for i := 1; i < len(got); i++ {
				if got[i] == got[i-1] {
					t.Errorf("Expand(%q) contains duplicate %q", tt.input, got[i])
				}
			}
		})
	}
}
