package search

import (
	"reflect"
	"testing"
)

func TestExtractYears(t *testing.T) {
	tc := []struct {
		name      string
		input     string
		wantYears []int
		wantRest  string
	}{
		{
			name:      "four digit year",
			input:     "jovenes 2025",
			wantYears: []int{2025},
			wantRest:  "jovenes",
		},
		{
			name:      "standalone two digit year",
			input:     "conf 25",
			wantYears: []int{2025},
			wantRest:  "conf",
		},
		{
			name:      "word attached suffix",
			input:     "yc25",
			wantYears: []int{2025},
			wantRest:  "yc",
		},
		{
			name:      "suffix mid phrase",
			input:     "yc25 worship",
			wantYears: []int{2025},
			wantRest:  "yc worship",
		},
		{
			name:      "century low boundary",
			input:     "00",
			wantYears: []int{2000},
			wantRest:  "",
		},
		{
			name:      "century high boundary",
			input:     "99",
			wantYears: []int{2099},
			wantRest:  "",
		},
		{
			name:      "last four digit year",
			input:     "2099",
			wantYears: []int{2099},
			wantRest:  "",
		},
		{
			name:      "2100 is not a year",
			input:     "2100",
			wantYears: []int{},
			wantRest:  "2100",
		},
		{
			name:      "1999 is not a year",
			input:     "conf 1999",
			wantYears: []int{},
			wantRest:  "conf 1999",
		},
		{
			name:      "two years no overlap",
			input:     "2024 2025",
			wantYears: []int{2024, 2025},
			wantRest:  "",
		},
		{
			name:      "mixed forms deduplicate",
			input:     "yc25 2025",
			wantYears: []int{2025},
			wantRest:  "yc",
		},
		{
			name:      "sorted ascending",
			input:     "yc26 24 2025",
			wantYears: []int{2024, 2025, 2026},
			wantRest:  "yc",
		},
		{
			name:      "four digits glued to word stay put",
			input:     "yc2025x",
			wantYears: []int{},
			wantRest:  "yc2025x",
		},
		{
			name:      "no years",
			input:     "conferencia de jovenes",
			wantYears: []int{},
			wantRest:  "conferencia de jovenes",
		},
		{
			name:      "empty input",
			input:     "",
			wantYears: []int{},
			wantRest:  "",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractYears(tt.input)
			if !reflect.DeepEqual(got.Years, tt.wantYears) {
				t.Errorf("ExtractYears(%q).Years = %v, want %v", tt.input, got.Years, tt.wantYears)
			}
			if got.Remainder != tt.wantRest {
				t.Errorf("ExtractYears(%q).Remainder = %q, want %q", tt.input, got.Remainder, tt.wantRest)
			}
		})
	}
}
