package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "trims and lowercases",
			raw:  "  Applicant , BENEFICIARY ",
			want: []string{"applicant", "beneficiary"},
		},
		{
			name: "drops empties and duplicates",
			raw:  "issuing_bank,,applicant, issuing_bank ,",
			want: []string{"issuing_bank", "applicant"},
		},
		{
			name: "all blank",
			raw:  " , ,",
			want: []string{},
		},
		{
			name: "single entry",
			raw:  "advising_bank",
			want: []string{"advising_bank"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.raw, ","))
		})
	}
}
