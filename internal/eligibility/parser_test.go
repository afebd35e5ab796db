package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleToken(t *testing.T) {
	clauses := Parse("3rd")
	require.Len(t, clauses, 1)
	assert.Equal(t, Alternatives{Ranks: []int{3}}, clauses[0])
}

func TestParse_Alternatives(t *testing.T) {
	clauses := Parse("I4/I5")
	require.Len(t, clauses, 1)
	assert.Equal(t, Alternatives{Ranks: []int{-1, 0}}, clauses[0])
}

func TestParse_Range(t *testing.T) {
	clauses := Parse("3rd-6th")
	require.Len(t, clauses, 1)
	assert.Equal(t, Range{Start: 3, End: 6}, clauses[0])
}

func TestParse_EnDashRange(t *testing.T) {
	clauses := Parse("3rd–6th")
	require.Len(t, clauses, 1)
	assert.Equal(t, Range{Start: 3, End: 6}, clauses[0])
}

func TestParse_RangeWithLeftAlternatives(t *testing.T) {
	// Range start is the minimum rank among the left-side alternatives.
	clauses := Parse("I5/I4-2nd")
	require.Len(t, clauses, 1)
	assert.Equal(t, Range{Start: -1, End: 2}, clauses[0])
}

func TestParse_MultipleClauses(t *testing.T) {
	tests := []struct {
		expr string
		want int
	}{
		{"I3, 1st-3rd", 2},
		{"I3; 1st-3rd", 2},
		{"I3 & 5th", 2},
		{"I3 and 5th", 2},
		{"I3 AND 5th", 2},
	}
	for _, tt := range tests {
		assert.Len(t, Parse(tt.expr), tt.want, "expr %q", tt.expr)
	}
}

func TestParse_ParentheticalsIgnored(t *testing.T) {
	clauses := Parse("3rd-6th (Tuesday group)")
	require.Len(t, clauses, 1)
	assert.Equal(t, Range{Start: 3, End: 6}, clauses[0])
}

func TestParse_WordAndNotSplitInsideWords(t *testing.T) {
	// "and" glued to letters must not act as a separator; the garbage token
	// simply fails to parse.
	assert.Empty(t, Parse("bandy"))
}

func TestParse_MalformedClausesDropped(t *testing.T) {
	tests := []struct {
		expr string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"(only a note)", 0},
		{"adults", 0},
		{"3rd-", 0},        // dash with unparseable right side
		{"-3rd", 0},        // dash with empty left side
		{"1st-2nd-3rd", 0}, // more than one dash
		{"7th", 0},         // out-of-scale token
		{"garbage, 2nd", 1},
	}
	for _, tt := range tests {
		assert.Len(t, Parse(tt.expr), tt.want, "expr %q", tt.expr)
	}
}
