package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"16:30", 990, true},
		{"16.30", 990, true},
		{"16h30", 990, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{" 9:05 ", 545, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"1630", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseClock(tt.in)
		require.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestParseRange(t *testing.T) {
	r, ok := ParseRange("12:30-13:30")
	require.True(t, ok)
	assert.Equal(t, TimeRange{Start: 750, End: 810}, r)

	r, ok = ParseRange("16:30–18:00") // en-dash
	require.True(t, ok)
	assert.Equal(t, TimeRange{Start: 990, End: 1080}, r)

	for _, in := range []string{"", "12:30", "12:30-13:30-14:30", "12:30-late", "lunch"} {
		_, ok := ParseRange(in)
		assert.False(t, ok, "input %q should fail", in)
	}
}

func TestOverlaps_HalfOpenBoundary(t *testing.T) {
	a, _ := ParseRange("12:30-13:30")
	b, _ := ParseRange("13:30-14:30")
	assert.False(t, a.Overlaps(b), "touching endpoints must not overlap")
	assert.False(t, b.Overlaps(a))
}

func TestOverlaps_Symmetry(t *testing.T) {
	ranges := []TimeRange{
		{Start: 750, End: 810},
		{Start: 800, End: 870},
		{Start: 810, End: 860},
		{Start: 700, End: 900},
	}
	for _, x := range ranges {
		for _, y := range ranges {
			assert.Equal(t, x.Overlaps(y), y.Overlaps(x), "ranges %v %v", x, y)
		}
	}
}

func TestOverlaps_Containment(t *testing.T) {
	outer := TimeRange{Start: 700, End: 900}
	inner := TimeRange{Start: 750, End: 810}
	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}
