package logfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(v int) int { return v }

func TestSpanAscending(t *testing.T) {
	tests := []struct {
		name   string
		elems  []int
		goal   int
		wantLo int
		wantHi int
		wantOk bool
	}{
		{name: "empty sequence", elems: nil, goal: 1},
		{name: "single match", elems: []int{1, 2, 3}, goal: 2, wantLo: 1, wantHi: 2, wantOk: true},
		{name: "match at head", elems: []int{1, 2, 3}, goal: 1, wantLo: 0, wantHi: 1, wantOk: true},
		{name: "match at tail", elems: []int{1, 2, 3}, goal: 3, wantLo: 2, wantHi: 3, wantOk: true},
		{name: "run in the middle", elems: []int{1, 2, 2, 2, 3}, goal: 2, wantLo: 1, wantHi: 4, wantOk: true},
		{name: "run at head", elems: []int{2, 2, 3, 4}, goal: 2, wantLo: 0, wantHi: 2, wantOk: true},
		{name: "run at tail", elems: []int{1, 2, 5, 5, 5}, goal: 5, wantLo: 2, wantHi: 5, wantOk: true},
		{name: "whole sequence", elems: []int{7, 7, 7}, goal: 7, wantLo: 0, wantHi: 3, wantOk: true},
		{name: "absent between elements", elems: []int{1, 3, 5}, goal: 4},
		{name: "absent below range", elems: []int{1, 3, 5}, goal: 0},
		{name: "absent above range", elems: []int{1, 3, 5}, goal: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := Span(tt.elems, tt.goal, ident, true)
			require.Equal(t, tt.wantOk, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)

			// The span is the maximal contiguous run of the goal key.
			for _, v := range tt.elems[lo:hi] {
				assert.Equal(t, tt.goal, v)
			}
			if lo > 0 {
				assert.NotEqual(t, tt.goal, tt.elems[lo-1])
			}
			if hi < len(tt.elems) {
				assert.NotEqual(t, tt.goal, tt.elems[hi])
			}
		})
	}
}

func TestSpanDescending(t *testing.T) {
	elems := []int{9, 7, 7, 4, 1}

	lo, hi, ok := Span(elems, 7, ident, false)
	require.True(t, ok)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 3, hi)

	_, _, ok = Span(elems, 5, ident, false)
	assert.False(t, ok)
}

func TestSpanProjection(t *testing.T) {
	type pair struct{ key, val int }
	elems := []pair{{1, 10}, {2, 20}, {2, 21}, {3, 30}}

	lo, hi, ok := Span(elems, 2, func(p pair) int { return p.key }, true)
	require.True(t, ok)
	assert.Equal(t, []pair{{2, 20}, {2, 21}}, elems[lo:hi])
}

func TestSpanStringKeys(t *testing.T) {
	elems := []string{"2024-01-01", "2024-01-02", "2024-01-02", "2024-02-01"}

	lo, hi, ok := Span(elems, "2024-01-02", func(s string) string { return s }, true)
	require.True(t, ok)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 3, hi)
}
