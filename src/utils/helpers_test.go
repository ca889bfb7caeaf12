package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTrackingIDIsFreshPerCall(t *testing.T) {
	seen := map[string]bool{}
	format := regexp.MustCompile(`^SD-[0-9A-F]{6}-[0-9A-F]{6}$`)
	for i := 0; i < 500; i++ {
		id := NewTrackingID()
		assert.Regexp(t, format, id)
		assert.False(t, seen[id], "duplicate tracking id %s", id)
		seen[id] = true
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 9, 0},
		{1, 9, 1},
		{9, 9, 1},
		{10, 9, 2},
		{23, 5, 5},
		{25, 5, 5},
		{5, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TotalPages(c.total, c.limit), "total=%d limit=%d", c.total, c.limit)
	}
}
