package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	start := time.Date(2025, time.January, 4, 9, 0, 0, 0, time.UTC)
	clk := NewFixed(start)

	assert.Equal(t, start, clk.Now())

	updated := clk.Advance(24 * time.Hour)
	assert.Equal(t, start.Add(24*time.Hour), updated)
	assert.Equal(t, updated, clk.Now())

	clk.Set(start)
	assert.Equal(t, start, clk.Now())
}

func TestSystemClockAdvances(t *testing.T) {
	clk := System()
	before := clk.Now()
	assert.False(t, clk.Now().Before(before))
}
