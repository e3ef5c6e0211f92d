package lift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReachDegeneratesInReady(t *testing.T) {
	l := New(Lift1, 1, 20)
	l.Row = 7

	min, max := l.Reach()
	assert.Equal(t, 7, min)
	assert.Equal(t, 7, max)
}

func TestReachSpansCurrentOriginDestination(t *testing.T) {
	l := New(Lift1, 1, 20)
	l.Row = 5
	l.HasActiveJob = true
	l.ActiveOrigin = 12
	l.ActiveDestination = 3

	min, max := l.Reach()
	assert.Equal(t, 3, min)
	assert.Equal(t, 12, max)
}

func TestReachIgnoresUnsetEndpoints(t *testing.T) {
	l := New(Lift1, 1, 20)
	l.Row = 9
	l.HasActiveJob = true
	l.ActiveOrigin = 15
	l.ActiveDestination = 0 // MoveTo jobs leave destination unset

	min, max := l.Reach()
	assert.Equal(t, 9, min)
	assert.Equal(t, 15, max)
}

func TestRangesOverlap(t *testing.T) {
	assert.True(t, RangesOverlap(3, 10, 7, 12))
	assert.False(t, RangesOverlap(3, 5, 7, 12))
	assert.False(t, RangesOverlap(0, 0, 1, 5))
	assert.False(t, RangesOverlap(1, 5, 0, 0))
}

func TestInPhysicalRange(t *testing.T) {
	l := New(Lift1, 1, 20)
	assert.True(t, l.InPhysicalRange(1))
	assert.True(t, l.InPhysicalRange(20))
	assert.False(t, l.InPhysicalRange(21))
	assert.False(t, l.InPhysicalRange(0))
}
