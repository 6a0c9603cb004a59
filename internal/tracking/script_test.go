package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vedantwpatil/autoclicker/internal/geometry"
)

func TestScript_RepeatsLastSample(t *testing.T) {
	s := NewScript(geometry.Point{X: 1, Y: 1}, geometry.Point{X: 2, Y: 2})

	assert.Equal(t, geometry.Point{X: 1, Y: 1}, s.Pointer())
	assert.Equal(t, geometry.Point{X: 2, Y: 2}, s.Pointer())
	assert.Equal(t, geometry.Point{X: 2, Y: 2}, s.Pointer())
	assert.Equal(t, 3, s.Reads())
}

func TestScript_RecordsClicksAndSleeps(t *testing.T) {
	var seen []int
	s := NewScript(geometry.Point{X: 7, Y: 8})
	s.OnSleep = func(n int) { seen = append(seen, n) }

	s.Pointer()
	s.Click()
	s.Sleep(time.Second)
	s.Click()
	s.Sleep(time.Millisecond)

	assert.Equal(t, 2, s.Clicks())
	assert.Equal(t, []geometry.Point{{X: 7, Y: 8}, {X: 7, Y: 8}}, s.ClickedAt())
	assert.Equal(t, []time.Duration{time.Second, time.Millisecond}, s.Sleeps())
	assert.Equal(t, []int{1, 2}, seen)
}

func TestScript_Empty(t *testing.T) {
	s := NewScript()
	assert.Equal(t, geometry.Point{}, s.Pointer())
}
