package clicker

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vedantwpatil/autoclicker/internal/geometry"
)

func TestConfig_Interval(t *testing.T) {
	tests := []struct {
		rate float64
		want time.Duration
	}{
		{rate: 10, want: 100 * time.Millisecond},
		{rate: 1, want: time.Second},
		{rate: 0.25, want: time.Second},
		{rate: 0, want: time.Second},
		{rate: -3, want: time.Second},
		{rate: math.NaN(), want: time.Second},
		{rate: 1000, want: time.Millisecond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Config{Rate: tt.rate}.Interval(), "rate %v", tt.rate)
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, Config{Rate: 0.5}.Validate())
	assert.Error(t, Config{Rate: 0}.Validate())
	assert.Error(t, Config{Rate: -1}.Validate())
	assert.Error(t, Config{Rate: math.NaN()}.Validate())
	assert.Error(t, Config{Rate: math.Inf(1)}.Validate())
}

func TestConfig_Clone(t *testing.T) {
	c := Config{Rate: 3, Repeat: 2, Region: &geometry.Rect{X2: 5, Y2: 5}}
	d := c.Clone()

	d.Region.X2 = 99
	assert.Equal(t, 5, c.Region.X2)
	assert.Nil(t, Config{}.Clone().Region)
}

func TestConfig_String(t *testing.T) {
	assert.Equal(t, "rate=10.00 repeat=0 region=none", DefaultConfig().String())
	c := Config{Rate: 2.5, Repeat: 3, Region: &geometry.Rect{X1: 1, Y1: 2, X2: 3, Y2: 4}}
	assert.Equal(t, "rate=2.50 repeat=3 region=1,2,3,4", c.String())
}

func TestStopReason_String(t *testing.T) {
	assert.Equal(t, "none", StopNone.String())
	assert.Equal(t, "manual", StopManual.String())
	assert.Equal(t, "region exit", StopRegionExit.String())
	assert.Equal(t, "repeat done", StopRepeatDone.String())
}
