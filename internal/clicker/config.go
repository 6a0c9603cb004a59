package clicker

import (
	"fmt"
	"math"
	"time"

	"github.com/vedantwpatil/autoclicker/internal/geometry"
)

// Rates below MinRate are clamped when the interval is computed
const MinRate = 1.0

// Config is the per-run clicking setup. It is replaced as a whole, never edited in place.
type Config struct {
	// Rate is the target number of clicks per second
	Rate float64
	// Repeat is the maximum number of clicks per run, 0 for no limit
	Repeat uint
	// Region stops the run once the pointer leaves it, nil for no bound
	Region *geometry.Rect
}

func DefaultConfig() Config {
	return Config{Rate: 10}
}

// Clone returns a copy that shares no memory with c
func (c Config) Clone() Config {
	if c.Region != nil {
		r := *c.Region
		c.Region = &r
	}
	return c
}

// Interval is the pause between two clicks
func (c Config) Interval() time.Duration {
	rate := c.Rate
	if math.IsNaN(rate) || rate < MinRate {
		rate = MinRate
	}
	return time.Duration(float64(time.Second) / rate)
}

func (c Config) Validate() error {
	if math.IsNaN(c.Rate) || math.IsInf(c.Rate, 0) || c.Rate <= 0 {
		return fmt.Errorf("clicker: rate must be a positive number, got %v", c.Rate)
	}
	return nil
}

func (c Config) String() string {
	region := "none"
	if c.Region != nil {
		region = c.Region.String()
	}
	return fmt.Sprintf("rate=%.2f repeat=%d region=%s", c.Rate, c.Repeat, region)
}
