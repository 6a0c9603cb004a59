package clicker

import (
	"errors"
	"time"

	"github.com/vedantwpatil/autoclicker/internal/geometry"
)

// ErrEnvironmentUnavailable is returned by Start when the input devices cannot be opened
var ErrEnvironmentUnavailable = errors.New("clicker: environment unavailable")

// Environment is the access to the pointer the engine drives.
// Production code talks to the real input devices; tests use a scripted double.
type Environment interface {
	// Pointer reads the current pointer position. It must not be cached.
	Pointer() geometry.Point
	// Click performs a single primary button click at the current position
	Click()
	// Sleep blocks the loop for roughly d
	Sleep(d time.Duration)
}

// Opener acquires an Environment for one run
type Opener func() (Environment, error)
