package tracking

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-vgo/robotgo"

	"github.com/vedantwpatil/autoclicker/internal/geometry"
)

// Robot drives the real pointer through robotgo
type Robot struct {
	button string
}

// OpenRobot checks that a desktop session is reachable before any click is attempted
func OpenRobot() (*Robot, error) {
	if err := checkSession(runtime.GOOS, os.Getenv); err != nil {
		return nil, err
	}

	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("tracking: screen size reported as %dx%d, input access was probably denied", w, h)
	}

	return &Robot{button: "left"}, nil
}

// Pointer reads the live mouse location
func (r *Robot) Pointer() geometry.Point {
	x, y := robotgo.Location()
	return geometry.Point{X: x, Y: y}
}

func (r *Robot) Click() {
	robotgo.Click(r.button, false)
}

func (r *Robot) Sleep(d time.Duration) {
	time.Sleep(d)
}

// X11 is required, robotgo can't read the pointer under a bare Wayland session
func checkSession(goos string, getenv func(string) string) error {
	if goos != "linux" {
		return nil
	}
	if getenv("DISPLAY") != "" {
		return nil
	}
	if getenv("WAYLAND_DISPLAY") != "" {
		return errors.New("tracking: wayland session without XWayland (DISPLAY unset)")
	}
	return errors.New("tracking: no graphical session (DISPLAY unset)")
}
