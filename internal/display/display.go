package display

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/vedantwpatil/autoclicker/internal/geometry"
)

// Source reports the attached displays. The screenshot package is the default,
// tests swap in fixed bounds.
type Source interface {
	NumActiveDisplays() int
	GetDisplayBounds(index int) image.Rectangle
}

type screenshotSource struct{}

func (screenshotSource) NumActiveDisplays() int {
	return screenshot.NumActiveDisplays()
}

func (screenshotSource) GetDisplayBounds(index int) image.Rectangle {
	return screenshot.GetDisplayBounds(index)
}

// System reads the real display layout
var System Source = screenshotSource{}

// Count returns how many displays are active
func Count(src Source) int {
	return src.NumActiveDisplays()
}

// Bounds returns the pixels covered by display index as a clicker region
func Bounds(src Source, index int) (geometry.Rect, error) {
	if index < 0 || index >= Count(src) {
		return geometry.Rect{}, fmt.Errorf("display: index %d out of range, active displays %v", index, All(src))
	}

	b := src.GetDisplayBounds(index)
	if b.Empty() {
		return geometry.Rect{}, fmt.Errorf("display: display %d reports empty bounds", index)
	}
	return geometry.FromImage(b), nil
}

// All lists the bounds of every active display
func All(src Source) []geometry.Rect {
	n := src.NumActiveDisplays()
	rects := make([]geometry.Rect, 0, n)
	for i := 0; i < n; i++ {
		rects = append(rects, geometry.FromImage(src.GetDisplayBounds(i)))
	}
	return rects
}
