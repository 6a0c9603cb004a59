package geometry

import (
	"fmt"
	"image"
)

// Point is a position in screen coordinates
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rect is a closed screen rectangle given by two opposite corners.
// The corners may be in any order, (X1, Y1) is not required to be the top left.
type Rect struct {
	X1 int `yaml:"x1"`
	Y1 int `yaml:"y1"`
	X2 int `yaml:"x2"`
	Y2 int `yaml:"y2"`
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Point) bool {
	n := r.Normalize()
	return p.X >= n.X1 && p.X <= n.X2 && p.Y >= n.Y1 && p.Y <= n.Y2
}

// Normalize returns the same rectangle with (X1, Y1) as the minimum corner
func (r Rect) Normalize() Rect {
	minX, maxX := order(r.X1, r.X2)
	minY, maxY := order(r.Y1, r.Y2)
	return Rect{X1: minX, Y1: minY, X2: maxX, Y2: maxY}
}

// Width and Height count pixels, so a single-point rect is 1x1
func (r Rect) Width() int {
	n := r.Normalize()
	return n.X2 - n.X1 + 1
}

func (r Rect) Height() int {
	n := r.Normalize()
	return n.Y2 - n.Y1 + 1
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X1, r.Y1, r.X2, r.Y2)
}

// FromImage converts a half-open image.Rectangle (as returned by display APIs)
// into a closed Rect covering the same pixels.
func FromImage(b image.Rectangle) Rect {
	return Rect{X1: b.Min.X, Y1: b.Min.Y, X2: b.Max.X - 1, Y2: b.Max.Y - 1}
}

func order(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
