package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRect reads a rectangle written as "x1,y1,x2,y2"
func ParseRect(s string) (Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Rect{}, fmt.Errorf("geometry: rect %q: want 4 comma separated values, got %d", s, len(parts))
	}

	var v [4]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Rect{}, fmt.Errorf("geometry: rect %q: %w", s, err)
		}
		v[i] = n
	}

	return Rect{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}
