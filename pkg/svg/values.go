package svg

import (
	"strconv"
	"strings"
)

// fmtNum renders a float in its shortest exact decimal form: 10.0 becomes
// "10", 0.5 stays "0.5". Every numeric attribute value in the package goes
// through this, so rendered output is stable across platforms.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Point is one x,y coordinate pair.
type Point struct {
	X, Y float64
}

// Points formats coordinate pairs as a polyline/polygon points value:
// "x1,y1 x2,y2 ...".
func Points(pts ...Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmtNum(p.X) + "," + fmtNum(p.Y)
	}
	return strings.Join(parts, " ")
}

// ViewBox formats a viewBox attribute value: "minX minY width height".
func ViewBox(minX, minY, width, height float64) string {
	return fmtNum(minX) + " " + fmtNum(minY) + " " + fmtNum(width) + " " + fmtNum(height)
}
