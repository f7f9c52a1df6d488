package svg

import "strings"

// Translate formats a translate(x,y) transform.
func Translate(x, y float64) string {
	return "translate(" + fmtNum(x) + "," + fmtNum(y) + ")"
}

// Rotate formats a rotate(angle) transform around the origin.
func Rotate(angle float64) string {
	return "rotate(" + fmtNum(angle) + ")"
}

// RotateAround formats a rotate(angle,cx,cy) transform around a center point.
func RotateAround(angle, cx, cy float64) string {
	return "rotate(" + fmtNum(angle) + "," + fmtNum(cx) + "," + fmtNum(cy) + ")"
}

// Scale formats a uniform scale(s) transform.
func Scale(s float64) string {
	return "scale(" + fmtNum(s) + ")"
}

// ScaleXY formats a scale(x,y) transform with independent axis factors.
func ScaleXY(x, y float64) string {
	return "scale(" + fmtNum(x) + "," + fmtNum(y) + ")"
}

// SkewX formats a skewX(angle) transform.
func SkewX(angle float64) string {
	return "skewX(" + fmtNum(angle) + ")"
}

// SkewY formats a skewY(angle) transform.
func SkewY(angle float64) string {
	return "skewY(" + fmtNum(angle) + ")"
}

// Matrix formats a matrix(a,b,c,d,e,f) transform.
func Matrix(a, b, c, d, e, f float64) string {
	parts := []string{fmtNum(a), fmtNum(b), fmtNum(c), fmtNum(d), fmtNum(e), fmtNum(f)}
	return "matrix(" + strings.Join(parts, ",") + ")"
}

// Transforms joins transform strings into one attribute value. Sequence
// order determines application order and is preserved.
func Transforms(ts ...string) string {
	return strings.Join(ts, " ")
}
