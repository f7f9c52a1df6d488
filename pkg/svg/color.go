package svg

import (
	"fmt"
	"math"
)

// Color formats an RGB color with alpha. Channels are rounded to the
// nearest integer and clamped to [0,255]. Alpha at or above 0.999 yields an
// uppercase hex "#RRGGBB"; anything lower yields "rgba(r,g,b,a)" with the
// alpha rounded to three decimal places.
func Color(r, g, b, a float64) string {
	ri, gi, bi := channel(r), channel(g), channel(b)
	if a >= 0.999 {
		return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", ri, gi, bi, fmtNum(math.Round(a*1000)/1000))
}

func channel(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// RGB formats a CSS rgb() function value. Ranges are not validated.
func RGB(r, g, b int) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// RGBA formats a CSS rgba() function value. Ranges are not validated.
func RGBA(r, g, b int, a float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, fmtNum(a))
}

// HSL formats a CSS hsl() function value. Saturation and lightness are
// percentages. Ranges are not validated.
func HSL(h, s, l float64) string {
	return fmt.Sprintf("hsl(%s,%s%%,%s%%)", fmtNum(h), fmtNum(s), fmtNum(l))
}

// HSLA formats a CSS hsla() function value. Ranges are not validated.
func HSLA(h, s, l, a float64) string {
	return fmt.Sprintf("hsla(%s,%s%%,%s%%,%s)", fmtNum(h), fmtNum(s), fmtNum(l), fmtNum(a))
}
