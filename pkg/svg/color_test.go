package svg

import "testing"

func TestColor(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float64
		want       string
	}{
		{"OpaqueBlue", 0, 0, 255, 1.0, "#0000FF"},
		{"HalfBlue", 0, 0, 255, 0.5, "rgba(0,0,255,0.5)"},
		{"NearOpaque", 255, 0, 0, 0.999, "#FF0000"},
		{"JustBelowOpaque", 255, 0, 0, 0.998, "rgba(255,0,0,0.998)"},
		{"White", 255, 255, 255, 1.0, "#FFFFFF"},
		{"Black", 0, 0, 0, 1.0, "#000000"},
		{"ClampHigh", 300, 0, 0, 1.0, "#FF0000"},
		{"ClampLow", -20, 0, 0, 1.0, "#000000"},
		{"RoundChannels", 127.6, 128.4, 0, 1.0, "#808000"},
		{"AlphaRoundedThreeDecimals", 0, 0, 0, 0.12345, "rgba(0,0,0,0.123)"},
		{"AlphaTrailingZerosTrimmed", 0, 0, 0, 0.25, "rgba(0,0,0,0.25)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Color(tt.r, tt.g, tt.b, tt.a)
			if got != tt.want {
				t.Errorf("Color(%v,%v,%v,%v) = %s, want %s", tt.r, tt.g, tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestCSSColorFunctions(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"RGB", RGB(10, 20, 30), "rgb(10,20,30)"},
		{"RGBA", RGBA(10, 20, 30, 0.4), "rgba(10,20,30,0.4)"},
		{"HSL", HSL(120, 50, 40), "hsl(120,50%,40%)"},
		{"HSLA", HSLA(120, 50, 40, 0.7), "hsla(120,50%,40%,0.7)"},
		{"HSLFractional", HSL(0.5, 99.5, 1), "hsl(0.5,99.5%,1%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}
