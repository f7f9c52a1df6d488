package svg

import "testing"

func TestTransformFormatters(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Translate", Translate(10, 20), "translate(10,20)"},
		{"TranslateFloat", Translate(0.5, -1.5), "translate(0.5,-1.5)"},
		{"Rotate", Rotate(45), "rotate(45)"},
		{"RotateAround", RotateAround(45, 50, 50), "rotate(45,50,50)"},
		{"Scale", Scale(2), "scale(2)"},
		{"ScaleXY", ScaleXY(2, 3), "scale(2,3)"},
		{"SkewX", SkewX(30), "skewX(30)"},
		{"SkewY", SkewY(-30), "skewY(-30)"},
		{"Matrix", Matrix(1, 0, 0, 1, 10, 20), "matrix(1,0,0,1,10,20)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestTransformsPreserveOrder(t *testing.T) {
	got := Transforms(Translate(5, 5), Rotate(90), Scale(2))
	want := "translate(5,5) rotate(90) scale(2)"
	if got != want {
		t.Errorf("Transforms() = %s, want %s", got, want)
	}
}

func TestPointsAndViewBox(t *testing.T) {
	if got, want := Points(Point{0, 0}, Point{10, 5.5}, Point{20, 0}), "0,0 10,5.5 20,0"; got != want {
		t.Errorf("Points() = %s, want %s", got, want)
	}
	if got, want := ViewBox(0, 0, 800, 600), "0 0 800 600"; got != want {
		t.Errorf("ViewBox() = %s, want %s", got, want)
	}
	if got := Points(); got != "" {
		t.Errorf("Points() with no pairs = %q, want empty", got)
	}
}
