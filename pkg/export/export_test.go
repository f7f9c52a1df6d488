package export

import (
	"context"
	"strings"
	"testing"

	"github.com/svgforge/svgforge/pkg/errors"
)

func TestNormalizeViewBox(t *testing.T) {
	in := `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100pt" height="50pt" viewBox="0.00 0.00 100.50 50.25">
<g></g>
</svg>`

	out := string(normalizeViewBox([]byte(in)))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.50 50.25" width="100" height="50">`
	if !strings.Contains(out, want) {
		t.Errorf("normalized tag missing.\ngot:  %s\nwant: %s", out, want)
	}
	if !strings.Contains(out, "<g></g>") {
		t.Error("body content must survive normalization")
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`
	if got := string(normalizeViewBox([]byte(in))); got != in {
		t.Errorf("input without viewBox must pass through unchanged, got %s", got)
	}
}

func TestNormalizeViewBoxZeroSize(t *testing.T) {
	in := `<svg viewBox="0 0 0 0"></svg>`
	if got := string(normalizeViewBox([]byte(in))); got != in {
		t.Errorf("zero-size viewBox must pass through unchanged, got %s", got)
	}
}

func TestConvertSVGPassThrough(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
	out, err := Convert(context.Background(), svg, "svg", 1)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if string(out) != string(svg) {
		t.Error("svg format must pass bytes through unchanged")
	}
}

func TestConvertUnknownFormat(t *testing.T) {
	_, err := Convert(context.Background(), []byte("<svg/>"), "bmp", 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown format should map to INVALID_FORMAT: %v", err)
	}
}
