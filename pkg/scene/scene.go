// Package scene loads declarative TOML scene manifests and compiles them
// into SVG documents through the builder in pkg/svg.
//
// # Manifest format
//
// A scene names a canvas, optional gradients and an ordered list of shapes.
// Shape order is painter's order: later entries draw on top.
//
//	width = 200
//	height = 120
//	background = "#FFFFFF"
//
//	[[gradient]]
//	id = "sky"
//	kind = "linear"
//	from = [0.0, 0.0]
//	to = [0.0, 1.0]
//
//	  [[gradient.stop]]
//	  offset = 0.0
//	  color = "#87CEEB"
//
//	  [[gradient.stop]]
//	  offset = 1.0
//	  color = "#FFF8DC"
//
//	[[shape]]
//	kind = "rect"
//	x = 10.0
//	y = 10.0
//	width = 80.0
//	height = 40.0
//	fill = "url(#sky)"
//
// Supported shape kinds: rect, circle, ellipse, line, polyline, polygon,
// path (raw d string) and text.
package scene

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/svgforge/svgforge/pkg/errors"
)

// Scene is a parsed manifest: canvas dimensions plus ordered shapes and
// gradient definitions.
type Scene struct {
	Width      float64    `toml:"width"`
	Height     float64    `toml:"height"`
	Background string     `toml:"background"`
	Gradients  []Gradient `toml:"gradient"`
	Shapes     []Shape    `toml:"shape"`
}

// Gradient defines a linear or radial gradient placed under <defs>.
type Gradient struct {
	ID    string    `toml:"id"`
	Kind  string    `toml:"kind"` // "linear" or "radial"
	From  []float64 `toml:"from"` // linear: vector start [x, y]
	To    []float64 `toml:"to"`   // linear: vector end [x, y]
	Cx    float64   `toml:"cx"`   // radial: center x
	Cy    float64   `toml:"cy"`   // radial: center y
	R     float64   `toml:"r"`    // radial: radius
	Stops []Stop    `toml:"stop"`
}

// Stop is one gradient color stop.
type Stop struct {
	Offset  float64  `toml:"offset"`
	Color   string   `toml:"color"`
	Opacity *float64 `toml:"opacity"`
}

// Shape is one drawable entry. Only the fields matching Kind are consulted;
// the rest stay at their zero values.
type Shape struct {
	Kind string `toml:"kind"`

	// Common presentation
	ID          string   `toml:"id"`
	Fill        string   `toml:"fill"`
	Stroke      string   `toml:"stroke"`
	StrokeWidth float64  `toml:"stroke_width"`
	Opacity     *float64 `toml:"opacity"`
	Transform   string   `toml:"transform"`

	// rect
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Rx     float64 `toml:"rx"`
	Ry     float64 `toml:"ry"`

	// circle / ellipse
	Cx float64 `toml:"cx"`
	Cy float64 `toml:"cy"`
	R  float64 `toml:"r"`

	// line
	X1 float64 `toml:"x1"`
	Y1 float64 `toml:"y1"`
	X2 float64 `toml:"x2"`
	Y2 float64 `toml:"y2"`

	// polyline / polygon
	Points [][]float64 `toml:"points"`

	// path
	D string `toml:"d"`

	// text
	Text       string  `toml:"text"`
	FontFamily string  `toml:"font_family"`
	FontSize   float64 `toml:"font_size"`
	Anchor     string  `toml:"anchor"`
}

// shapeKinds are the accepted values for Shape.Kind.
var shapeKinds = map[string]bool{
	"rect":     true,
	"circle":   true,
	"ellipse":  true,
	"line":     true,
	"polyline": true,
	"polygon":  true,
	"path":     true,
	"text":     true,
}

// Load reads and parses a scene manifest from disk.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene manifest %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading %s", path)
	}
	return Parse(data)
}

// Parse parses a scene manifest from TOML bytes and validates it.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "parsing scene manifest")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the manifest invariants the composer relies on.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScene,
			"canvas dimensions must be positive (got %vx%v)", s.Width, s.Height)
	}

	for i, g := range s.Gradients {
		if g.ID == "" {
			return errors.New(errors.ErrCodeInvalidScene, "gradient %d has no id", i)
		}
		switch g.Kind {
		case "linear":
			if len(g.From) != 2 || len(g.To) != 2 {
				return errors.New(errors.ErrCodeInvalidScene,
					"linear gradient %q needs from/to pairs", g.ID)
			}
		case "radial":
			// zero center/radius is legal; the SVG defaults apply
		default:
			return errors.New(errors.ErrCodeInvalidScene,
				"gradient %q has unknown kind %q", g.ID, g.Kind)
		}
		if len(g.Stops) == 0 {
			return errors.New(errors.ErrCodeInvalidScene, "gradient %q has no stops", g.ID)
		}
	}

	for i, sh := range s.Shapes {
		if !shapeKinds[sh.Kind] {
			return errors.New(errors.ErrCodeInvalidShape,
				"shape %d has unknown kind %q", i, sh.Kind)
		}
		switch sh.Kind {
		case "polyline", "polygon":
			if len(sh.Points) < 2 {
				return errors.New(errors.ErrCodeInvalidShape,
					"shape %d (%s) needs at least two points", i, sh.Kind)
			}
			for _, p := range sh.Points {
				if len(p) != 2 {
					return errors.New(errors.ErrCodeInvalidShape,
						"shape %d (%s) has a malformed point", i, sh.Kind)
				}
			}
		case "path":
			if sh.D == "" {
				return errors.New(errors.ErrCodeInvalidShape,
					"shape %d (path) needs a d string", i)
			}
		case "text":
			if sh.Text == "" {
				return errors.New(errors.ErrCodeInvalidShape,
					"shape %d (text) needs text content", i)
			}
		}
	}

	return nil
}
