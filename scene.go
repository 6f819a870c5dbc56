package ycanvas

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// CanvasConfig is the [canvas] table of a scene file.
type CanvasConfig struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	OffsetX float64 `toml:"offset_x"`
	OffsetY float64 `toml:"offset_y"`
}

// ShapeConfig is one [[shapes]] entry of a scene file.
type ShapeConfig struct {
	Kind      string       `toml:"kind"` // rect, arc, line or image
	Name      string       `toml:"name"`
	X         float64      `toml:"x"`
	Y         float64      `toml:"y"`
	W         float64      `toml:"w"`
	H         float64      `toml:"h"`
	Radius    float64      `toml:"radius"`
	Points    [][2]float64 `toml:"points"` // line deltas, applied with Line.Move
	LineWidth float64      `toml:"line_width"`
	Src       string       `toml:"src"`
	Z         int          `toml:"z"`
	Color     string       `toml:"color"`
	Mode      string       `toml:"mode"`
}

// SceneConfig is a declarative description of a canvas and its shapes.
//
//	[canvas]
//	width = 640
//	height = 480
//
//	[[shapes]]
//	kind = "rect"
//	x = 10
//	y = 10
//	w = 100
//	h = 50
//	z = 1
//	color = "#ff0000"
type SceneConfig struct {
	Canvas CanvasConfig  `toml:"canvas"`
	Shapes []ShapeConfig `toml:"shapes"`
}

// LoadScene parses a TOML scene document and validates every shape entry.
func LoadScene(data string) (*SceneConfig, error) {
	var cfg SceneConfig
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks shape kinds, paint modes and required geometry.
func (c *SceneConfig) Validate() error {
	var errs []error
	for i, s := range c.Shapes {
		if _, ok := ParsePaintMode(s.Mode); !ok {
			errs = append(errs, fmt.Errorf("shapes[%d]: unknown mode %q", i, s.Mode))
		}
		switch s.Kind {
		case "rect":
			if s.W <= 0 || s.H <= 0 {
				errs = append(errs, fmt.Errorf("shapes[%d]: rect needs positive w and h", i))
			}
		case "arc":
			if s.Radius <= 0 {
				errs = append(errs, fmt.Errorf("shapes[%d]: arc needs a positive radius", i))
			}
		case "line":
		case "image":
			if s.Src == "" {
				errs = append(errs, fmt.Errorf("shapes[%d]: image needs src", i))
			}
		default:
			errs = append(errs, fmt.Errorf("shapes[%d]: unknown kind %q", i, s.Kind))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid scene: %w", errors.Join(errs...))
	}
	return nil
}

// NewCanvas creates the canvas described by the [canvas] table.
func (c *SceneConfig) NewCanvas() *Canvas {
	cv := NewCanvas(c.Canvas.Width, c.Canvas.Height)
	cv.SetOffset(c.Canvas.OffsetX, c.Canvas.OffsetY)
	return cv
}

// Build creates every shape, renders it on e and returns the shapes in
// declaration order, keyed also by name when one is given. Nothing is
// rendered unless every shape could be created.
func (c *SceneConfig) Build(e *Engine) ([]Shape, map[string]Shape, error) {
	shapes := make([]Shape, 0, len(c.Shapes))
	named := make(map[string]Shape)
	for i, sc := range c.Shapes {
		s, err := sc.build()
		if err != nil {
			return nil, nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		shapes = append(shapes, s)
		if sc.Name != "" {
			named[sc.Name] = s
		}
	}
	for i, s := range shapes {
		mode, _ := ParsePaintMode(c.Shapes[i].Mode)
		e.Render(s, RenderOptions{Color: c.Shapes[i].Color, Mode: mode})
	}
	return shapes, named, nil
}

func (sc ShapeConfig) build() (Shape, error) {
	switch sc.Kind {
	case "rect":
		return NewRect(RectOptions{X: sc.X, Y: sc.Y, W: sc.W, H: sc.H, ZIndex: sc.Z}), nil
	case "arc":
		return NewArc(ArcOptions{X: sc.X, Y: sc.Y, Radius: sc.Radius, ZIndex: sc.Z}), nil
	case "line":
		l := NewLine(LineOptions{X: sc.X, Y: sc.Y, LineWidth: sc.LineWidth, ZIndex: sc.Z})
		for _, d := range sc.Points {
			l.Move(d[0], d[1])
		}
		return l, nil
	case "image":
		return NewImage(ImageOptions{X: sc.X, Y: sc.Y, W: sc.W, H: sc.H, Src: sc.Src, ZIndex: sc.Z})
	}
	return nil, fmt.Errorf("unknown kind %q", sc.Kind)
}
