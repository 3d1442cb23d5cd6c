// Package presets loads gizmos described in YAML files, e.g. a scene's debug
// overlay:
//
//	defaults:
//	  color: "#ffcc00"
//	gizmos:
//	  - type: sphere
//	    position: [0, 1, 0]
//	    radius: 1
//	  - type: cone
//	    position: [0, 4, 0]
//	    rotation: [90, 0, 0]
//	    length: 3
//	    angle: 30
//	    dashed: true
package presets

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hack-pad/hackpadfs"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"github.com/popcron/gizmos"
	"github.com/popcron/gizmos/internal/mathx"
)

// Def is one gizmo. Which fields matter depends on Type.
type Def struct {
	Type     string      `yaml:"type"`
	Position [3]float32  `yaml:"position,omitempty"`
	End      [3]float32  `yaml:"end,omitempty"`      // line
	Rotation *[3]float32 `yaml:"rotation,omitempty"` // pitch, yaw, roll in degrees
	Size     [3]float32  `yaml:"size,omitempty"`     // square, cube, bounds
	Radius   float32     `yaml:"radius,omitempty"`   // sphere, circle, polygon
	Length   float32     `yaml:"length,omitempty"`   // cone
	Angle    float32     `yaml:"angle,omitempty"`    // cone half angle, degrees
	Points   int         `yaml:"points,omitempty"`   // ring resolution or polygon sides
	Color    string      `yaml:"color,omitempty"`
	Dashed   *bool       `yaml:"dashed,omitempty"`
	Duration float32     `yaml:"duration,omitempty"` // seconds; 0 draws once
}

// File is a preset file: fields set in Defaults apply to every gizmo that
// leaves them empty.
type File struct {
	Defaults Def   `yaml:"defaults,omitempty"`
	Gizmos   []Def `yaml:"gizmos"`
}

// Parse decodes a preset file and applies its defaults.
func Parse(data []byte) ([]Def, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	defs := make([]Def, 0, len(f.Gizmos))
	for i, d := range f.Gizmos {
		merged, err := Merge(f.Defaults, d)
		if err != nil {
			return nil, fmt.Errorf("gizmo %d: %w", i, err)
		}
		defs = append(defs, merged)
	}
	return defs, nil
}

// Load reads and parses the preset file at name in fsys.
func Load(fsys hackpadfs.FS, name string) ([]Def, error) {
	data, err := hackpadfs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return Parse(data)
}

// Merge returns base overlaid with every non-empty field of d.
// Pointer fields are cloned so the result never aliases base.
func Merge(base, d Def) (Def, error) {
	out := base
	if base.Dashed != nil {
		v := *base.Dashed
		out.Dashed = &v
	}
	if base.Rotation != nil {
		r := *base.Rotation
		out.Rotation = &r
	}
	if err := copier.CopyWithOption(&out, &d, copier.Option{IgnoreEmpty: true}); err != nil {
		return Def{}, err
	}
	return out, nil
}

// Submit draws every def into g. Invalid defs are skipped and reported
// together.
func Submit(g *gizmos.Gizmos, defs []Def) error {
	var errs []error
	for i, d := range defs {
		if err := d.Submit(g); err != nil {
			errs = append(errs, fmt.Errorf("gizmo %d (%s): %w", i, d.Type, err))
		}
	}
	return errors.Join(errs...)
}

var kinds = map[string]bool{
	"line": true, "square": true, "cube": true, "bounds": true,
	"sphere": true, "circle": true, "polygon": true, "cone": true,
}

// Validate reports whether d names a known type with a parseable color.
func (d Def) Validate() error {
	if !kinds[d.Type] {
		return fmt.Errorf("unknown type %q", d.Type)
	}
	_, err := d.Options()
	return err
}

// Options translates the style fields into draw options.
func (d Def) Options() ([]gizmos.Option, error) {
	var opts []gizmos.Option
	if d.Color != "" {
		c, err := ParseColor(d.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gizmos.WithColor(c))
	}
	if d.Dashed != nil && *d.Dashed {
		opts = append(opts, gizmos.Dashed())
	}
	if d.Duration > 0 {
		opts = append(opts, gizmos.For(d.Duration))
	}
	if d.Rotation != nil {
		opts = append(opts, gizmos.Rotated(d.rotation()))
	}
	if d.Points > 0 && d.Type != "polygon" {
		opts = append(opts, gizmos.WithPoints(d.Points))
	}
	return opts, nil
}

func (d Def) rotation() rl.Quaternion {
	if d.Rotation == nil {
		return rl.QuaternionIdentity()
	}
	r := *d.Rotation
	return mathx.EulerDegrees(r[0], r[1], r[2])
}

// Submit draws d into g.
func (d Def) Submit(g *gizmos.Gizmos) error {
	opts, err := d.Options()
	if err != nil {
		return err
	}
	pos := mathx.Vec3(d.Position)
	switch d.Type {
	case "line":
		g.Line(pos, mathx.Vec3(d.End), opts...)
	case "square":
		g.Square(rl.NewVector2(pos.X, pos.Y), rl.NewVector2(d.Size[0], d.Size[1]), opts...)
	case "cube":
		g.Cube(pos, d.rotation(), mathx.Vec3(d.Size), opts...)
	case "bounds":
		g.Bounds(pos, mathx.Vec3(d.Size), opts...)
	case "sphere":
		g.Sphere(pos, d.Radius, opts...)
	case "circle":
		g.Circle(pos, d.Radius, opts...)
	case "polygon":
		g.Polygon(pos, d.Radius, d.Points, opts...)
	case "cone":
		g.Cone(pos, d.rotation(), d.Length, d.Angle, opts...)
	default:
		return fmt.Errorf("unknown type %q", d.Type)
	}
	return nil
}
