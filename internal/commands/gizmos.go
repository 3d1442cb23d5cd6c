package commands

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Gizmos is the part of the gizmo context the console can change.
type Gizmos interface {
	SetEnabled(v bool)
	SetFrustumCulling(v bool)
	SetCullMode(name string) error
	SetDashGap(gap float32)
	SetOffset(v rl.Vector3)
	SetBufferSize(n int)
	Load() error
	Clear()

	Enabled() bool
	FrustumCulling() bool
	CullMode() string
	DashGap() float32
	Offset() rl.Vector3
	BufferSize() int
}

// vec3Value parses "x,y,z".
type vec3Value rl.Vector3

func (v *vec3Value) String() string {
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

func (v *vec3Value) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("want x,y,z, got %q", s)
	}
	var out [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = float32(f)
	}
	*v = vec3Value{X: out[0], Y: out[1], Z: out[2]}
	return nil
}

// RegisterGizmos adds the "gizmos" command, which changes only the settings
// whose flags are given and then prints the resulting state, and
// "gizmos-reload", which re-reads the prefs file.
//
//	cmd gizmos -enabled=false
//	cmd gizmos -mode viewport -gap 0.25 -offset 0,1,0
//	cmd gizmos -clear
func RegisterGizmos(r *Registry, g Gizmos) {
	r.Register("gizmos", "show or change gizmo settings", func(fs *flag.FlagSet, out io.Writer) func() error {
		enabled := fs.Bool("enabled", g.Enabled(), "draw gizmos")
		culling := fs.Bool("culling", g.FrustumCulling(), "skip shapes outside the camera")
		mode := fs.String("mode", g.CullMode(), "culling strategy: bounds or viewport")
		gap := fs.Float64("gap", float64(g.DashGap()), "dash length in world units")
		capacity := fs.Int("capacity", g.BufferSize(), "pending shape capacity")
		drop := fs.Bool("clear", false, "drop pending and lasting shapes")
		offset := vec3Value(g.Offset())
		fs.Var(&offset, "offset", "offset added to every vertex, as x,y,z")

		return func() error {
			var err error
			fs.Visit(func(f *flag.Flag) {
				switch f.Name {
				case "enabled":
					g.SetEnabled(*enabled)
				case "culling":
					g.SetFrustumCulling(*culling)
				case "mode":
					err = g.SetCullMode(*mode)
				case "gap":
					g.SetDashGap(float32(*gap))
				case "capacity":
					g.SetBufferSize(*capacity)
				case "offset":
					g.SetOffset(rl.Vector3(offset))
				case "clear":
					if *drop {
						g.Clear()
					}
				}
			})
			if err != nil {
				return err
			}
			printGizmos(out, g)
			return nil
		}
	})
	r.Register("gizmos-reload", "re-read gizmo prefs from disk", func(_ *flag.FlagSet, out io.Writer) func() error {
		return func() error {
			if err := g.Load(); err != nil {
				return err
			}
			printGizmos(out, g)
			return nil
		}
	})
}

func printGizmos(out io.Writer, g Gizmos) {
	o := g.Offset()
	fmt.Fprintf(out, "enabled=%t culling=%t mode=%s gap=%g offset=%g,%g,%g capacity=%d\n",
		g.Enabled(), g.FrustumCulling(), g.CullMode(), g.DashGap(), o.X, o.Y, o.Z, g.BufferSize())
}
