package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Backend receives the vertex stream of one render pass. Every two
// consecutive vertices form one line segment.
type Backend interface {
	Begin()
	Vertex(pos rl.Vector3, color rl.Color)
	End()
}

// Raylib draws the stream with rl.DrawLine3D. It must be used between
// rl.BeginMode3D and rl.EndMode3D of the camera being rendered.
// Lines are alpha blended, do not write depth and ignore face culling.
type Raylib struct {
	shader  rl.Shader
	pending rl.Vector3
	half    bool
}

// NewRaylib returns a backend using raylib's default line shader.
func NewRaylib() *Raylib {
	return &Raylib{}
}

// SetShader sets the shader lines are drawn with. A zero shader restores the default.
func (r *Raylib) SetShader(s rl.Shader) {
	r.shader = s
}

func (r *Raylib) Begin() {
	r.half = false
	rl.BeginBlendMode(rl.BlendAlpha)
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	if r.shader.ID != 0 && rl.IsShaderValid(r.shader) {
		rl.BeginShaderMode(r.shader)
	}
}

func (r *Raylib) Vertex(pos rl.Vector3, color rl.Color) {
	if !r.half {
		r.pending = pos
		r.half = true
		return
	}
	rl.DrawLine3D(r.pending, pos, color)
	r.half = false
}

func (r *Raylib) End() {
	if r.shader.ID != 0 && rl.IsShaderValid(r.shader) {
		rl.EndShaderMode()
	}
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
	rl.EndBlendMode()
	r.half = false
}

// Vertex is one recorded vertex.
type Vertex struct {
	Position rl.Vector3
	Color    rl.Color
}

// Recorder keeps the stream in memory instead of drawing it. Used headless
// and in tests.
type Recorder struct {
	Passes   int
	Vertices []Vertex
}

func (r *Recorder) Begin() { r.Passes++ }

func (r *Recorder) Vertex(pos rl.Vector3, color rl.Color) {
	r.Vertices = append(r.Vertices, Vertex{Position: pos, Color: color})
}

func (r *Recorder) End() {}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.Passes = 0
	r.Vertices = r.Vertices[:0]
}
