package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"github.com/hack-pad/hackpadfs"

	"github.com/popcron/gizmos/internal/cull"
	"github.com/popcron/gizmos/internal/dash"
	"github.com/popcron/gizmos/internal/queue"
)

// PrefsPath is the prefs file, relative to the root of the store filesystem.
const PrefsPath = "config/gizmos.json"

// Prefs holds the gizmo preferences persisted across runs.
type Prefs struct {
	Enabled        bool       `json:"enabled"`
	FrustumCulling bool       `json:"frustum_culling"`
	CullMode       string     `json:"cull_mode"`
	DashGap        float32    `json:"dash_gap"`
	Offset         [3]float32 `json:"offset"`
	BufferSize     int        `json:"buffer_size"`
}

// Default returns the preferences used on first run: drawing and culling on,
// bounding-box culling, 0.1 dash gap, no offset, 512 slots.
func Default() Prefs {
	return Prefs{
		Enabled:        true,
		FrustumCulling: true,
		CullMode:       cull.Bounds.String(),
		DashGap:        dash.DefaultGap,
		BufferSize:     queue.DefaultCapacity,
	}
}

// Normalize replaces out-of-range values with usable ones.
func (p Prefs) Normalize() Prefs {
	if _, err := cull.ParseMode(p.CullMode); err != nil {
		p.CullMode = cull.Bounds.String()
	}
	p.DashGap = dash.ClampGap(p.DashGap)
	if p.BufferSize <= 0 {
		p.BufferSize = queue.DefaultCapacity
	}
	return p
}

// Load reads preferences from PrefsPath in fsys. A missing or invalid file
// yields Default() and no error; only other read failures are returned.
func Load(fsys hackpadfs.FS) (Prefs, error) {
	data, err := hackpadfs.ReadFile(fsys, PrefsPath)
	if err != nil {
		if errors.Is(err, hackpadfs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read %s: %w", PrefsPath, err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p.Normalize(), nil
}

// Save writes preferences to PrefsPath in fsys, creating the config directory if needed.
func Save(fsys hackpadfs.FS, p Prefs) error {
	if err := hackpadfs.MkdirAll(fsys, path.Dir(PrefsPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	if err := hackpadfs.WriteFullFile(fsys, PrefsPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", PrefsPath, err)
	}
	return nil
}
