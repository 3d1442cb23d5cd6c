package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
)

// WorkingDirFS returns the host filesystem rooted at the process working
// directory, so PrefsPath resolves to ./config/gizmos.json.
func WorkingDirFS() (hackpadfs.FS, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}
	rel := strings.TrimPrefix(filepath.ToSlash(wd), "/")
	if rel == "" {
		rel = "."
	}
	sub, err := osfs.NewFS().Sub(rel)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", wd, err)
	}
	return sub, nil
}
