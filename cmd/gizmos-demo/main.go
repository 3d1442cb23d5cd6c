package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/popcron/gizmos"
	"github.com/popcron/gizmos/internal/commands"
	"github.com/popcron/gizmos/internal/config"
	"github.com/popcron/gizmos/internal/debug"
	"github.com/popcron/gizmos/internal/graphics"
	"github.com/popcron/gizmos/internal/logger"
	"github.com/popcron/gizmos/internal/presets"
	"github.com/popcron/gizmos/internal/scene"
)

func main() {
	presetPath := flag.String("presets", "", "YAML file of extra gizmos, relative to the working directory")
	verbose := flag.Bool("v", false, "log every render pass")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(logger.New(level))
	gizmos.SetLogger(log)

	g := gizmos.Default()
	scn := scene.New()
	g.SetCamera(&scn.Camera)

	var steady []presets.Def
	if *presetPath != "" {
		steady = loadPresets(g, *presetPath, log)
	}

	reg := commands.NewRegistry(os.Stdout)
	commands.RegisterGizmos(reg, g)
	lines := readConsole()

	dbg := debug.New(g.Stats)
	dbg.ShowFPS = true
	dbg.ShowGizmos = true

	presetsFailed := false
	update := func() {
		dt := rl.GetFrameTime()
		scn.Update(dt)
		g.Update(dt)
		drainConsole(reg, lines, log)

		switch {
		case rl.IsKeyPressed(rl.KeyF1):
			g.SetEnabled(!g.Enabled())
		case rl.IsKeyPressed(rl.KeyF2):
			g.SetFrustumCulling(!g.FrustumCulling())
		case rl.IsKeyPressed(rl.KeyG):
			scn.SetGridVisible(!scn.GridVisible)
		case rl.IsKeyPressed(rl.KeyR):
			scn.Reset()
		}

		scn.Submit(g)
		if err := presets.Submit(g, steady); err != nil && !presetsFailed {
			log.Warn("presets: submit", "err", err)
			presetsFailed = true
		}
	}
	draw := func() {
		scn.Draw(g)
		dbg.Draw()
	}
	graphics.Run("gizmos demo", 1280, 720, update, draw)
}

// loadPresets submits the timed presets once and returns the rest, which are
// drawn every frame.
func loadPresets(g *gizmos.Gizmos, path string, log *slog.Logger) []presets.Def {
	fsys, err := config.WorkingDirFS()
	if err != nil {
		log.Error("presets: open working directory", "err", err)
		return nil
	}
	defs, err := presets.Load(fsys, path)
	if err != nil {
		log.Error("presets: load", "path", path, "err", err)
		return nil
	}
	var timed, steady []presets.Def
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			log.Warn("presets: skipping gizmo", "type", d.Type, "err", err)
			continue
		}
		if d.Duration > 0 {
			timed = append(timed, d)
		} else {
			steady = append(steady, d)
		}
	}
	if err := presets.Submit(g, timed); err != nil {
		log.Warn("presets: submit", "err", err)
	}
	log.Info("presets: loaded", "path", path, "steady", len(steady), "timed", len(timed))
	return steady
}

// readConsole forwards stdin lines so commands run on the frame thread.
func readConsole() <-chan string {
	ch := make(chan string, 16)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			ch <- sc.Text()
		}
	}()
	return ch
}

func drainConsole(reg *commands.Registry, lines <-chan string, log *slog.Logger) {
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return
			}
			handled, err := reg.ExecuteLine(line)
			if err != nil {
				log.Warn("console", "line", line, "err", err)
				fmt.Println(err)
			} else if !handled && line != "" {
				fmt.Println(`commands start with "cmd "; try: cmd help`)
			}
		default:
			return
		}
	}
}
