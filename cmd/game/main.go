package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/glide/internal/application/game"
	"github.com/younwookim/glide/internal/application/replay"
	"github.com/younwookim/glide/internal/application/scene/playing"
	"github.com/younwookim/glide/internal/application/system"
	"github.com/younwookim/glide/internal/infrastructure/config"
	"github.com/younwookim/glide/internal/infrastructure/logger"
	"github.com/younwookim/glide/internal/infrastructure/watch"
)

//go:embed configs
var configFS embed.FS

const defaultStage = "demo"

type flags struct {
	configDir string
	stage     string
	record    string
	replay    string
	logLevel  string
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fset := flag.NewFlagSet("glide", flag.ContinueOnError)
	fset.StringVar(&f.configDir, "config", "", "Load configs from this directory and reload controller changes live")
	fset.StringVar(&f.stage, "stage", "", "Stage to play (default \"demo\", or the replay's stage)")
	fset.StringVar(&f.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&f.replay, "replay", "", "Play back a recorded input file")
	fset.StringVar(&f.logLevel, "log-level", "", "Override the configured log level")
	if err := fset.Parse(args); err != nil {
		return f, err
	}
	if f.record != "" && f.replay != "" {
		return f, errors.New("-record and -replay cannot be combined")
	}
	return f, nil
}

// newLoader reads the embedded configs unless a directory is given
func newLoader(configDir string) (*config.Loader, error) {
	if configDir != "" {
		return config.NewLoader(configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// resolveStage picks the stage flag, then the replay's stage, then the default
func resolveStage(flagStage string, data *replay.Data) string {
	if flagStage != "" {
		return flagStage
	}
	if data != nil && data.Stage != "" {
		return data.Stage
	}
	return defaultStage
}

func run(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}

	var replayData *replay.Data
	if f.replay != "" {
		replayData, err = replay.Load(f.replay)
		if err != nil {
			return fmt.Errorf("load replay: %w", err)
		}
	}

	loader, err := newLoader(f.configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll(resolveStage(f.stage, replayData))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Controller.Logging.Level
	if f.logLevel != "" {
		level = f.logLevel
	}
	log := logger.Init(logger.Config{Level: level, Format: cfg.Controller.Logging.Format})

	opts := playing.Options{RecordPath: f.record, Replay: replayData}
	if f.configDir != "" {
		w, err := watch.NewWatcher(config.IsConfigFile, f.configDir, filepath.Join(f.configDir, "stages"))
		if err != nil {
			log.Warn("config watch disabled", "err", err)
		} else {
			defer func() { _ = w.Close() }()
			opts.Loader, opts.Watcher = loader, w
			log.Info("watching configs", "dir", f.configDir)
		}
	}

	stage := system.LoadStage(cfg.Stage)
	display := cfg.Controller.Display

	g := game.New(playing.New(cfg, stage, opts), display.ScreenWidth, display.ScreenHeight)
	g.SetDT(cfg.Controller.DT())
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Glide")
	ebiten.SetTPS(display.Framerate)

	return ebiten.RunGame(g)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.L().Error("game exited", "err", err)
		os.Exit(1)
	}
}
