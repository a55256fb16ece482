package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// controllerFiles are tried in order; the first one present wins
var controllerFiles = []string{"controller.yaml", "controller.yml", "controller.json"}

// GameConfig holds all loaded configurations
type GameConfig struct {
	Controller *ControllerConfig
	Stage      *StageConfig
}

// Loader loads game configuration from JSON or YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadController loads and validates the controller config.
// Missing fields keep their Defaults() values.
func (l *Loader) LoadController() (*ControllerConfig, error) {
	cfg := Defaults()
	name, err := l.decodeFirst(controllerFiles, cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// LoadStage loads a stage file from stages/<name>.json or .yaml
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	candidates := []string{
		"stages/" + name + ".json",
		"stages/" + name + ".yaml",
		"stages/" + name + ".yml",
	}
	if _, err := l.decodeFirst(candidates, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", name, err)
	}
	if cfg.Size.TileSize <= 0 {
		return nil, fmt.Errorf("stage %s: %w: size.tileSize must be > 0", name, ErrInvalidConfig)
	}
	return &cfg, nil
}

// LoadAll loads the controller config and the named stage
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	controller, err := l.LoadController()
	if err != nil {
		return nil, err
	}

	stageCfg, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Controller: controller,
		Stage:      stageCfg,
	}, nil
}

// IsConfigFile reports whether a path has an extension the loader decodes
func IsConfigFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// decodeFirst decodes the first existing file among names into v
func (l *Loader) decodeFirst(names []string, v any) (string, error) {
	for _, name := range names {
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return name, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := decode(name, data, v); err != nil {
			return name, err
		}
		return name, nil
	}
	return "", fmt.Errorf("none of %s found: %w", strings.Join(names, ", "), fs.ErrNotExist)
}

func decode(name string, data []byte, v any) error {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
	}
	return nil
}
