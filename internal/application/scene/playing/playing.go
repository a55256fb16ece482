// Package playing provides the main gameplay scene.
package playing

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/glide/internal/application/replay"
	"github.com/younwookim/glide/internal/application/scene"
	"github.com/younwookim/glide/internal/application/state"
	"github.com/younwookim/glide/internal/application/system"
	"github.com/younwookim/glide/internal/domain/character"
	"github.com/younwookim/glide/internal/domain/entity"
	"github.com/younwookim/glide/internal/domain/parallax"
	"github.com/younwookim/glide/internal/domain/tick"
	"github.com/younwookim/glide/internal/infrastructure/config"
	"github.com/younwookim/glide/internal/infrastructure/logger"
	"github.com/younwookim/glide/internal/infrastructure/spatial"
	"github.com/younwookim/glide/internal/infrastructure/watch"
)

// maxRecentIntents is how many intent names the HUD keeps
const maxRecentIntents = 6

// Options configures optional scene features
type Options struct {
	// RecordPath enables input recording; F5 or leaving the scene saves it
	RecordPath string
	// Replay plays recorded input instead of reading the keyboard
	Replay *replay.Data
	// Loader and Watcher enable hot reload of the controller config
	Loader  *config.Loader
	Watcher *watch.Watcher
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	stage    *entity.Stage
	state    state.GameState
	player   *character.Player
	clock    *tick.Fixed
	input    *system.InputSystem
	replayer *replay.Replayer
	chars    *system.CharacterSystem
	physics  *system.PhysicsSystem
	space    *spatial.Space
	bg       *parallax.Background
	bgStyle  []layerStyle
	screenW  int
	screenH  int
	tileSize int
	log      *slog.Logger

	showProbe bool
	recent    []string

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	// Hot reload
	loader  *config.Loader
	watcher *watch.Watcher
}

// New creates a new Playing scene
func New(cfg *config.GameConfig, stage *entity.Stage, opts Options) *Playing {
	ctrl := cfg.Controller
	player := character.NewPlayer(stage.SpawnX, stage.SpawnY, hitboxFromConfig(ctrl.Player.Hitbox),
		ctrl.Player.SpriteWidth, ctrl.Player.Mass, system.DashSettings(ctrl))

	p := &Playing{
		config:         cfg,
		stage:          stage,
		state:          state.StatePlaying,
		player:         player,
		clock:          tick.NewFixed(ctrl.DT()),
		input:          system.NewInputSystem(),
		physics:        system.NewPhysicsSystem(ctrl, stage),
		space:          spatial.NewSpaceFromStage(stage),
		screenW:        ctrl.Display.ScreenWidth,
		screenH:        ctrl.Display.ScreenHeight,
		tileSize:       stage.TileSize,
		log:            logger.L().With("scene", "playing"),
		recordFilename: opts.RecordPath,
		loader:         opts.Loader,
		watcher:        opts.Watcher,
	}
	p.bg, p.bgStyle = backgroundFromConfig(cfg.Stage)

	var source system.IntentSource = p.input
	var events system.DashEvents = p.input
	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		source, events = p.replayer, p.replayer
		if opts.Replay.DT > 0 {
			p.clock = tick.NewFixed(opts.Replay.DT)
		}
		p.log.Info("replay loaded", "frames", p.replayer.TotalFrames(), "stage", opts.Replay.Stage)
	}
	p.chars = system.NewCharacterSystem(ctrl, player, p.space, p.clock, source, events)

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(stageName(cfg.Stage), p.clock.Delta(), events)
		p.log.Info("recording enabled", "path", opts.RecordPath)
	}

	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.reloadConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = p.state.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		p.showProbe = !p.showProbe
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.respawn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		return nil, scene.ErrQuit
	}

	if p.state == state.StatePlaying {
		p.Step()
	}
	return nil, nil // nil = stay on this scene
}

// Step runs one simulation tick: sample input, run the controller, commit physics
func (p *Playing) Step() {
	if p.replayer != nil && !p.replayer.Next() {
		p.endReplay()
	}
	if p.replayer == nil {
		p.input.Poll()
	}

	if p.recorder != nil {
		intent, _ := p.source().Intent()
		p.recorder.RecordFrame(intent)
	}

	for _, in := range p.chars.Tick() {
		p.logIntent(in)
	}

	p.physics.Update(&p.player.Body, p.clock.Delta())

	if p.physics.TouchesHazard(&p.player.Body) {
		p.log.Info("hazard touched, respawning", "x", p.player.X, "y", p.player.Y)
		p.respawn()
	}

	p.clock.Advance()
}

// endReplay hands control back to the keyboard
func (p *Playing) endReplay() {
	p.log.Info("replay finished", "frames", p.replayer.TotalFrames())
	p.replayer = nil
	p.chars.Close()
	p.chars = system.NewCharacterSystem(p.config.Controller, p.player, p.space, p.clock, p.input, p.input)
}

func (p *Playing) source() system.IntentSource {
	if p.replayer != nil {
		return p.replayer
	}
	return p.input
}

// Replaying reports whether recorded input is driving the character
func (p *Playing) Replaying() bool {
	return p.replayer != nil
}

func (p *Playing) logIntent(in system.Intent) {
	name := system.IntentName(in)
	p.recent = append(p.recent, name)
	if len(p.recent) > maxRecentIntents {
		p.recent = p.recent[len(p.recent)-maxRecentIntents:]
	}

	attrs := []any{"t", p.clock.Now(), "x", p.player.X, "y", p.player.Y}
	switch v := in.(type) {
	case system.JumpIntent:
		attrs = append(attrs, "impulse", v.Impulse)
	case system.DashIntent:
		attrs = append(attrs, "dir", v.Direction)
	}
	p.log.Debug(name, attrs...)
}

func (p *Playing) respawn() {
	p.player.Respawn(p.stage.SpawnX, p.stage.SpawnY)
}

// reloadConfig applies controller config changes reported by the watcher.
// A file that fails to load or validate leaves the running config untouched.
func (p *Playing) reloadConfig() {
	if p.watcher == nil || p.loader == nil {
		return
	}

	changed := false
	for _, name := range p.watcher.Drain() {
		if strings.HasPrefix(filepath.Base(name), "controller.") {
			changed = true
		}
	}
	if !changed {
		return
	}

	cfg, err := p.loader.LoadController()
	if err != nil {
		p.log.Error("config reload failed, keeping current config", "err", err)
		return
	}
	p.ApplyConfig(cfg)
	p.log.Info("config reloaded", "dir", p.loader.BasePath())
}

// ApplyConfig swaps the controller config. Display settings only apply on restart.
func (p *Playing) ApplyConfig(cfg *config.ControllerConfig) {
	p.config.Controller = cfg
	p.chars.SetConfig(cfg)
	p.physics.SetConfig(cfg)
	logger.SetLevel(cfg.Logging.Level)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Error("failed to save recording", "err", err)
		return
	}
	p.log.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.Info("entered", "stage", stageName(p.config.Stage), "spawnX", p.stage.SpawnX, "spawnY", p.stage.SpawnY)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
	p.chars.Close()
}

// State returns whether the scene is running or paused
func (p *Playing) State() state.GameState {
	return p.state
}

// Player returns the controlled character
func (p *Playing) Player() *character.Player {
	return p.player
}

func hitboxFromConfig(r config.Rect) entity.HitboxRect {
	return entity.HitboxRect{OffsetX: r.OffsetX, OffsetY: r.OffsetY, Width: r.Width, Height: r.Height}
}

func stageName(cfg *config.StageConfig) string {
	if cfg == nil {
		return ""
	}
	if cfg.ID != "" {
		return cfg.ID
	}
	return cfg.Name
}
