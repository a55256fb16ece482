package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/glide/internal/application/state"
	"github.com/younwookim/glide/internal/domain/entity"
	"github.com/younwookim/glide/internal/domain/ground"
	"github.com/younwookim/glide/internal/domain/parallax"
	"github.com/younwookim/glide/internal/infrastructure/config"
)

var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorWall     = color.RGBA{100, 100, 120, 255}
	colorPlatform = color.RGBA{140, 110, 70, 255}
	colorSpike    = color.RGBA{200, 50, 50, 255}
	colorPlayer   = color.RGBA{80, 180, 255, 255}
	colorDashing  = color.RGBA{255, 255, 255, 255}
	colorProbeOn  = color.RGBA{0, 255, 0, 255}
	colorProbeOff = color.RGBA{255, 200, 0, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 128}
)

// layerStyle is how a parallax layer is painted: a solid strip
type layerStyle struct {
	color   color.Color
	offsetY float64
	height  float64
}

func backgroundFromConfig(cfg *config.StageConfig) (*parallax.Background, []layerStyle) {
	if cfg == nil {
		return parallax.New(), nil
	}
	layers := make([]parallax.Layer, 0, len(cfg.Background.Layers))
	styles := make([]layerStyle, 0, len(cfg.Background.Layers))
	for _, l := range cfg.Background.Layers {
		layers = append(layers, parallax.Layer{
			Name:     l.Name,
			Factor:   l.Factor,
			Width:    l.Width,
			Height:   l.Height,
			Vertical: l.Vertical,
		})
		styles = append(styles, layerStyle{
			color:   parseHexColor(l.Color, colorBG),
			offsetY: l.OffsetY,
			height:  l.Height,
		})
	}
	return parallax.New(layers...), styles
}

// parseHexColor parses "#rrggbb", returning fallback when it can't
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{r, g, b, 255}
}

// camera returns the top-left world position shown on screen, clamped to the stage
func (p *Playing) camera() (camX, camY int) {
	bounds := p.player.Bounds()
	center := bounds.Center()
	camX = int(center.X) - p.screenW/2
	camY = int(center.Y) - p.screenH/2

	maxCamX := p.stage.Width*p.tileSize - p.screenW
	maxCamY := p.stage.Height*p.tileSize - p.screenH
	if camX > maxCamX {
		camX = maxCamX
	}
	if camY > maxCamY {
		camY = maxCamY
	}
	if camX < 0 {
		camX = 0
	}
	if camY < 0 {
		camY = 0
	}
	return camX, camY
}

// Draw renders the game screen (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	bg := colorBG
	if p.config.Stage != nil {
		bg = parseHexColor(p.config.Stage.Background.Color, colorBG)
	}
	screen.Fill(bg)

	camX, camY := p.camera()

	p.drawBackground(screen, camX, camY)
	p.drawTiles(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	if p.showProbe {
		p.drawProbe(screen, camX, camY)
	}

	p.drawHUD(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawBackground(screen *ebiten.Image, camX, camY int) {
	offsets := p.bg.Offsets(entity.Vec2{X: float64(camX), Y: float64(camY)})
	for i, off := range offsets {
		style := p.bgStyle[i]
		layer := p.bg.Layers[i]

		h := style.height
		if h <= 0 {
			h = float64(p.screenH)
		}
		y := style.offsetY - off.Y

		// a strip wider than the screen needs no tiling
		w := layer.Width
		if w <= 0 {
			vector.DrawFilledRect(screen, 0, float32(y), float32(p.screenW), float32(h), style.color, false)
			continue
		}
		// alternate shade per tile so scrolling is visible on flat colours
		for x, n := -off.X, 0; x < float64(p.screenW); x, n = x+w, n+1 {
			c := style.color
			if n%2 == 1 {
				c = shade(style.color)
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
		}
	}
}

func shade(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8 * 9 / 10), uint8(g >> 8 * 9 / 10), uint8(b >> 8 * 9 / 10), uint8(a >> 8)}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	startTileX := camX / p.tileSize
	startTileY := camY / p.tileSize
	endTileX := (camX+p.screenW)/p.tileSize + 1
	endTileY := (camY+p.screenH)/p.tileSize + 1

	for ty := startTileY; ty <= endTileY && ty < p.stage.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < p.stage.Width; tx++ {
			if tx < 0 || ty < 0 {
				continue
			}
			tile := p.stage.GetTile(tx, ty)

			var c color.Color
			switch tile.Type {
			case entity.TileWall:
				c = colorWall
			case entity.TilePlatform:
				c = colorPlatform
			case entity.TileSpike:
				c = colorSpike
			default:
				continue
			}

			x := float32(tx*p.tileSize - camX)
			y := float32(ty*p.tileSize - camY)
			size := float32(p.tileSize)
			if tile.Type == entity.TilePlatform {
				// platforms are drawn as a thin ledge
				size /= 4
				vector.DrawFilledRect(screen, x, y, float32(p.tileSize), size, c, false)
				continue
			}
			vector.DrawFilledRect(screen, x, y, size, size, c, false)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY int) {
	b := p.player.Bounds()
	c := colorPlayer
	if p.player.IsDashing() {
		c = colorDashing
	}
	x := float32(b.Min.X) - float32(camX)
	y := float32(b.Min.Y) - float32(camY)
	vector.DrawFilledRect(screen, x, y, float32(b.Size.X), float32(b.Size.Y), c, false)

	// facing marker
	eyeX := x + float32(b.Size.X) - 4
	if !p.player.FacingRight {
		eyeX = x + 1
	}
	vector.DrawFilledRect(screen, eyeX, y+3, 3, 3, colorBG, false)
}

// drawProbe outlines the swept ground probe, green when it hits
func (p *Playing) drawProbe(screen *ebiten.Image, camX, camY int) {
	probe := p.chars.Probe()
	origin, size := probe.Box(p.player.Bounds())
	swept := ground.Swept(origin, size, ground.Down, probe.Distance)

	c := colorProbeOff
	if p.player.Grounded {
		c = colorProbeOn
	}
	w, h := float32(swept.Size.X), float32(swept.Size.Y)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	vector.StrokeRect(screen, float32(swept.Min.X)-float32(camX), float32(swept.Min.Y)-float32(camY), w, h, 1, c, false)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	now := p.clock.Now()
	m := p.player.Motion
	var sb strings.Builder
	fmt.Fprintf(&sb, "A/D: Move | W: Jump | Space: Dash | F1: Probe | R: Respawn | ESC: Pause\n")
	fmt.Fprintf(&sb, "pos %.1f,%.1f  vel %.1f,%.1f  grounded %t\n", p.player.X, p.player.Y, p.player.VX, p.player.VY, p.player.Grounded)
	fmt.Fprintf(&sb, "coyote %.3f  buffer %.3f\n", m.Coyote, m.Buffer)
	cooldown := p.player.Dash.NextEligible() - now
	if cooldown < 0 {
		cooldown = 0
	}
	fmt.Fprintf(&sb, "dash %s %.2f  ready in %.2f\n", p.player.Dash.Phase(), p.player.Dash.Remaining(now), cooldown)
	if len(p.recent) > 0 {
		fmt.Fprintf(&sb, "intents %s\n", strings.Join(p.recent, " "))
	}
	switch {
	case p.replayer != nil:
		fmt.Fprintf(&sb, "REPLAY %d/%d\n", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	case p.recorder != nil && p.recorder.IsRecording():
		fmt.Fprintf(&sb, "REC %d\n", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrint(screen, sb.String())
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}
