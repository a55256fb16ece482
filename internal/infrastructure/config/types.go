package config

// ControllerConfig is the root config for controller.json / controller.yaml
type ControllerConfig struct {
	Display  DisplayConfig   `json:"display" yaml:"display"`
	Physics  PhysicsSettings `json:"physics" yaml:"physics"`
	Movement MovementConfig  `json:"movement" yaml:"movement"`
	Jump     JumpConfig      `json:"jump" yaml:"jump"`
	Dash     DashConfig      `json:"dash" yaml:"dash"`
	Ground   GroundConfig    `json:"ground" yaml:"ground"`
	Player   PlayerConfig    `json:"player" yaml:"player"`
	Logging  LoggingConfig   `json:"logging" yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity" yaml:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed" yaml:"maxFallSpeed"`
}

type MovementConfig struct {
	Speed            float64 `json:"speed" yaml:"speed"`
	CrouchMultiplier float64 `json:"crouchMultiplier" yaml:"crouchMultiplier"`
}

type JumpConfig struct {
	Impulse    float64 `json:"impulse" yaml:"impulse"`
	CoyoteTime float64 `json:"coyoteTime" yaml:"coyoteTime"`
	JumpBuffer float64 `json:"jumpBuffer" yaml:"jumpBuffer"`
	// ReleaseMultiplier scales upward velocity when the jump is released early.
	// Values outside (0, 1) disable variable jump height.
	ReleaseMultiplier float64 `json:"releaseMultiplier" yaml:"releaseMultiplier"`
}

type DashConfig struct {
	Speed    float64 `json:"speed" yaml:"speed"`
	Duration float64 `json:"duration" yaml:"duration"`
	Cooldown float64 `json:"cooldown" yaml:"cooldown"`
}

type GroundConfig struct {
	WidthFactor float64  `json:"widthFactor" yaml:"widthFactor"`
	Thickness   float64  `json:"thickness" yaml:"thickness"`
	Distance    float64  `json:"distance" yaml:"distance"`
	Layers      []string `json:"layers" yaml:"layers"`
}

type PlayerConfig struct {
	Mass         float64 `json:"mass" yaml:"mass"`
	SpriteWidth  float64 `json:"spriteWidth" yaml:"spriteWidth"`
	SpriteHeight float64 `json:"spriteHeight" yaml:"spriteHeight"`
	Hitbox       Rect    `json:"hitbox" yaml:"hitbox"`
}

type Rect struct {
	OffsetX float64 `json:"offsetX" yaml:"offsetX"`
	OffsetY float64 `json:"offsetY" yaml:"offsetY"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
}

type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Defaults returns a configuration that plays well at 60 FPS on 16px tiles
func Defaults() *ControllerConfig {
	return &ControllerConfig{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        3,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:      800,
			MaxFallSpeed: 400,
		},
		Movement: MovementConfig{
			Speed:            120,
			CrouchMultiplier: 0.5,
		},
		Jump: JumpConfig{
			Impulse:           280,
			CoyoteTime:        0.1,
			JumpBuffer:        0.1,
			ReleaseMultiplier: 0.5,
		},
		Dash: DashConfig{
			Speed:    300,
			Duration: 0.15,
			Cooldown: 0.5,
		},
		Ground: GroundConfig{
			WidthFactor: 0.9,
			Thickness:   0.1,
			Distance:    0.5,
			Layers:      []string{"ground", "platform"},
		},
		Player: PlayerConfig{
			Mass:         1,
			SpriteWidth:  16,
			SpriteHeight: 24,
			Hitbox:       Rect{OffsetX: 2, OffsetY: 4, Width: 12, Height: 20},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
