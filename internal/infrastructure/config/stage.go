package config

// StageConfig is the root config for stage files
type StageConfig struct {
	ID          string                       `json:"id" yaml:"id"`
	Name        string                       `json:"name" yaml:"name"`
	Size        StageSizeConfig              `json:"size" yaml:"size"`
	Background  BackgroundConfig             `json:"background" yaml:"background"`
	PlayerSpawn PositionConfig               `json:"playerSpawn" yaml:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers" yaml:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping" yaml:"tileMapping"`
}

type StageSizeConfig struct {
	Width    int `json:"width" yaml:"width"`
	Height   int `json:"height" yaml:"height"`
	TileSize int `json:"tileSize" yaml:"tileSize"`
}

type BackgroundConfig struct {
	Color  string                `json:"color" yaml:"color"`
	Layers []ParallaxLayerConfig `json:"layers" yaml:"layers"`
}

// ParallaxLayerConfig describes one scrolling background strip, back to front
type ParallaxLayerConfig struct {
	Name     string  `json:"name" yaml:"name"`
	Color    string  `json:"color" yaml:"color"`
	Factor   float64 `json:"factor" yaml:"factor"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	OffsetY  float64 `json:"offsetY" yaml:"offsetY"`
	Vertical bool    `json:"vertical" yaml:"vertical"`
}

type PositionConfig struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision" yaml:"collision"`
}

type TileMappingConfig struct {
	Type  string `json:"type" yaml:"type"`
	Solid bool   `json:"solid" yaml:"solid"`
	Layer string `json:"layer,omitempty" yaml:"layer,omitempty"`
}
