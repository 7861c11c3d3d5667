// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Controls ControlsConfig `yaml:"controls"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// ControlsConfig holds input tuning settings.
type ControlsConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	InvertY          bool    `yaml:"invert_y"`
}

// AssetsConfig holds asset file locations.
type AssetsConfig struct {
	Dir          string   `yaml:"dir"`           // Base directory for all assets
	FloorTexture string   `yaml:"floor_texture"` // Relative to Dir
	SkyTexture   string   `yaml:"sky_texture"`
	WallTexture  string   `yaml:"wall_texture"`
	NoteTextures []string `yaml:"note_textures"`
	TreeModel    string   `yaml:"tree_model"`
	AmbientTrack string   `yaml:"ambient_track"`
	FootstepSFX  string   `yaml:"footstep_sfx"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float64 `yaml:"master_volume"`
	Muted        bool    `yaml:"muted"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    false,
		},
		Controls: ControlsConfig{
			MouseSensitivity: 0.001,
			InvertY:          false,
		},
		Assets: AssetsConfig{
			Dir:          "assets",
			FloorTexture: "textures/floor.jpeg",
			SkyTexture:   "textures/cloud.jpeg",
			WallTexture:  "textures/mountain.jpeg",
			NoteTextures: []string{
				"textures/its.png",
				"textures/not.png",
				"textures/real.png",
			},
			TreeModel:    "objects/tree/tree.obj",
			AmbientTrack: "audio/wind.wav",
			FootstepSFX:  "audio/footstep.wav",
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			Muted:        false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
