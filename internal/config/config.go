// Package config handles baking tool configuration loading and
// management.
package config

// Config holds all baking tool settings.
type Config struct {
	Assets  AssetsConfig  `yaml:"assets"`
	Atlas   AtlasConfig   `yaml:"atlas"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// AssetsConfig holds resource input paths.
type AssetsConfig struct {
	// Dir is the resource root containing models/ and blockstates/.
	Dir string `yaml:"dir"`
	// Registry is the block registry JSON path.
	Registry string `yaml:"registry"`
}

// AtlasConfig holds texture atlas settings.
type AtlasConfig struct {
	// Index is the atlas index JSON path mapping texture names to
	// pixel rectangles.
	Index string `yaml:"index"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	// Path is where the packed cooked-model binary is written.
	// Empty disables export.
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Dir:      "assets",
			Registry: "blocks.json",
		},
		Atlas: AtlasConfig{
			Index: "atlas_index.json",
		},
		Output: OutputConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
