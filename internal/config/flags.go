package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagAssets   = flag.String("assets", "", "Resource root directory")
	flagRegistry = flag.String("registry", "", "Block registry JSON path")
	flagAtlas    = flag.String("atlas", "", "Atlas index JSON path")
	flagOut      = flag.String("out", "", "Cooked model output path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via the
// -config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagAssets != "" {
		cfg.Assets.Dir = *flagAssets
	}
	if *flagRegistry != "" {
		cfg.Assets.Registry = *flagRegistry
	}
	if *flagAtlas != "" {
		cfg.Atlas.Index = *flagAtlas
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
}
