package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging and the FPS overlay")
	flagPreset      = flag.String("preset", "", "Wave preset (drift, shimmer, ripple)")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagSpacing     = flag.Float64("spacing", 0, "Grid spacing in pixels")
	flagNoDialog    = flag.Bool("no-dialog", false, "Save exports straight into the export dir")
	flagExportDir   = flag.String("export-dir", "", "Directory for exports")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path given with -config.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the path given with -write-config.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.UI.ShowFPS = true
	}
	if *flagPreset != "" {
		cfg.Wave.Preset = *flagPreset
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagSpacing > 0 {
		cfg.Grid.Spacing = *flagSpacing
	}
	if *flagNoDialog {
		cfg.Export.Dialog = false
	}
	if *flagExportDir != "" {
		cfg.Export.Dir = *flagExportDir
	}
}
