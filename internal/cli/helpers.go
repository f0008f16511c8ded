package cli

import (
	"fmt"
	"strings"

	"github.com/glorpus-work/doctabs/internal/logger"
	"github.com/glorpus-work/doctabs/pkg/config"
	"github.com/glorpus-work/doctabs/pkg/errors"
	"github.com/glorpus-work/doctabs/pkg/platform"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	NoColor      *bool
	OutputFormat *string
)

// loadConfig loads the configuration with the global flag overrides applied
// to its settings and initializes the logger from the result.
func loadConfig() (*config.Config, error) {
	cfg, settings, err := readConfig()
	if err != nil {
		return nil, err
	}
	cfg.Settings = settings
	return cfg, nil
}

// loadConfigForUpdate loads the configuration as stored on disk, for commands
// that save it back. Flag overrides only reach the logger.
func loadConfigForUpdate() (*config.Config, error) {
	cfg, _, err := readConfig()
	return cfg, err
}

// readConfig returns the stored configuration together with a copy of its
// settings that has the global flags applied.
func readConfig() (*config.Config, config.Settings, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, config.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}

	settings := cfg.Settings
	if OutputFormat != nil && *OutputFormat != "" {
		if !config.ValidOutputFormat(*OutputFormat) {
			return nil, config.Settings{}, errors.ErrInvalidOutputFormatWithDetails(*OutputFormat)
		}
		settings.OutputFormat = *OutputFormat
	}
	if NoColor != nil && *NoColor {
		settings.ColorOutput = false
	}
	if Verbose != nil && *Verbose {
		settings.LogLevel = "debug"
	}

	logFormat := logger.FormatText
	if settings.OutputFormat == "json" {
		logFormat = logger.FormatJSON
	}
	logger.InitLogger(settings.LogLevel, logFormat)
	logger.DebugfWithFields(logger.Fields{"pages": len(cfg.Pages)}, "Loaded configuration from %s", getConfigPath())

	return cfg, settings, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		// An empty path makes LoadConfig/SaveConfig fail with a descriptive error
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}

// collectIdentifiers merges positional arguments and the --active flag into
// one identifier list. Each argument may itself be a comma separated list.
func collectIdentifiers(args []string, active string) []string {
	var ids []string
	for _, arg := range args {
		ids = append(ids, platform.ParseList(arg)...)
	}
	return append(ids, platform.ParseList(active)...)
}

// checkIdentifiers rejects unknown identifiers in strict mode and logs them otherwise.
func checkIdentifiers(ids []string, strict bool) error {
	if strict {
		return platform.Check(ids)
	}
	for _, id := range platform.Unknown(ids) {
		logger.Warn("Ignoring unknown platform", logger.Fields{"platform": platform.Describe(id)})
	}
	return nil
}

// checkCurrent reports a --current value that names no platform at all.
// The tab set then falls back to its first tab.
func checkCurrent(current string, strict bool) error {
	if current == "" {
		return nil
	}
	if opt, ok := platform.Lookup(current); ok {
		logger.Debug("Current platform", logger.Fields{"platform": opt.String()})
		return nil
	}
	if strict {
		return platform.Check([]string{current})
	}
	logger.Warn("Unknown current platform, selecting the first tab", logger.Fields{"platform": platform.Describe(current)})
	return nil
}

// parseAttrs turns repeated key=value flags into a map.
func parseAttrs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	attrs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Wrapf(errors.ErrInvalidAttr, "%q", pair)
		}
		attrs[key] = value
	}
	return attrs, nil
}
