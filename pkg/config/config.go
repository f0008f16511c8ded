// Package config provides configuration management for doctabs.
// It loads, validates and saves the YAML file that holds output settings,
// tab defaults and the list of documentation pages with their platform
// selections.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/doctabs/pkg/errors"
	"github.com/glorpus-work/doctabs/pkg/fsutil"
	"github.com/glorpus-work/doctabs/pkg/platform"
	"github.com/glorpus-work/doctabs/pkg/tabs"
	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Version of the configuration schema
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// General settings
	Settings Settings `yaml:"settings" json:"settings"`

	// Documentation pages and their platform tabs
	Pages []*PageConfig `yaml:"pages,omitempty" json:"pages,omitempty"`
}

// Settings represents general application settings.
type Settings struct {
	// Output settings
	OutputFormat string `yaml:"output_format" json:"output_format"` // text, json, yaml
	ColorOutput  bool   `yaml:"color_output" json:"color_output"`
	LogLevel     string `yaml:"log_level" json:"log_level"` // debug, info, warn, error

	// Tab defaults applied to every page that doesn't override them
	QueryString string `yaml:"query_string" json:"query_string"`
	ClassName   string `yaml:"class_name" json:"class_name"`

	// Strict rejects unknown platform identifiers instead of falling back
	Strict bool `yaml:"strict" json:"strict"`
}

// PageConfig describes the platform tabs of one documentation page.
type PageConfig struct {
	Name          string            `yaml:"name" json:"name"`
	ActiveOptions []string          `yaml:"active_options,omitempty" json:"active_options,omitempty"`
	QueryString   string            `yaml:"query_string,omitempty" json:"query_string,omitempty"`
	ClassName     string            `yaml:"class_name,omitempty" json:"class_name,omitempty"`
	Attrs         map[string]string `yaml:"attrs,omitempty" json:"attrs,omitempty"`
}

// Default configuration values.
const (
	// CurrentVersion is written to new configuration files.
	CurrentVersion = "1.0"

	// SupportedVersions is the constraint a configuration's version must satisfy.
	SupportedVersions = ">= 1.0, < 2.0"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

var supportedVersions = version.MustConstraints(version.NewConstraint(SupportedVersions))

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Settings: Settings{
			OutputFormat: "text",
			ColorOutput:  true,
			LogLevel:     "info",
			QueryString:  tabs.DefaultQueryString,
			ClassName:    tabs.DefaultClassName,
		},
		Pages: []*PageConfig{},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	// Keys missing from the document keep their default values.
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrConfigValidation, err)
	}

	return config, nil
}

// SaveConfig saves configuration to a file.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := fsutil.EnsureFileDir(absPath); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	// Atomically replace the config file
	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigMarshal, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if err := validateVersion(c.Version); err != nil {
		return err
	}
	if err := validateSettings(c.Settings); err != nil {
		return err
	}
	return validatePages(c.Pages, c.Settings.Strict)
}

func validateVersion(v string) error {
	if v == "" {
		return nil
	}
	parsed, err := version.NewVersion(v)
	if err != nil || !supportedVersions.Check(parsed) {
		return errors.ErrUnsupportedConfigVersionWithDetails(v, SupportedVersions)
	}
	return nil
}

func validateSettings(s Settings) error {
	if !ValidOutputFormat(s.OutputFormat) {
		return errors.ErrInvalidOutputFormatWithDetails(s.OutputFormat)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.LogLevel)] {
		return errors.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}
	return nil
}

func validatePages(pages []*PageConfig, strict bool) error {
	names := make(map[string]bool)
	for i, page := range pages {
		if page == nil || page.Name == "" {
			return errors.ErrEmptyPageNameWithIndex(i)
		}
		if names[page.Name] {
			return errors.ErrPageExistsWithName(page.Name)
		}
		names[page.Name] = true

		if strict {
			if err := platform.Check(page.ActiveOptions); err != nil {
				return errors.Wrapf(err, "page %s", page.Name)
			}
		}
	}
	return nil
}

// ValidOutputFormat reports whether format is one the CLI can print.
func ValidOutputFormat(format string) bool {
	switch format {
	case "text", "json", "yaml":
		return true
	default:
		return false
	}
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := fsutil.GetConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Page gets a page configuration by name.
func (c *Config) Page(name string) (*PageConfig, error) {
	for _, page := range c.Pages {
		if page.Name == name {
			return page, nil
		}
	}
	return nil, errors.ErrPageNotFoundWithName(name)
}

// AddPage adds a page to the configuration.
// Returns an error if a page with the same name already exists.
func (c *Config) AddPage(page *PageConfig) error {
	if page == nil || page.Name == "" {
		return errors.ErrEmptyPageName
	}
	for _, existing := range c.Pages {
		if existing.Name == page.Name {
			return errors.ErrPageExistsWithName(page.Name)
		}
	}
	if c.Settings.Strict {
		if err := platform.Check(page.ActiveOptions); err != nil {
			return errors.Wrapf(err, "page %s", page.Name)
		}
	}

	c.Pages = append(c.Pages, page)
	return nil
}

// RemovePage removes a page from the configuration.
func (c *Config) RemovePage(name string) bool {
	for i, page := range c.Pages {
		if page.Name == name {
			c.Pages = append(c.Pages[:i], c.Pages[i+1:]...)
			return true
		}
	}
	return false
}

// applyDefaults fills in values that were explicitly left empty.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
	if c.Settings.QueryString == "" {
		c.Settings.QueryString = defaults.Settings.QueryString
	}
	if c.Settings.ClassName == "" {
		c.Settings.ClassName = defaults.Settings.ClassName
	}

	for _, page := range c.Pages {
		if page == nil {
			continue
		}
		for i, id := range page.ActiveOptions {
			page.ActiveOptions[i] = strings.ToLower(strings.TrimSpace(id))
		}
	}
}
