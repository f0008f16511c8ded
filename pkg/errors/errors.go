// Package errors defines the sentinel errors shared across doctabs together
// with helpers for adding context to them.
package errors

import (
	"fmt"
	"strings"
)

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath          = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath        = fmt.Errorf("invalid config file path")
	ErrConfigParse              = fmt.Errorf("failed to parse config")
	ErrConfigValidation         = fmt.Errorf("invalid configuration")
	ErrConfigEncode             = fmt.Errorf("failed to encode config")
	ErrConfigMarshal            = fmt.Errorf("failed to marshal config to YAML")
	ErrConfigDirectory          = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate         = fmt.Errorf("failed to create config file")
	ErrConfigFileRename         = fmt.Errorf("failed to rename temporary config file")
	ErrConfigFileExists         = fmt.Errorf("configuration file already exists")
	ErrUnsupportedConfigVersion = fmt.Errorf("unsupported config version")
	ErrUnknownConfigKey         = fmt.Errorf("unknown configuration key")
	ErrInvalidOutputFormat      = fmt.Errorf("invalid output format")
	ErrInvalidLogLevel          = fmt.Errorf("invalid log level")

	// Page errors.
	ErrEmptyPageName = fmt.Errorf("page name cannot be empty")
	ErrPageNotFound  = fmt.Errorf("page not found")
	ErrPageExists    = fmt.Errorf("page already exists")

	// Platform errors.
	ErrUnknownPlatform = fmt.Errorf("unknown platform")

	// Tab errors.
	ErrNoRenderer  = fmt.Errorf("no tab renderer configured")
	ErrRender      = fmt.Errorf("failed to render tabs")
	ErrInvalidAttr = fmt.Errorf("invalid attribute, expected key=value")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ErrUnknownPlatformWithDetails names the offending identifiers.
func ErrUnknownPlatformWithDetails(details []string) error {
	return fmt.Errorf("%w: %s", ErrUnknownPlatform, strings.Join(details, ", "))
}

// ErrUnsupportedConfigVersionWithDetails names the version and the accepted constraint.
func ErrUnsupportedConfigVersionWithDetails(version, constraint string) error {
	return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedConfigVersion, version, constraint)
}

// ErrInvalidOutputFormatWithDetails names the rejected format.
func ErrInvalidOutputFormatWithDetails(format string) error {
	return fmt.Errorf("%w: %q (valid: text, json, yaml)", ErrInvalidOutputFormat, format)
}

// ErrInvalidLogLevelWithDetails names the rejected level.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: %q (valid: debug, info, warn, error)", ErrInvalidLogLevel, level)
}

// ErrEmptyPageNameWithIndex reports the position of an unnamed page.
func ErrEmptyPageNameWithIndex(index int) error {
	return fmt.Errorf("%w at index %d", ErrEmptyPageName, index)
}

// ErrPageNotFoundWithName names the missing page.
func ErrPageNotFoundWithName(name string) error {
	return fmt.Errorf("%w: %s", ErrPageNotFound, name)
}

// ErrPageExistsWithName names the duplicated page.
func ErrPageExistsWithName(name string) error {
	return fmt.Errorf("%w: %s", ErrPageExists, name)
}

// ErrUnknownConfigKeyWithName names the rejected key.
func ErrUnknownConfigKeyWithName(key string) error {
	return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
}
