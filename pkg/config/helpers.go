package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/glorpus-work/doctabs/pkg/errors"
	"github.com/glorpus-work/doctabs/pkg/tabs"
)

// SetValue sets a configuration value by key
// Supported keys:
//   - output_format: string - Output format (text, json, yaml)
//   - color_output: bool - Whether to use colored output
//   - log_level: string - Logging level (debug, info, warn, error)
//   - query_string: string - Default query parameter for the selected tab
//   - class_name: string - Default CSS class of the tab bar
//   - strict: bool - Reject unknown platform identifiers
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "output_format":
		c.Settings.OutputFormat = value
	case "color_output":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", key, value)
		}
		c.Settings.ColorOutput = boolVal
	case "log_level":
		c.Settings.LogLevel = value
	case "query_string":
		c.Settings.QueryString = value
	case "class_name":
		c.Settings.ClassName = value
	case "strict":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", key, value)
		}
		c.Settings.Strict = boolVal
	default:
		return errors.ErrUnknownConfigKeyWithName(key)
	}
	return nil
}

// GetValue returns the value of a settings key as a string.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "output_format":
		return c.Settings.OutputFormat, nil
	case "color_output":
		return strconv.FormatBool(c.Settings.ColorOutput), nil
	case "log_level":
		return c.Settings.LogLevel, nil
	case "query_string":
		return c.Settings.QueryString, nil
	case "class_name":
		return c.Settings.ClassName, nil
	case "strict":
		return strconv.FormatBool(c.Settings.Strict), nil
	default:
		return "", errors.ErrUnknownConfigKeyWithName(key)
	}
}

// ToMap returns the settings keyed by their YAML names.
// This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string)

	settingsValue := reflect.ValueOf(c.Settings)
	settingsType := settingsValue.Type()

	for i := 0; i < settingsValue.NumField(); i++ {
		field := settingsType.Field(i)
		yamlTag := field.Tag.Get("yaml")
		if yamlTag == "" || yamlTag == "-" {
			continue
		}

		// Handle yaml tags with options (e.g., "query_string,omitempty")
		yamlKey := strings.Split(yamlTag, ",")[0]

		fieldValue := settingsValue.Field(i)
		switch fieldValue.Kind() {
		case reflect.Bool:
			result[yamlKey] = strconv.FormatBool(fieldValue.Bool())
		case reflect.String:
			result[yamlKey] = fieldValue.String()
		default:
			result[yamlKey] = fmt.Sprintf("%v", fieldValue.Interface())
		}
	}

	return result
}

// Props converts the page into tab props, taking the query string and class
// name from settings when the page leaves them empty.
func (p *PageConfig) Props(s Settings) tabs.Props {
	props := tabs.Props{
		ActiveOptions: append([]string(nil), p.ActiveOptions...),
		QueryString:   p.QueryString,
		ClassName:     p.ClassName,
		Attrs:         p.Attrs,
	}
	if props.QueryString == "" {
		props.QueryString = s.QueryString
	}
	if props.ClassName == "" {
		props.ClassName = s.ClassName
	}
	return props
}
