package config

import (
	"testing"

	"github.com/glorpus-work/doctabs/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetValue(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"output_format", "yaml"},
		{"color_output", "false"},
		{"log_level", "debug"},
		{"query_string", "sdk"},
		{"class_name", "sdk-tabs"},
		{"strict", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := DefaultConfig()
			require.NoError(t, cfg.SetValue(tt.key, tt.value))

			got, err := cfg.GetValue(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestSetValue_Errors(t *testing.T) {
	cfg := DefaultConfig()

	assert.ErrorIs(t, cfg.SetValue("cache_dir", "/tmp"), errors.ErrUnknownConfigKey)
	assert.Error(t, cfg.SetValue("strict", "maybe"))
	assert.Error(t, cfg.SetValue("color_output", "sometimes"))

	_, err := cfg.GetValue("cache_dir")
	assert.ErrorIs(t, err, errors.ErrUnknownConfigKey)
}

func TestToMap(t *testing.T) {
	m := DefaultConfig().ToMap()

	assert.Equal(t, map[string]string{
		"output_format": "text",
		"color_output":  "true",
		"log_level":     "info",
		"query_string":  "platform",
		"class_name":    "platform-tabs",
		"strict":        "false",
	}, m)
}

func TestPageConfigProps(t *testing.T) {
	settings := DefaultConfig().Settings

	page := &PageConfig{Name: "wallets", ActiveOptions: []string{"wagmi"}}
	props := page.Props(settings)
	assert.Equal(t, []string{"wagmi"}, props.ActiveOptions)
	assert.Equal(t, "platform", props.QueryString)
	assert.Equal(t, "platform-tabs", props.ClassName)

	page = &PageConfig{Name: "wallets", QueryString: "lib", ClassName: "lib-tabs", Attrs: map[string]string{"id": "w"}}
	props = page.Props(settings)
	assert.Equal(t, "lib", props.QueryString)
	assert.Equal(t, "lib-tabs", props.ClassName)
	assert.Equal(t, map[string]string{"id": "w"}, props.Attrs)
	assert.Nil(t, props.ActiveOptions)
}
