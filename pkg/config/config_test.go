package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glorpus-work/doctabs/pkg/errors"
	"github.com/glorpus-work/doctabs/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, "text", cfg.Settings.OutputFormat)
	assert.Equal(t, "platform", cfg.Settings.QueryString)
	assert.Equal(t, "platform-tabs", cfg.Settings.ClassName)
	assert.True(t, cfg.Settings.ColorOutput)
	assert.False(t, cfg.Settings.Strict)
	assert.Empty(t, cfg.Pages)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configContent := `version: "1.2"
settings:
  log_level: debug
  output_format: json
pages:
  - name: wallets
    active_options: [wagmi, " Viem ", ethers]
    query_string: lib
  - name: mobile
    active_options: [ios, android]
    attrs:
      groupId: mobile`

	err := os.WriteFile(configPath, []byte(configContent), fsutil.FileModeDefault)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.Equal(t, "json", cfg.Settings.OutputFormat)
	// Keys missing from the file keep their defaults.
	assert.True(t, cfg.Settings.ColorOutput)
	assert.Equal(t, "platform", cfg.Settings.QueryString)

	require.Len(t, cfg.Pages, 2)
	assert.Equal(t, "wallets", cfg.Pages[0].Name)
	assert.Equal(t, []string{"wagmi", "viem", "ethers"}, cfg.Pages[0].ActiveOptions)
	assert.Equal(t, "lib", cfg.Pages[0].QueryString)
	assert.Equal(t, map[string]string{"groupId": "mobile"}, cfg.Pages[1].Attrs)
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorIs(t, err, errors.ErrEmptyConfigPath)
}

func TestLoadConfigFromReader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{
			name:    "malformed yaml",
			content: "settings: [",
			target:  errors.ErrConfigParse,
		},
		{
			name:    "unsupported version",
			content: `version: "2.0"`,
			target:  errors.ErrUnsupportedConfigVersion,
		},
		{
			name:    "unparseable version",
			content: `version: "latest"`,
			target:  errors.ErrUnsupportedConfigVersion,
		},
		{
			name:    "bad output format",
			content: "settings:\n  output_format: table",
			target:  errors.ErrInvalidOutputFormat,
		},
		{
			name:    "duplicate page",
			content: "pages:\n  - name: a\n  - name: a",
			target:  errors.ErrPageExists,
		},
		{
			name:    "unnamed page",
			content: "pages:\n  - active_options: [ios]",
			target:  errors.ErrEmptyPageName,
		},
		{
			name:    "strict unknown platform",
			content: "settings:\n  strict: true\npages:\n  - name: a\n    active_options: [iso]",
			target:  errors.ErrUnknownPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFromReader(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestLoadConfigFromReader_UnknownPlatformAllowedWhenNotStrict(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader("pages:\n  - name: a\n    active_options: [iso]"))
	require.NoError(t, err)
	assert.Equal(t, []string{"iso"}, cfg.Pages[0].ActiveOptions)
}

func TestSaveConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.LogLevel = "debug"
	require.NoError(t, cfg.AddPage(&PageConfig{Name: "wallets", ActiveOptions: []string{"wagmi", "viem"}}))

	configPath := filepath.Join(t.TempDir(), "nested", "test-config.yaml")

	err := cfg.SaveConfig(configPath)
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "active_options:")
	assert.NoFileExists(t, configPath+".tmp")

	loadedCfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loadedCfg)
}

func TestSaveConfig_EmptyPath(t *testing.T) {
	assert.ErrorIs(t, DefaultConfig().SaveConfig(""), errors.ErrEmptyConfigPath)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty version accepted",
			mutate:  func(c *Config) { c.Version = "" },
			wantErr: false,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Settings.LogLevel = "trace" },
			wantErr: true,
			errMsg:  "invalid log level",
		},
		{
			name:    "old version",
			mutate:  func(c *Config) { c.Version = "0.9" },
			wantErr: true,
			errMsg:  "unsupported config version",
		},
		{
			name: "strict known platforms",
			mutate: func(c *Config) {
				c.Settings.Strict = true
				c.Pages = []*PageConfig{{Name: "a", ActiveOptions: []string{"ios"}}}
			},
			wantErr: false,
		},
		{
			name: "strict unknown platform",
			mutate: func(c *Config) {
				c.Settings.Strict = true
				c.Pages = []*PageConfig{{Name: "a", ActiveOptions: []string{"andriod"}}}
			},
			wantErr: true,
			errMsg:  "page a: unknown platform: andriod (did you mean android?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}

	var nilConfig *Config
	assert.ErrorIs(t, nilConfig.Validate(), errors.ErrConfigValidation)
}

func TestPages(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.AddPage(&PageConfig{Name: "wallets"}))
	assert.ErrorIs(t, cfg.AddPage(&PageConfig{Name: "wallets"}), errors.ErrPageExists)
	assert.ErrorIs(t, cfg.AddPage(&PageConfig{}), errors.ErrEmptyPageName)

	page, err := cfg.Page("wallets")
	require.NoError(t, err)
	assert.Equal(t, "wallets", page.Name)

	_, err = cfg.Page("missing")
	assert.ErrorIs(t, err, errors.ErrPageNotFound)

	assert.True(t, cfg.RemovePage("wallets"))
	assert.False(t, cfg.RemovePage("wallets"))
	assert.Empty(t, cfg.Pages)

	cfg.Settings.Strict = true
	assert.ErrorIs(t, cfg.AddPage(&PageConfig{Name: "typo", ActiveOptions: []string{"iso"}}), errors.ErrUnknownPlatform)
}

func TestGetDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := GetDefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.Equal(t, fsutil.AppName, filepath.Base(filepath.Dir(path)))
}

func TestToYAML(t *testing.T) {
	data, err := DefaultConfig().ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "query_string: platform")
	assert.Contains(t, string(data), `version: "1.0"`)
}
