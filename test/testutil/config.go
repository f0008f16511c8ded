package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/doctabs/internal/logger"
)

// SampleConfig is a valid configuration with two pages, one of them
// overriding the query string.
const SampleConfig = `version: "1.0"
settings:
  output_format: text
  color_output: false
  log_level: info
  query_string: platform
  class_name: platform-tabs
pages:
  - name: quickstart
    active_options: [react, web, ios]
  - name: wallets
    active_options: [wagmi, viem, ethers]
    query_string: lib
`

// SetupTestConfig writes content to config.yaml in a fresh temporary
// directory and returns its path. An empty content returns a path that does
// not exist yet.
func SetupTestConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if content == "" {
		return configPath
	}

	logger.Debug("Writing test config", logger.Fields{"path": configPath})
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	return configPath
}
