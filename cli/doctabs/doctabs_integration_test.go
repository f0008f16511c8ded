//go:build integration

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/glorpus-work/doctabs/internal/logger"
	"github.com/glorpus-work/doctabs/pkg/config"
	"github.com/glorpus-work/doctabs/pkg/errors"
	"github.com/glorpus-work/doctabs/pkg/platform"
	"github.com/glorpus-work/doctabs/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRoot executes the root command with args and returns its stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var logs bytes.Buffer
	logger.SetTestOutput(&logs)
	t.Cleanup(logger.UnsetTestOutput)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "version")
	require.NoError(t, err, "version command should not return an error")
	assert.Contains(t, out, "doctabs version", "version output should contain 'doctabs version'")
}

func TestHelpCommand(t *testing.T) {
	out, err := runRoot(t, "help")
	require.NoError(t, err, "help command should not return an error")

	for _, sub := range []string{"list", "resolve", "tabs", "page", "config", "version"} {
		assert.Contains(t, out, sub, "help output should list the %s command", sub)
	}
}

func TestPageWorkflow(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, "")

	_, err := runRoot(t, "--config", cfgPath, "config", "init")
	require.NoError(t, err)

	_, err = runRoot(t, "--config", cfgPath, "page", "add", "wallets", "--active", "ethers,wagmi", "--query-string", "lib")
	require.NoError(t, err)

	out, err := runRoot(t, "--config", cfgPath, "-o", "json", "page", "show", "wallets")
	require.NoError(t, err)

	var shown struct {
		QueryString string            `json:"query_string"`
		Values      []platform.Option `json:"values"`
		Active      string            `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "lib", shown.QueryString)
	assert.Equal(t, []string{"wagmi", "ethers"}, platform.Identifiers(shown.Values))
	assert.Equal(t, "wagmi", shown.Active)

	_, err = runRoot(t, "--config", cfgPath, "config", "set", "strict", "true")
	require.NoError(t, err)

	_, err = runRoot(t, "--config", cfgPath, "resolve", "etherz")
	assert.ErrorIs(t, err, errors.ErrUnknownPlatform)

	_, err = runRoot(t, "--config", cfgPath, "page", "remove", "wallets")
	require.NoError(t, err)

	cfg, err := config.LoadConfig(cfgPath)
	require.NoError(t, err)
	assert.Empty(t, cfg.Pages)
	assert.True(t, cfg.Settings.Strict)
}

func TestResolveFallback(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, testutil.SampleConfig)

	out, err := runRoot(t, "--config", cfgPath, "--output", "json", "resolve", "--active", "nonexistent")
	require.NoError(t, err)

	var opts []platform.Option
	require.NoError(t, json.Unmarshal([]byte(out), &opts))
	assert.Equal(t, platform.Catalog(), opts)
}
