// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

func newTestViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("ARXIV_EXPLORER")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()
	return v
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(newTestViper(t))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arxiv-explorer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`search:
  timeout: 10s
  user_agent: test-agent
  page_size: 50
  page_delay: 1s
server:
  addr: ":8080"
  history_size: 5
`), 0o644))

	v := newTestViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Search.Timeout)
	assert.Equal(t, "test-agent", cfg.Search.UserAgent)
	assert.Equal(t, 50, cfg.Search.PageSize)
	assert.Equal(t, time.Second, cfg.Search.PageDelay)
	assert.Equal(t, types.DefaultBaseURL, cfg.Search.BaseURL)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.Server.HistorySize)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ARXIV_EXPLORER_SEARCH_MAX_RESULTS", "7")
	t.Setenv("ARXIV_EXPLORER_SERVER_ADDR", ":9000")

	cfg, err := loadConfig(newTestViper(t))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Search.MaxResults)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "arxiv-explorer dev\n", buf.String())
}
