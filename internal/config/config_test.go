package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "livetv-sync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	require.Equal(t, "livetv.m3u8", cfg.Playlist.Path)
	require.Equal(t, "https://tvpass.org/epg.xml", cfg.Playlist.EPGURL)
	require.Equal(t, "https://thetvapp.to/tv", cfg.DirectoryURL())
	require.Equal(t, "ol.list-group a", cfg.Directory.AnchorSelector)
	require.Equal(t, uint(1), cfg.Directory.LoadAttempts)
	require.Equal(t, "firefox", cfg.Browser.Name)
	require.True(t, cfg.Browser.Headless)
	require.Equal(t, 5*time.Second, cfg.Browser.ClickTimeout)
	require.Equal(t, 4*time.Second, cfg.Browser.SettleDelay)
	require.True(t, cfg.Playlist.ResetCategories)
}

func TestDirectoryURL_TrimsTrailingSlash(t *testing.T) {
	cfg := Default()
	cfg.Directory.BaseURL = "https://tv.example.com/"
	cfg.Directory.Path = "/channels"

	require.Equal(t, "https://tv.example.com/channels", cfg.DirectoryURL())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
playlist:
  path: /srv/iptv/livetv.m3u8
  reset_categories: false
directory:
  base_url: https://tv.example.com
  load_attempts: 3
browser:
  name: chromium
  headless: false
  click_timeout: 2s
  settle_delay: 1500ms
log:
  level: debug
  file: /var/log/livetv-sync.log
metrics:
  textfile: /var/lib/node_exporter/livetv.prom
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "/srv/iptv/livetv.m3u8", cfg.Playlist.Path)
	require.False(t, cfg.Playlist.ResetCategories)
	require.Equal(t, "https://tv.example.com/tv", cfg.DirectoryURL())
	require.Equal(t, uint(3), cfg.Directory.LoadAttempts)
	require.Equal(t, "chromium", cfg.Browser.Name)
	require.False(t, cfg.Browser.Headless)
	require.Equal(t, 2*time.Second, cfg.Browser.ClickTimeout)
	require.Equal(t, 1500*time.Millisecond, cfg.Browser.SettleDelay)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/var/lib/node_exporter/livetv.prom", cfg.Metrics.Textfile)
	// untouched defaults survive
	require.Equal(t, "https://tvpass.org/epg.xml", cfg.Playlist.EPGURL)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadFromFile(writeConfig(t, "browser: [not a map"))
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("PLAYLIST_PATH", "/tmp/custom.m3u8")
	t.Setenv("BASE_URL", "https://mirror.example.com")
	t.Setenv("DIRECTORY_PATH", "/live")
	t.Setenv("CLICK_TIMEOUT", "3s")
	t.Setenv("SETTLE_DELAY", "0s")
	t.Setenv("HEADLESS", "false")
	t.Setenv("BROWSER", "WebKit")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("RESET_CATEGORIES", "false")
	t.Setenv("DIRECTORY_LOAD_ATTEMPTS", "2")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.m3u8", cfg.Playlist.Path)
	require.Equal(t, "https://mirror.example.com/live", cfg.DirectoryURL())
	require.Equal(t, 3*time.Second, cfg.Browser.ClickTimeout)
	require.Equal(t, time.Duration(0), cfg.Browser.SettleDelay)
	require.False(t, cfg.Browser.Headless)
	require.Equal(t, "webkit", cfg.Browser.Name)
	require.Equal(t, "warn", cfg.Log.Level)
	require.False(t, cfg.Playlist.ResetCategories)
	require.Equal(t, uint(2), cfg.Directory.LoadAttempts)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, "playlist:\n  path: from-file.m3u8\n")
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PLAYLIST_PATH", "from-env.m3u8")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-env.m3u8", cfg.Playlist.Path)
}

func TestLoad_InvalidEnv(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad duration", "CLICK_TIMEOUT", "soon"},
		{"bad bool", "HEADLESS", "maybe"},
		{"bad attempts", "DIRECTORY_LOAD_ATTEMPTS", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
			t.Setenv(tt.key, tt.val)

			cfg, err := Load()
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty playlist path", func(c *Config) { c.Playlist.Path = "" }},
		{"invalid base url", func(c *Config) { c.Directory.BaseURL = "not a url" }},
		{"relative directory path", func(c *Config) { c.Directory.Path = "tv" }},
		{"zero load attempts", func(c *Config) { c.Directory.LoadAttempts = 0 }},
		{"unknown browser", func(c *Config) { c.Browser.Name = "lynx" }},
		{"zero click timeout", func(c *Config) { c.Browser.ClickTimeout = 0 }},
		{"negative settle delay", func(c *Config) { c.Browser.SettleDelay = -time.Second }},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), "configuration validation failed")
		})
	}
}
