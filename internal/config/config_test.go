package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"wristlist/internal/config"
	"wristlist/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

const (
	validYAML = `
display:
  shape: round
  width: 40
menu:
  row_height: 2
dialog:
  frame_interval_ms: 40
storage:
  backend: sqlite
  path: /tmp/wristlist-test.db
checklist:
  max_items: 10
theme:
  highlight_background: "#0000AA"
logging:
  debug: true
`
	invalidSyntaxYAML = `
display:
  shape: "round
 menu: [
`
	invalidShapeYAML = `
display:
  shape: hexagon
`
	invalidBackendYAML = `
storage:
  backend: postgres
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)

		assert.Equal(t, config.ShapeRound, cfg.Display.Shape)
		assert.True(t, cfg.IsRound())
		assert.Equal(t, 40, cfg.Display.Width)
		assert.Equal(t, 2, cfg.Menu.RowHeight)
		assert.Equal(t, 40*time.Millisecond, cfg.FrameInterval())
		assert.Equal(t, config.BackendSQLite, cfg.Storage.Backend)
		assert.Equal(t, "/tmp/wristlist-test.db", cfg.Storage.Path)
		assert.Equal(t, 10, cfg.Checklist.MaxItems)
		assert.Equal(t, "#0000AA", cfg.Theme.HighlightBackground)
		assert.True(t, cfg.Logging.Debug)

		// Unset fields keep their defaults
		assert.Equal(t, 21, cfg.Display.Height)
		assert.Equal(t, 3, cfg.Menu.BoxSize)
		assert.Equal(t, 64, cfg.Checklist.MaxNameLength)
		assert.Equal(t, "#FFFF00", cfg.Theme.Background)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.ShapeRect, cfg.Display.Shape)
		assert.Equal(t, config.BackendSQLite, cfg.Storage.Backend, "the CLI and the watch face share one list")
		assert.NotEmpty(t, cfg.Storage.Path)
		assert.Equal(t, 13*time.Millisecond, cfg.FrameInterval())
		assert.Equal(t, 30, cfg.Checklist.MaxItems)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidSyntaxYAML))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing config file")
	})

	t.Run("invalid shape", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidShapeYAML))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
		assert.Contains(t, err.Error(), "display.shape")
	})

	t.Run("invalid backend", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidBackendYAML))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.backend")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		param  string
	}{
		{"zero row height", func(c *config.Config) { c.Menu.RowHeight = 0 }, "menu.row_height"},
		{"narrow display", func(c *config.Config) { c.Display.Width = 8 }, "display.width"},
		{"short display", func(c *config.Config) { c.Display.Height = 3 }, "display.height"},
		{"oversized checkbox", func(c *config.Config) { c.Menu.BoxSize = 20 }, "menu.box_size"},
		{"zero frame interval", func(c *config.Config) { c.Dialog.FrameIntervalMS = -1 }, "dialog.frame_interval_ms"},
		{"sqlite without path", func(c *config.Config) {
			c.Storage.Backend = config.BackendSQLite
			c.Storage.Path = ""
		}, "storage.path"},
		{"no capacity", func(c *config.Config) { c.Checklist.MaxItems = 0 }, "checklist.max_items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)

			var configErr *errors.ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tt.param, configErr.Param())
		})
	}

	assert.NoError(t, config.New().Validate())

	var nilCfg *config.Config
	assert.Error(t, nilCfg.Validate())
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.New()
	cfg.Display.Shape = config.ShapeRound
	cfg.Checklist.MaxItems = 12
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.ShapeRound, loaded.Display.Shape)
	assert.Equal(t, 12, loaded.Checklist.MaxItems)
}
