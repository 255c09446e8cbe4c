package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	a.NoError(os.WriteFile(configFile, []byte(`
log:
  level: debug
table:
  startingCash: 250
`), 0644))

	a.NoError(os.Setenv("HOLDEM_CONFIG_FILE", configFile))
	a.NoError(os.Setenv("HOLDEM_TABLE_MAX_PLAYERS", "6"))
	defer func() {
		_ = os.Unsetenv("HOLDEM_CONFIG_FILE")
		_ = os.Unsetenv("HOLDEM_TABLE_MAX_PLAYERS")
	}()

	a.NoError(Load())

	c := Instance()
	a.Equal("debug", c.Log.Level)
	a.Equal(250, c.Table.StartingCash)
	a.Equal(6, c.Table.MaxPlayers, "environment overrides the file")
}

func TestLoad_missingFile(t *testing.T) {
	a := assert.New(t)

	a.NoError(os.Setenv("HOLDEM_CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml")))
	defer func() { _ = os.Unsetenv("HOLDEM_CONFIG_FILE") }()

	a.NoError(Load())
	a.Equal(0, Instance().Table.StartingCash)
}
