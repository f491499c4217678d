package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SCANCTL_CONFIG", "")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:1420", cfg.Engine.URL)
	assert.Equal(t, 10*time.Second, cfg.Engine.Timeout)
	assert.Equal(t, 100, cfg.Session.PageSize)
	assert.Equal(t, 8, cfg.Session.WriteParallelism)
	assert.Equal(t, "i32", cfg.Session.ValueType)
	assert.Equal(t, "auto", cfg.UI.Mode)
	assert.Equal(t, "table", cfg.UI.Format)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scanctl.toml")
	content := `
[engine]
url = "http://engine.local:9000"
timeout = "3s"

[session]
page_size = 25
value_type = "u16"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("SCANCTL_CONFIG", path)
	t.Setenv("SCANCTL_SESSION_WRITE_PARALLELISM", "2")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "http://engine.local:9000", cfg.Engine.URL)
	assert.Equal(t, 3*time.Second, cfg.Engine.Timeout)
	assert.Equal(t, 25, cfg.Session.PageSize)
	assert.Equal(t, "u16", cfg.Session.ValueType)
	assert.Equal(t, 2, cfg.Session.WriteParallelism)
}

func TestValidate(t *testing.T) {
	base := Config{
		Engine:  EngineConfig{URL: "http://x"},
		Session: SessionConfig{PageSize: 10, WriteParallelism: 1},
		UI:      UIConfig{Mode: "auto", Format: "table"},
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.Session.PageSize = 0
	require.Error(t, bad.Validate())

	bad = base
	bad.UI.Format = "xml"
	require.Error(t, bad.Validate())

	bad = base
	bad.Engine.URL = ""
	require.Error(t, bad.Validate())
}
