package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFile(t *testing.T) {
	v, err := Load(t.TempDir(), "missing", "IDGENTEST")
	require.NoError(t, err)
	assert.Empty(t, v.ConfigFileUsed())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	body := []byte("nanoid:\n  size: 12\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "idgen.yaml"), body, 0o600))

	t.Setenv("IDGENTEST_LOG_LEVEL", "error")

	v, err := Load(dir, "idgen", "IDGENTEST")
	require.NoError(t, err)
	assert.Equal(t, 12, v.GetInt("nanoid.size"))
	assert.Equal(t, "error", v.GetString("log.level"))
}

func TestLoadBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "idgen.yaml"), []byte("nanoid: [\n"), 0o600))

	_, err := Load(dir, "idgen", "IDGENTEST")
	assert.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("IDGENTEST_DIR", "/etc/idgen")
	assert.Equal(t, "/etc/idgen", GetEnv("IDGENTEST_DIR", "./config"))
	assert.Equal(t, "./config", GetEnv("IDGENTEST_UNSET", "./config"))
}
