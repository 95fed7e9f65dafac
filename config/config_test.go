package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Setenv("PLUME_MANUAL_DEL_DIR", "/data/manual")
	t.Setenv("PLUME_COMPRESSOR", "gdal")
	t.Setenv("PLUME_WORKERS", "8")

	c, err := Load(NewViper(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "methane_20230813", c.SourceDir)
	assert.Equal(t, "visions_delivery", c.DestDir)
	assert.Equal(t, "/data/manual", c.ManualDelDir)
	assert.Equal(t, filepath.Join("/data/manual", CATALOG_NAME), c.Catalog)
	assert.Equal(t, COMPRESSOR_GDAL, c.Compressor)
	assert.Equal(t, 8, c.Workers)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.LogDev)
	assert.Empty(t, c.SoftwareVersion)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plume.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
source_dir: /data/src
dest_dir: /data/dst
manual_del_dir: /data/manual
catalog: /data/plumes.json
cog_script: /opt/cog.sh
data_version: "002"
workers: 2
`), 0o644))
	t.Setenv("PLUME_DEST_DIR", "/env/dst")
	t.Setenv("PLUME_LOG_DEV", "true")

	c, err := Load(NewViper(), file, "")
	require.NoError(t, err)
	assert.Equal(t, "/data/src", c.SourceDir)
	assert.Equal(t, "/env/dst", c.DestDir)
	assert.Equal(t, "/data/plumes.json", c.Catalog)
	assert.Equal(t, "/opt/cog.sh", c.CogScript)
	assert.Equal(t, "002", c.DataVersion)
	assert.Equal(t, COMPRESSOR_SHELL, c.Compressor)
	assert.Equal(t, 2, c.Workers)
	assert.True(t, c.LogDev)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "plume.env")
	require.NoError(t, os.WriteFile(envFile, []byte("PLUME_MANUAL_DEL_DIR=/dotenv/manual\nPLUME_COG_SCRIPT=/dotenv/cog.sh\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("PLUME_MANUAL_DEL_DIR")
		os.Unsetenv("PLUME_COG_SCRIPT")
	})

	c, err := Load(NewViper(), "", envFile)
	require.NoError(t, err)
	assert.Equal(t, "/dotenv/manual", c.ManualDelDir)
	assert.Equal(t, "/dotenv/cog.sh", c.CogScript)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(NewViper(), "", filepath.Join(t.TempDir(), "none.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	ok := Config{
		SourceDir:    "src",
		DestDir:      "dst",
		ManualDelDir: "manual",
		CogScript:    "cog.sh",
		Compressor:   COMPRESSOR_SHELL,
		Workers:      1,
	}
	require.NoError(t, ok.Validate())

	c := ok
	c.ManualDelDir = ""
	assert.True(t, errors.Is(c.Validate(), ErrMissingSetting))

	c = ok
	c.CogScript = ""
	assert.True(t, errors.Is(c.Validate(), ErrMissingSetting))
	c.Compressor = COMPRESSOR_GDAL
	assert.NoError(t, c.Validate())

	c = ok
	c.Compressor = "zip"
	assert.True(t, errors.Is(c.Validate(), ErrUnknownCompressor))

	c = ok
	c.Workers = 0
	assert.True(t, errors.Is(c.Validate(), ErrBadWorkers))
}
