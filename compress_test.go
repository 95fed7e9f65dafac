package plumelib

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellCompressor(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "cog.sh")
	require.NoError(t, os.WriteFile(script, []byte("cp \"$1\" \"$2\"\n"), 0o755))
	src := filepath.Join(dir, "in_tmp.tif")
	dst := filepath.Join(dir, "in.tif")
	require.NoError(t, os.WriteFile(src, []byte("raw"), 0o644))

	require.NoError(t, NewShellCompressor(script).Compress(context.Background(), src, dst))
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "raw", string(b))
}

func TestShellCompressorFailure(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "cog.sh")
	require.NoError(t, os.WriteFile(script, []byte("echo boom >&2\nexit 3\n"), 0o755))
	err := NewShellCompressor(script).Compress(context.Background(), "a", "b")
	assert.Error(t, err)
}

func TestCompressorFunc(t *testing.T) {
	var got [2]string
	c := CompressorFunc(func(_ context.Context, src, dst string) error {
		got = [2]string{src, dst}
		return nil
	})
	require.NoError(t, c.Compress(context.Background(), "x_tmp.tif", "x.tif"))
	assert.Equal(t, [2]string{"x_tmp.tif", "x.tif"}, got)
}
