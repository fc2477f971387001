package dirs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXDGOverrides(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG variables only apply on linux")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))

	cfg, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "cfg", "ringlet"), cfg)

	rings, err := RingsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "data", "ringlet", "rings"), rings)
}

func TestEnsure(t *testing.T) {
	assert.Error(t, Ensure(""))

	p := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, Ensure(p))
	st, err := os.Stat(p)
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}
