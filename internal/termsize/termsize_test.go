package termsize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet_RegularFileIsNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	_, err = Get(f)
	require.ErrorIs(t, err, ErrNotTerminal)

	_, err = Get(nil)
	require.ErrorIs(t, err, ErrNotTerminal)
}

func TestRows_Fallbacks(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	t.Setenv("LINES", "")
	require.Equal(t, DefaultRows-4, Rows(f, 4))

	t.Setenv("LINES", "50")
	require.Equal(t, 47, Rows(f, 3))

	t.Setenv("LINES", "2")
	require.Equal(t, 1, Rows(f, 10))
}
