package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	require.Equal(t, "512 B", formatSize(512))
	require.Equal(t, "1.5 KB", formatSize(1536))
	require.Equal(t, "2.0 MB", formatSize(2<<20))
}

func TestParseID(t *testing.T) {
	id, ok := parseID([]string{"42"})
	require.True(t, ok)
	require.Equal(t, int64(42), id)

	_, ok = parseID(nil)
	require.False(t, ok)

	_, ok = parseID([]string{"abc"})
	require.False(t, ok)

	_, ok = parseID([]string{"-1"})
	require.False(t, ok)
}

func TestSplitCommand(t *testing.T) {
	cmd, args := splitCommand("delete 7")
	require.Equal(t, "delete", cmd)
	require.Equal(t, []string{"7"}, args)

	cmd, args = splitCommand("   ")
	require.Empty(t, cmd)
	require.Nil(t, args)
}
