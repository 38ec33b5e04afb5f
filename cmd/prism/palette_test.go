package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/ansi"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

func TestPaletteCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "palette", "--color-system", "truecolor")
	require.NoError(t, err)
	require.Contains(t, stdout, "\x1b[41m")
	require.Contains(t, stdout, "\x1b[48;5;196m")
	require.Contains(t, stdout, "\x1b[48;5;255m")

	plain := strings.Split(strings.TrimSuffix(ansi.Strip(stdout), "\n"), "\n")
	require.Len(t, plain, 2+1+6+1)
	require.Equal(t, "   0   1   2   3   4   5   6   7", plain[0])
	require.Equal(t, "   8   9  10  11  12  13  14  15", plain[1])
	require.Equal(t, "", plain[2])
	require.True(t, strings.HasPrefix(plain[3], "  16  17"))
}

func TestContrast(t *testing.T) {
	t.Parallel()

	require.Equal(t, style.Black, contrast(style.BrightWhite))
	require.Equal(t, style.BrightWhite, contrast(style.Black))
	require.Equal(t, style.BrightWhite, contrast(style.Palette(17)))
}
