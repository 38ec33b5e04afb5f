package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/bidi"
	"github.com/alexisbeaulieu97/prism/internal/colorsystem"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/text"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `console:
  width: 60
  color_system: "256"
  direction: rtl
  markup: false
  justify: center
  overflow: visible
theme:
  base: monokai
  styles:
    warning: "bold yellow"
    app.title: "underline #ff8800"
log:
  level: debug
`

	invalidYAML := `console:
  width: [1, 2]
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, 60, cfg.Console.Width)
				require.Equal(t, colorsystem.EightBit, cfg.Console.ColorSystemValue())
				require.Equal(t, bidi.RTL, cfg.Console.DirectionValue())
				require.Equal(t, text.JustifyCenter, cfg.Console.JustifyValue())
				require.Equal(t, text.OverflowVisible, cfg.Console.OverflowValue())
				require.False(t, cfg.Console.MarkupEnabled())
				require.Equal(t, "debug", cfg.Log.Level)
				require.True(t, cfg.Log.HumanReadable, "unset fields keep their defaults")

				th := cfg.Theme()
				require.Equal(t, "monokai", th.Name())
				require.Equal(t, style.New().Bold().Foreground(style.Yellow), th.Style("warning"))
				require.Equal(t, style.New().Underline().Foreground(style.RGB(0xff, 0x88, 0)), th.Style("app.title"))
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *prismerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "unknown color system",
			contents: "console:\n  color_system: sepia\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "console.color_system", validationErr.Field)
				require.Equal(t, "sepia", validationErr.Value)
			},
		},
		{
			name:     "unknown direction",
			contents: "console:\n  direction: sideways\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "console.direction", validationErr.Field)
			},
		},
		{
			name:     "negative width",
			contents: "console:\n  width: -1\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "console.width", validationErr.Field)
				require.Contains(t, validationErr.Message, "at least 0")
			},
		},
		{
			name:     "bad justify",
			contents: "console:\n  justify: full\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "default left center right")
			},
		},
		{
			name:     "malformed style definition",
			contents: "theme:\n  styles:\n    warning: \"bold sparkly\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "bold sparkly", validationErr.Value)
			},
		},
		{
			name:     "invalid style name",
			contents: "theme:\n  styles:\n    \"Bad Name\": bold\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "Bad Name", validationErr.Value)
			},
		},
		{
			name:     "unknown base theme",
			contents: "theme:\n  base: solarized\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme.base", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *prismerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateConfig(nil))
	require.NoError(t, ValidateConfig(Default()))
}

func TestNilConfigTheme(t *testing.T) {
	t.Parallel()

	var cfg *Config
	require.Equal(t, "default", cfg.Theme().Name())
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "prism.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
