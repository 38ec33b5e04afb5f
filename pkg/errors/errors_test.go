package errors

import (
	stdErrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed")
	err := NewParseError("prism.yaml", 4, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "prism.yaml", parseErr.Path)
	require.Equal(t, 4, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "config prism.yaml:4: mapping values are not allowed", err.Error())

	require.Equal(t, "config prism.yaml: boom", NewParseError("prism.yaml", 0, stdErrors.New("boom")).Error())
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("console.color_system", "sepia", "unknown color system", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "console.color_system", validationErr.Field)
	require.Equal(t, `invalid console.color_system "sepia": unknown color system`, err.Error())

	require.Equal(t, "invalid theme: bad", NewValidationError("theme", "", "bad", nil).Error())
	require.Equal(t, "invalid configuration: bad", NewValidationError("", "", "bad", nil).Error())
}

func TestWriteErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	err := NewWriteError("print", io.ErrClosedPipe)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	require.Equal(t, "print", writeErr.Op)
	require.ErrorIs(t, err, io.ErrClosedPipe)
	require.Contains(t, err.Error(), "during print")
}

func TestNilErrorsAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var writeErr *WriteError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, writeErr.Error())
	require.Nil(t, writeErr.Unwrap())
}
