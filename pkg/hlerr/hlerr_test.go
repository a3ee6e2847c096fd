package hlerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelsim/hashlife/pkg/hlerr"
)

func TestNew_FormatsWithoutCause(t *testing.T) {
	err := hlerr.New(hlerr.CodeParseError, "bad rune")
	require.Equal(t, "[PARSE_ERROR] bad rune", err.Error())
	require.Nil(t, err.Unwrap())
}

func TestWrap_FormatsWithCause(t *testing.T) {
	cause := errors.New("disk full")
	err := hlerr.Wrap(hlerr.CodeIO, "failed to open pattern store", cause)

	require.Contains(t, err.Error(), "failed to open pattern store")
	require.Contains(t, err.Error(), "disk full")
	require.ErrorIs(t, err, cause)
}

func TestIs_MatchesByCode(t *testing.T) {
	a := hlerr.New(hlerr.CodeNotFound, "pattern x")
	b := hlerr.New(hlerr.CodeNotFound, "pattern y")
	c := hlerr.New(hlerr.CodeIO, "pattern x")

	require.True(t, errors.Is(a, b))
	require.False(t, errors.Is(a, c))
}

func TestNewf_FormatsMessage(t *testing.T) {
	err := hlerr.Newf(hlerr.CodeParseError, "unexpected rune %q at %d", 'z', 3)
	require.Equal(t, `[PARSE_ERROR] unexpected rune 'z' at 3`, err.Error())
}
