package wikitext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidEntityBody(t *testing.T) {
	require.True(t, validEntityBody("41", true, false))
	require.False(t, validEntityBody("4g", true, false))

	require.True(t, validEntityBody("ff", false, true))
	require.True(t, validEntityBody("FF", false, true))
	require.False(t, validEntityBody("fz", false, true))

	require.True(t, validEntityBody("amp", false, false))
	require.True(t, validEntityBody("frac12", false, false))
	require.False(t, validEntityBody("not real", false, false))
}

func TestIsNamedEntity(t *testing.T) {
	require.True(t, isNamedEntity("amp"))
	require.True(t, isNamedEntity("lt"))
	require.True(t, isNamedEntity("nbsp"))
	require.True(t, isNamedEntity("semi"))
	require.False(t, isNamedEntity("notareal"))
	require.False(t, isNamedEntity(""))
}

// TestIsNamedEntity_LegacyPrefixFalsePositives guards against the
// longest-legacy-prefix behavior of html.UnescapeString: a name that only
// shares a valid legacy prefix with a real entity (e.g. "amp", "lt", "copy")
// must not be accepted just because unescaping changed the string.
func TestIsNamedEntity_LegacyPrefixFalsePositives(t *testing.T) {
	require.False(t, isNamedEntity("ampersand"))
	require.False(t, isNamedEntity("ltx"))
	require.False(t, isNamedEntity("copyright"))
	require.False(t, isNamedEntity("ampx"))
}
