package wikitext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"plain run", "hello world", []string{"hello world"}},
		{"single marker", "{", []string{"{"}},
		{"adjacent markers split individually", "{{", []string{"{", "{"}},
		{"mixed", "a{{b}}c", []string{"a", "{", "{", "b", "}", "}", "c"}},
		{"newline is a marker", "a\nb", []string{"a", "\n", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSegments(tt.input)
			if tt.want == nil {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCursorRead(t *testing.T) {
	c := newCursor("a{b")
	// segments: ["a", "{", "b"]

	require.True(t, c.read(-1).isStart())
	require.True(t, c.read(0).is("a"))
	require.True(t, c.read(1).is("{"))
	require.True(t, c.read(2).is("b"))
	require.True(t, c.read(3).isEnd())

	c.head = 2
	require.True(t, c.read(-1).is("{"))
	require.True(t, c.read(0).is("b"))
	require.True(t, c.read(1).isEnd())
}

func TestCursorReadStrict(t *testing.T) {
	c := newCursor("a")
	_, ok := c.readStrict(0)
	require.True(t, ok)

	_, ok = c.readStrict(1)
	require.False(t, ok)

	// Reading before the start is never a failure, even strictly.
	s, ok := c.readStrict(-1)
	require.True(t, ok)
	require.True(t, s.isStart())
}

func TestSegIsMarker(t *testing.T) {
	require.True(t, endSeg.isMarker())
	require.True(t, seg{kind: segValue, text: "{"}.isMarker())
	require.False(t, seg{kind: segValue, text: "foo"}.isMarker())
	require.False(t, startSeg.isMarker())
}
