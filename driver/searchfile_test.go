package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/pergo/compiler"
	"github.com/coregx/pergo/sim"
)

func TestSearchFilePlainMatches(t *testing.T) {
	nfa, _, err := compiler.Compile([]byte("foo"), false)
	require.NoError(t, err)

	in := strings.NewReader("foobar\nbazqux\nxfooy\n")
	var out bytes.Buffer
	matched, err := SearchFile("stdin", in, &out, nfa, nil, Options{}, NoColor)
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, "foobar\nxfooy\n", out.String())
}

func TestSearchFileNoMatches(t *testing.T) {
	nfa, _, err := compiler.Compile([]byte("zzz"), false)
	require.NoError(t, err)

	in := strings.NewReader("foobar\nbazqux\n")
	var out bytes.Buffer
	matched, err := SearchFile("stdin", in, &out, nfa, nil, Options{}, NoColor)
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Empty(t, out.String())
}

func TestSearchFileOnlyMatching(t *testing.T) {
	nfa, _, err := compiler.Compile([]byte("a|b"), false)
	require.NoError(t, err)

	in := strings.NewReader("cab\n")
	var out bytes.Buffer
	matched, err := SearchFile("stdin", in, &out, nfa, nil, Options{OnlyMatching: true}, NoColor)
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, "a\nb\n", out.String())
}

func TestSearchFileLineNumbersAndFilename(t *testing.T) {
	nfa, _, err := compiler.Compile([]byte("foo"), false)
	require.NoError(t, err)

	in := strings.NewReader("bar\nfoo\n")
	var out bytes.Buffer
	opts := Options{LineNumbers: true, ShowFilename: true}
	matched, err := SearchFile("f.txt", in, &out, nfa, nil, opts, NoColor)
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, "f.txt:2:foo\n", out.String())
}

func TestSearchFileInvertPrintsNonMatchingLinesWhole(t *testing.T) {
	nfa, _, err := compiler.Compile([]byte("foo"), false)
	require.NoError(t, err)

	in := strings.NewReader("foobar\nbazqux\n")
	var out bytes.Buffer
	opts := Options{Flags: sim.Flags{Invert: true}}
	matched, err := SearchFile("stdin", in, &out, nfa, nil, opts, NoColor)
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, "bazqux\n", out.String())
}

func TestSearchFileCaseInsensitive(t *testing.T) {
	nfa, _, err := compiler.Compile([]byte("foo"), true)
	require.NoError(t, err)

	in := strings.NewReader("FOObar\n")
	var out bytes.Buffer
	opts := Options{Flags: sim.Flags{CaseInsensitive: true}}
	matched, err := SearchFile("stdin", in, &out, nfa, nil, opts, NoColor)
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, "FOObar\n", out.String())
}
