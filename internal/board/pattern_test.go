package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern([]string{"1111", "0000", "0000", "0000"})
	require.NoError(t, err)
	if diff := cmp.Diff(Tetromino, p); diff != "" {
		t.Fatalf("pattern mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, p.Height())
	assert.Equal(t, 4, p.Width())
	assert.Equal(t, []string{"1111", "0000", "0000", "0000"}, p.Strings())
}

func TestParsePatternAcceptsTraceGlyphs(t *testing.T) {
	p, err := ParsePattern([]string{"#.", ".#"})
	require.NoError(t, err)
	assert.Equal(t, Pattern{{true, false}, {false, true}}, p)
}

func TestParsePatternErrors(t *testing.T) {
	for _, rows := range [][]string{nil, {""}, {"10", "1x"}} {
		_, err := ParsePattern(rows)
		assert.True(t, errors.Is(err, ErrInvalidPattern), "rows %q: %v", rows, err)
	}
}
