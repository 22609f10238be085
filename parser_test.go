package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrimitiveCaseFolding(t *testing.T) {
	e, err := Parse("t", "K")
	require.NoError(t, err)
	require.Equal(t, exprPrim, e.kind)
	assert.Equal(t, primK, e.prim)
}

func TestParseApplication(t *testing.T) {
	e, err := Parse("t", "`ki")
	require.NoError(t, err)
	require.Equal(t, exprApply, e.kind)
	require.Equal(t, exprPrim, e.op.kind)
	assert.Equal(t, primK, e.op.prim)
	require.Equal(t, exprPrim, e.arg.kind)
	assert.Equal(t, primI, e.arg.prim)
}

func TestParsePrintArgumentIsLiteral(t *testing.T) {
	// the argument character is taken literally, never case-folded and
	// never treated as a primitive token of its own.
	e, err := Parse("t", ".K")
	require.NoError(t, err)
	require.Equal(t, exprPrint, e.kind)
	assert.Equal(t, 'K', e.char)
}

func TestParsePrintArgumentCanBeWhitespaceOrBacktick(t *testing.T) {
	e, err := Parse("t", ".\n")
	require.NoError(t, err)
	assert.Equal(t, '\n', e.char)

	e, err = Parse("t", "`.`i")
	require.NoError(t, err)
	require.Equal(t, exprApply, e.kind)
	require.Equal(t, exprPrint, e.op.kind)
	assert.Equal(t, '`', e.op.char)
}

func TestParseCompareArgument(t *testing.T) {
	e, err := Parse("t", "?Q")
	require.NoError(t, err)
	require.Equal(t, exprCompare, e.kind)
	assert.Equal(t, 'Q', e.char)
}

func TestParseCommentsAndWhitespaceIgnored(t *testing.T) {
	e, err := Parse("t", "# a comment\n  `  k   i  # trailing\n")
	require.NoError(t, err)
	require.Equal(t, exprApply, e.kind)
	assert.Equal(t, primK, e.op.prim)
	assert.Equal(t, primI, e.arg.prim)
}

func TestParseErrorOnIncompleteApplication(t *testing.T) {
	_, err := Parse("t", "`k")
	require.Error(t, err)
}

func TestParseErrorOnTruncatedPrint(t *testing.T) {
	_, err := Parse("t", ".")
	require.Error(t, err)
}
