package infixlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-rahimi/infixlang/internal/interp"
	"github.com/a-rahimi/infixlang/internal/parser"
)

func TestEvalArithmetic(t *testing.T) {
	engine := New()

	result, err := engine.Eval("2 + 3*4")
	require.NoError(t, err)

	n, ok := result.Int()
	require.True(t, ok)
	assert.Equal(t, int64(14), n)
	assert.Equal(t, "14", result.String())
}

func TestContextPersistsAcrossEvals(t *testing.T) {
	engine := New()

	_, err := engine.Eval("a = 2*3")
	require.NoError(t, err)

	result, err := engine.Eval("a + 1")
	require.NoError(t, err)

	n, ok := result.Int()
	require.True(t, ok)
	assert.Equal(t, int64(7), n)

	v, ok := engine.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "INTEGER", v.Type())
}

func TestRecursionThroughQuotes(t *testing.T) {
	engine := New()

	_, err := engine.Eval("factorial ~ (then ~ i*(i=i-1 factorial) else=1 if i)")
	require.NoError(t, err)

	result, err := engine.Eval("(i=5 factorial)")
	require.NoError(t, err)

	n, ok := result.Int()
	require.True(t, ok)
	assert.Equal(t, int64(120), n)
}

func TestReset(t *testing.T) {
	engine := New()

	_, err := engine.Eval("a = 1")
	require.NoError(t, err)

	engine.Reset()

	_, ok := engine.Lookup("a")
	assert.False(t, ok)

	_, err = engine.Eval("a + 1")
	require.Error(t, err)

	var unknown *interp.UnknownVariableError
	require.ErrorAs(t, err, &unknown)
}

func TestCompileRejectsTrailingTokens(t *testing.T) {
	_, err := Compile("a = 2 *")
	require.Error(t, err)

	var unconsumed *parser.UnconsumedTokensError
	require.ErrorAs(t, err, &unconsumed)
}

func TestEvalLeavesContextOnParseError(t *testing.T) {
	engine := New()

	_, err := engine.Eval("a = 1")
	require.NoError(t, err)

	_, err = engine.Eval("a = = 2")
	require.Error(t, err)

	v, ok := engine.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "1", v.String())
}

func TestEvalKeepsEffectsBeforeFailure(t *testing.T) {
	engine := New()

	_, err := engine.Eval("x = 1, y = 2, z = nope")
	require.Error(t, err)

	var unknown *interp.UnknownVariableError
	require.ErrorAs(t, err, &unknown)

	// Both assignments before the failure point persist, including the one
	// that landed in a context minted mid-sequence.
	v, ok := engine.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "1", v.String())

	v, ok = engine.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, "2", v.String())

	_, ok = engine.Lookup("z")
	assert.False(t, ok)
}

func TestQuotedResult(t *testing.T) {
	engine := New()

	result, err := engine.Eval("f ~ 1 + 2")
	require.NoError(t, err)

	_, ok := result.Int()
	assert.False(t, ok)
	assert.Equal(t, "~(1 + 2)", result.String())
}
