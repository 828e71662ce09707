package lexer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphqlkit/gqlast/lexer"
	"github.com/graphqlkit/gqlast/token"
)

func TestNextReturnsEofThenNoMoreTokens(t *testing.T) {
	t.Parallel()

	l := lexer.New([]byte("!"))

	tok, ok, err := l.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, token.Bang, tok.Kind)

	tok, ok, err = l.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, token.Eof, tok.Kind)

	// After Eof, Next silently reports absence instead of erroring.
	_, ok, err = l.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadAfterFinishedErrors(t *testing.T) {
	t.Parallel()

	l := lexer.New([]byte(""))

	tok, ok, err := l.Read()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, token.Eof, tok.Kind)

	_, _, err = l.Read()
	require.Error(t, err)

	var lifecycle lexer.LifecycleError
	require.ErrorAs(t, err, &lifecycle)
	assert.Equal(t, lexer.ReadAfterFinished, lifecycle.Kind)
}

func TestWithLimitStopsAtLimitReached(t *testing.T) {
	t.Parallel()

	l := lexer.New([]byte("! $ &")).WithLimit(2)

	_, ok, err := l.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = l.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = l.Next()
	assert.False(t, ok)

	var lifecycle lexer.LifecycleError
	require.ErrorAs(t, err, &lifecycle)
	assert.Equal(t, lexer.LimitReached, lifecycle.Kind)
}

func TestLexCollectsTokensUpToEof(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.New([]byte("query Q { f }")).Lex()
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, token.Eof, tokens[len(tokens)-1].Kind)
}

// TestLexContinuesPastLexingErrors exercises the batch-mode contract: a
// run with a malformed token still returns every token lexed around it,
// joined with the error instead of stopping at the first failure.
func TestLexContinuesPastLexingErrors(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.New([]byte("foo 0123 bar")).Lex()
	require.Error(t, err)

	var names []string
	for _, tok := range tokens {
		if tok.Kind == token.Name {
			names = append(names, string(tok.Data))
		}
	}
	assert.Equal(t, []string{"foo", "bar"}, names)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok, "Lex should join errors with errors.Join")
	assert.Len(t, joined.Unwrap(), 1)
}

func TestLexStopsOnLimitReached(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.New([]byte("! $ & @")).WithLimit(1).Lex()
	require.Error(t, err)
	assert.Len(t, tokens, 1)

	var lifecycle lexer.LifecycleError
	require.True(t, errors.As(err, &lifecycle))
	assert.Equal(t, lexer.LimitReached, lifecycle.Kind)
}

func TestCopyIsIndependentOfOriginal(t *testing.T) {
	t.Parallel()

	l := lexer.New([]byte("a b"))
	_, _, err := l.Next()
	require.NoError(t, err)

	cp := l.Copy()
	_, _, err = cp.Next()
	require.NoError(t, err)

	// Advancing the copy must not have moved the original's position: the
	// original should still see the whitespace it was about to read.
	tok, _, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, token.Whitespace, tok.Kind)
}
