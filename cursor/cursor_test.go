package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphqlkit/gqlast/cursor"
	"github.com/graphqlkit/gqlast/token"
)

// scanAll drains a Cursor to Eof, the same loop lexer.Lexer.Next runs one
// step at a time.
func scanAll(t *testing.T, src string) ([]token.Token, error) {
	t.Helper()

	c := cursor.New([]byte(src))
	var tokens []token.Token
	for {
		tok, err := c.Advance()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.Eof {
			return tokens, nil
		}
	}
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}

	return out
}

func TestPunctuators(t *testing.T) {
	t.Parallel()

	tokens, err := scanAll(t, "!$&:,()[]{}|")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.Bang, token.Dollar, token.Amp, token.Colon, token.Comma,
		token.LParen, token.RParen, token.LBracket, token.RBracket,
		token.LCurly, token.RCurly, token.Pipe, token.Eof,
	}, kinds(tokens))
}

func TestFirstTokenStartsAtOneOne(t *testing.T) {
	t.Parallel()

	tokens, err := scanAll(t, "query")
	require.NoError(t, err)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Col)
}

func TestNameAndKeyword(t *testing.T) {
	t.Parallel()

	tokens, err := scanAll(t, "query_1 Type")
	require.NoError(t, err)
	require.Len(t, tokens, 4) // Name, Whitespace, Name, Eof
	assert.Equal(t, token.Name, tokens[0].Kind)
	assert.Equal(t, "query_1", string(tokens[0].Data))
	assert.Equal(t, token.Whitespace, tokens[1].Kind)
	assert.Equal(t, token.Name, tokens[2].Kind)
	assert.Equal(t, "Type", string(tokens[2].Data))
	assert.Equal(t, token.Eof, tokens[3].Kind)
}

func TestIntAndFloat(t *testing.T) {
	t.Parallel()

	tokens, err := scanAll(t, "-12 3.14 6.02e23")
	require.NoError(t, err)
	require.Len(t, tokens, 6) // Int, WS, Float, WS, Float, Eof
	assert.Equal(t, token.Int, tokens[0].Kind)
	assert.Equal(t, "-12", string(tokens[0].Data))
	assert.Equal(t, token.Float, tokens[2].Kind)
	assert.Equal(t, "3.14", string(tokens[2].Data))
	assert.Equal(t, token.Float, tokens[4].Kind)
	assert.Equal(t, "6.02e23", string(tokens[4].Data))
}

func TestLeadingZeroIsRejected(t *testing.T) {
	t.Parallel()

	_, err := scanAll(t, "0123")
	require.Error(t, err)

	var cerr cursor.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, cursor.LeadingZero, cerr.Kind)
}

func TestStringValueKeepsQuotesAndEscapesRaw(t *testing.T) {
	t.Parallel()

	tokens, err := scanAll(t, `"hello\nworld"`)
	require.NoError(t, err)
	require.Len(t, tokens, 2) // StringValue, Eof
	assert.Equal(t, token.StringValue, tokens[0].Kind)
	assert.Equal(t, `"hello\nworld"`, string(tokens[0].Data))
}

func TestEmptyStringIsNotMistakenForBlockString(t *testing.T) {
	t.Parallel()

	tokens, err := scanAll(t, `""`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.StringValue, tokens[0].Kind)
	assert.Equal(t, `""`, string(tokens[0].Data))
}

func TestBlockString(t *testing.T) {
	t.Parallel()

	tokens, err := scanAll(t, `"""block content"""`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.StringValue, tokens[0].Kind)
	assert.Equal(t, `"""block content"""`, string(tokens[0].Data))
}

func TestBlockStringQuoteRunResetsAcrossEscape(t *testing.T) {
	t.Parallel()

	// Content is: a literal `"`, then an escaped `\"""`, then the real
	// closing `"""` with nothing between them. A stale quoteRun carried
	// across the escape would count the literal quote towards the real
	// closer and consume it one byte short, leaving a stray `"` behind.
	tokens, err := scanAll(t, `""""\""""""`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.StringValue, tokens[0].Kind)
	assert.Equal(t, `""""\""""""`, string(tokens[0].Data))
	assert.Equal(t, token.Eof, tokens[1].Kind)
}

func TestUnterminatedStringReportsError(t *testing.T) {
	t.Parallel()

	_, err := scanAll(t, `"unterminated`)
	require.Error(t, err)

	var cerr cursor.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, cursor.UnterminatedString, cerr.Kind)
}

func TestUnexpectedCharReportsError(t *testing.T) {
	t.Parallel()

	_, err := scanAll(t, "`")
	require.Error(t, err)

	var cerr cursor.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, cursor.UnexpectedChar, cerr.Kind)
}

func TestSpread(t *testing.T) {
	t.Parallel()

	tokens, err := scanAll(t, "...")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.Spread, tokens[0].Kind)
}

func TestComment(t *testing.T) {
	t.Parallel()

	tokens, err := scanAll(t, "# a comment\nquery")
	require.NoError(t, err)
	require.Len(t, tokens, 4) // Comment, Whitespace(newline), Name, Eof
	assert.Equal(t, token.Comment, tokens[0].Kind)
	assert.Equal(t, token.Name, tokens[2].Kind)
	assert.Equal(t, "query", string(tokens[2].Data))
}
