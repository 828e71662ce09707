// Package token defines the lexical token kinds produced by the cursor and
// consumed by the parser.
package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	// Eof is emitted exactly once, as the terminal element of every token
	// stream.
	Eof Kind = iota

	Whitespace
	Comment

	Bang   // !
	Dollar // $
	Amp    // &
	Spread // ...
	Comma  // ,
	Colon  // :
	Eq     // =
	At     // @
	LParen // (
	RParen // )
	LBracket
	RBracket
	LCurly
	RCurly
	Pipe // |

	Name
	StringValue
	Int
	Float
)

// Token is a kind-tagged sub-slice of the source with its start offset.
//
// Data always aliases the original source; callers must not retain a Token
// past the lifetime of the byte slice passed to the lexer.
type Token struct {
	Kind  Kind
	Data  []byte
	Index int
	Line  int
	Col   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Data, t.Line, t.Col)
}

// IsPunctuator reports whether the token is one of the fixed punctuation
// kinds: the single-byte punctuators plus the three-byte Spread.
func (k Kind) IsPunctuator() bool {
	switch k {
	case Bang, Dollar, Amp, Spread, Comma, Colon, Eq, At,
		LParen, RParen, LBracket, RBracket, LCurly, RCurly, Pipe:
		return true
	default:
		return false
	}
}

// IsTrivia reports whether the token is invisible to the grammar.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment || k == Comma
}
