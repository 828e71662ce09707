// Package lexer wraps a cursor.Cursor with the token-count budget and the
// three production modes (Next, Read, Lex) the parser and CLI build on.
package lexer

import (
	"errors"
	"fmt"
	"math"

	"github.com/graphqlkit/gqlast/cursor"
	"github.com/graphqlkit/gqlast/token"
)

// LifecycleErrorKind is the closed set of failures a Lexer can report on
// top of the lexical errors its Cursor produces.
type LifecycleErrorKind int

const (
	LimitReached LifecycleErrorKind = iota
	ReadAfterFinished
)

func (k LifecycleErrorKind) String() string {
	switch k {
	case LimitReached:
		return "LimitReached"
	case ReadAfterFinished:
		return "ReadAfterFinished"
	default:
		return "LifecycleErrorKind(?)"
	}
}

// LifecycleError reports a Lexer state violation: the token budget was
// exhausted, or a caller called Read after the stream already finished.
type LifecycleError struct {
	Kind LifecycleErrorKind
}

func (e LifecycleError) Error() string {
	return e.Kind.String()
}

// Lexer produces one token at a time (or, in batch, all of them) from a
// Cursor, enforcing an optional upper bound on how many tokens it will
// hand out before reporting LimitReached.
type Lexer struct {
	cur      cursor.Cursor
	finished bool
	count    int
	limit    int
}

// New returns a Lexer over source with no token limit.
func New(source []byte) *Lexer {
	return &Lexer{cur: cursor.New(source), limit: math.MaxInt}
}

// WithLimit returns l with its token budget capped at n. It mutates and
// returns the receiver, mirroring the teacher's fluent option setters
// (e.g. driver.Run's option chain), so callers write lexer.New(src).WithLimit(n).
func (l *Lexer) WithLimit(n int) *Lexer {
	l.limit = n

	return l
}

// Next returns the next token. ok is false, with no error, once the
// stream has already finished — the Go rendering of "next token, or none
// after end". It increments the internal counter before scanning; once
// the counter would exceed the limit it sets finished and returns
// LimitReached instead of scanning further. Reaching Eof also sets
// finished, but is not itself an error: the Eof token is still returned
// once, with ok true.
func (l *Lexer) Next() (tok token.Token, ok bool, err error) {
	if l.finished {
		return token.Token{}, false, nil
	}

	l.count++
	if l.count > l.limit {
		l.finished = true

		return token.Token{}, false, LifecycleError{Kind: LimitReached}
	}

	tok, err = l.cur.Advance()
	if err != nil {
		return token.Token{}, false, err
	}
	if tok.Kind == token.Eof {
		l.finished = true
	}

	return tok, true, nil
}

// Read behaves like Next, except calling it after the stream has already
// finished is itself an error (ReadAfterFinished) rather than the silent
// ok=false Next returns.
func (l *Lexer) Read() (token.Token, bool, error) {
	if l.finished {
		return token.Token{}, false, LifecycleError{Kind: ReadAfterFinished}
	}

	return l.Next()
}

// Lex drains the lexer to completion, in the style of the teacher's
// errors.Join accumulation in driver.Run: every successful token is kept,
// every lexing error is recorded, and only LimitReached stops the loop
// early. A LimitReached error is itself recorded before the loop exits, so
// batch mode reports exactly one error on overshoot rather than none.
//
// Tokens are plain values (a Kind, a source sub-slice and three ints), so
// unlike AST nodes they need no arena: a Go slice already gives batch
// lexing the "one allocation, grown geometrically" behavior the teacher's
// arena gives node pools.
func (l *Lexer) Lex() ([]token.Token, error) {
	var tokens []token.Token
	var errs error

	for {
		tok, ok, err := l.Next()
		if err != nil {
			errs = errors.Join(errs, err)
			var lifecycle LifecycleError
			if errors.As(err, &lifecycle) && lifecycle.Kind == LimitReached {
				return tokens, errs
			}

			continue
		}
		if !ok {
			return tokens, errs
		}

		tokens = append(tokens, tok)
		if tok.Kind == token.Eof {
			return tokens, errs
		}
	}
}

// Copy returns an independent Lexer over the same source at the same
// position, for the parser's non-mutating lookahead: Cursor is a plain
// value type, so this is a cheap struct copy, not a deep clone.
func (l *Lexer) Copy() Lexer {
	return *l
}

// String supports %v logging of a Lexer's position without exposing its
// internals as an exported method set, matching the terse Stringer the
// teacher attaches to its token.Token.
func (l *Lexer) String() string {
	return fmt.Sprintf("Lexer(count=%d, limit=%d, finished=%t)", l.count, l.limit, l.finished)
}
