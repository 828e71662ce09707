// Package parser implements a recursive-descent parser with single-token
// lookahead over package lexer's token stream, building the AST defined
// in package ast. Grammar procedures below are grouped by production
// family (definition.go, operation.go, typesystem.go, value.go,
// typeref.go); this file holds the Parser's own state, its token
// navigation primitives, and the four list-parsing disciplines every
// grammar procedure that parses a list is built from.
package parser

import (
	"fmt"

	"github.com/graphqlkit/gqlast/ast"
	"github.com/graphqlkit/gqlast/lexer"
	"github.com/graphqlkit/gqlast/parseerr"
	"github.com/graphqlkit/gqlast/token"
	"github.com/sirupsen/logrus"
)

// Debug, when non-nil, receives one line per grammar procedure entry with
// the currently peeked token — the compile-time debug toggle from the
// design turned into a settable hook so it costs nothing when left nil.
// EnableTrace points it at a logrus logger; the CLI's --trace flag calls it.
var Debug func(format string, args ...any)

// EnableTrace wires Debug to logger.Tracef, so grammar-procedure tracing
// only formats and allocates when the logger's level actually admits Trace.
func EnableTrace(logger *logrus.Logger) {
	Debug = logger.Tracef
}

func trace(procedure string, tok token.Token) {
	if Debug == nil {
		return
	}
	Debug("%s: peek=%s", procedure, tok)
}

// Parser holds the owned Lexer, the Document being built (which doubles
// as the node arena), and one slot of lookahead.
type Parser struct {
	doc *ast.Document
	lex *lexer.Lexer
	la  *token.Token
}

// New returns a Parser over source with no token limit.
func New(source []byte) *Parser {
	return &Parser{
		doc: ast.NewDocument(source),
		lex: lexer.New(source),
	}
}

// WithLimit caps the number of tokens the parser's lexer will hand out
// before failing with a lexer.LifecycleError{Kind: lexer.LimitReached}.
func (p *Parser) WithLimit(n int) *Parser {
	p.lex.WithLimit(n)

	return p
}

// Parse runs parseDocument to completion.
func (p *Parser) Parse() (*ast.Document, error) {
	return p.parseDocument()
}

// Parse constructs a default (unlimited) Parser and runs it to completion.
func Parse(source []byte) (*ast.Document, error) {
	return New(source).Parse()
}

// ParseWithLimit caps the token budget at limit, failing LimitReached on
// overshoot.
func ParseWithLimit(source []byte, limit int) (*ast.Document, error) {
	return New(source).WithLimit(limit).Parse()
}

// nextToken pulls raw tokens from the lexer until one that is not trivia
// (Whitespace, Comment, Comma) appears. The lexer keeps every token, so
// batch lex round-trips the source; trivia-skipping is entirely this
// method's job, not the lexer's.
func (p *Parser) nextToken() (token.Token, error) {
	for {
		tok, ok, err := p.lex.Next()
		if err != nil {
			return token.Token{}, err
		}
		if !ok {
			// Only reachable if a grammar procedure calls peek again after
			// Eof was already consumed, which would be a bug in this package.
			return token.Token{}, fmt.Errorf("parser: pulled past Eof")
		}
		if !tok.Kind.IsTrivia() {
			return tok, nil
		}
	}
}

// peek returns the current lookahead token, loading it from the lexer
// (skipping trivia) if the slot is empty.
func (p *Parser) peek() (token.Token, error) {
	if p.la == nil {
		tok, err := p.nextToken()
		if err != nil {
			return token.Token{}, err
		}
		p.la = &tok
	}

	return *p.la, nil
}

// pop returns the current token and empties the lookahead slot.
func (p *Parser) pop() (token.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Token{}, err
	}
	p.la = nil

	return tok, nil
}

// lookaheadAfter peeks at the token that follows the current lookahead,
// without mutating parser state, by running the trivia-skip on a
// throwaway copy of the lexer. It requires peek to have already been
// called (p.la populated); the copy resumes exactly where the real lexer
// left off, i.e. right after the cached lookahead token.
func (p *Parser) lookaheadAfter() (token.Token, error) {
	cp := p.lex.Copy()
	for {
		tok, ok, err := cp.Next()
		if err != nil {
			return token.Token{}, err
		}
		if !ok {
			return token.Token{Kind: token.Eof}, nil
		}
		if !tok.Kind.IsTrivia() {
			return tok, nil
		}
	}
}

func (p *Parser) peekKind(k token.Kind) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}

	return tok.Kind == k, nil
}

// expect pops the current token iff its kind is k, otherwise fails
// UnexpectedToken without consuming anything.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Kind != k {
		return token.Token{}, parseerr.New(parseerr.UnexpectedToken, tok, fmt.Sprintf("expected %s", k))
	}

	return p.pop()
}

// expectOptional pops and returns (tok, true, nil) iff the current kind
// is k; otherwise returns (zero, false, nil) without popping.
func (p *Parser) expectOptional(k token.Kind) (token.Token, bool, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Token{}, false, err
	}
	if tok.Kind != k {
		return token.Token{}, false, nil
	}
	tok, err = p.pop()

	return tok, true, err
}

// expectKeyword pops the current token iff it is a Name mapping to w. A
// Name that maps to no keyword at all fails UnknownKeyword; a Name that
// maps to a different keyword fails UnexpectedKeyword; anything that
// isn't even a Name fails UnexpectedToken.
func (p *Parser) expectKeyword(w ast.Keyword) (token.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Kind != token.Name {
		return token.Token{}, parseerr.New(parseerr.UnexpectedToken, tok, fmt.Sprintf("expected keyword %q", w))
	}
	got := ast.KeywordFromName(tok.Data)
	switch {
	case got == ast.KeywordUndefined:
		return token.Token{}, parseerr.New(parseerr.UnknownKeyword, tok, "")
	case got != w:
		return token.Token{}, parseerr.New(parseerr.UnexpectedKeyword, tok, fmt.Sprintf("expected %q, got %q", w, got))
	}

	return p.pop()
}

// expectOptionalKeyword behaves like expectKeyword but returns
// (zero, false, nil) instead of failing when the current token doesn't
// match — including when it's a Name that maps to some other keyword.
func (p *Parser) expectOptionalKeyword(w ast.Keyword) (token.Token, bool, error) {
	tok, err := p.peek()
	if err != nil {
		return token.Token{}, false, err
	}
	if tok.Kind != token.Name || ast.KeywordFromName(tok.Data) != w {
		return token.Token{}, false, nil
	}
	tok, err = p.pop()

	return tok, true, err
}

// expectName pops a Name token and returns its bytes.
func (p *Parser) expectName() ([]byte, error) {
	tok, err := p.expect(token.Name)
	if err != nil {
		return nil, err
	}

	return tok.Data, nil
}

// many expects open, then parses at least one item in a loop that checks
// for close only after each item — the do-while shape needed so an empty
// body (open immediately followed by close) is rejected, per grammar
// productions like SelectionSet whose body must be non-empty.
func many[T any](p *Parser, open, close token.Kind, item func() (T, error)) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}

	var items []T
	for {
		it, err := item()
		if err != nil {
			return nil, err
		}
		items = append(items, it)

		_, closed, err := p.expectOptional(close)
		if err != nil {
			return nil, err
		}
		if closed {
			return items, nil
		}
	}
}

// optionalMany returns (nil, false, nil) if open is absent; otherwise it
// behaves exactly like many and reports true.
func optionalMany[T any](p *Parser, open, close token.Kind, item func() (T, error)) ([]T, bool, error) {
	_, ok, err := p.expectOptional(open)
	if err != nil || !ok {
		return nil, false, err
	}

	var items []T
	for {
		it, err := item()
		if err != nil {
			return nil, false, err
		}
		items = append(items, it)

		_, closed, err := p.expectOptional(close)
		if err != nil {
			return nil, false, err
		}
		if closed {
			return items, true, nil
		}
	}
}

// anyList expects open, then parses items until close, allowing zero.
func anyList[T any](p *Parser, open, close token.Kind, item func() (T, error)) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}

	var items []T
	for {
		closed, err := p.peekKind(close)
		if err != nil {
			return nil, err
		}
		if closed {
			_, err := p.pop()

			return items, err
		}

		it, err := item()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
}

// delimitedMany optionally eats one leading delim, parses an item, then
// keeps consuming delim-then-item pairs while delim keeps appearing.
// Used for implements-interface lists (leading `&`), union member-type
// lists and directive-location lists (leading `|`).
func delimitedMany[T any](p *Parser, delim token.Kind, item func() (T, error)) ([]T, error) {
	if _, _, err := p.expectOptional(delim); err != nil {
		return nil, err
	}

	first, err := item()
	if err != nil {
		return nil, err
	}
	items := []T{first}

	for {
		_, ok, err := p.expectOptional(delim)
		if err != nil {
			return nil, err
		}
		if !ok {
			return items, nil
		}
		it, err := item()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
}
