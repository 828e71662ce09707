package parser

import (
	"github.com/graphqlkit/gqlast/ast"
	"github.com/graphqlkit/gqlast/token"
)

// parseType returns an owning reference to a Type node: NamedType, or
// `[` Type `]` for a ListType, either optionally suffixed with `!` for a
// NonNullType. The grammar has no production that lets a freshly-built
// NonNullType receive a second trailing `!`, so "NonNullType wrapping a
// NonNullType" is rejected by construction rather than by a runtime
// check: a second `!` is simply left as unconsumed lookahead for whatever
// called parseType to reject as unexpected.
//
// On error, no explicit unwind of partially built Type nodes is needed:
// they live in the Document's arena and are dropped along with the whole
// Document the caller discards on a parse failure, unlike a
// non-arena allocator, which would need to free them explicitly.
func (p *Parser) parseType() (ast.Ref[ast.Type], error) {
	tok, err := p.peek()
	if err != nil {
		return 0, err
	}
	trace("parseType", tok)

	var base ast.Ref[ast.Type]
	if tok.Kind == token.LBracket {
		if _, err := p.pop(); err != nil {
			return 0, err
		}
		inner, err := p.parseType()
		if err != nil {
			return 0, err
		}
		if _, err := p.expect(token.RBracket); err != nil {
			return 0, err
		}
		base = p.doc.Types.Alloc(ast.Type{Kind: ast.TypeList, OfType: inner})
	} else {
		name, err := p.expectName()
		if err != nil {
			return 0, err
		}
		base = p.doc.Types.Alloc(ast.Type{Kind: ast.TypeNamed, Name: name})
	}

	if _, ok, err := p.expectOptional(token.Bang); err != nil {
		return 0, err
	} else if ok {
		base = p.doc.Types.Alloc(ast.Type{Kind: ast.TypeNonNull, OfType: base})
	}

	return base, nil
}
