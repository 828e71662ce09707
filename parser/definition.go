package parser

import (
	"github.com/graphqlkit/gqlast/ast"
	"github.com/graphqlkit/gqlast/parseerr"
	"github.com/graphqlkit/gqlast/token"
)

// parseDocument loops over parseDefinition until an Eof token is consumed.
func (p *Parser) parseDocument() (*ast.Document, error) {
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Eof {
			if _, err := p.pop(); err != nil {
				return nil, err
			}

			return p.doc, nil
		}

		node, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		p.doc.Definitions = append(p.doc.Definitions, node)
	}
}

// parseDefinition peeks the current token; if it is a description
// (StringValue), it looks one non-trivia token further ahead — without
// consuming the description, which belongs to whichever definition
// follows — to decide which grammar procedure to dispatch to.
func (p *Parser) parseDefinition() (ast.Node, error) {
	cur, err := p.peek()
	if err != nil {
		return ast.Node{}, err
	}
	trace("parseDefinition", cur)

	dispatchTok := cur
	if cur.Kind == token.StringValue {
		dispatchTok, err = p.lookaheadAfter()
		if err != nil {
			return ast.Node{}, err
		}
	}

	var kw ast.Keyword
	switch {
	case dispatchTok.Kind == token.LCurly:
		kw = ast.KeywordLCurly
	case dispatchTok.Kind == token.Name:
		kw = ast.KeywordFromName(dispatchTok.Data)
	default:
		return ast.Node{}, parseerr.New(parseerr.UnexpectedToken, dispatchTok, "expected a definition")
	}

	switch kw {
	case ast.KeywordSchema:
		return p.parseSchemaDefinition()
	case ast.KeywordScalar:
		return p.parseScalarTypeDefinition()
	case ast.KeywordType:
		return p.parseObjectTypeDefinition()
	case ast.KeywordInterface:
		return p.parseInterfaceTypeDefinition()
	case ast.KeywordUnion:
		return p.parseUnionTypeDefinition()
	case ast.KeywordEnum:
		return p.parseEnumTypeDefinition()
	case ast.KeywordInput:
		return p.parseInputObjectTypeDefinition()
	case ast.KeywordDirective:
		return p.parseDirectiveDefinition()
	case ast.KeywordQuery, ast.KeywordMutation, ast.KeywordSubscription, ast.KeywordLCurly:
		return p.parseOperationDefinition()
	case ast.KeywordFragment:
		return p.parseFragmentDefinition()
	case ast.KeywordExtend:
		return p.parseTypeSystemExtension()
	default:
		return ast.Node{}, parseerr.New(parseerr.UnexpectedToken, dispatchTok, "expected a definition")
	}
}

// parseDescription consumes an optional leading StringValue.
func (p *Parser) parseDescription() ([]byte, error) {
	tok, ok, err := p.expectOptional(token.StringValue)
	if err != nil || !ok {
		return nil, err
	}

	return tok.Data, nil
}

// parseTypeSystemExtension dispatches on the keyword following `extend`.
func (p *Parser) parseTypeSystemExtension() (ast.Node, error) {
	if _, err := p.expectKeyword(ast.KeywordExtend); err != nil {
		return ast.Node{}, err
	}

	tok, err := p.peek()
	if err != nil {
		return ast.Node{}, err
	}
	if tok.Kind != token.Name {
		return ast.Node{}, parseerr.New(parseerr.UnexpectedToken, tok, "expected a type-system extension keyword")
	}

	switch ast.KeywordFromName(tok.Data) {
	case ast.KeywordSchema:
		return p.parseSchemaExtension()
	case ast.KeywordScalar:
		return p.parseScalarTypeExtension()
	case ast.KeywordType:
		return p.parseObjectTypeExtension()
	case ast.KeywordInterface:
		return p.parseInterfaceTypeExtension()
	case ast.KeywordUnion:
		return p.parseUnionTypeExtension()
	case ast.KeywordEnum:
		return p.parseEnumTypeExtension()
	case ast.KeywordInput:
		return p.parseInputObjectTypeExtension()
	default:
		return ast.Node{}, parseerr.New(parseerr.UnknownDefinition, tok, "expected a type-system extension keyword")
	}
}
