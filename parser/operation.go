package parser

import (
	"github.com/graphqlkit/gqlast/ast"
	"github.com/graphqlkit/gqlast/parseerr"
	"github.com/graphqlkit/gqlast/token"
)

// parseOperationDefinition covers both the full form (query/mutation/
// subscription with optional name, variables and directives) and the
// shorthand anonymous-query form (bare SelectionSet).
func (p *Parser) parseOperationDefinition() (ast.Node, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.Node{}, err
	}
	trace("parseOperationDefinition", tok)

	if tok.Kind == token.LCurly {
		ss, err := p.parseSelectionSet()
		if err != nil {
			return ast.Node{}, err
		}
		ref := p.doc.Operations.Alloc(ast.OperationDefinition{Operation: ast.Query, SelectionSet: ss})

		return ast.Node{Kind: ast.NodeOperationDefinition, Ref: int(ref)}, nil
	}

	opType, err := p.parseOperationType()
	if err != nil {
		return ast.Node{}, err
	}

	var name []byte
	if nameTok, ok, err := p.expectOptional(token.Name); err != nil {
		return ast.Node{}, err
	} else if ok {
		name = nameTok.Data
	}

	varDefs, _, err := optionalMany(p, token.LParen, token.RParen, p.parseVariableDefinition)
	if err != nil {
		return ast.Node{}, err
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}

	ss, err := p.parseSelectionSet()
	if err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.Operations.Alloc(ast.OperationDefinition{
		Operation:           opType,
		Name:                name,
		VariableDefinitions: varDefs,
		Directives:          directives,
		SelectionSet:        ss,
	})

	return ast.Node{Kind: ast.NodeOperationDefinition, Ref: int(ref)}, nil
}

func (p *Parser) parseOperationType() (ast.OperationType, error) {
	tok, err := p.peek()
	if err != nil {
		return 0, err
	}
	if tok.Kind != token.Name {
		return 0, parseerr.New(parseerr.UnexpectedToken, tok, "expected an operation type")
	}

	switch ast.KeywordFromName(tok.Data) {
	case ast.KeywordQuery:
		_, err = p.pop()

		return ast.Query, err
	case ast.KeywordMutation:
		_, err = p.pop()

		return ast.Mutation, err
	case ast.KeywordSubscription:
		_, err = p.pop()

		return ast.Subscription, err
	default:
		return 0, parseerr.New(parseerr.UnexpectedToken, tok, "expected query, mutation or subscription")
	}
}

func (p *Parser) parseVariableDefinition() (ast.Ref[ast.VariableDefinition], error) {
	if _, err := p.expect(token.Dollar); err != nil {
		return 0, err
	}
	name, err := p.expectName()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return 0, err
	}
	typ, err := p.parseType()
	if err != nil {
		return 0, err
	}

	var defaultValue *ast.Value
	if _, ok, err := p.expectOptional(token.Eq); err != nil {
		return 0, err
	} else if ok {
		v, err := p.parseValue(true)
		if err != nil {
			return 0, err
		}
		defaultValue = &v
	}

	directives, err := p.parseDirectives(true)
	if err != nil {
		return 0, err
	}

	return p.doc.Variables.Alloc(ast.VariableDefinition{
		Name:         name,
		Type:         typ,
		DefaultValue: defaultValue,
		Directives:   directives,
	}), nil
}

// parseDirectives parses a possibly-empty run of `@name(args...)`
// annotations. It has no delimiter and no brackets, so it doesn't fit any
// of the four bracketed list disciplines: it simply loops while '@'
// keeps appearing.
func (p *Parser) parseDirectives(isConst bool) ([]ast.Ref[ast.Directive], error) {
	var out []ast.Ref[ast.Directive]
	for {
		_, ok, err := p.expectOptional(token.At)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}

		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		args, err := p.parseOptionalArguments(isConst)
		if err != nil {
			return nil, err
		}

		out = append(out, p.doc.Directives.Alloc(ast.Directive{Name: name, Arguments: args}))
	}
}

func (p *Parser) parseOptionalArguments(isConst bool) ([]ast.Ref[ast.Argument], error) {
	present, err := p.peekKind(token.LParen)
	if err != nil || !present {
		return nil, err
	}

	return anyList(p, token.LParen, token.RParen, func() (ast.Ref[ast.Argument], error) {
		return p.parseArgument(isConst)
	})
}

func (p *Parser) parseArgument(isConst bool) (ast.Ref[ast.Argument], error) {
	name, err := p.expectName()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return 0, err
	}
	val, err := p.parseValue(isConst)
	if err != nil {
		return 0, err
	}

	return p.doc.Arguments.Alloc(ast.Argument{Name: name, Value: val}), nil
}

func (p *Parser) parseSelectionSet() (ast.Ref[ast.SelectionSet], error) {
	selections, err := many(p, token.LCurly, token.RCurly, p.parseSelection)
	if err != nil {
		return 0, err
	}

	return p.doc.SelectionSets.Alloc(ast.SelectionSet{Selections: selections}), nil
}

// parseOptionalSelectionSet returns the zero Ref (absent) if '{' is not
// present, for a Field's optional nested selection set.
func (p *Parser) parseOptionalSelectionSet() (ast.Ref[ast.SelectionSet], error) {
	present, err := p.peekKind(token.LCurly)
	if err != nil || !present {
		return 0, err
	}

	return p.parseSelectionSet()
}

func (p *Parser) parseSelection() (ast.Selection, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.Selection{}, err
	}
	trace("parseSelection", tok)

	if tok.Kind == token.Spread {
		if _, err := p.pop(); err != nil {
			return ast.Selection{}, err
		}

		return p.parseFragmentSpreadOrInlineFragment()
	}

	return p.parseField()
}

// parseFragmentSpreadOrInlineFragment is called right after the '...' has
// been consumed. A following Name other than the reserved word "on" is a
// FragmentSpread; "on TypeCondition", or no type condition at all, is an
// InlineFragment.
func (p *Parser) parseFragmentSpreadOrInlineFragment() (ast.Selection, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.Selection{}, err
	}

	if tok.Kind == token.Name && ast.KeywordFromName(tok.Data) != ast.KeywordOn {
		name, err := p.expectName()
		if err != nil {
			return ast.Selection{}, err
		}
		directives, err := p.parseDirectives(false)
		if err != nil {
			return ast.Selection{}, err
		}
		ref := p.doc.FragSpreads.Alloc(ast.FragmentSpread{FragmentName: name, Directives: directives})

		return ast.Selection{Kind: ast.SelectionFragmentSpread, Ref: int(ref)}, nil
	}

	var typeCondition []byte
	if _, ok, err := p.expectOptionalKeyword(ast.KeywordOn); err != nil {
		return ast.Selection{}, err
	} else if ok {
		typeCondition, err = p.expectName()
		if err != nil {
			return ast.Selection{}, err
		}
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Selection{}, err
	}
	ss, err := p.parseSelectionSet()
	if err != nil {
		return ast.Selection{}, err
	}

	ref := p.doc.InlineFrags.Alloc(ast.InlineFragment{TypeCondition: typeCondition, Directives: directives, SelectionSet: ss})

	return ast.Selection{Kind: ast.SelectionInlineFragment, Ref: int(ref)}, nil
}

func (p *Parser) parseField() (ast.Selection, error) {
	name, err := p.expectName()
	if err != nil {
		return ast.Selection{}, err
	}

	var alias []byte
	if _, ok, err := p.expectOptional(token.Colon); err != nil {
		return ast.Selection{}, err
	} else if ok {
		alias = name
		name, err = p.expectName()
		if err != nil {
			return ast.Selection{}, err
		}
	}

	args, err := p.parseOptionalArguments(false)
	if err != nil {
		return ast.Selection{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Selection{}, err
	}
	ss, err := p.parseOptionalSelectionSet()
	if err != nil {
		return ast.Selection{}, err
	}

	ref := p.doc.Fields.Alloc(ast.Field{
		Alias:        alias,
		Name:         name,
		Arguments:    args,
		Directives:   directives,
		SelectionSet: ss,
	})

	return ast.Selection{Kind: ast.SelectionField, Ref: int(ref)}, nil
}

// parseFragmentDefinition rejects the reserved fragment name "on", per
// the October 2021 grammar's ban on FragmentName being that keyword.
func (p *Parser) parseFragmentDefinition() (ast.Node, error) {
	if _, err := p.expectKeyword(ast.KeywordFragment); err != nil {
		return ast.Node{}, err
	}

	nameTok, err := p.expect(token.Name)
	if err != nil {
		return ast.Node{}, err
	}
	if ast.KeywordFromName(nameTok.Data) == ast.KeywordOn {
		return ast.Node{}, parseerr.New(parseerr.UnexpectedFragmentName, nameTok, "fragment name must not be \"on\"")
	}

	if _, err := p.expectKeyword(ast.KeywordOn); err != nil {
		return ast.Node{}, err
	}
	typeCondition, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	ss, err := p.parseSelectionSet()
	if err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.Fragments.Alloc(ast.FragmentDefinition{
		Name:          nameTok.Data,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  ss,
	})

	return ast.Node{Kind: ast.NodeFragmentDefinition, Ref: int(ref)}, nil
}
