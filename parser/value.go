package parser

import (
	"github.com/graphqlkit/gqlast/ast"
	"github.com/graphqlkit/gqlast/parseerr"
	"github.com/graphqlkit/gqlast/token"
)

// parseValue implements the Value grammar. isConst restricts the Variable
// alternative: in a const context, "$Name" fails UnexpectedVariable and a
// bare "$" fails UnexpectedToken.
func (p *Parser) parseValue(isConst bool) (ast.Value, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.Value{}, err
	}
	trace("parseValue", tok)

	switch tok.Kind {
	case token.LBracket:
		return p.parseListValue(isConst)
	case token.LCurly:
		return p.parseObjectValue(isConst)
	case token.Int:
		if _, err := p.pop(); err != nil {
			return ast.Value{}, err
		}

		return ast.Value{Kind: ast.ValueInt, Name: tok.Data}, nil
	case token.Float:
		if _, err := p.pop(); err != nil {
			return ast.Value{}, err
		}

		return ast.Value{Kind: ast.ValueFloat, Name: tok.Data}, nil
	case token.StringValue:
		if _, err := p.pop(); err != nil {
			return ast.Value{}, err
		}

		return ast.Value{Kind: ast.ValueString, Name: tok.Data}, nil
	case token.Name:
		return p.parseNameValue(tok)
	case token.Dollar:
		return p.parseVariableValue(isConst, tok)
	default:
		return ast.Value{}, parseerr.New(parseerr.UnexpectedToken, tok, "expected a value")
	}
}

// parseNameValue resolves the reserved words true/false/null to their
// Boolean/Null variants; any other Name becomes an Enum value.
func (p *Parser) parseNameValue(tok token.Token) (ast.Value, error) {
	if _, err := p.pop(); err != nil {
		return ast.Value{}, err
	}

	switch string(tok.Data) {
	case "true":
		return ast.Value{Kind: ast.ValueBoolean, Boolean: true}, nil
	case "false":
		return ast.Value{Kind: ast.ValueBoolean, Boolean: false}, nil
	case "null":
		return ast.Value{Kind: ast.ValueNull}, nil
	default:
		return ast.Value{Kind: ast.ValueEnum, Name: tok.Data}, nil
	}
}

func (p *Parser) parseVariableValue(isConst bool, dollar token.Token) (ast.Value, error) {
	if _, err := p.pop(); err != nil {
		return ast.Value{}, err
	}

	if isConst {
		if nameTok, ok, err := p.expectOptional(token.Name); err != nil {
			return ast.Value{}, err
		} else if ok {
			return ast.Value{}, parseerr.New(parseerr.UnexpectedVariable, nameTok, "variables are not allowed in a const context")
		}

		return ast.Value{}, parseerr.New(parseerr.UnexpectedToken, dollar, "variables are not allowed in a const context")
	}

	name, err := p.expectName()
	if err != nil {
		return ast.Value{}, err
	}

	return ast.Value{Kind: ast.ValueVariable, Name: name}, nil
}

func (p *Parser) parseListValue(isConst bool) (ast.Value, error) {
	values, err := anyList(p, token.LBracket, token.RBracket, func() (ast.Value, error) {
		return p.parseValue(isConst)
	})
	if err != nil {
		return ast.Value{}, err
	}

	return ast.Value{Kind: ast.ValueList, List: p.doc.ListValues.Alloc(ast.ListValue{Values: values})}, nil
}

func (p *Parser) parseObjectValue(isConst bool) (ast.Value, error) {
	fields, err := anyList(p, token.LCurly, token.RCurly, func() (ast.ObjectField, error) {
		name, err := p.expectName()
		if err != nil {
			return ast.ObjectField{}, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return ast.ObjectField{}, err
		}
		val, err := p.parseValue(isConst)
		if err != nil {
			return ast.ObjectField{}, err
		}

		return ast.ObjectField{Name: name, Value: val}, nil
	})
	if err != nil {
		return ast.Value{}, err
	}

	return ast.Value{Kind: ast.ValueObject, Object: p.doc.ObjectValues.Alloc(ast.ObjectValue{Fields: fields})}, nil
}
