package parser

import (
	"github.com/graphqlkit/gqlast/ast"
	"github.com/graphqlkit/gqlast/parseerr"
	"github.com/graphqlkit/gqlast/token"
)

// requireNonEmptyExtension implements the TypeExtension emptiness rule:
// an extension must carry at least one non-empty permitted clause. Every
// clause here already comes from a many/optionalMany call, which itself
// guarantees non-emptiness when its opening delimiter was present — so
// "empty but present" cannot happen; this only rejects "every clause
// absent".
func requireNonEmptyExtension(tok token.Token, present ...bool) error {
	for _, ok := range present {
		if ok {
			return nil
		}
	}

	return parseerr.New(parseerr.UnexpectedToken, tok, "extension must have at least one clause")
}

func (p *Parser) parseSchemaDefinition() (ast.Node, error) {
	desc, err := p.parseDescription()
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expectKeyword(ast.KeywordSchema); err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	// The October 2021 grammar requires a non-empty root-operation block.
	roots, err := many(p, token.LCurly, token.RCurly, p.parseRootOperationTypeDefinition)
	if err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.Schemas.Alloc(ast.SchemaDefinition{Description: desc, Directives: directives, RootOperationTypes: roots})

	return ast.Node{Kind: ast.NodeSchemaDefinition, Ref: int(ref)}, nil
}

func (p *Parser) parseSchemaExtension() (ast.Node, error) {
	tok, err := p.expectKeyword(ast.KeywordSchema)
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	roots, hasRoots, err := optionalMany(p, token.LCurly, token.RCurly, p.parseRootOperationTypeDefinition)
	if err != nil {
		return ast.Node{}, err
	}
	if err := requireNonEmptyExtension(tok, len(directives) > 0, hasRoots); err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.SchemaExts.Alloc(ast.SchemaExtension{Directives: directives, RootOperationTypes: roots})

	return ast.Node{Kind: ast.NodeSchemaExtension, Ref: int(ref)}, nil
}

func (p *Parser) parseRootOperationTypeDefinition() (ast.Ref[ast.RootOperationTypeDefinition], error) {
	opType, err := p.parseOperationType()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return 0, err
	}
	name, err := p.expectName()
	if err != nil {
		return 0, err
	}

	return p.doc.RootOperations.Alloc(ast.RootOperationTypeDefinition{OperationType: opType, NamedType: name}), nil
}

func (p *Parser) parseScalarTypeDefinition() (ast.Node, error) {
	desc, err := p.parseDescription()
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expectKeyword(ast.KeywordScalar); err != nil {
		return ast.Node{}, err
	}
	name, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.Scalars.Alloc(ast.ScalarTypeDefinition{Description: desc, Name: name, Directives: directives})

	return ast.Node{Kind: ast.NodeScalarTypeDefinition, Ref: int(ref)}, nil
}

func (p *Parser) parseScalarTypeExtension() (ast.Node, error) {
	if _, err := p.expectKeyword(ast.KeywordScalar); err != nil {
		return ast.Node{}, err
	}
	nameTok, err := p.expect(token.Name)
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	// Directives are the only permitted clause on a scalar extension.
	if err := requireNonEmptyExtension(nameTok, len(directives) > 0); err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.ScalarExts.Alloc(ast.ScalarTypeExtension{Name: nameTok.Data, Directives: directives})

	return ast.Node{Kind: ast.NodeScalarTypeExtension, Ref: int(ref)}, nil
}

// parseImplementsInterfaces parses the optional `implements A & B & C`
// clause shared by object and interface type definitions/extensions. A
// leading `&` before the first interface name is permitted.
func (p *Parser) parseImplementsInterfaces() ([][]byte, error) {
	if _, ok, err := p.expectOptionalKeyword(ast.KeywordImplements); err != nil || !ok {
		return nil, err
	}

	return delimitedMany(p, token.Amp, p.expectName)
}

func (p *Parser) parseObjectTypeDefinition() (ast.Node, error) {
	desc, err := p.parseDescription()
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expectKeyword(ast.KeywordType); err != nil {
		return ast.Node{}, err
	}
	name, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}
	implements, err := p.parseImplementsInterfaces()
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	fields, _, err := optionalMany(p, token.LCurly, token.RCurly, p.parseFieldDefinition)
	if err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.Objects.Alloc(ast.ObjectTypeDefinition{
		Description: desc, Name: name, Implements: implements, Directives: directives, Fields: fields,
	})

	return ast.Node{Kind: ast.NodeObjectTypeDefinition, Ref: int(ref)}, nil
}

func (p *Parser) parseObjectTypeExtension() (ast.Node, error) {
	tok, err := p.expectKeyword(ast.KeywordType)
	if err != nil {
		return ast.Node{}, err
	}
	name, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}
	implements, err := p.parseImplementsInterfaces()
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	fields, hasFields, err := optionalMany(p, token.LCurly, token.RCurly, p.parseFieldDefinition)
	if err != nil {
		return ast.Node{}, err
	}
	if err := requireNonEmptyExtension(tok, len(implements) > 0, len(directives) > 0, hasFields); err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.ObjectExts.Alloc(ast.ObjectTypeExtension{Name: name, Implements: implements, Directives: directives, Fields: fields})

	return ast.Node{Kind: ast.NodeObjectTypeExtension, Ref: int(ref)}, nil
}

func (p *Parser) parseInterfaceTypeDefinition() (ast.Node, error) {
	desc, err := p.parseDescription()
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expectKeyword(ast.KeywordInterface); err != nil {
		return ast.Node{}, err
	}
	name, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}
	implements, err := p.parseImplementsInterfaces()
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	fields, _, err := optionalMany(p, token.LCurly, token.RCurly, p.parseFieldDefinition)
	if err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.Interfaces.Alloc(ast.InterfaceTypeDefinition{
		Description: desc, Name: name, Implements: implements, Directives: directives, Fields: fields,
	})

	return ast.Node{Kind: ast.NodeInterfaceTypeDefinition, Ref: int(ref)}, nil
}

func (p *Parser) parseInterfaceTypeExtension() (ast.Node, error) {
	tok, err := p.expectKeyword(ast.KeywordInterface)
	if err != nil {
		return ast.Node{}, err
	}
	name, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}
	implements, err := p.parseImplementsInterfaces()
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	fields, hasFields, err := optionalMany(p, token.LCurly, token.RCurly, p.parseFieldDefinition)
	if err != nil {
		return ast.Node{}, err
	}
	if err := requireNonEmptyExtension(tok, len(implements) > 0, len(directives) > 0, hasFields); err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.InterfaceExts.Alloc(ast.InterfaceTypeExtension{Name: name, Implements: implements, Directives: directives, Fields: fields})

	return ast.Node{Kind: ast.NodeInterfaceTypeExtension, Ref: int(ref)}, nil
}

// parseUnionMemberTypes parses the optional `= A | B | C` clause. A
// leading `|` before the first member is permitted.
func (p *Parser) parseUnionMemberTypes() ([][]byte, error) {
	if _, ok, err := p.expectOptional(token.Eq); err != nil || !ok {
		return nil, err
	}

	return delimitedMany(p, token.Pipe, p.expectName)
}

func (p *Parser) parseUnionTypeDefinition() (ast.Node, error) {
	desc, err := p.parseDescription()
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expectKeyword(ast.KeywordUnion); err != nil {
		return ast.Node{}, err
	}
	name, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	members, err := p.parseUnionMemberTypes()
	if err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.Unions.Alloc(ast.UnionTypeDefinition{Description: desc, Name: name, Directives: directives, MemberTypes: members})

	return ast.Node{Kind: ast.NodeUnionTypeDefinition, Ref: int(ref)}, nil
}

func (p *Parser) parseUnionTypeExtension() (ast.Node, error) {
	tok, err := p.expectKeyword(ast.KeywordUnion)
	if err != nil {
		return ast.Node{}, err
	}
	name, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	members, err := p.parseUnionMemberTypes()
	if err != nil {
		return ast.Node{}, err
	}
	if err := requireNonEmptyExtension(tok, len(directives) > 0, len(members) > 0); err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.UnionExts.Alloc(ast.UnionTypeExtension{Name: name, Directives: directives, MemberTypes: members})

	return ast.Node{Kind: ast.NodeUnionTypeExtension, Ref: int(ref)}, nil
}

func (p *Parser) parseEnumTypeDefinition() (ast.Node, error) {
	desc, err := p.parseDescription()
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expectKeyword(ast.KeywordEnum); err != nil {
		return ast.Node{}, err
	}
	name, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	values, _, err := optionalMany(p, token.LCurly, token.RCurly, p.parseEnumValueDefinition)
	if err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.Enums.Alloc(ast.EnumTypeDefinition{Description: desc, Name: name, Directives: directives, Values: values})

	return ast.Node{Kind: ast.NodeEnumTypeDefinition, Ref: int(ref)}, nil
}

func (p *Parser) parseEnumTypeExtension() (ast.Node, error) {
	tok, err := p.expectKeyword(ast.KeywordEnum)
	if err != nil {
		return ast.Node{}, err
	}
	name, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	values, hasValues, err := optionalMany(p, token.LCurly, token.RCurly, p.parseEnumValueDefinition)
	if err != nil {
		return ast.Node{}, err
	}
	if err := requireNonEmptyExtension(tok, len(directives) > 0, hasValues); err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.EnumExts.Alloc(ast.EnumTypeExtension{Name: name, Directives: directives, Values: values})

	return ast.Node{Kind: ast.NodeEnumTypeExtension, Ref: int(ref)}, nil
}

// parseEnumValueDefinition rejects the reserved words true/false/null as
// an enum value's name.
func (p *Parser) parseEnumValueDefinition() (ast.Ref[ast.EnumValueDefinition], error) {
	desc, err := p.parseDescription()
	if err != nil {
		return 0, err
	}
	nameTok, err := p.expect(token.Name)
	if err != nil {
		return 0, err
	}
	switch string(nameTok.Data) {
	case "true", "false", "null":
		return 0, parseerr.New(parseerr.ReservedEnumValueName, nameTok, "enum value must not be true, false or null")
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return 0, err
	}

	return p.doc.EnumValues.Alloc(ast.EnumValueDefinition{Description: desc, Value: nameTok.Data, Directives: directives}), nil
}

func (p *Parser) parseInputObjectTypeDefinition() (ast.Node, error) {
	desc, err := p.parseDescription()
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expectKeyword(ast.KeywordInput); err != nil {
		return ast.Node{}, err
	}
	name, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	fields, _, err := optionalMany(p, token.LCurly, token.RCurly, p.parseInputValueDefinition)
	if err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.InputObjects.Alloc(ast.InputObjectTypeDefinition{Description: desc, Name: name, Directives: directives, Fields: fields})

	return ast.Node{Kind: ast.NodeInputObjectTypeDefinition, Ref: int(ref)}, nil
}

func (p *Parser) parseInputObjectTypeExtension() (ast.Node, error) {
	tok, err := p.expectKeyword(ast.KeywordInput)
	if err != nil {
		return ast.Node{}, err
	}
	name, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return ast.Node{}, err
	}
	fields, hasFields, err := optionalMany(p, token.LCurly, token.RCurly, p.parseInputValueDefinition)
	if err != nil {
		return ast.Node{}, err
	}
	if err := requireNonEmptyExtension(tok, len(directives) > 0, hasFields); err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.InputObjectExts.Alloc(ast.InputObjectTypeExtension{Name: name, Directives: directives, Fields: fields})

	return ast.Node{Kind: ast.NodeInputObjectTypeExtension, Ref: int(ref)}, nil
}

func (p *Parser) parseInputValueDefinition() (ast.Ref[ast.InputValueDefinition], error) {
	desc, err := p.parseDescription()
	if err != nil {
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

	return p.doc.InputValues.Alloc(ast.InputValueDefinition{
		Description: desc, Name: name, Type: typ, DefaultValue: defaultValue, Directives: directives,
	}), nil
}

func (p *Parser) parseFieldDefinition() (ast.Ref[ast.FieldDefinition], error) {
	desc, err := p.parseDescription()
	if err != nil {
		return 0, err
	}
	name, err := p.expectName()
	if err != nil {
		return 0, err
	}
	args, _, err := optionalMany(p, token.LParen, token.RParen, p.parseInputValueDefinition)
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
	directives, err := p.parseDirectives(false)
	if err != nil {
		return 0, err
	}

	return p.doc.FieldDefinitions.Alloc(ast.FieldDefinition{
		Description: desc, Name: name, Arguments: args, Type: typ, Directives: directives,
	}), nil
}

func (p *Parser) parseDirectiveDefinition() (ast.Node, error) {
	desc, err := p.parseDescription()
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expectKeyword(ast.KeywordDirective); err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expect(token.At); err != nil {
		return ast.Node{}, err
	}
	name, err := p.expectName()
	if err != nil {
		return ast.Node{}, err
	}
	args, _, err := optionalMany(p, token.LParen, token.RParen, p.parseInputValueDefinition)
	if err != nil {
		return ast.Node{}, err
	}
	_, repeatable, err := p.expectOptionalKeyword(ast.KeywordRepeatable)
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expectKeyword(ast.KeywordOn); err != nil {
		return ast.Node{}, err
	}
	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return ast.Node{}, err
	}

	ref := p.doc.DirectiveDefs.Alloc(ast.DirectiveDefinition{
		Description: desc, Name: name, Arguments: args, Repeatable: repeatable, Locations: locations,
	})

	return ast.Node{Kind: ast.NodeDirectiveDefinition, Ref: int(ref)}, nil
}

// parseDirectiveLocations parses a `|`-delimited list of the 19 fixed
// directive-location names, with an optional leading `|`.
func (p *Parser) parseDirectiveLocations() ([]ast.DirectiveLocation, error) {
	return delimitedMany(p, token.Pipe, p.parseDirectiveLocation)
}

func (p *Parser) parseDirectiveLocation() (ast.DirectiveLocation, error) {
	tok, err := p.expect(token.Name)
	if err != nil {
		return ast.LocationUndefined, err
	}
	loc := ast.DirectiveLocationFromName(tok.Data)
	if loc == ast.LocationUndefined {
		return ast.LocationUndefined, parseerr.New(parseerr.UnknownDirectiveLocation, tok, string(tok.Data))
	}

	return loc, nil
}
