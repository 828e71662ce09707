package ast

// SchemaDefinition declares the root operation types for a document.
// Its `{ ... }` block is required and non-empty per the October 2021
// grammar.
type SchemaDefinition struct {
	Description        []byte // nil if absent
	Directives         []Ref[Directive]
	RootOperationTypes []Ref[RootOperationTypeDefinition]
}

// SchemaExtension adds directives and/or root operation types to a
// previously declared schema; at least one of its clauses must be
// present and non-empty.
type SchemaExtension struct {
	Directives         []Ref[Directive]
	RootOperationTypes []Ref[RootOperationTypeDefinition]
}

// RootOperationTypeDefinition binds one operation type to an object type
// name inside a schema definition/extension.
type RootOperationTypeDefinition struct {
	OperationType OperationType
	NamedType     []byte
}

// ScalarTypeDefinition declares a custom scalar.
type ScalarTypeDefinition struct {
	Description []byte
	Name        []byte
	Directives  []Ref[Directive]
}

// ScalarTypeExtension adds directives to a scalar; it must carry at
// least one.
type ScalarTypeExtension struct {
	Name       []byte
	Directives []Ref[Directive]
}

// ObjectTypeDefinition declares an object type, its interfaces, and its
// fields.
type ObjectTypeDefinition struct {
	Description []byte
	Name        []byte
	Implements  [][]byte // interface type names; at least one if present
	Directives  []Ref[Directive]
	Fields      []Ref[FieldDefinition]
}

// ObjectTypeExtension adds interfaces, directives and/or fields to an
// object type; at least one clause must be present and non-empty.
type ObjectTypeExtension struct {
	Name       []byte
	Implements [][]byte
	Directives []Ref[Directive]
	Fields     []Ref[FieldDefinition]
}

// InterfaceTypeDefinition declares an interface type. Interfaces may
// themselves implement interfaces (`implements` list).
type InterfaceTypeDefinition struct {
	Description []byte
	Name        []byte
	Implements  [][]byte
	Directives  []Ref[Directive]
	Fields      []Ref[FieldDefinition]
}

// InterfaceTypeExtension mirrors ObjectTypeExtension for interfaces.
type InterfaceTypeExtension struct {
	Name       []byte
	Implements [][]byte
	Directives []Ref[Directive]
	Fields     []Ref[FieldDefinition]
}

// UnionTypeDefinition declares a union and its member types.
type UnionTypeDefinition struct {
	Description []byte
	Name        []byte
	Directives  []Ref[Directive]
	MemberTypes [][]byte
}

// UnionTypeExtension adds directives and/or member types to a union;
// at least one clause must be present and non-empty.
type UnionTypeExtension struct {
	Name        []byte
	Directives  []Ref[Directive]
	MemberTypes [][]byte
}

// EnumTypeDefinition declares an enum and its values.
type EnumTypeDefinition struct {
	Description []byte
	Name        []byte
	Directives  []Ref[Directive]
	Values      []Ref[EnumValueDefinition]
}

// EnumTypeExtension adds directives and/or values to an enum; at least
// one clause must be present and non-empty.
type EnumTypeExtension struct {
	Name       []byte
	Directives []Ref[Directive]
	Values     []Ref[EnumValueDefinition]
}

// EnumValueDefinition is one member of an enum type. Value must not be
// one of the reserved words true/false/null.
type EnumValueDefinition struct {
	Description []byte
	Value       []byte
	Directives  []Ref[Directive]
}

// InputObjectTypeDefinition declares an input object and its fields.
type InputObjectTypeDefinition struct {
	Description []byte
	Name        []byte
	Directives  []Ref[Directive]
	Fields      []Ref[InputValueDefinition]
}

// InputObjectTypeExtension adds directives and/or fields to an input
// object; at least one clause must be present and non-empty.
type InputObjectTypeExtension struct {
	Name       []byte
	Directives []Ref[Directive]
	Fields     []Ref[InputValueDefinition]
}

// InputValueDefinition is one argument or input-object field: a name, a
// type, an optional const default value and optional directives.
type InputValueDefinition struct {
	Description  []byte
	Name         []byte
	Type         Ref[Type]
	DefaultValue *Value
	Directives   []Ref[Directive]
}

// FieldDefinition is one field of an object or interface type.
type FieldDefinition struct {
	Description []byte
	Name        []byte
	Arguments   []Ref[InputValueDefinition]
	Type        Ref[Type]
	Directives  []Ref[Directive]
}

// DirectiveDefinition declares a directive, its arguments, whether it is
// repeatable, and the locations it may annotate.
type DirectiveDefinition struct {
	Description []byte
	Name        []byte
	Arguments   []Ref[InputValueDefinition]
	Repeatable  bool
	Locations   []DirectiveLocation
}
