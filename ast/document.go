// Package ast defines the GraphQL AST produced by package parser: an
// arena of typed node pools addressed by small integer Refs instead of
// pointers, plus the sum-type tags (Kind fields) needed to walk a
// heterogeneous list without an interface per node.
//
// Every node is immutable once the parser returns it. The whole tree,
// including every []byte slice borrowed from the source, is released in
// one step when the caller drops the *Document (and, if the source was
// heap-allocated, the source itself).
package ast

// Document is both the AST root and its own arena: it owns one Pool per
// node kind and the ordered list of top-level Definitions.
type Document struct {
	// Input is the exact byte source every Token/Name/Value slice in this
	// document aliases.
	Input []byte

	// Definitions lists the document's top-level productions in source
	// order: a mix of executable definitions, type-system definitions and
	// type-system extensions, tagged by Kind.
	Definitions []Node

	Operations   Pool[OperationDefinition]
	Fragments    Pool[FragmentDefinition]
	Variables    Pool[VariableDefinition]
	Directives   Pool[Directive]
	Arguments    Pool[Argument]
	Types        Pool[Type]
	ListValues   Pool[ListValue]
	ObjectValues Pool[ObjectValue]

	SelectionSets Pool[SelectionSet]
	Fields        Pool[Field]
	InlineFrags   Pool[InlineFragment]
	FragSpreads   Pool[FragmentSpread]

	Schemas          Pool[SchemaDefinition]
	SchemaExts       Pool[SchemaExtension]
	RootOperations   Pool[RootOperationTypeDefinition]
	Scalars          Pool[ScalarTypeDefinition]
	ScalarExts       Pool[ScalarTypeExtension]
	Objects          Pool[ObjectTypeDefinition]
	ObjectExts       Pool[ObjectTypeExtension]
	Interfaces       Pool[InterfaceTypeDefinition]
	InterfaceExts    Pool[InterfaceTypeExtension]
	Unions           Pool[UnionTypeDefinition]
	UnionExts        Pool[UnionTypeExtension]
	Enums            Pool[EnumTypeDefinition]
	EnumExts         Pool[EnumTypeExtension]
	EnumValues       Pool[EnumValueDefinition]
	InputObjects     Pool[InputObjectTypeDefinition]
	InputObjectExts  Pool[InputObjectTypeExtension]
	InputValues      Pool[InputValueDefinition]
	FieldDefinitions Pool[FieldDefinition]
	DirectiveDefs    Pool[DirectiveDefinition]
}

// NewDocument returns an empty Document over source. Pool capacities are
// seeded the way the corpus's own arena-of-slices AST does, sized for a
// modest document; every pool grows past its seed capacity like any Go
// slice.
func NewDocument(source []byte) *Document {
	return &Document{
		Input:       source,
		Definitions: make([]Node, 0, 8),

		Operations:   *NewPool[OperationDefinition](4),
		Fragments:    *NewPool[FragmentDefinition](4),
		Variables:    *NewPool[VariableDefinition](8),
		Directives:   *NewPool[Directive](16),
		Arguments:    *NewPool[Argument](32),
		Types:        *NewPool[Type](32),
		ListValues:   *NewPool[ListValue](4),
		ObjectValues: *NewPool[ObjectValue](4),

		SelectionSets: *NewPool[SelectionSet](32),
		Fields:        *NewPool[Field](64),
		InlineFrags:   *NewPool[InlineFragment](4),
		FragSpreads:   *NewPool[FragmentSpread](8),

		Schemas:          *NewPool[SchemaDefinition](1),
		SchemaExts:       *NewPool[SchemaExtension](1),
		RootOperations:   *NewPool[RootOperationTypeDefinition](3),
		Scalars:          *NewPool[ScalarTypeDefinition](4),
		ScalarExts:       *NewPool[ScalarTypeExtension](1),
		Objects:          *NewPool[ObjectTypeDefinition](16),
		ObjectExts:       *NewPool[ObjectTypeExtension](4),
		Interfaces:       *NewPool[InterfaceTypeDefinition](4),
		InterfaceExts:    *NewPool[InterfaceTypeExtension](1),
		Unions:           *NewPool[UnionTypeDefinition](4),
		UnionExts:        *NewPool[UnionTypeExtension](1),
		Enums:            *NewPool[EnumTypeDefinition](4),
		EnumExts:         *NewPool[EnumTypeExtension](1),
		EnumValues:       *NewPool[EnumValueDefinition](16),
		InputObjects:     *NewPool[InputObjectTypeDefinition](4),
		InputObjectExts:  *NewPool[InputObjectTypeExtension](1),
		InputValues:      *NewPool[InputValueDefinition](32),
		FieldDefinitions: *NewPool[FieldDefinition](64),
		DirectiveDefs:    *NewPool[DirectiveDefinition](4),
	}
}

// NodeKind tags the family of a top-level Definition (and, for
// TypeSystemExtension, which concrete type it extends).
type NodeKind int

const (
	NodeUndefined NodeKind = iota
	NodeOperationDefinition
	NodeFragmentDefinition
	NodeSchemaDefinition
	NodeSchemaExtension
	NodeScalarTypeDefinition
	NodeObjectTypeDefinition
	NodeInterfaceTypeDefinition
	NodeUnionTypeDefinition
	NodeEnumTypeDefinition
	NodeInputObjectTypeDefinition
	NodeScalarTypeExtension
	NodeObjectTypeExtension
	NodeInterfaceTypeExtension
	NodeUnionTypeExtension
	NodeEnumTypeExtension
	NodeInputObjectTypeExtension
	NodeDirectiveDefinition
)

func (k NodeKind) String() string {
	switch k {
	case NodeOperationDefinition:
		return "OperationDefinition"
	case NodeFragmentDefinition:
		return "FragmentDefinition"
	case NodeSchemaDefinition:
		return "SchemaDefinition"
	case NodeSchemaExtension:
		return "SchemaExtension"
	case NodeScalarTypeDefinition:
		return "ScalarTypeDefinition"
	case NodeObjectTypeDefinition:
		return "ObjectTypeDefinition"
	case NodeInterfaceTypeDefinition:
		return "InterfaceTypeDefinition"
	case NodeUnionTypeDefinition:
		return "UnionTypeDefinition"
	case NodeEnumTypeDefinition:
		return "EnumTypeDefinition"
	case NodeInputObjectTypeDefinition:
		return "InputObjectTypeDefinition"
	case NodeScalarTypeExtension:
		return "ScalarTypeExtension"
	case NodeObjectTypeExtension:
		return "ObjectTypeExtension"
	case NodeInterfaceTypeExtension:
		return "InterfaceTypeExtension"
	case NodeUnionTypeExtension:
		return "UnionTypeExtension"
	case NodeEnumTypeExtension:
		return "EnumTypeExtension"
	case NodeInputObjectTypeExtension:
		return "InputObjectTypeExtension"
	case NodeDirectiveDefinition:
		return "DirectiveDefinition"
	default:
		return "NodeUndefined"
	}
}

// Node is a heterogeneous reference into one of Document's pools. Unlike
// the rest of the AST, which uses the statically-typed Ref[T], the
// top-level Definitions list mixes node kinds and so needs a runtime tag
// — Go has no way to express a slice of "Ref[T] for varying T" otherwise.
type Node struct {
	Kind NodeKind
	Ref  int
}
