package ast

// TypeKind tags the alternative a Type holds.
type TypeKind int

const (
	TypeUndefined TypeKind = iota
	TypeNamed
	TypeList
	TypeNonNull
)

// Type is a GraphQL type reference: NamedType | ListType(→Type) |
// NonNullType(→Type). Only NamedType and ListType may appear inside a
// NonNullType — the parser enforces that a NonNullType never wraps
// another NonNullType, since the grammar has no production for it.
type Type struct {
	Kind TypeKind

	// Name is meaningful iff Kind == TypeNamed.
	Name []byte

	// OfType is meaningful iff Kind is TypeList or TypeNonNull; it
	// indexes into the owning Document's Types pool.
	OfType Ref[Type]
}
