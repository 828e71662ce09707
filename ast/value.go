package ast

// ValueKind tags the alternative a Value holds.
type ValueKind int

const (
	ValueUndefined ValueKind = iota
	ValueVariable
	ValueInt
	ValueFloat
	ValueString
	ValueBoolean
	ValueNull
	ValueEnum
	ValueList
	ValueObject
)

// Value is a GraphQL input value. Unlike Node and Selection, Value is
// small and leaf-heavy enough (a byte slice or a couple of ints) that it
// is stored inline wherever it appears rather than behind a Ref; only the
// two recursive alternatives, List and Object, indirect through a pool,
// so that Value itself stays a fixed, cheaply-copyable size.
type Value struct {
	Kind ValueKind

	// Name holds the literal bytes for Variable (the name after '$'),
	// Int, Float, String (quotes included, escapes not interpreted) and
	// Enum. It is nil for Boolean, Null, List and Object.
	Name []byte

	// Boolean is meaningful iff Kind == ValueBoolean.
	Boolean bool

	// List and Object are meaningful iff Kind is ValueList/ValueObject
	// respectively; they index into the owning Document's pools.
	List   Ref[ListValue]
	Object Ref[ObjectValue]
}

// ListValue is the payload of a Value with Kind == ValueList.
type ListValue struct {
	Values []Value
}

// ObjectValue is the payload of a Value with Kind == ValueObject.
type ObjectValue struct {
	Fields []ObjectField
}

// ObjectField is one `name : value` pair inside an object value.
type ObjectField struct {
	Name  []byte
	Value Value
}
