package ast

// DirectiveLocation is one of the 19 fixed positions a directive
// definition may permit. Keeping this as a closed type, rather than a
// bare string, gives callers building on this AST (e.g. a directive
// registry) something to switch over exhaustively.
type DirectiveLocation int

const (
	LocationUndefined DirectiveLocation = iota

	// Executable locations.
	LocationQuery
	LocationMutation
	LocationSubscription
	LocationField
	LocationFragmentDefinition
	LocationFragmentSpread
	LocationInlineFragment
	LocationVariableDefinition

	// Type-system locations.
	LocationSchema
	LocationScalar
	LocationObject
	LocationFieldDefinition
	LocationArgumentDefinition
	LocationInterface
	LocationUnion
	LocationEnum
	LocationEnumValue
	LocationInputObject
	LocationInputFieldDefinition
)

func (l DirectiveLocation) String() string {
	switch l {
	case LocationQuery:
		return "QUERY"
	case LocationMutation:
		return "MUTATION"
	case LocationSubscription:
		return "SUBSCRIPTION"
	case LocationField:
		return "FIELD"
	case LocationFragmentDefinition:
		return "FRAGMENT_DEFINITION"
	case LocationFragmentSpread:
		return "FRAGMENT_SPREAD"
	case LocationInlineFragment:
		return "INLINE_FRAGMENT"
	case LocationVariableDefinition:
		return "VARIABLE_DEFINITION"
	case LocationSchema:
		return "SCHEMA"
	case LocationScalar:
		return "SCALAR"
	case LocationObject:
		return "OBJECT"
	case LocationFieldDefinition:
		return "FIELD_DEFINITION"
	case LocationArgumentDefinition:
		return "ARGUMENT_DEFINITION"
	case LocationInterface:
		return "INTERFACE"
	case LocationUnion:
		return "UNION"
	case LocationEnum:
		return "ENUM"
	case LocationEnumValue:
		return "ENUM_VALUE"
	case LocationInputObject:
		return "INPUT_OBJECT"
	case LocationInputFieldDefinition:
		return "INPUT_FIELD_DEFINITION"
	default:
		return "LocationUndefined"
	}
}

// DirectiveLocationFromName maps a Name token's bytes to the directive
// location it names, or LocationUndefined if it names none of the 19
// fixed locations.
func DirectiveLocationFromName(name []byte) DirectiveLocation {
	switch string(name) {
	case "QUERY":
		return LocationQuery
	case "MUTATION":
		return LocationMutation
	case "SUBSCRIPTION":
		return LocationSubscription
	case "FIELD":
		return LocationField
	case "FRAGMENT_DEFINITION":
		return LocationFragmentDefinition
	case "FRAGMENT_SPREAD":
		return LocationFragmentSpread
	case "INLINE_FRAGMENT":
		return LocationInlineFragment
	case "VARIABLE_DEFINITION":
		return LocationVariableDefinition
	case "SCHEMA":
		return LocationSchema
	case "SCALAR":
		return LocationScalar
	case "OBJECT":
		return LocationObject
	case "FIELD_DEFINITION":
		return LocationFieldDefinition
	case "ARGUMENT_DEFINITION":
		return LocationArgumentDefinition
	case "INTERFACE":
		return LocationInterface
	case "UNION":
		return LocationUnion
	case "ENUM":
		return LocationEnum
	case "ENUM_VALUE":
		return LocationEnumValue
	case "INPUT_OBJECT":
		return LocationInputObject
	case "INPUT_FIELD_DEFINITION":
		return LocationInputFieldDefinition
	default:
		return LocationUndefined
	}
}
