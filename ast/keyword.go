package ast

// Keyword is the closed set of reserved words (plus one punctuation
// sentinel) the parser dispatches on at the top of a definition. The
// lexer has no concept of keywords — every one of these arrives as a
// plain Name token, or, for the shorthand anonymous-query form, as a
// LCurly token — and it is the parser's job to classify it.
type Keyword int

const (
	KeywordUndefined Keyword = iota
	KeywordOn
	KeywordDirective
	KeywordEnum
	KeywordExtend
	KeywordFragment
	KeywordImplements
	KeywordInput
	KeywordInterface
	KeywordMutation
	KeywordQuery
	KeywordRepeatable
	KeywordScalar
	KeywordSchema
	KeywordSubscription
	KeywordType
	KeywordUnion

	// KeywordLCurly is not a Name keyword at all: it lets parseDefinition
	// dispatch the `{` of an anonymous query shorthand through the same
	// switch it uses for the Name-keyword cases.
	KeywordLCurly
)

// KeywordFromName maps a Name token's bytes to the keyword it spells, or
// KeywordUndefined if it is an ordinary identifier. Dispatch is by byte
// length first, the same shape as a hand-rolled perfect-hash table over
// a small closed vocabulary.
func KeywordFromName(name []byte) Keyword {
	switch len(name) {
	case 2:
		if name[0] == 'o' && name[1] == 'n' {
			return KeywordOn
		}
	case 4:
		if name[0] == 'e' && name[1] == 'n' && name[2] == 'u' && name[3] == 'm' {
			return KeywordEnum
		}
		if name[0] == 't' && name[1] == 'y' && name[2] == 'p' && name[3] == 'e' {
			return KeywordType
		}
	case 5:
		if name[0] == 'u' && name[1] == 'n' && name[2] == 'i' && name[3] == 'o' && name[4] == 'n' {
			return KeywordUnion
		}
		if name[0] == 'q' && name[1] == 'u' && name[2] == 'e' && name[3] == 'r' && name[4] == 'y' {
			return KeywordQuery
		}
		if name[0] == 'i' && name[1] == 'n' && name[2] == 'p' && name[3] == 'u' && name[4] == 't' {
			return KeywordInput
		}
	case 6:
		if name[0] == 's' && name[1] == 'c' && name[2] == 'h' && name[3] == 'e' && name[4] == 'm' && name[5] == 'a' {
			return KeywordSchema
		}
		if name[0] == 's' && name[1] == 'c' && name[2] == 'a' && name[3] == 'l' && name[4] == 'a' && name[5] == 'r' {
			return KeywordScalar
		}
		if name[0] == 'e' && name[1] == 'x' && name[2] == 't' && name[3] == 'e' && name[4] == 'n' && name[5] == 'd' {
			return KeywordExtend
		}
	case 8:
		if name[0] == 'm' && name[1] == 'u' && name[2] == 't' && name[3] == 'a' && name[4] == 't' && name[5] == 'i' && name[6] == 'o' && name[7] == 'n' {
			return KeywordMutation
		}
		if name[0] == 'f' && name[1] == 'r' && name[2] == 'a' && name[3] == 'g' && name[4] == 'm' && name[5] == 'e' && name[6] == 'n' && name[7] == 't' {
			return KeywordFragment
		}
	case 9:
		if name[0] == 'i' && name[1] == 'n' && name[2] == 't' && name[3] == 'e' && name[4] == 'r' && name[5] == 'f' && name[6] == 'a' && name[7] == 'c' && name[8] == 'e' {
			return KeywordInterface
		}
		if name[0] == 'd' && name[1] == 'i' && name[2] == 'r' && name[3] == 'e' && name[4] == 'c' && name[5] == 't' && name[6] == 'i' && name[7] == 'v' && name[8] == 'e' {
			return KeywordDirective
		}
	case 10:
		if name[0] == 'i' && name[1] == 'm' && name[2] == 'p' && name[3] == 'l' && name[4] == 'e' && name[5] == 'm' && name[6] == 'e' && name[7] == 'n' && name[8] == 't' && name[9] == 's' {
			return KeywordImplements
		}
		if name[0] == 'r' && name[1] == 'e' && name[2] == 'p' && name[3] == 'e' && name[4] == 'a' && name[5] == 't' && name[6] == 'a' && name[7] == 'b' && name[8] == 'l' && name[9] == 'e' {
			return KeywordRepeatable
		}
	case 12:
		if string(name) == "subscription" {
			return KeywordSubscription
		}
	}

	return KeywordUndefined
}

func (k Keyword) String() string {
	switch k {
	case KeywordOn:
		return "on"
	case KeywordDirective:
		return "directive"
	case KeywordEnum:
		return "enum"
	case KeywordExtend:
		return "extend"
	case KeywordFragment:
		return "fragment"
	case KeywordImplements:
		return "implements"
	case KeywordInput:
		return "input"
	case KeywordInterface:
		return "interface"
	case KeywordMutation:
		return "mutation"
	case KeywordQuery:
		return "query"
	case KeywordRepeatable:
		return "repeatable"
	case KeywordScalar:
		return "scalar"
	case KeywordSchema:
		return "schema"
	case KeywordSubscription:
		return "subscription"
	case KeywordType:
		return "type"
	case KeywordUnion:
		return "union"
	case KeywordLCurly:
		return "{"
	default:
		return "<undefined keyword>"
	}
}
