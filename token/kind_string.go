// Hand-written String method for Kind, kept in sync with the Kind
// constants by hand. It is not stringer output: running the go:generate
// directive in token.go would replace this file.

package token

import "strconv"

func (k Kind) String() string {
	switch k {
	case Eof:
		return "Eof"
	case Whitespace:
		return "Whitespace"
	case Comment:
		return "Comment"
	case Bang:
		return "Bang"
	case Dollar:
		return "Dollar"
	case Amp:
		return "Amp"
	case Spread:
		return "Spread"
	case Comma:
		return "Comma"
	case Colon:
		return "Colon"
	case Eq:
		return "Eq"
	case At:
		return "At"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case LCurly:
		return "LCurly"
	case RCurly:
		return "RCurly"
	case Pipe:
		return "Pipe"
	case Name:
		return "Name"
	case StringValue:
		return "StringValue"
	case Int:
		return "Int"
	case Float:
		return "Float"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}
