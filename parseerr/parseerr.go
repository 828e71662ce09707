// Package parseerr defines the syntactic error taxonomy the parser raises,
// each wrapped with the token it was positioned at.
package parseerr

import (
	"fmt"

	"github.com/graphqlkit/gqlast/token"
)

// Kind is the closed set of syntactic failures package parser can raise.
type Kind int

const (
	UnexpectedToken Kind = iota
	UnknownKeyword
	UnknownDefinition
	UnexpectedKeyword
	UnknownDirectiveLocation
	ReservedEnumValueName
	UnexpectedFragmentName
	UnexpectedVariable
)

func (k Kind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnknownKeyword:
		return "UnknownKeyword"
	case UnknownDefinition:
		return "UnknownDefinition"
	case UnexpectedKeyword:
		return "UnexpectedKeyword"
	case UnknownDirectiveLocation:
		return "UnknownDirectiveLocation"
	case ReservedEnumValueName:
		return "ReservedEnumValueName"
	case UnexpectedFragmentName:
		return "UnexpectedFragmentName"
	case UnexpectedVariable:
		return "UnexpectedVariable"
	default:
		return "Kind(?)"
	}
}

// AtToken is a syntactic error positioned at the token the parser was
// looking at when it gave up, in the shape of the teacher's ErrorAt: a
// closed Kind plus enough context to report it usefully.
type AtToken struct {
	Kind    Kind
	Where   token.Token
	Message string
}

func (e AtToken) Error() string {
	if e.Where.Kind == token.Eof {
		return fmt.Sprintf("at end: %s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("at %d:%d: %s: %s (got %s)", e.Where.Line, e.Where.Col, e.Kind, e.Message, e.Where)
}

// New wraps kind/tok/message into an AtToken. Message may be empty when
// the Kind and token already say enough.
func New(kind Kind, tok token.Token, message string) error {
	return AtToken{Kind: kind, Where: tok, Message: message}
}
