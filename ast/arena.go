package ast

import "github.com/graphqlkit/gqlast/arena"

// Ref and Pool are aliased from package arena so the rest of this package
// can write Ref[Field] instead of arena.Ref[Field] everywhere; the arena
// itself carries no GraphQL-specific behavior and belongs in its own
// package.
type (
	Ref[T any]  = arena.Ref[T]
	Pool[T any] = arena.Pool[T]
)

func NewPool[T any](capacity int) *Pool[T] {
	return arena.NewPool[T](capacity)
}
