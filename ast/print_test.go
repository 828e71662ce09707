package ast_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/graphqlkit/gqlast/parser"
)

func TestSprintOperationGolden(t *testing.T) {
	t.Parallel()

	source := []byte("query Hello($id: ID!) {\n  user(id: $id) {\n    name\n  }\n}\n")
	doc, err := parser.Parse(source)
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)

	g := goldie.New(t)
	g.Assert(t, "operation_query", []byte(doc.Sprint(doc.Definitions[0])))
}

func TestSprintObjectTypeDefinition(t *testing.T) {
	t.Parallel()

	doc, err := parser.Parse([]byte("type Post implements Node { id: ID! }"))
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)

	require.Equal(t, "(type Post Node (id ID!))", doc.Sprint(doc.Definitions[0]))
}

func TestSprintEnumTypeDefinition(t *testing.T) {
	t.Parallel()

	doc, err := parser.Parse([]byte("enum Status { DRAFT PUBLISHED }"))
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)

	require.Equal(t, "(enum Status (values DRAFT PUBLISHED))", doc.Sprint(doc.Definitions[0]))
}
