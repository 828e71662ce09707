package parser_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/graphqlkit/gqlast/ast"
	"github.com/graphqlkit/gqlast/parseerr"
	"github.com/graphqlkit/gqlast/parser"
)

// documentCase is the table-test fixture shape for this package: simpler
// than the teacher's TestData (no per-pass Expected map, since a document
// has exactly one pass here), but read the same way — a YAML list with a
// boolean gate so a case can be parked without deleting it.
type documentCase struct {
	Label           string `yaml:"label"`
	Enable          bool   `yaml:"enable"`
	Input           string `yaml:"input"`
	WantDefinitions int    `yaml:"wantDefinitions"`
}

func readDocumentCases(t *testing.T) []documentCase {
	t.Helper()

	raw, err := os.ReadFile("testdata/documents.yaml")
	require.NoError(t, err)

	var cases []documentCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))

	enabled := cases[:0]
	for _, c := range cases {
		if c.Enable {
			enabled = append(enabled, c)
		}
	}

	return enabled
}

func TestParseFromFixtures(t *testing.T) {
	t.Parallel()

	for _, tc := range readDocumentCases(t) {
		tc := tc
		t.Run(tc.Label, func(t *testing.T) {
			t.Parallel()

			doc, err := parser.Parse([]byte(tc.Input))
			require.NoError(t, err)
			assert.Len(t, doc.Definitions, tc.WantDefinitions)
		})
	}
}

func TestParseRejectsEmptySelectionSet(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse([]byte("{ }"))
	require.Error(t, err)

	var perr parseerr.AtToken
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parseerr.UnexpectedToken, perr.Kind)
}

func TestParseRejectsExtensionWithNoClauses(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse([]byte("extend scalar Money"))
	require.Error(t, err)

	var perr parseerr.AtToken
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parseerr.UnexpectedToken, perr.Kind)
}

func TestParseRejectsReservedEnumValueName(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse([]byte("enum Status { true }"))
	require.Error(t, err)

	var perr parseerr.AtToken
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parseerr.ReservedEnumValueName, perr.Kind)
}

func TestParseRejectsFragmentNamedOn(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse([]byte("fragment on on Post { id }"))
	require.Error(t, err)

	var perr parseerr.AtToken
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parseerr.UnexpectedFragmentName, perr.Kind)
}

func TestParseRejectsVariableInConstContext(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse([]byte("input Filter { status: Status = $x }"))
	require.Error(t, err)

	var perr parseerr.AtToken
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parseerr.UnexpectedVariable, perr.Kind)
}

func TestWithLimitFailsLongDocuments(t *testing.T) {
	t.Parallel()

	_, err := parser.ParseWithLimit([]byte("query Q { field }"), 1)
	require.Error(t, err)
}

func TestParseDirectiveDefinitionLocations(t *testing.T) {
	t.Parallel()

	doc, err := parser.Parse([]byte("directive @cached(ttl: Int = 60) repeatable on FIELD | FRAGMENT_SPREAD"))
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)

	dd := doc.DirectiveDefs.Get(ast.Ref[ast.DirectiveDefinition](doc.Definitions[0].Ref))
	assert.True(t, dd.Repeatable)

	want := []ast.DirectiveLocation{ast.LocationField, ast.LocationFragmentSpread}
	if diff := cmp.Diff(want, dd.Locations); diff != "" {
		t.Errorf("directive locations mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBuildsExpectedFieldShape(t *testing.T) {
	t.Parallel()

	doc, err := parser.Parse([]byte(`query { user(id: "1") { name } }`))
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)

	op := doc.Operations.Get(ast.Ref[ast.OperationDefinition](doc.Definitions[0].Ref))
	assert.Equal(t, ast.Query, op.Operation)

	set := doc.SelectionSets.Get(op.SelectionSet)
	require.Len(t, set.Selections, 1)
	require.Equal(t, ast.SelectionField, set.Selections[0].Kind)

	userField := doc.Fields.Get(ast.Ref[ast.Field](set.Selections[0].Ref))
	assert.Equal(t, "user", string(userField.Name))
	require.Len(t, userField.Arguments, 1)

	arg := doc.Arguments.Get(userField.Arguments[0])
	assert.Equal(t, "id", string(arg.Name))
	assert.Equal(t, ast.ValueString, arg.Value.Kind)
}
