package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/graphqlkit/gqlast/ast"
	"github.com/graphqlkit/gqlast/parser"
)

func newParseCmd(root *rootCommand) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "parse a GraphQL document and print its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(root, args[0])
			if err != nil {
				return err
			}

			// --json always wins when passed explicitly; otherwise fall
			// back to root.format, which .gqlast.yaml's "format" key
			// (or its own "text" default) already populated.
			if asJSON || root.format == "json" {
				return printJSON(cmd, doc)
			}

			return printText(cmd, doc)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a structural JSON dump instead of s-expression text")

	return cmd
}

func parseFile(root *rootCommand, path string) (*ast.Document, error) {
	src, err := afero.ReadFile(defaultFs, path)
	if err != nil {
		return nil, fmt.Errorf("gqlast: reading %s: %w", path, err)
	}

	p := parser.New(src)
	if root.limit > 0 {
		p.WithLimit(root.limit)
	}

	doc, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("gqlast: parsing %s: %w", path, err)
	}

	return doc, nil
}

func printText(cmd *cobra.Command, doc *ast.Document) error {
	for i, def := range doc.Definitions {
		fmt.Fprintf(cmd.OutOrStdout(), "%2d: %s\n", i, doc.Sprint(def))
	}

	return nil
}

// definitionDump is the structural JSON shape for one top-level
// Definition: its Kind name for machine dispatch, plus the same
// s-expression Sprint renders as text, since Node's Kind/Ref pair is
// meaningless outside the Document that owns the pool it indexes.
type definitionDump struct {
	Kind  string `json:"kind"`
	Ref   int    `json:"ref"`
	Sexpr string `json:"sexpr"`
}

func printJSON(cmd *cobra.Command, doc *ast.Document) error {
	dump := make([]definitionDump, len(doc.Definitions))
	for i, def := range doc.Definitions {
		dump[i] = definitionDump{Kind: def.Kind.String(), Ref: def.Ref, Sexpr: doc.Sprint(def)}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(dump)
}
