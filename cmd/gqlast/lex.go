package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/graphqlkit/gqlast/lexer"
)

func newLexCmd(root *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "lex <file>",
		Short: "batch-lex a GraphQL document and print its token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := afero.ReadFile(defaultFs, args[0])
			if err != nil {
				return fmt.Errorf("gqlast: reading %s: %w", args[0], err)
			}

			l := lexer.New(src)
			if root.limit > 0 {
				l.WithLimit(root.limit)
			}

			tokens, err := l.Lex()
			for _, tok := range tokens {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d:%-3d %s\n", tok.Line, tok.Col, tok)
			}
			if err != nil {
				return fmt.Errorf("gqlast: lexing %s: %w", args[0], err)
			}

			return nil
		},
	}
}
