package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/graphqlkit/gqlast/parser"
)

var historyFile = filepath.Join(xdg.DataHome, "gqlast", ".gqlast_history")

func newReplCmd(root *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "interactive read-parse-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, root)
		},
	}
}

func runRepl(cmd *cobra.Command, root *rootCommand) error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(historyFile), os.ModePerm); err != nil {
			root.logger.WithError(err).Warn("could not create history directory")
		}
		if f, err := os.Create(historyFile); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				root.logger.WithError(err).Warn("could not write history")
			}
		}
		line.Close()
	}()

	if f, err := os.Open(historyFile); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			root.logger.WithError(err).Warn("could not read history")
		}
	}

	out := cmd.OutOrStdout()
	for {
		input, err := line.Prompt("gqlast> ")
		if err != nil {
			if err == io.EOF {
				return nil
			}

			return err
		}
		line.AppendHistory(input)

		p := parser.New([]byte(input))
		if root.limit > 0 {
			p.WithLimit(root.limit)
		}
		doc, err := p.Parse()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			continue
		}
		for i, def := range doc.Definitions {
			fmt.Fprintf(out, "%2d: %s\n", i, doc.Sprint(def))
		}
	}
}
