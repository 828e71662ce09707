package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/graphqlkit/gqlast/parser"
)

// defaultFs is the filesystem every subcommand reads GraphQL documents
// from. Swapping it for an in-memory afero.Fs is how the command's own
// tests exercise "parse a file" without touching disk.
var defaultFs afero.Fs = afero.NewOsFs()

// rootCommand carries the state shared by every subcommand: the logger
// (whose level and formatter the persistent flags configure) and the
// cobra command tree itself.
type rootCommand struct {
	logger *logrus.Logger
	cmd    *cobra.Command

	verbose bool
	trace   bool
	limit   int
	format  string
}

// newRootCommand builds the command tree. .gqlast.yaml, if present in the
// current directory, supplies the default for each flag below; an
// explicit flag on the command line still wins, since pflag only
// overwrites a Var's current value when the flag is actually passed.
func newRootCommand() *rootCommand {
	c := &rootCommand{
		logger: &logrus.Logger{
			Out:       os.Stderr,
			Formatter: new(logrus.TextFormatter),
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.InfoLevel,
		},
	}

	cfg, err := loadConfig(defaultFs)
	if err != nil {
		cfg = fileConfig{}
		c.logger.WithError(err).Warn("ignoring .gqlast.yaml")
	}

	c.cmd = &cobra.Command{
		Use:               "gqlast",
		Short:             "lex and parse GraphQL October 2021 documents",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.PersistentFlags().AddFlagSet(c.persistentFlagSet(cfg))
	c.cmd.AddCommand(
		newParseCmd(c),
		newLexCmd(c),
		newReplCmd(c),
	)

	return c
}

func (c *rootCommand) persistentFlagSet(cfg fileConfig) *pflag.FlagSet {
	format := cfg.Format
	if format == "" {
		format = "text"
	}

	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.BoolVarP(&c.verbose, "verbose", "v", cfg.Debug, "enable debug logging")
	flags.BoolVar(&c.trace, "trace", false, "trace every grammar procedure entered by the parser")
	flags.IntVar(&c.limit, "limit", cfg.Limit, "cap the number of tokens the lexer will hand out (0 = unlimited)")
	flags.StringVar(&c.format, "format", format, "default output format for parse: text or json")

	return flags
}

func (c *rootCommand) persistentPreRunE(*cobra.Command, []string) error {
	if c.verbose {
		c.logger.SetLevel(logrus.DebugLevel)
	}
	if c.trace {
		c.logger.SetLevel(logrus.TraceLevel)
		parser.EnableTrace(c.logger)
	}

	return nil
}

func (c *rootCommand) Execute() error {
	return c.cmd.Execute()
}
