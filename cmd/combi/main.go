// Command combi parses text with EBNF grammars compiled to combi parsers.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

var version = "dev"

type CLI struct {
	Version kong.VersionFlag `help:"Show version."`
	Config  kong.ConfigFlag  `help:"Load flag values from a YAML file." placeholder:"FILE"`
	Verbose bool             `short:"v" help:"Enable debug logging."`

	Parse parseCmd `cmd:"" help:"Parse input with an EBNF grammar and print the parse tree."`
	Check checkCmd `cmd:"" help:"Check that input matches an EBNF grammar."`
	Fmt   fmtCmd   `cmd:"" help:"Print an EBNF grammar in canonical form."`
	Lex   lexCmd   `cmd:"" help:"Split input into tokens with regular expression rules."`
}

// env is bound to each command's Run method.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *logrus.Logger
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	err := run(os.Args[1:], &env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr, log: log})
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, e *env) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("combi"),
		kong.Description(`Parse text with EBNF grammars.

Upper-case productions skip whitespace between their terms, lower-case
productions match characters exactly.`),
		kong.Configuration(loadConfig),
		kong.Writers(e.stdout, e.stderr),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if cli.Verbose {
		e.log.SetLevel(logrus.DebugLevel)
	}
	e.log.WithField("command", kctx.Command()).Debug("Running")
	return kctx.Run(e)
}
