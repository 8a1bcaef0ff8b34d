package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type output struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	log    bytes.Buffer
}

func runCLI(t *testing.T, stdin string, args ...string) (*output, error) {
	t.Helper()
	out := &output{}
	log := logrus.New()
	log.SetOutput(&out.log)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	err := run(args, &env{
		stdin:  strings.NewReader(stdin),
		stdout: &out.stdout,
		stderr: &out.stderr,
		log:    log,
	})
	return out, err
}

func TestParseTree(t *testing.T) {
	out, err := runCLI(t, "", "parse", "--grammar", "testdata/list.ebnf", "testdata/list.txt")
	require.NoError(t, err)
	goldie.New(t).Assert(t, "parse_tree", out.stdout.Bytes())
}

func TestParseStdin(t *testing.T) {
	out, err := runCLI(t, "[1, 23]", "parse", "-g", "testdata/list.ebnf", "--start", "List")
	require.NoError(t, err)
	goldie.New(t).Assert(t, "parse_tree", out.stdout.Bytes())
}

func TestParseRepr(t *testing.T) {
	out, err := runCLI(t, "[42]", "parse", "-g", "testdata/list.ebnf", "--format", "repr")
	require.NoError(t, err)
	require.Contains(t, out.stdout.String(), "&ebnf.Node{")
	require.Contains(t, out.stdout.String(), `Text: "42"`)
}

func TestParseErrors(t *testing.T) {
	out, err := runCLI(t, "", "parse", "-g", "testdata/list.ebnf", "testdata/bad.txt")
	require.EqualError(t, err, "testdata/bad.txt: 1 error(s)")
	require.Equal(t, "testdata/bad.txt:2:4: unexpected ',' (expected ']')\n", out.stderr.String())
	require.Empty(t, out.stdout.String())
}

func TestCheck(t *testing.T) {
	out, err := runCLI(t, "", "check", "-g", "testdata/list.ebnf", "testdata/list.txt")
	require.NoError(t, err)
	require.Contains(t, out.log.String(), "Input is valid")
	require.Empty(t, out.stdout.String())

	_, err = runCLI(t, "[1 2]", "check", "-g", "testdata/list.ebnf")
	require.EqualError(t, err, "<stdin>: 1 error(s)")
}

func TestTraceFlag(t *testing.T) {
	out, err := runCLI(t, "[1]", "check", "-g", "testdata/list.ebnf", "--trace")
	require.NoError(t, err)
	require.Equal(t, "List '[' 0\n  number '1' 1\n", out.stderr.String())
}

func TestVerbose(t *testing.T) {
	out, err := runCLI(t, "[]", "--verbose", "check", "-g", "testdata/list.ebnf")
	require.NoError(t, err)
	require.Contains(t, out.log.String(), "Compiled grammar")
	require.Contains(t, out.log.String(), "productions=3")
}

func TestConfig(t *testing.T) {
	out, err := runCLI(t, "", "--config", "testdata/config.yaml", "parse", "testdata/list.txt")
	require.NoError(t, err)
	goldie.New(t).Assert(t, "parse_tree", out.stdout.Bytes())
}

func TestInvalidGrammarStart(t *testing.T) {
	_, err := runCLI(t, "", "parse", "-g", "testdata/list.ebnf", "--start", "number", "testdata/list.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "is unreachable")
}

func TestLex(t *testing.T) {
	out, err := runCLI(t, "", "lex", "--rules", "testdata/rules.yaml", "testdata/lex.txt")
	require.NoError(t, err)
	goldie.New(t).Assert(t, "lex_tokens", out.stdout.Bytes())
}

func TestLexError(t *testing.T) {
	_, err := runCLI(t, "f(a; b)", "lex", "-r", "testdata/rules.yaml")
	require.EqualError(t, err, `<stdin>:1:4: invalid input text "; b)"`)
}

func TestLocate(t *testing.T) {
	src := "ab\ncd\n"
	require.Equal(t, "f:1:1", locate("f", src, 0).String())
	require.Equal(t, "f:2:2", locate("f", src, 4).String())
	require.Equal(t, "f:3:1", locate("f", src, 100).String())
}

func TestFmt(t *testing.T) {
	out, err := runCLI(t, "", "fmt", "testdata/expr.ebnf")
	require.NoError(t, err)
	goldie.New(t).Assert(t, "fmt_expr", out.stdout.Bytes())
}
