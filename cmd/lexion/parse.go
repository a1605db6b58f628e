package main

import (
	"errors"
	"strings"

	"github.com/npillmayer/lexion/lr/derivation"
	"github.com/npillmayer/lexion/lr/parser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source *string
	steps  *bool
	quiet  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse <grammar file> [input]",
		Short: "Parse input and show its derivation tree",
		Example: `  lexion parse expr.ebnf "1+2*3" --steps
  lexion parse expr.ebnf --source input.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}
	parseFlags.source = cmd.Flags().String("source", "", "source file path")
	parseFlags.steps = cmd.Flags().Bool("steps", false, "show the steps of the parser")
	parseFlags.quiet = cmd.Flags().BoolP("quiet", "q", false, "do not print the derivation tree")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	input := strings.Join(args[1:], " ")
	if *parseFlags.source != "" && input != "" {
		return errors.New("input must be given either as argument or with --source, not both")
	}
	gen, err := generateFromFlags(args[0])
	if err != nil {
		return err
	}
	d, trace, err := gen.parse(input, *parseFlags.source, *parseFlags.steps)
	if trace != nil {
		printTable(trace.Rows())
	}
	if err != nil {
		return err
	}
	if !*parseFlags.quiet {
		printTree(d)
	}
	pterm.Success.Println("input accepted")
	return nil
}

// parse runs a parser on input or, if path is set, on the content of a file.
// With steps set, the trace of the parser is returned as well, even if the
// parse failed.
func (gen *generator) parse(input string, path string, steps bool) (*derivation.Derivation,
	*parser.TraceTable, error) {
	//
	var trace *parser.TraceTable
	var opts []parser.Option
	if steps {
		trace = &parser.TraceTable{}
		opts = append(opts, parser.WithTrace(trace))
	}
	p := parser.New(gen.g, gen.table, opts...)
	var d *derivation.Derivation
	var err error
	if path != "" {
		d, err = p.ParseFile(path)
	} else {
		d, err = p.ParseString(input)
	}
	return d, trace, err
}
