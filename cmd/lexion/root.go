package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/npillmayer/lexion/lr"
	"github.com/npillmayer/lexion/lr/ebnf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces to the global syntax tracer, which is set up from the
// --trace flag.
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

var rootFlags = struct {
	trace     *string
	strategy  *string
	overrides *string
	strict    *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "lexion",
	Short: "Generate LR parse tables and parse input with them",
	Long: `lexion builds LR(0), SLR(1) or LALR(1) parse tables from a grammar.
Grammars are JSON rule lists or EBNF files (extension .ebnf).
Tables may be inspected and run on input, interactively or from files.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initDisplay()
		initTracing(*rootFlags.trace)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	rootFlags.trace = pf.String("trace", "Error", "trace level [Debug|Info|Error]")
	rootFlags.strategy = pf.StringP("strategy", "s", lr.LALR1.String(), "lookahead strategy [LR0|SLR1|LALR1]")
	rootFlags.overrides = pf.String("overrides", "", "JSON file with parse table overrides")
	rootFlags.strict = pf.Bool("strict", false, "panic on lookups of unknown grammar symbols")
}

// Execute runs the command given on the command line.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

var traceKeys = []string{"lexion.lr", "lexion.scanner", "lexion.parser"}

func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	l := tracing.TraceLevelFromString(level)
	gtrace.SyntaxTracer.SetTraceLevel(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Infof("trace level is %s", level)
}

// --- Grammar loading -------------------------------------------------------

func isEBNF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ebnf")
}

// loadGrammar reads a grammar from a JSON rule file or from an EBNF file.
func loadGrammar(path string, strict bool) (*lr.Grammar, error) {
	var rules []lr.Rule
	var err error
	if isEBNF(path) {
		rules, err = ebnf.Load(path)
	} else {
		rules, err = lr.LoadRules(path)
	}
	if err != nil {
		return nil, err
	}
	var opts []lr.GrammarOption
	if strict {
		opts = append(opts, lr.StrictLookups())
	}
	g, err := lr.NewGrammar(rules, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create grammar from %s: %w", path, err)
	}
	return g, nil
}

// generator bundles everything derived from a grammar file.
type generator struct {
	g     *lr.Grammar
	c     *lr.Collection
	table *lr.ParseTable
}

// generate loads a grammar and builds its parse table, with overrides
// applied, as requested by the root flags.
func generate(path string, strategyName string, overrides string, strict bool) (*generator, error) {
	strategy, err := lr.ParseStrategy(strategyName)
	if err != nil {
		return nil, err
	}
	g, err := loadGrammar(path, strict)
	if err != nil {
		return nil, err
	}
	c, table := lr.Generate(g, strategy)
	if overrides != "" {
		ov, err := lr.LoadOverrides(overrides)
		if err != nil {
			return nil, err
		}
		if err := table.ApplyOverrides(ov); err != nil {
			return nil, err
		}
	}
	tracer().Infof("%v table for %s has %d states", strategy, path, table.States())
	return &generator{g: g, c: c, table: table}, nil
}

func generateFromFlags(path string) (*generator, error) {
	return generate(path, *rootFlags.strategy, *rootFlags.overrides, *rootFlags.strict)
}
