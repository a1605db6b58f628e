package lr

import (
	"errors"
	"testing"

	"github.com/npillmayer/lexion/lr/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// S -> 'a' S 'b' | ε
func balancedGrammar(t *testing.T) *Grammar {
	g, err := NewGrammar([]Rule{
		NewRule("S", "'a'", "S", "'b'"),
		NewRule("S"),
	})
	if err != nil {
		t.Fatalf("cannot create grammar: %v", err)
	}
	return g
}

func TestSymbolClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	for _, sym := range []string{"$", "ε", "'a'", "'if'", "''"} {
		if !IsTerminal(sym) {
			t.Errorf("expected %q to be a terminal", sym)
		}
	}
	for _, sym := range []string{"S", "expr", "'", "a'", "'a"} {
		if !IsNonTerminal(sym) {
			t.Errorf("expected %q to be a non-terminal", sym)
		}
	}
	if Unquote("'while'") != "while" || Unquote("S") != "S" {
		t.Errorf("unquoting does not work")
	}
}

func TestGrammarIsAugmented(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	g := balancedGrammar(t)
	if g.Size() != 3 {
		t.Fatalf("expected 3 rules, have %d", g.Size())
	}
	r0 := g.Rule(0)
	if r0.LHS != "S'" || len(r0.RHS) != 1 || r0.RHS[0] != "S" {
		t.Errorf("expected rule 0 to be S' -> S, is %v", r0)
	}
	if g.StartSymbol() != "S" || g.AugmentedStartSymbol() != "S'" {
		t.Errorf("unexpected start symbols %s / %s", g.StartSymbol(), g.AugmentedStartSymbol())
	}
	if !g.Rule(2).IsEpsilon() || g.Rule(2).Len() != 0 {
		t.Errorf("expected rule 2 to be an epsilon rule, is %v", g.Rule(2))
	}
	syms := g.Symbols()
	expected := []string{"'a'", "'b'", "$", "S"}
	if len(syms) != len(expected) {
		t.Fatalf("expected symbols %v, have %v", expected, syms)
	}
	for i := range expected {
		if syms[i] != expected[i] {
			t.Errorf("expected symbol #%d to be %s, is %s", i, expected[i], syms[i])
		}
	}
}

func TestGrammarWithoutRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	if _, err := NewGrammar(nil); !errors.Is(err, ErrNoStartSymbol) {
		t.Errorf("expected ErrNoStartSymbol for empty rule list, have %v", err)
	}
	_, err := NewGrammar([]Rule{NewRule("'num'", "[0-9]+")})
	if !errors.Is(err, ErrNoStartSymbol) {
		t.Errorf("expected ErrNoStartSymbol for terminal definitions only, have %v", err)
	}
	_, err = NewGrammar([]Rule{NewRule("S", "'num'"), NewRule("'num'", "[0-9]", "[a-z]")})
	if err == nil {
		t.Errorf("expected terminal definition with two patterns to be rejected")
	}
}

func TestTerminalDefinitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	g := MustGrammar([]Rule{
		NewRule("E", "E", "'+'", "T"),
		NewRule("'id'", "[a-z]+"),
		NewRule("E", "T"),
		NewRule("T", "'id'"),
		NewRule("T", "'num'"),
		NewRule("'unused'", "x"),
	})
	if g.Size() != 5 {
		t.Errorf("expected terminal definitions to be split off, have %d rules", g.Size())
	}
	if len(g.Definitions()) != 2 {
		t.Errorf("expected 2 terminal definitions, have %d", len(g.Definitions()))
	}
	if p, ok := g.Definition("'id'"); !ok || p != "[a-z]+" {
		t.Errorf("expected definition of 'id' to be [a-z]+, is %q", p)
	}
	patterns := g.TokenPatterns()
	skip := len(scanner.SkipPatterns())
	names := []string{"'+'", "'num'", "'id'"}
	if len(patterns) != skip+len(names) {
		t.Fatalf("expected %d token patterns, have %d", skip+len(names), len(patterns))
	}
	for i, name := range names {
		if patterns[skip+i].Name != name {
			t.Errorf("expected pattern #%d to be %s, is %s", skip+i, name, patterns[skip+i].Name)
		}
	}
	if patterns[skip+2].Regex != "[a-z]+" {
		t.Errorf("expected 'id' to be defined by its pattern, is %q", patterns[skip+2].Regex)
	}
	for _, p := range patterns[:skip] {
		if !p.IsSkip() {
			t.Errorf("expected skip patterns first, have %v", p.Name)
		}
	}
}

func TestJSMachineExport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	g := balancedGrammar(t)
	expected := "S' -> S\nS -> a S b\nS -> ''"
	if js := g.JSMachineString(); js != expected {
		t.Errorf("expected jsmachine export\n%s\nhave\n%s", expected, js)
	}
}
