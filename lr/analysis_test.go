package lr

import (
	"testing"

	"github.com/npillmayer/lexion/lr/iteratable"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Expression grammar without left recursion
func exprGrammar(opts ...GrammarOption) *Grammar {
	return MustGrammar([]Rule{
		NewRule("E", "T", "Ep"),
		NewRule("Ep", "'+'", "T", "Ep"),
		NewRule("Ep"),
		NewRule("T", "F", "Tp"),
		NewRule("Tp", "'*'", "F", "Tp"),
		NewRule("Tp"),
		NewRule("F", "'('", "E", "')'"),
		NewRule("F", "'id'"),
	}, opts...)
}

func set(syms ...string) *iteratable.Set {
	return iteratable.NewStringSet(syms...)
}

func TestFirstSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	g := exprGrammar()
	expected := map[string]*iteratable.Set{
		"E":    set("'('", "'id'"),
		"T":    set("'('", "'id'"),
		"F":    set("'('", "'id'"),
		"Ep":   set("'+'", Epsilon),
		"Tp":   set("'*'", Epsilon),
		"'+'":  set("'+'"),
		"'id'": set("'id'"),
		EOF:    set(EOF),
	}
	for sym, first := range expected {
		if f := g.First(sym); !f.Equals(first) {
			t.Errorf("expected FIRST(%s) = %v, have %v", sym, first, f)
		}
	}
	if f := g.FirstOfSequence([]string{"Ep", "Tp"}); !f.Equals(set("'+'", "'*'", Epsilon)) {
		t.Errorf("expected FIRST(Ep Tp) to contain ε, have %v", f)
	}
	if f := g.FirstOfSequence([]string{"Ep", "F"}); !f.Equals(set("'+'", "'('", "'id'")) {
		t.Errorf("expected FIRST(Ep F) = {'(', '+', 'id'}, have %v", f)
	}
}

func TestFollowSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	g := exprGrammar()
	expected := map[string]*iteratable.Set{
		"E":  set(EOF, "')'"),
		"Ep": set(EOF, "')'"),
		"T":  set(EOF, "')'", "'+'"),
		"Tp": set(EOF, "')'", "'+'"),
		"F":  set(EOF, "')'", "'+'", "'*'"),
	}
	for A, follow := range expected {
		if f := g.Follow(A); !f.Equals(follow) {
			t.Errorf("expected FOLLOW(%s) = %v, have %v", A, follow, f)
		}
	}
	if !g.Follow(g.AugmentedStartSymbol()).Contains(EOF) {
		t.Errorf("expected $ in FOLLOW of augmented start symbol")
	}
}

func TestResultsAreCopies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	g := exprGrammar()
	g.First("E").Add("'x'")
	g.Follow("E").Add("'x'")
	if g.First("E").Contains("'x'") || g.Follow("E").Contains("'x'") {
		t.Errorf("expected analysis results to be unaffected by clients")
	}
}

func TestNullable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	g := MustGrammar([]Rule{
		NewRule("S", "A", "B"),
		NewRule("A", "B", "'x'"),
		NewRule("B"),
		NewRule("C", "B", "B"),
	})
	for sym, nullable := range map[string]bool{
		"S": false, "A": false, "B": true, "C": true, "'x'": false, Epsilon: true,
	} {
		if g.IsNullable(sym) != nullable {
			t.Errorf("expected nullable(%s) = %v", sym, nullable)
		}
	}
	if !g.NullableNonTerminals().Equals(set("B", "C")) {
		t.Errorf("expected nullable non-terminals {B, C}, have %v", g.NullableNonTerminals())
	}
	if !g.IsNullableSequence(nil) {
		t.Errorf("expected empty sequence to be nullable")
	}
}

func TestMissingSymbolYieldsEmptySet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	g := exprGrammar()
	if f := g.First("Unknown"); f == nil || !f.Empty() {
		t.Errorf("expected empty FIRST set for unknown symbol, have %v", f)
	}
	if f := g.Follow("'+'"); f == nil || !f.Empty() {
		t.Errorf("expected empty FOLLOW set for terminal, have %v", f)
	}
}

func TestStrictLookupsPanic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	g := exprGrammar(StrictLookups())
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected lookup of unknown symbol to panic")
		}
	}()
	g.Follow("Unknown")
}

func TestConfiguredLookupsPanic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	gconf.Initialize(&testconfig.Conf{ConfigPanicOnMissingSymbol: true})
	defer gconf.Initialize(&testconfig.Conf{})
	g := exprGrammar()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected lookup of unknown symbol to panic")
		}
	}()
	g.First("Unknown")
}
