package ebnf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/lexion/lr"
	"github.com/npillmayer/lexion/lr/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const listGrammar = `
List   = "[" [ Item { "," Item } ] "]" .
Item   = ident .
ident  = letter { letter } .
letter = "a" … "z" .
`

const exprGrammar = `
Expr   = Term { ( "+" | "-" ) Term } .
Term   = Factor { "*" Factor } .
Factor = number | "(" Expr ")" .
number = digit { digit } .
digit  = "0" … "9" .
`

func read(t *testing.T, src string) []lr.Rule {
	rules, err := Read("test.ebnf", strings.NewReader(src))
	if err != nil {
		t.Fatalf("cannot convert grammar: %v", err)
	}
	return rules
}

func TestConvertList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	rules := read(t, listGrammar)
	expected := []string{
		"List -> '[' List_1 ']'",
		"List_2 -> List_2 ',' Item",
		"List_2 -> ε",
		"List_1 -> Item List_2",
		"List_1 -> ε",
		"Item -> 'ident'",
		"'ident' -> ([a-z])(([a-z]))*",
	}
	if len(rules) != len(expected) {
		t.Fatalf("expected %d rules, have %d: %v", len(expected), len(rules), rules)
	}
	for i, r := range rules {
		if r.String() != expected[i] {
			t.Errorf("rule %d: expected %q, have %q", i, expected[i], r.String())
		}
	}
}

func TestStartSymbolIsFirstSyntacticProduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	rules := read(t, "digit = \"0\" … \"9\" .\nNum = digit { digit } .")
	g, err := lr.NewGrammar(rules)
	if err != nil {
		t.Fatal(err)
	}
	if g.StartSymbol() != "Num" {
		t.Errorf("expected start symbol Num, have %s", g.StartSymbol())
	}
}

func TestParseConvertedGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	g, err := lr.NewGrammar(read(t, exprGrammar))
	if err != nil {
		t.Fatal(err)
	}
	_, table := lr.Generate(g, lr.LALR1)
	p := parser.New(g, table)
	for _, input := range []string{"1", "1+2*(3-4)", "12 * 3 - 7"} {
		d, err := p.ParseString(input)
		if err != nil {
			t.Errorf("cannot parse %q: %v", input, err)
			continue
		}
		var b strings.Builder
		for _, token := range d.Leaves() {
			b.WriteString(token.Value)
		}
		if b.String() != strings.ReplaceAll(input, " ", "") {
			t.Errorf("expected leaves to spell %q, have %q", input, b.String())
		}
	}
	if _, err := p.ParseString("1+"); err == nil {
		t.Errorf("expected incomplete expression to be rejected")
	}
}

func TestInvalidGrammars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	for name, src := range map[string]string{
		"unused production": "S = \"a\" .\nT = \"b\" .",
		"undefined name":    "S = \"a\" T .",
		"range in syntax":   "S = \"a\" … \"z\" .",
		"syntax error":      "S = \"a\" ",
		"token and lexical": "S = \"x\" x .\nx = \"y\" .",
		"recursive lexical": "S = x .\nx = \"a\" [ x ] .",
	} {
		if _, err := Read("test.ebnf", strings.NewReader(src)); err == nil {
			t.Errorf("%s: expected grammar to be rejected", name)
		}
	}
	_, err := Read("test.ebnf", strings.NewReader("digit = \"0\" … \"9\" ."))
	if !errors.Is(err, ErrNoSyntacticProduction) {
		t.Errorf("expected ErrNoSyntacticProduction, have %v", err)
	}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "list.ebnf")
	if err := os.WriteFile(path, []byte(listGrammar), 0644); err != nil {
		t.Fatal(err)
	}
	rules, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 7 || rules[0].LHS != "List" {
		t.Errorf("unexpected rules from file: %v", rules)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.ebnf")); err == nil {
		t.Errorf("expected missing file to be reported")
	}
}
