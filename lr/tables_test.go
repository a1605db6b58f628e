package lr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestActionNotation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	for _, a := range []Action{
		{}, {Kind: Shift, Target: 3}, {Kind: Goto, Target: 12}, {Kind: Reduce, Target: 0}, {Kind: Accept},
	} {
		b, err := ParseAction(a.String())
		if err != nil || b != a {
			t.Errorf("expected %q to parse as %v, have %v (%v)", a.String(), a, b, err)
		}
		if decodeAction(a.encode()) != a {
			t.Errorf("action %v does not survive table encoding", a)
		}
	}
	if a, _ := ParseAction("g4"); a != (Action{Kind: Goto, Target: 4}) {
		t.Errorf("expected g4 to be a goto, is %v", a)
	}
	if _, err := ParseAction("x1"); err == nil {
		t.Errorf("expected x1 to be rejected")
	}
	if Reduce.String() != "Reduce" || LALR1.String() != "LALR1" {
		t.Errorf("unexpected enum names %s, %s", Reduce, LALR1)
	}
}

func TestBalancedTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	g := balancedGrammar(t)
	_, table := Generate(g, LALR1)
	expected := [][]string{
		{"", "'a'", "'b'", "$", "S"},
		{"0", "s2", "", "r2", "1"},
		{"1", "", "", "acc", ""},
		{"2", "s2", "r2", "", "3"},
		{"3", "", "s4", "", ""},
		{"4", "", "r1", "r1", ""},
	}
	checkRows(t, table.Rows(), expected)
	_, table = Generate(g, SLR1)
	if a := table.Action(0, "'b'"); a != (Action{Kind: Reduce, Target: 2}) {
		t.Errorf("expected SLR(1) table to reduce on FOLLOW(S) in state 0, have %v", a)
	}
	if a := table.Action(4, "'x'"); a.Kind != Reject {
		t.Errorf("expected unknown symbols to be rejected, have %v", a)
	}
}

func checkRows(t *testing.T, rows, expected [][]string) {
	if len(rows) != len(expected) {
		t.Fatalf("expected %d rows, have %d", len(expected), len(rows))
	}
	for i := range expected {
		if strings.Join(rows[i], "|") != strings.Join(expected[i], "|") {
			t.Errorf("row %d: expected %v, have %v", i, expected[i], rows[i])
		}
	}
}

// S -> L = R | R ;  L -> * R | id ;  R -> L
func assignmentGrammar() *Grammar {
	return MustGrammar([]Rule{
		NewRule("S", "L", "'='", "R"),
		NewRule("S", "R"),
		NewRule("L", "'*'", "R"),
		NewRule("L", "'id'"),
		NewRule("R", "L"),
	})
}

func TestLALRIsMorePreciseThanSLR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	g := assignmentGrammar()
	c := BuildLR0Collection(g)
	s, ok := c.StateFor(LR0Items.NewItemSet(NewLR0Item(1, 1), NewLR0Item(5, 1)))
	if !ok {
		t.Fatalf("expected a state for S -> L • '=' R, R -> L •")
	}
	item := NewLR0Item(5, 1)
	slr := SLR1Lookahead(g)(item, s, s.ID)
	lalr := LALR1Lookahead(g, c)(item, s, s.ID)
	if !slr.Equals(set(EOF, "'='")) {
		t.Errorf("expected SLR(1) lookahead {$, '='}, have %v", slr)
	}
	if !lalr.Equals(set(EOF)) {
		t.Errorf("expected LALR(1) lookahead {$}, have %v", lalr)
	}
	table := BuildTable(g, c, LALR1Lookahead(g, c))
	if a := table.Action(s.ID, EOF); a != (Action{Kind: Reduce, Target: 5}) {
		t.Errorf("expected r5 on $, have %v", a)
	}
	if a := table.Action(s.ID, "'='"); a.Kind != Shift {
		t.Errorf("expected shift on '=', have %v", a)
	}
}

func TestLookaheadsAreSubsetsOfFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	for _, g := range []*Grammar{exprGrammar(), assignmentGrammar(), balancedGrammar(t)} {
		c := BuildLR0Collection(g)
		slr, lalr := SLR1Lookahead(g), LALR1Lookahead(g, c)
		for _, s := range c.States() {
			for _, item := range s.Items() {
				if !item.IsFinal(g) || item.IsAccept(g) {
					continue
				}
				follow := g.Follow(item.Rule(g).LHS)
				if !slr(item, s, s.ID).Subset(follow) {
					t.Errorf("SLR(1) lookahead of %s exceeds FOLLOW", item.Display(g))
				}
				if !lalr(item, s, s.ID).Subset(follow) {
					t.Errorf("LALR(1) lookahead of %s exceeds FOLLOW", item.Display(g))
				}
			}
		}
		_, table := Generate(g, SLR1)
		for i, row := range table.Rows()[1:] {
			for j, cell := range row[1:] {
				a, _ := ParseAction(cell)
				sym := table.Symbols()[j]
				if a.Kind == Reduce && !g.Follow(g.Rule(a.Target).LHS).Contains(sym) {
					t.Errorf("state %d reduces on %s, which is not in FOLLOW", i, sym)
				}
			}
		}
	}
}

func TestLR0Lookahead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	_, table := Generate(balancedGrammar(t), LR0)
	if a := table.Action(4, "'a'"); a != (Action{Kind: Reduce, Target: 1}) {
		t.Errorf("expected LR(0) table to reduce on every terminal, have %v", a)
	}
}

func TestOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	_, table := Generate(balancedGrammar(t), LALR1)
	err := table.ApplyOverrides([]Override{
		{State: 3, Symbol: "'b'", Action: Action{Kind: Reduce, Target: 2}},
		{State: 0, Symbol: "$", Action: Action{}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if a := table.Action(3, "'b'"); a.String() != "r2" {
		t.Errorf("expected overridden entry r2, have %v", a)
	}
	if a := table.Action(0, "$"); a.Kind != Reject {
		t.Errorf("expected overridden entry to reject, have %v", a)
	}
	if err := table.ApplyOverrides([]Override{{State: 9, Symbol: "$"}}); err == nil {
		t.Errorf("expected override of unknown state to fail")
	}
	if err := table.ApplyOverrides([]Override{{State: 0, Symbol: "'x'"}}); err == nil {
		t.Errorf("expected override of unknown symbol to fail")
	}
}

func TestTableAsHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.lr")
	defer teardown()
	//
	_, table := Generate(balancedGrammar(t), LALR1)
	var buf bytes.Buffer
	if err := table.WriteHTML(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<td>acc</td>") || !strings.Contains(buf.String(), "&#39;a&#39;") {
		t.Errorf("unexpected HTML output:\n%s", buf.String())
	}
}
