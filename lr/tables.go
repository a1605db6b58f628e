package lr

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/lexion/lr/iteratable"
	"github.com/npillmayer/lexion/lr/sparse"
)

// ActionKind is the kind of a parser action.
type ActionKind int8

//go:generate stringer -type=ActionKind

// Kinds of parser actions. Reject is the zero value, i.e. every table entry
// not set explicitly rejects the input.
const (
	Reject ActionKind = iota
	Shift
	Goto
	Reduce
	Accept
)

// Action is an entry of a parse table. Target is the state to shift to or
// to go to, or the index of the rule to reduce.
type Action struct {
	Kind   ActionKind
	Target int
}

// Shorthands for table construction.
func shiftTo(state int) Action { return Action{Kind: Shift, Target: state} }
func gotoState(state int) Action { return Action{Kind: Goto, Target: state} }
func reduceBy(rule int) Action { return Action{Kind: Reduce, Target: rule} }

// String renders an action the way parse tables are usually printed:
// "s3" for shift, "3" for goto, "r2" for reduce, "acc" for accept and the empty
// string for reject.
func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return "s" + strconv.Itoa(a.Target)
	case Goto:
		return strconv.Itoa(a.Target)
	case Reduce:
		return "r" + strconv.Itoa(a.Target)
	case Accept:
		return "acc"
	}
	return ""
}

// ParseAction is the inverse of Action.String. Additionally, gotos may be
// written as "g4".
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Action{}, nil
	case s == "acc":
		return Action{Kind: Accept}, nil
	}
	kind, num := Goto, s
	switch s[0] {
	case 's':
		kind, num = Shift, s[1:]
	case 'r':
		kind, num = Reduce, s[1:]
	case 'g':
		num = s[1:]
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return Action{}, fmt.Errorf("malformed parser action %q", s)
	}
	return Action{Kind: kind, Target: n}, nil
}

// Actions are stored in a sparse matrix as kind and target packed into one
// integer. Reject encodes as 0, the matrix' null value.
func (a Action) encode() int32 {
	return int32(a.Target)<<3 | int32(a.Kind)
}

func decodeAction(v int32) Action {
	return Action{Kind: ActionKind(v & 7), Target: int(v >> 3)}
}

// === Parse Tables ==========================================================

// ParseTable maps (state, symbol) to parser actions. Rows are the states of a
// canonical collection, columns are the terminals of the grammar, the
// end-of-input symbol and the non-terminals.
//
// A parse table must not be changed once parsing starts; it is then safe for
// concurrent use.
type ParseTable struct {
	g       *Grammar
	symbols []string       // column headers
	columns map[string]int // symbol → column
	matrix  *sparse.IntMatrix
}

// LookaheadFunc returns the terminals on which a final item of a state
// triggers its reduce action. It is the one point where LR(0), SLR(1) and
// LALR(1) tables differ.
type LookaheadFunc func(item Item, state *State, stateID int) *iteratable.Set

func newParseTable(g *Grammar, states int) *ParseTable {
	t := &ParseTable{
		g:       g,
		symbols: g.Symbols(),
		columns: make(map[string]int),
	}
	for j, sym := range t.symbols {
		t.columns[sym] = j
	}
	t.matrix = sparse.NewIntMatrix(states, len(t.symbols), 0)
	return t
}

// BuildTable creates the parse table for a canonical collection, asking la for
// the lookahead of final items.
//
// For every state, an accept item produces Accept on end-of-input. Otherwise
// every final item produces a Reduce on each of its lookahead terminals.
// Then every outgoing edge produces a Shift (terminals) or a Goto (non-terminals).
// Conflicting entries are not reported: the last write wins. Use
// ApplyOverrides to settle conflicts manually.
func BuildTable(g *Grammar, c *Collection, la LookaheadFunc) *ParseTable {
	tracer().Debugf("=== build parse table ===========================================")
	t := newParseTable(g, c.Size())
	for _, s := range c.States() {
		if s.IsAccept(g) {
			t.set(s.ID, EOF, Action{Kind: Accept})
		} else {
			for _, item := range s.Items() {
				if !item.IsFinal(g) {
					continue
				}
				lookahead := la(item, s, s.ID)
				tracer().Debugf("lookahead of %s in state %d = %v", item.Display(g), s.ID, lookahead)
				for _, a := range lookahead.Strings() {
					t.set(s.ID, a, reduceBy(item.RuleIndex()))
				}
			}
		}
		for _, e := range c.Edges(s.ID) {
			if IsTerminal(e.Symbol) {
				t.set(s.ID, e.Symbol, shiftTo(e.To))
			} else {
				t.set(s.ID, e.Symbol, gotoState(e.To))
			}
		}
	}
	tracer().Infof("parse table has %d entries", t.matrix.ValueCount())
	return t
}

func (t *ParseTable) set(state int, sym string, a Action) {
	j, ok := t.columns[sym]
	if !ok {
		tracer().Errorf("no table column for symbol %s, ignoring action %v", sym, a)
		return
	}
	if old := decodeAction(t.matrix.Value(state, j)); old.Kind != Reject && old != a {
		tracer().Debugf("overwriting %v with %v at (%d, %s)", old, a, state, sym)
	}
	t.matrix.Set(state, j, a.encode())
}

// Grammar returns the grammar of the table.
func (t *ParseTable) Grammar() *Grammar {
	return t.g
}

// States returns the number of rows.
func (t *ParseTable) States() int {
	return t.matrix.M()
}

// Symbols returns the column symbols.
func (t *ParseTable) Symbols() []string {
	return append([]string(nil), t.symbols...)
}

// Action returns the action for a state and a symbol. Unknown symbols and
// states are rejected.
func (t *ParseTable) Action(state int, sym string) Action {
	j, ok := t.columns[sym]
	if !ok || state < 0 || state >= t.matrix.M() {
		return Action{}
	}
	return decodeAction(t.matrix.Value(state, j))
}

// Override forces a table entry to a given action.
type Override struct {
	State  int    `json:"state"`
	Symbol string `json:"symbol"`
	Action Action `json:"action"`
}

// ApplyOverrides sets table entries, in order, replacing whatever the
// construction put there. It has to be called before any parsing takes place.
func (t *ParseTable) ApplyOverrides(overrides []Override) error {
	for _, o := range overrides {
		if o.State < 0 || o.State >= t.matrix.M() {
			return fmt.Errorf("override for state %d: no such state", o.State)
		}
		if _, ok := t.columns[o.Symbol]; !ok {
			return fmt.Errorf("override for state %d: no such symbol %s", o.State, o.Symbol)
		}
		tracer().Infof("override (%d, %s) := %v", o.State, o.Symbol, o.Action)
		t.set(o.State, o.Symbol, o.Action)
	}
	return nil
}

// Rows renders the table as rows of strings. The first row is the header:
// an empty cell followed by the symbols, terminals and end-of-input first,
// then non-terminals. Every other row starts with the state number.
func (t *ParseTable) Rows() [][]string {
	rows := make([][]string, 0, t.matrix.M()+1)
	header := make([]string, 0, len(t.symbols)+1)
	header = append(header, "")
	rows = append(rows, append(header, t.symbols...))
	for i := 0; i < t.matrix.M(); i++ {
		row := make([]string, len(t.symbols)+1)
		row[0] = strconv.Itoa(i)
		rows = append(rows, row)
	}
	t.matrix.Each(func(i, j int, v int32) {
		rows[i+1][j+1] = decodeAction(v).String()
	})
	return rows
}

// WriteHTML exports the table in HTML format.
func (t *ParseTable) WriteHTML(w io.Writer) error {
	bw := bufio.NewWriter(w)
	rows := t.Rows()
	bw.WriteString("<html><body>\n")
	bw.WriteString(fmt.Sprintf("Parse table with %d entries<p>", t.matrix.ValueCount()))
	bw.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	for i, row := range rows {
		if i == 0 {
			bw.WriteString("<tr bgcolor=#cccccc>")
		} else {
			bw.WriteString("<tr>")
		}
		for j, cell := range row {
			if i > 0 && j == 0 {
				cell = "state " + cell
			}
			if cell == "" {
				bw.WriteString("<td>&nbsp;</td>")
			} else {
				bw.WriteString("<td>" + html.EscapeString(cell) + "</td>")
			}
		}
		bw.WriteString("</tr>\n")
	}
	bw.WriteString("</table></body></html>\n")
	return bw.Flush()
}
