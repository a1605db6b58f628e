package parser

import (
	"strconv"
	"strings"

	"github.com/npillmayer/lexion/lr/derivation"
)

// TraceRow describes one step of the parser: the stack, rendered as a list of
// states and symbol values, the kind of the lookahead token and the action
// taken.
type TraceRow struct {
	Step      int
	Stack     string
	Lookahead string
	Action    string
}

// TraceSink receives a row for every step of a parse, before the step's
// action is performed.
type TraceSink interface {
	AddRow(TraceRow)
}

// TraceTable is a TraceSink collecting all rows. It is not safe for
// concurrent use.
type TraceTable struct {
	rows []TraceRow
}

// AddRow is part of interface TraceSink.
func (tt *TraceTable) AddRow(row TraceRow) {
	tt.rows = append(tt.rows, row)
}

// Steps returns the collected rows.
func (tt *TraceTable) Steps() []TraceRow {
	return tt.rows
}

// Reset drops all rows.
func (tt *TraceTable) Reset() {
	tt.rows = tt.rows[:0]
}

// TraceHeader contains the column titles of a rendered trace.
var TraceHeader = []string{"Step", "Stack", "Lookahead", "Action"}

// Rows renders the trace as rows of strings, starting with TraceHeader.
func (tt *TraceTable) Rows() [][]string {
	rows := make([][]string, 0, len(tt.rows)+1)
	rows = append(rows, append([]string(nil), TraceHeader...))
	for _, r := range tt.rows {
		rows = append(rows, []string{strconv.Itoa(r.Step), r.Stack, r.Lookahead, r.Action})
	}
	return rows
}

var _ TraceSink = &TraceTable{}

func renderStack(stack []stackitem, store *derivation.Store) string {
	var b strings.Builder
	b.WriteString("[")
	for i, item := range stack {
		if i > 0 {
			b.WriteString(", ")
		}
		if item.isNode {
			b.WriteString(store.Node(item.node).Token.Value)
		} else {
			b.WriteString(strconv.Itoa(item.state))
		}
	}
	b.WriteString("]")
	return b.String()
}
