package lr

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/lexion/lr/iteratable"
)

// === CFSM Construction =====================================================

// State is a state of the canonical collection, i.e. a closed set of items.
type State struct {
	ID       int             // serial ID of this state
	items    *iteratable.Set // configuration items within this state
	closured bool
}

// Edge is a transition between two states, labeled with a grammar symbol.
type Edge struct {
	From   int
	To     int
	Symbol string
}

func (e Edge) String() string {
	return fmt.Sprintf("%d -%s-> %d", e.From, e.Symbol, e.To)
}

// Items returns the items of the state, in order.
func (s *State) Items() []Item {
	vals := s.items.Values()
	items := make([]Item, len(vals))
	for i, x := range vals {
		items[i] = x.(Item)
	}
	return items
}

// ItemSet returns a copy of the item set of the state.
func (s *State) ItemSet() *iteratable.Set {
	return s.items.Copy()
}

// Contains is a predicate: is item part of this state?
func (s *State) Contains(item Item) bool {
	return s.items.Contains(item)
}

// IsClosured is true if the state's items have been closed.
func (s *State) IsClosured() bool {
	return s.closured
}

// IsFinal is true if the state contains a final item.
func (s *State) IsFinal(g *Grammar) bool {
	for _, i := range s.Items() {
		if i.IsFinal(g) {
			return true
		}
	}
	return false
}

// IsAccept is true if the state contains the accept item S' -> S •.
func (s *State) IsAccept(g *Grammar) bool {
	for _, i := range s.Items() {
		if i.IsAccept(g) {
			return true
		}
	}
	return false
}

// Display renders the items of the state, one per line.
func (s *State) Display(g *Grammar) string {
	var b strings.Builder
	for _, i := range s.Items() {
		b.WriteString(i.Display(g))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *State) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

// Collection is the canonical collection of item sets for a grammar, i.e. the
// characteristic finite state machine (CFSM). States are numbered from 0 in
// order of discovery; numbering depends on rule order and item set content only.
// A collection is immutable after construction.
type Collection struct {
	g        *Grammar
	kind     ItemKind
	states   []*State
	index    map[string]int // state content key → state ID
	edges    [][]Edge       // outgoing edges per state
	incoming [][]Edge       // incoming edges per state
}

// worklist entries: item set to close, predecessor state (or -1) and
// transition symbol
type pending struct {
	items  *iteratable.Set
	pred   int
	symbol string
}

// BuildLR0Collection constructs the canonical collection of LR(0) item sets.
func BuildLR0Collection(g *Grammar) *Collection {
	return NewCollection(g, LR0Items, LR0Items.StartItem(g))
}

// NewCollection constructs the canonical collection of item sets of kind
// kind, starting with the closure of {initial}.
func NewCollection(g *Grammar, kind ItemKind, initial Item) *Collection {
	tracer().Debugf("=== build CFSM ==================================================")
	c := &Collection{
		g:     g,
		kind:  kind,
		index: make(map[string]int),
	}
	work := arraylist.New()
	work.Add(pending{items: kind.NewItemSet(initial), pred: -1})
	for k := 0; k < work.Size(); k++ { // FIFO, entries are never removed
		x, _ := work.Get(k)
		next := x.(pending)
		kind.Closure(g, next.items)
		key := contentKey(next.items)
		id, found := c.index[key]
		if !found {
			s := c.addState(key, next.items)
			id = s.ID
			tracer().Debugf("new state %d = %s", id, itemSetString(g, s.items))
			for _, A := range c.transitionSymbols(s) {
				work.Add(pending{
					items:  kind.Goto(g, s.items, A),
					pred:   id,
					symbol: A,
				})
			}
		}
		if next.pred >= 0 {
			c.addEdge(next.pred, id, next.symbol)
		}
	}
	tracer().Infof("CFSM has %d states", len(c.states))
	return c
}

// Add a state to the CFSM.
func (c *Collection) addState(key string, items *iteratable.Set) *State {
	s := &State{ID: len(c.states), items: items, closured: true}
	c.states = append(c.states, s)
	c.index[key] = s.ID
	c.edges = append(c.edges, nil)
	c.incoming = append(c.incoming, nil)
	return s
}

func (c *Collection) addEdge(from, to int, sym string) {
	e := Edge{From: from, To: to, Symbol: sym}
	tracer().Debugf("edge %v", e)
	c.edges[from] = append(c.edges[from], e)
	c.incoming[to] = append(c.incoming[to], e)
}

// transitionSymbols collects the symbols after the dot of all non-final items
// of s, in order of first appearance.
func (c *Collection) transitionSymbols(s *State) []string {
	var syms []string
	seen := make(map[string]bool)
	for _, i := range s.Items() {
		if i.IsFinal(c.g) {
			continue
		}
		if A := i.Peek(c.g); !seen[A] {
			seen[A] = true
			syms = append(syms, A)
		}
	}
	return syms
}

// contentKey hashes the (ordered) items of a set. Equal item sets have
// equal keys.
func contentKey(items *iteratable.Set) string {
	key, err := structhash.Hash(items.Values(), 1)
	if err != nil {
		panic(fmt.Sprintf("cannot hash item set: %v", err))
	}
	return key
}

// --- Queries ---------------------------------------------------------------

// Grammar returns the grammar this collection has been built for.
func (c *Collection) Grammar() *Grammar {
	return c.g
}

// Kind returns the item kind of this collection.
func (c *Collection) Kind() ItemKind {
	return c.kind
}

// Size returns the number of states.
func (c *Collection) Size() int {
	return len(c.states)
}

// State returns the state with ID id.
func (c *Collection) State(id int) *State {
	return c.states[id]
}

// States returns all states, ordered by ID.
func (c *Collection) States() []*State {
	return append([]*State(nil), c.states...)
}

// Edges returns the outgoing edges of a state, in order of creation.
func (c *Collection) Edges(id int) []Edge {
	return append([]Edge(nil), c.edges[id]...)
}

// AllEdges returns the edges of all states, ordered by source state.
func (c *Collection) AllEdges() []Edge {
	var all []Edge
	for _, edges := range c.edges {
		all = append(all, edges...)
	}
	return all
}

// Successor returns the state reached from state id by a transition over sym.
func (c *Collection) Successor(id int, sym string) (int, bool) {
	for _, e := range c.edges[id] {
		if e.Symbol == sym {
			return e.To, true
		}
	}
	return -1, false
}

// Predecessors returns all states with a transition over sym into state id.
func (c *Collection) Predecessors(id int, sym string) []int {
	var preds []int
	for _, e := range c.incoming[id] {
		if e.Symbol == sym {
			preds = append(preds, e.From)
		}
	}
	return preds
}

// StateFor finds the state for an item set. The items are closed first;
// items is not modified.
func (c *Collection) StateFor(items *iteratable.Set) (*State, bool) {
	closure := items.Copy()
	c.kind.Closure(c.g, closure)
	if id, ok := c.index[contentKey(closure)]; ok {
		return c.states[id], true
	}
	return nil, false
}

// AcceptingStates returns the IDs of all states containing the accept item.
func (c *Collection) AcceptingStates() []int {
	var acc []int
	for _, s := range c.states {
		if s.IsAccept(c.g) {
			acc = append(acc, s.ID)
		}
	}
	return acc
}

// String lists all states with their items. Final states are marked with
// "*", accepting states with "**".
func (c *Collection) String() string {
	var b strings.Builder
	for _, s := range c.states {
		mark := ""
		if s.IsAccept(c.g) {
			mark = "**"
		} else if s.IsFinal(c.g) {
			mark = "*"
		}
		b.WriteString(fmt.Sprintf("%d%s:\n", s.ID, mark))
		b.WriteString(s.Display(c.g))
		b.WriteString("\n")
	}
	return b.String()
}

// WriteGraphViz exports the collection to the Graphviz Dot format.
func (c *Collection) WriteGraphViz(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.states {
		bw.WriteString(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, c.nodecolor(s), s.ID, c.forGraphviz(s)))
	}
	for _, e := range c.AllEdges() {
		bw.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To,
			escapeGraphviz(e.Symbol)))
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func (c *Collection) nodecolor(s *State) string {
	if s.IsAccept(c.g) {
		return "lightgray"
	}
	return "white"
}

func (c *Collection) forGraphviz(s *State) string {
	var b strings.Builder
	for _, i := range s.Items() {
		b.WriteString(escapeGraphviz(i.Display(c.g)))
		b.WriteString(`\l`)
	}
	return b.String()
}

var graphvizEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func escapeGraphviz(s string) string {
	return graphvizEscaper.Replace(s)
}
