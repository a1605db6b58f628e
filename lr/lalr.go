package lr

import (
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/lexion/lr/iteratable"
)

// === LALR(1) Lookahead =====================================================

// LALR(1) lookaheads are computed directly on the LR(0) collection, without
// building LR(1) item sets. For a final item A -> α • of state q we go back
// along α to every state p where the item A -> • α started. The lookaheads
// are the terminals which may be shifted in the state reached from p over A,
// directly or after stepping over nullable non-terminals. If A itself may be
// completed at the end of another item B -> β • A γ of p, with γ nullable,
// the lookaheads of that item are added as well.
//
// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.5.2 LALR Propagation Graphs

// LALR1Lookahead returns the LALR(1) lookahead function for collection c.
// The function is not safe for concurrent use.
func LALR1Lookahead(g *Grammar, c *Collection) LookaheadFunc {
	la := &lalr{
		g:     g,
		c:     c,
		preds: make(map[predKey]*iteratable.Set),
	}
	return func(item Item, state *State, stateID int) *iteratable.Set {
		return la.lookahead(item, stateID)
	}
}

type lalr struct {
	g     *Grammar
	c     *Collection
	preds map[predKey]*iteratable.Set // memoized predecessor states
}

// predecessor lookups are memoized per state, rule and length of the rule's
// prefix
type predKey struct {
	state, rule, prefix int
}

// visited (A, state) pairs
type lhsAt struct {
	lhs   string
	state int
}

// lookahead computes the lookahead set of a final item.
func (la *lalr) lookahead(item Item, state int) *iteratable.Set {
	result := iteratable.NewStringSet()
	if item.RuleIndex() == 0 { // accept is handled by the table builder
		return result
	}
	visited := make(map[lhsAt]bool)
	traced := make(map[int]bool)
	la.propagate(item, state, visited, traced, result)
	tracer().Debugf("LALR lookahead of %s in state %d = %v", item.Display(la.g), state, result)
	return result
}

// propagate collects the lookaheads of item in state into result.
func (la *lalr) propagate(item Item, state int, visited map[lhsAt]bool,
	traced map[int]bool, result *iteratable.Set) {
	//
	A := item.Rule(la.g).LHS
	la.pred(state, item.RuleIndex(), item.DotIndex()).Each(func(x interface{}) {
		p := x.(int)
		if visited[lhsAt{A, p}] {
			return
		}
		visited[lhsAt{A, p}] = true
		if next, ok := la.c.Successor(p, A); ok {
			la.trans(next, traced, result)
		}
		for _, i := range la.c.State(p).Items() {
			if i.Peek(la.g) != A {
				continue
			}
			rhs := i.Rule(la.g).RHS
			if la.g.IsNullableSequence(rhs[i.DotIndex()+1:]) {
				la.propagate(i, p, visited, traced, result)
			}
		}
	})
}

// pred returns the states from which state is reachable by the first prefix
// symbols of a rule.
func (la *lalr) pred(state, rule, prefix int) *iteratable.Set {
	key := predKey{state, rule, prefix}
	if p, ok := la.preds[key]; ok {
		return p
	}
	p := iteratable.NewSet(utils.IntComparator)
	if r := la.g.Rule(rule); prefix == 0 || r.IsEpsilon() {
		p.Add(state)
	} else {
		x := r.RHS[prefix-1]
		for _, s := range la.c.Predecessors(state, x) {
			p.Union(la.pred(s, rule, prefix-1))
		}
	}
	la.preds[key] = p
	return p
}

// trans collects the terminals which may be shifted in state, stepping over
// nullable non-terminals. The accepting state contributes end-of-input.
func (la *lalr) trans(state int, traced map[int]bool, result *iteratable.Set) {
	if traced[state] {
		return
	}
	traced[state] = true
	for _, i := range la.c.State(state).Items() {
		if i.IsAccept(la.g) {
			result.Add(EOF)
			continue
		}
		x := i.Peek(la.g)
		if x == "" {
			continue
		}
		if IsTerminal(x) {
			result.Add(x)
		} else if la.g.IsNullable(x) {
			if next, ok := la.c.Successor(state, x); ok {
				la.trans(next, traced, result)
			}
		}
	}
}
