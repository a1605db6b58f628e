package lr

import (
	"fmt"

	"github.com/npillmayer/lexion/lr/iteratable"
	"github.com/npillmayer/schuko/gconf"
)

// Configuration key: make lookups of unknown symbols panic.
const ConfigPanicOnMissingSymbol = "panic-on-missing-symbol"

// analysis holds the results of static grammar analysis.
type analysis struct {
	nullable *iteratable.Set
	first    map[string]*iteratable.Set
	follow   map[string]*iteratable.Set
}

// === Static Grammar Analysis ===============================================

func (g *Grammar) analyse() {
	g.nullable = iteratable.NewStringSet()
	g.first = make(map[string]*iteratable.Set)
	g.follow = make(map[string]*iteratable.Set)
	g.computeNullable()
	g.computeFirst()
	g.computeFollow()
}

// A non-terminal is nullable if one of its rules has a right hand side
// consisting of nullable symbols only. Epsilon rules are the seed.
func (g *Grammar) computeNullable() {
	for i := range g.rules {
		if g.rules[i].IsEpsilon() {
			g.nullable.Add(g.rules[i].LHS)
		}
	}
	for changed := true; changed; {
		changed = false
		for i := range g.rules {
			r := &g.rules[i]
			if g.nullable.Contains(r.LHS) {
				continue
			}
			if g.IsNullableSequence(r.RHS) {
				tracer().Debugf("%s is nullable", r.LHS)
				g.nullable.Add(r.LHS)
				changed = true
			}
		}
	}
}

func (g *Grammar) computeFirst() {
	g.first[EOF] = iteratable.NewStringSet(EOF)
	g.first[Epsilon] = iteratable.NewStringSet(Epsilon)
	for _, t := range g.terminals {
		g.first[t] = iteratable.NewStringSet(t)
	}
	for i := range g.rules {
		if _, ok := g.first[g.rules[i].LHS]; !ok {
			g.first[g.rules[i].LHS] = iteratable.NewStringSet()
		}
	}
	for _, A := range g.nonterminals { // may include symbols without rules
		if _, ok := g.first[A]; !ok {
			g.first[A] = iteratable.NewStringSet()
		}
	}
	for changed := true; changed; {
		changed = false
		for i := range g.rules {
			r := &g.rules[i]
			if g.first[r.LHS].Union(g.firstOfSequence(r.RHS)) {
				changed = true
			}
		}
	}
}

func (g *Grammar) computeFollow() {
	for i := range g.rules {
		g.follow[g.rules[i].LHS] = iteratable.NewStringSet()
	}
	for _, A := range g.nonterminals {
		if _, ok := g.follow[A]; !ok {
			g.follow[A] = iteratable.NewStringSet()
		}
	}
	g.follow[g.start].Add(EOF)
	g.follow[g.AugmentedStartSymbol()].Add(EOF)
	for changed := true; changed; {
		changed = false
		for i := range g.rules {
			r := &g.rules[i]
			for k, B := range r.RHS {
				if IsTerminal(B) {
					continue
				}
				beta := r.RHS[k+1:]
				f := g.firstOfSequence(beta)
				f.Remove(Epsilon)
				if g.follow[B].Union(f) {
					changed = true
				}
				if g.IsNullableSequence(beta) && g.follow[B].Union(g.follow[r.LHS]) {
					changed = true
				}
			}
		}
	}
}

// firstOfSequence walks a sequence of symbols left to right, collecting
// FIRST sets while the symbols are nullable. Works on the sets under
// construction.
func (g *Grammar) firstOfSequence(seq []string) *iteratable.Set {
	result := iteratable.NewStringSet()
	for _, sym := range seq {
		if f, ok := g.first[sym]; ok {
			result.Union(f)
		}
		result.Remove(Epsilon)
		if !g.IsNullable(sym) {
			return result
		}
	}
	result.Add(Epsilon) // all symbols nullable, or an empty sequence
	return result
}

// --- Queries ---------------------------------------------------------------

// IsNullable is a predicate: does sym derive the empty string?
// Epsilon is nullable, terminals are not.
func (g *Grammar) IsNullable(sym string) bool {
	return sym == Epsilon || g.nullable.Contains(sym)
}

// IsNullableSequence is true if every symbol of seq is nullable.
// The empty sequence is nullable.
func (g *Grammar) IsNullableSequence(seq []string) bool {
	for _, sym := range seq {
		if !g.IsNullable(sym) {
			return false
		}
	}
	return true
}

// NullableNonTerminals returns the set of nullable non-terminals.
func (g *Grammar) NullableNonTerminals() *iteratable.Set {
	return g.nullable.Copy()
}

// First returns FIRST(sym). For a terminal t, FIRST(t) = {t}.
// The result may be modified by the caller.
//
// For symbols unknown to the grammar, First returns an empty set. If the grammar
// has been created with option StrictLookups, or configuration key
// "panic-on-missing-symbol" is set, First panics instead.
func (g *Grammar) First(sym string) *iteratable.Set {
	if f, ok := g.first[sym]; ok {
		return f.Copy()
	}
	return g.missing("FIRST", sym)
}

// FirstOfSequence returns the set of terminals which may start a string
// derived from seq. It contains epsilon if seq is nullable.
func (g *Grammar) FirstOfSequence(seq []string) *iteratable.Set {
	for _, sym := range seq {
		if _, ok := g.first[sym]; !ok {
			return g.missing("FIRST", sym)
		}
	}
	return g.firstOfSequence(seq)
}

// Follow returns FOLLOW(A) for a non-terminal A.
// The result may be modified by the caller.
//
// Lookups of symbols without a FOLLOW set, including terminals, behave as for First.
func (g *Grammar) Follow(A string) *iteratable.Set {
	if f, ok := g.follow[A]; ok {
		return f.Copy()
	}
	return g.missing("FOLLOW", A)
}

func (g *Grammar) missing(which string, sym string) *iteratable.Set {
	if g.strict || gconf.GetBool(ConfigPanicOnMissingSymbol) {
		panic(fmt.Sprintf("%s(%s) requested, but %s is not a symbol of the grammar", which, sym, sym))
	}
	tracer().Errorf("%s(%s) requested for unknown symbol, using empty set", which, sym)
	return iteratable.NewStringSet()
}
