package lr

import (
	"fmt"

	"github.com/npillmayer/lexion/lr/iteratable"
)

// Strategy selects how lookaheads for reduce actions are computed.
type Strategy int

//go:generate stringer -type=Strategy

// Lookahead strategies, ordered by precision.
const (
	LR0 Strategy = iota
	SLR1
	LALR1
)

// ParseStrategy finds a strategy by name, case-sensitive, e.g. "LALR1".
func ParseStrategy(name string) (Strategy, error) {
	for s := LR0; s <= LALR1; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return LR0, fmt.Errorf("unknown lookahead strategy %q", name)
}

// Generate builds the LR(0) collection for a grammar and a parse table with
// lookaheads computed by strategy s.
func Generate(g *Grammar, s Strategy) (*Collection, *ParseTable) {
	c := BuildLR0Collection(g)
	var la LookaheadFunc
	switch s {
	case LR0:
		la = LR0Lookahead(g)
	case SLR1:
		la = SLR1Lookahead(g)
	case LALR1:
		la = LALR1Lookahead(g, c)
	default:
		panic(fmt.Sprintf("unknown lookahead strategy %d", s))
	}
	tracer().Infof("generating %v parse table", s)
	return c, BuildTable(g, c, la)
}

// LR0Lookahead reduces on every terminal, including end-of-input. This is
// correct for LR(0) grammars only.
func LR0Lookahead(g *Grammar) LookaheadFunc {
	all := iteratable.NewStringSet(g.Terminals()...)
	all.Add(EOF)
	return func(Item, *State, int) *iteratable.Set {
		return all.Copy()
	}
}

// SLR1Lookahead reduces on FOLLOW of the left hand side of the item's rule.
func SLR1Lookahead(g *Grammar) LookaheadFunc {
	return func(item Item, state *State, stateID int) *iteratable.Set {
		return g.Follow(item.Rule(g).LHS)
	}
}
