package lr

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/lexion/lr/iteratable"
)

// Item is an LR item: a rule of a grammar, together with a position (dot)
// in its right hand side.
type Item interface {
	RuleIndex() int             // index of the item's rule
	DotIndex() int              // position of the dot
	Rule(g *Grammar) *Rule      // the item's rule
	IsFinal(g *Grammar) bool    // dot at the end of the rule, or epsilon rule
	IsAccept(g *Grammar) bool   // S' -> S •
	Peek(g *Grammar) string     // symbol after the dot, or "" for final items
	Display(g *Grammar) string  // A -> α • β
	Prefix(g *Grammar) []string // α, i.e. the symbols before the dot
	Advance() Item              // item with the dot moved one symbol to the right
}

// ItemKind captures the operations on sets of items of one kind. The
// collection and table builders work in terms of ItemKind, so they do not
// depend on a concrete kind of item.
type ItemKind interface {
	// StartItem returns the initial item for the canonical collection.
	StartItem(g *Grammar) Item
	// NewItemSet creates an ordered set for items of this kind.
	NewItemSet(items ...interface{}) *iteratable.Set
	// Comparator orders items of this kind.
	Comparator() utils.Comparator
	// Closure extends items with all predicted items, until no more items are added.
	Closure(g *Grammar, items *iteratable.Set)
	// Goto returns the items reached from items by moving the dot over sym.
	// The result is not closed.
	Goto(g *Grammar, items *iteratable.Set, sym string) *iteratable.Set
}

// === LR(0) Items ===========================================================

// LR0Item is an LR(0) item. It is a small value type and totally ordered,
// first by rule, then by dot position.
type LR0Item struct {
	rule int
	dot  int
}

// NewLR0Item creates an LR(0) item for rule number rule, with the dot in front
// of symbol number dot.
func NewLR0Item(rule, dot int) LR0Item {
	return LR0Item{rule: rule, dot: dot}
}

// RuleIndex is part of interface Item.
func (i LR0Item) RuleIndex() int {
	return i.rule
}

// DotIndex is part of interface Item.
func (i LR0Item) DotIndex() int {
	return i.dot
}

// Rule is part of interface Item.
func (i LR0Item) Rule(g *Grammar) *Rule {
	return g.Rule(i.rule)
}

// IsFinal is part of interface Item.
func (i LR0Item) IsFinal(g *Grammar) bool {
	r := g.Rule(i.rule)
	return r.IsEpsilon() || i.dot >= len(r.RHS)
}

// IsAccept is part of interface Item.
func (i LR0Item) IsAccept(g *Grammar) bool {
	return i.rule == 0 && i.dot == 1
}

// Peek is part of interface Item.
func (i LR0Item) Peek(g *Grammar) string {
	if i.IsFinal(g) {
		return ""
	}
	return g.Rule(i.rule).RHS[i.dot]
}

// Prefix is part of interface Item.
func (i LR0Item) Prefix(g *Grammar) []string {
	r := g.Rule(i.rule)
	if r.IsEpsilon() {
		return nil
	}
	return r.RHS[:i.dot]
}

// Advance is part of interface Item.
func (i LR0Item) Advance() Item {
	return LR0Item{rule: i.rule, dot: i.dot + 1}
}

// Display is part of interface Item.
func (i LR0Item) Display(g *Grammar) string {
	r := g.Rule(i.rule)
	syms := make([]string, 0, len(r.RHS)+1)
	syms = append(syms, r.RHS[:i.dot]...)
	syms = append(syms, "•")
	syms = append(syms, r.RHS[i.dot:]...)
	return fmt.Sprintf("%s -> %s", r.LHS, strings.Join(syms, " "))
}

func (i LR0Item) String() string {
	return fmt.Sprintf("(%d,%d)", i.rule, i.dot)
}

// CompareItems is a comparator for LR0Items.
func CompareItems(a, b interface{}) int {
	i1, i2 := a.(LR0Item), b.(LR0Item)
	if c := utils.IntComparator(i1.rule, i2.rule); c != 0 {
		return c
	}
	return utils.IntComparator(i1.dot, i2.dot)
}

// LR0Items is the item kind for LR(0) items.
var LR0Items ItemKind = lr0Kind{}

type lr0Kind struct{}

func (lr0Kind) StartItem(g *Grammar) Item {
	return NewLR0Item(0, 0)
}

func (lr0Kind) NewItemSet(items ...interface{}) *iteratable.Set {
	return iteratable.NewSet(CompareItems, items...)
}

func (lr0Kind) Comparator() utils.Comparator {
	return CompareItems
}

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// Closure is part of interface ItemKind.
func (lr0Kind) Closure(g *Grammar, items *iteratable.Set) {
	worklist := items.Values()
	for len(worklist) > 0 {
		item := worklist[0].(LR0Item)
		worklist = worklist[1:]
		A := item.Peek(g) // get symbol A after dot
		if A == "" || IsTerminal(A) {
			continue
		}
		for _, r := range g.RulesFor(A) { // A is non-terminal
			predicted := NewLR0Item(r, 0)
			if !items.Contains(predicted) {
				items.Add(predicted)
				worklist = append(worklist, predicted)
			}
		}
	}
}

// Goto is part of interface ItemKind.
func (k lr0Kind) Goto(g *Grammar, items *iteratable.Set, sym string) *iteratable.Set {
	// for every item in closure C
	// if item in C:  N -> ... *A ...
	//     advance N -> ... A * ...
	gotoset := k.NewItemSet()
	items.Each(func(x interface{}) {
		i := x.(LR0Item)
		if i.Peek(g) == sym && sym != "" {
			gotoset.Add(i.Advance())
		}
	})
	return gotoset
}

// itemSetString is a short helper to stringify a set of items.
func itemSetString(g *Grammar, items *iteratable.Set) string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	items.Each(func(x interface{}) {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(x.(Item).Display(g))
	})
	b.WriteString(" }")
	return b.String()
}
