package derivation

import (
	"github.com/npillmayer/lexion"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexion.parser'.
func tracer() tracing.Trace {
	return tracing.Select("lexion.parser")
}

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a derivation tree.
//
// Terminal is called for every leaf, Reduce for every inner node after all of
// its children have been visited. Arguments are:
//
//     - rule:   the index of the reduced grammar rule
//     - lhs:    token for the left hand side of the rule, located at the
//               start of the reduced input
//     - values: the values returned for the children, in left-to-right order
//     - level:  nesting level, 0 for the root
//
// Both methods may return user-defined values to be propagated upwards
// the tree.
type Listener interface {
	Terminal(token lexion.Token, level int) interface{}
	Reduce(rule int, lhs lexion.Token, values []interface{}, level int) interface{}
}

// Direction lets clients decide wether children nodes should be traversed
// left-to-right (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Walk traverses a derivation bottom-up and left-to-right, calling listener
// methods for all nodes encountered. It returns the value calculated by the
// listener for the root node.
func Walk(d *Derivation, listener Listener) interface{} {
	return WalkDirected(d, listener, LtoR)
}

// WalkDirected is like Walk, but visits children in direction dir. Values
// are always passed to Reduce in left-to-right order.
func WalkDirected(d *Derivation, listener Listener, dir Direction) interface{} {
	tracer().Debugf("=== Walk ===============================")
	return walk(d.Store, d.Root, listener, dir, 0)
}

func walk(s *Store, id NodeID, listener Listener, dir Direction, level int) interface{} {
	n := s.Node(id)
	if n.IsLeaf() {
		return listener.Terminal(n.Token, level)
	}
	values := make([]interface{}, len(n.Children))
	i := 0
	if dir == RtoL {
		i = len(n.Children) - 1
	}
	for range n.Children {
		values[i] = walk(s, n.Children[i], listener, dir, level+1)
		i += int(dir)
	}
	tracer().Debugf("reduce %d: %s with %d children", n.RuleIndex, n.Token.Kind, len(values))
	return listener.Reduce(n.RuleIndex, n.Token, values, level)
}

// ListenerFuncs adapts a pair of functions to the Listener interface. Either
// may be nil; missing functions return nil.
type ListenerFuncs struct {
	OnTerminal func(token lexion.Token, level int) interface{}
	OnReduce   func(rule int, lhs lexion.Token, values []interface{}, level int) interface{}
}

// Terminal is part of interface Listener.
func (l ListenerFuncs) Terminal(token lexion.Token, level int) interface{} {
	if l.OnTerminal == nil {
		return nil
	}
	return l.OnTerminal(token, level)
}

// Reduce is part of interface Listener.
func (l ListenerFuncs) Reduce(rule int, lhs lexion.Token, values []interface{}, level int) interface{} {
	if l.OnReduce == nil {
		return nil
	}
	return l.OnReduce(rule, lhs, values, level)
}

var _ Listener = ListenerFuncs{}
