/*
Package derivation holds the result of a successful parse: a derivation
tree. Tree nodes live in an arena, Store, and refer to their children by
NodeID. Leaves carry the input tokens, inner nodes carry the index of the
grammar rule which has been reduced, with a token for the rule's left hand
side, located at the start of the reduced input.

Derivations may be printed for debugging purposes

    [S] inline:1:1
    ├─['a'] `a` inline:1:1
    ├─[S] inline:1:3
    └─['b'] `b` inline:1:3

and walked bottom-up by a Listener, which is the way to attach semantic
actions to grammar rules.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package derivation

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lexion"
)

// NodeID references a node within a Store.
type NodeID int

// Node is a node of a derivation tree. Leaves have a RuleIndex of -1 and no
// children.
type Node struct {
	Token     lexion.Token
	RuleIndex int
	Children  []NodeID
}

// IsLeaf is true for nodes created from input tokens.
func (n Node) IsLeaf() bool {
	return n.RuleIndex < 0
}

// String displays a node as [kind], followed by the token value if it differs
// from the kind, followed by the location.
func (n Node) String() string {
	if n.Token.Value == n.Token.Kind {
		return fmt.Sprintf("[%s] %s", n.Token.Kind, n.Token.Location)
	}
	return fmt.Sprintf("[%s] `%s` %s", n.Token.Kind, n.Token.Value, n.Token.Location)
}

// --- Store -----------------------------------------------------------------

// Store is an arena for derivation nodes. It is not safe for concurrent
// modification; a parser creates one store per parse.
type Store struct {
	nodes []Node
}

// NewStore creates an empty node store.
func NewStore() *Store {
	return &Store{nodes: make([]Node, 0, 64)}
}

// AddLeaf stores a leaf for an input token.
func (s *Store) AddLeaf(token lexion.Token) NodeID {
	s.nodes = append(s.nodes, Node{Token: token, RuleIndex: -1})
	return NodeID(len(s.nodes) - 1)
}

// AddNode stores an inner node for the reduction of rule, with children in
// left-to-right order.
func (s *Store) AddNode(token lexion.Token, rule int, children []NodeID) NodeID {
	s.nodes = append(s.nodes, Node{
		Token:     token,
		RuleIndex: rule,
		Children:  append([]NodeID(nil), children...),
	})
	return NodeID(len(s.nodes) - 1)
}

// Node returns the node for id. Node panics for IDs not created by s.
func (s *Store) Node(id NodeID) Node {
	if id < 0 || int(id) >= len(s.nodes) {
		panic(fmt.Sprintf("derivation node %d does not exist", id))
	}
	return s.nodes[id]
}

// Size returns the number of nodes stored.
func (s *Store) Size() int {
	return len(s.nodes)
}

// --- Derivation ------------------------------------------------------------

// Derivation is a derivation tree, given by its root node.
type Derivation struct {
	Root  NodeID
	Store *Store
}

// New creates a derivation with a given root.
func New(root NodeID, store *Store) *Derivation {
	return &Derivation{Root: root, Store: store}
}

// RootNode returns the root node of the derivation.
func (d *Derivation) RootNode() Node {
	return d.Store.Node(d.Root)
}

// Leaves returns the tokens at the leaves of the derivation, from left to right.
// For a derivation produced by a parser these are the tokens of the input.
func (d *Derivation) Leaves() []lexion.Token {
	var leaves []lexion.Token
	var collect func(NodeID)
	collect = func(id NodeID) {
		n := d.Store.Node(id)
		if n.IsLeaf() {
			leaves = append(leaves, n.Token)
			return
		}
		for _, ch := range n.Children {
			collect(ch)
		}
	}
	collect(d.Root)
	return leaves
}

// connectors for tree display
const (
	notLast = iota
	last
	root
)

func (d *Derivation) String() string {
	var b strings.Builder
	d.write(&b, d.Root, "", root)
	return b.String()
}

func (d *Derivation) write(b *strings.Builder, id NodeID, indent string, pos int) {
	b.WriteString(indent)
	switch pos {
	case notLast:
		b.WriteString("├─")
		indent += "│ "
	case last:
		b.WriteString("└─")
		indent += "  "
	}
	n := d.Store.Node(id)
	b.WriteString(n.String())
	b.WriteString("\n")
	for i, ch := range n.Children {
		if i == len(n.Children)-1 {
			d.write(b, ch, indent, last)
		} else {
			d.write(b, ch, indent, notLast)
		}
	}
}
