package parser

import (
	"fmt"
	"sync"

	"github.com/npillmayer/lexion"
	"github.com/npillmayer/lexion/lr"
	"github.com/npillmayer/lexion/lr/derivation"
	"github.com/npillmayer/lexion/lr/scanner"
)

// Parser is a table-driven LR parser. Create and initialize one with
// parser.New(…).
//
// A parser keeps no state between parses. Parse may be called concurrently,
// as long as the parse table is not modified any more.
type Parser struct {
	g     *lr.Grammar
	table *lr.ParseTable
	trace TraceSink
	once  sync.Once // compiles lexer on first use
	lexer *scanner.Lexer
	lxerr error
}

// Option configures a parser.
type Option func(*Parser)

// WithTrace lets the parser report every step to sink.
func WithTrace(sink TraceSink) Option {
	return func(p *Parser) {
		p.trace = sink
	}
}

// New creates a parser for a grammar and a parse table built for it.
func New(g *lr.Grammar, table *lr.ParseTable, opts ...Option) *Parser {
	p := &Parser{g: g, table: table}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Grammar returns the grammar of the parser.
func (p *Parser) Grammar() *lr.Grammar {
	return p.g
}

// Lexer returns a lexer for the token patterns of the parser's grammar.
// It is created once, on first use.
func (p *Parser) Lexer() (*scanner.Lexer, error) {
	p.once.Do(func() {
		p.lexer, p.lxerr = p.g.Lexer()
	})
	return p.lexer, p.lxerr
}

// ParseString parses an input string.
func (p *Parser) ParseString(input string) (*derivation.Derivation, error) {
	lexer, err := p.Lexer()
	if err != nil {
		return nil, err
	}
	sc, err := lexer.Scanner(lexion.InlineSource, input)
	if err != nil {
		return nil, err
	}
	return p.Parse(sc)
}

// ParseFile reads and parses an input file.
func (p *Parser) ParseFile(path string) (*derivation.Derivation, error) {
	lexer, err := p.Lexer()
	if err != nil {
		return nil, err
	}
	sc, err := lexer.ScanFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(sc)
}

// We store states and derivation nodes on the parse stack. Between two states
// there is a node for the symbol of the transition.
type stackitem struct {
	isNode bool
	state  int               // ID of a CFSM state
	node   derivation.NodeID // node for a terminal or a reduced rule
}

func stateItem(s int) stackitem {
	return stackitem{state: s}
}

func nodeItem(id derivation.NodeID) stackitem {
	return stackitem{isNode: true, node: id}
}

// Parse runs the parser on the tokens of a tokenizer. It returns the
// derivation for the input, or the first error encountered. Errors are of
// type *lexion.SyntaxError, unless the tokenizer returns other errors.
func (p *Parser) Parse(tokenizer scanner.Tokenizer) (*derivation.Derivation, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.g == nil || p.table == nil {
		return nil, fmt.Errorf("parser not initialized")
	}
	store := derivation.NewStore()
	stack := make([]stackitem, 0, 128)
	stack = append(stack, stateItem(0))
	lookahead, err := tokenizer.NextToken()
	if err != nil {
		return nil, err
	}
	for step := 1; len(stack) > 0; step++ {
		action := p.currentAction(stack, store, lookahead)
		if p.trace != nil {
			p.trace.AddRow(TraceRow{
				Step:      step,
				Stack:     renderStack(stack, store),
				Lookahead: lookahead.Kind,
				Action:    action.String(),
			})
		}
		tracer().Debugf("step %d: action(%v) = %v", step, lookahead, action)
		switch action.Kind {
		case lr.Accept:
			if len(stack) < 2 || !stack[len(stack)-2].isNode {
				panic("parser accepts without a derivation on the stack")
			}
			return derivation.New(stack[len(stack)-2].node, store), nil
		case lr.Goto:
			stack = append(stack, stateItem(action.Target))
		case lr.Shift:
			leaf := store.AddLeaf(lookahead)
			stack = append(stack, nodeItem(leaf), stateItem(action.Target))
			if lookahead, err = tokenizer.NextToken(); err != nil {
				return nil, err
			}
		case lr.Reduce:
			stack = p.reduce(action.Target, stack, store, lookahead)
		default:
			return nil, reject(lookahead)
		}
	}
	return nil, lexion.UnexpectedEOF(lookahead.Location)
}

// currentAction looks up the table entry for the top of the stack. If the top
// is a node for a reduced rule, its goto has not been applied yet: we look up
// the nearest state below with the rule's left hand side.
func (p *Parser) currentAction(stack []stackitem, store *derivation.Store,
	lookahead lexion.Token) lr.Action {
	//
	tos := stack[len(stack)-1]
	if !tos.isNode {
		return p.table.Action(tos.state, lookahead.Kind)
	}
	lhs := p.g.Rule(store.Node(tos.node).RuleIndex).LHS
	for i := len(stack) - 2; i >= 0; i-- {
		if !stack[i].isNode {
			return p.table.Action(stack[i].state, lhs)
		}
	}
	return lr.Action{}
}

// reduce performs a reduce action for a rule
//
//    LHS -> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn are represented on the stack as nodes, each followed by a
// state
//
//    [TOS]  Sn Xn ... S1 X1 ...
//
// These 2n items are replaced by a single node for LHS, with X1 to Xn as its
// children.
func (p *Parser) reduce(ruleno int, stack []stackitem, store *derivation.Store,
	lookahead lexion.Token) []stackitem {
	//
	rule := p.g.Rule(ruleno)
	tracer().Infof("reduce %v", rule)
	handle := 2 * rule.Len()
	if handle > len(stack) {
		panic(fmt.Sprintf("parse stack too short to reduce %v", rule))
	}
	children := make([]derivation.NodeID, 0, rule.Len())
	for _, item := range stack[len(stack)-handle:] {
		if item.isNode {
			children = append(children, item.node)
		}
	}
	stack = stack[:len(stack)-handle]
	loc := lookahead.Location // epsilon was just before lookahead
	if len(children) > 0 {
		loc = store.Node(children[0]).Token.Location
	}
	token := lexion.Token{Kind: rule.LHS, Value: rule.LHS, Location: loc}
	node := store.AddNode(token, ruleno, children)
	return append(stack, nodeItem(node))
}

func reject(lookahead lexion.Token) *lexion.SyntaxError {
	if lookahead.Kind == scanner.EOF {
		return lexion.UnexpectedEOF(lookahead.Location)
	}
	return lexion.UnexpectedToken(lookahead.Value, lookahead.Location)
}
