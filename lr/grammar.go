package lr

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/lexion/lr/scanner"
)

// Special symbols of every grammar.
const (
	EOF     = scanner.EOF // end of input, "$"
	Epsilon = "ε"         // right hand side of an empty production
)

// IsTerminal is a predicate: is sym a terminal symbol? Terminals are the
// end-of-input symbol, epsilon, and symbols written in single quotes.
// Classification is purely by the shape of the string.
func IsTerminal(sym string) bool {
	return sym == EOF || sym == Epsilon || isQuoted(sym)
}

// IsNonTerminal is the complement of IsTerminal.
func IsNonTerminal(sym string) bool {
	return !IsTerminal(sym)
}

func isQuoted(sym string) bool {
	return len(sym) >= 2 && sym[0] == '\'' && sym[len(sym)-1] == '\''
}

// Unquote returns the text of a quoted terminal, i.e. 'if' is returned as if.
// All other symbols are returned unchanged.
func Unquote(sym string) string {
	if isQuoted(sym) {
		return sym[1 : len(sym)-1]
	}
	return sym
}

// jsmachineSymbol renders a symbol for the jsmachine grammar format.
func jsmachineSymbol(sym string) string {
	switch sym {
	case "'->'":
		return "-=>"
	case Epsilon:
		return "''"
	}
	return Unquote(sym)
}

// --- Rules -----------------------------------------------------------------

// Rule is a grammar rule (production). An empty right hand side is
// represented as a single Epsilon, never as an empty slice.
type Rule struct {
	LHS string   `json:"left"`
	RHS []string `json:"right"`
}

// NewRule creates a rule LHS -> RHS. Omitting the right hand side
// creates an epsilon production.
func NewRule(lhs string, rhs ...string) Rule {
	if len(rhs) == 0 {
		rhs = []string{Epsilon}
	}
	return Rule{LHS: lhs, RHS: append([]string(nil), rhs...)}
}

// IsEpsilon is true for empty productions.
func (r *Rule) IsEpsilon() bool {
	return len(r.RHS) == 0 || len(r.RHS) == 1 && r.RHS[0] == Epsilon
}

// Len returns the number of symbols a rule derives, 0 for empty productions.
func (r *Rule) Len() int {
	if r.IsEpsilon() {
		return 0
	}
	return len(r.RHS)
}

// Equals compares two rules symbol by symbol.
func (r *Rule) Equals(other *Rule) bool {
	if r.LHS != other.LHS || len(r.RHS) != len(other.RHS) {
		return false
	}
	for i, sym := range r.RHS {
		if other.RHS[i] != sym {
			return false
		}
	}
	return true
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.LHS, strings.Join(r.RHS, " "))
}

// JSMachineString renders the rule in the format of the jsmachine web tool.
func (r *Rule) JSMachineString() string {
	syms := make([]string, len(r.RHS))
	for i, sym := range r.RHS {
		syms[i] = jsmachineSymbol(sym)
	}
	return fmt.Sprintf("%s -> %s", r.LHS, strings.Join(syms, " "))
}

// --- Grammar ---------------------------------------------------------------

// ErrNoStartSymbol is returned when constructing a grammar without any
// (non-terminal) rules.
var ErrNoStartSymbol = errors.New("grammar has no start symbol")

// Grammar is an augmented context-free grammar together with its static
// analysis. A grammar is immutable after construction and may be shared
// between goroutines.
type Grammar struct {
	analysis // nullable set, FIRST and FOLLOW

	rules        []Rule           // rules[0] is the augmented start rule
	definitions  []Rule           // terminal-defining rules
	start        string           // start symbol
	terminals    []string         // in order of appearance, without $ and ε
	nonterminals []string         // in order of appearance, without augmented start
	byLHS        map[string][]int // rule indices per non-terminal
	strict       bool             // panic on lookups of unknown symbols
}

// GrammarOption configures a grammar.
type GrammarOption func(*Grammar)

// StrictLookups makes FIRST and FOLLOW lookups of unknown symbols panic
// instead of returning an empty set.
func StrictLookups() GrammarOption {
	return func(g *Grammar) {
		g.strict = true
	}
}

// NewGrammar creates and analyses a grammar from a list of rules. Rules with
// a terminal on the left hand side are taken as terminal definitions: their
// right hand side is a single pattern for the scanner. The remaining rules
// are the productions of the grammar, the first one determining the start
// symbol. NewGrammar fails with ErrNoStartSymbol if there are no productions.
func NewGrammar(rules []Rule, opts ...GrammarOption) (*Grammar, error) {
	g := &Grammar{byLHS: make(map[string][]int)}
	for _, opt := range opts {
		opt(g)
	}
	productions := make([]Rule, 0, len(rules)+1)
	for _, r := range rules {
		if IsTerminal(r.LHS) {
			if len(r.RHS) != 1 {
				return nil, fmt.Errorf("terminal %s must be defined by exactly one pattern, has %d",
					r.LHS, len(r.RHS))
			}
			g.definitions = append(g.definitions, NewRule(r.LHS, r.RHS...))
			continue
		}
		if r.LHS == "" {
			return nil, fmt.Errorf("rule with empty left hand side: %v", r.RHS)
		}
		productions = append(productions, NewRule(r.LHS, r.RHS...))
	}
	if len(productions) == 0 {
		return nil, ErrNoStartSymbol
	}
	g.start = productions[0].LHS
	g.rules = append(g.rules, NewRule(g.AugmentedStartSymbol(), g.start))
	g.rules = append(g.rules, productions...)
	g.collectSymbols()
	g.analyse()
	tracer().Debugf("grammar with %d rules, start symbol %s", len(g.rules), g.start)
	return g, nil
}

// MustGrammar is like NewGrammar, but panics on error.
func MustGrammar(rules []Rule, opts ...GrammarOption) *Grammar {
	g, err := NewGrammar(rules, opts...)
	if err != nil {
		panic(fmt.Sprintf("cannot create grammar: %v", err))
	}
	return g
}

func (g *Grammar) collectSymbols() {
	seenT, seenN := make(map[string]bool), make(map[string]bool)
	addN := func(sym string) {
		if !seenN[sym] {
			seenN[sym] = true
			g.nonterminals = append(g.nonterminals, sym)
		}
	}
	for i, r := range g.rules {
		g.byLHS[r.LHS] = append(g.byLHS[r.LHS], i)
		if i == 0 {
			continue
		}
		addN(r.LHS)
		for _, sym := range r.RHS {
			if sym == Epsilon || sym == EOF {
				continue
			}
			if IsTerminal(sym) {
				if !seenT[sym] {
					seenT[sym] = true
					g.terminals = append(g.terminals, sym)
				}
			} else {
				addN(sym)
			}
		}
	}
}

// StartSymbol returns the start symbol, i.e. the left hand side of the first rule.
func (g *Grammar) StartSymbol() string {
	return g.start
}

// AugmentedStartSymbol returns the left hand side of rule 0.
func (g *Grammar) AugmentedStartSymbol() string {
	return g.start + "'"
}

// Size returns the number of rules, including the augmented start rule.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule number i. Rule 0 is the augmented start rule.
// Clients must not modify the rule.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		panic(fmt.Sprintf("rule index %d out of range", i))
	}
	return &g.rules[i]
}

// Rules returns a copy of the rules of the grammar, starting with the augmented rule.
func (g *Grammar) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// Definitions returns a copy of the terminal-defining rules.
func (g *Grammar) Definitions() []Rule {
	return append([]Rule(nil), g.definitions...)
}

// RulesFor returns the indices of all rules with left hand side lhs.
func (g *Grammar) RulesFor(lhs string) []int {
	return g.byLHS[lhs]
}

// Terminals returns the terminals used in rules, in order of first
// appearance. The end-of-input symbol and epsilon are not included.
func (g *Grammar) Terminals() []string {
	return append([]string(nil), g.terminals...)
}

// NonTerminals returns the non-terminals in order of first appearance.
// The augmented start symbol is not included.
func (g *Grammar) NonTerminals() []string {
	return append([]string(nil), g.nonterminals...)
}

// EachTerminal calls f for every terminal, in order of first appearance.
func (g *Grammar) EachTerminal(f func(t string)) {
	for _, t := range g.terminals {
		f(t)
	}
}

// EachNonTerminal calls f for every non-terminal, in order of first appearance.
func (g *Grammar) EachNonTerminal(f func(A string)) {
	for _, A := range g.nonterminals {
		f(A)
	}
}

// Symbols returns the symbols used as parse table columns: terminals,
// then end-of-input, then non-terminals.
func (g *Grammar) Symbols() []string {
	syms := make([]string, 0, len(g.terminals)+len(g.nonterminals)+1)
	syms = append(syms, g.terminals...)
	syms = append(syms, EOF)
	return append(syms, g.nonterminals...)
}

// Definition returns the pattern of the first terminal-defining rule for t.
func (g *Grammar) Definition(t string) (string, bool) {
	for _, r := range g.definitions {
		if r.LHS == t {
			return r.RHS[0], true
		}
	}
	return "", false
}

// Dump is a debugging helper, tracing all rules with their index.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s ----------------------------------------", g.start)
	for i := range g.rules {
		tracer().Debugf("%3d: %s", i, g.rules[i].String())
	}
	tracer().Debugf("-------------------------------------------------")
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	b.WriteString("Grammar {\n")
	b.WriteString("  " + g.start + "\n")
	b.WriteString("  Rules {\n")
	for i := range g.rules {
		b.WriteString("    " + g.rules[i].String() + "\n")
	}
	b.WriteString("  }\n  Non-terminals {\n")
	for _, A := range g.nonterminals {
		b.WriteString("    " + A + "\n")
	}
	b.WriteString("  }\n  Tokens {\n")
	for _, p := range g.TokenPatterns() {
		if p.Name != "" {
			b.WriteString(fmt.Sprintf("    %s %s\n", p.Name, p.Regex))
		}
	}
	b.WriteString("  }\n}")
	return b.String()
}

// JSMachineString renders all rules, one per line, in a format suitable
// for the jsmachine web tool.
func (g *Grammar) JSMachineString() string {
	lines := make([]string, len(g.rules))
	for i := range g.rules {
		lines[i] = g.rules[i].JSMachineString()
	}
	return strings.Join(lines, "\n")
}
