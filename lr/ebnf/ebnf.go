package ebnf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lexion/lr"
	"github.com/npillmayer/lexion/lr/scanner"
	xebnf "golang.org/x/exp/ebnf"
)

// ErrNoSyntacticProduction is returned for grammars consisting of lexical
// productions only.
var ErrNoSyntacticProduction = errors.New("EBNF grammar has no syntactic production")

// Load reads an EBNF grammar file and converts it to a list of rules.
func Load(path string) ([]lr.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar: %w", err)
	}
	defer f.Close()
	return Read(path, f)
}

// Read parses an EBNF grammar from r and converts it to a list of rules.
// filename is used for error positions only.
func Read(filename string, r io.Reader) ([]lr.Rule, error) {
	grammar, err := xebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse EBNF grammar: %w", err)
	}
	return Convert(grammar)
}

// Convert translates a parsed EBNF grammar to a list of rules, starting with
// the productions of the start symbol and followed by the terminal-defining
// rules for lexical productions. The grammar is verified first: every
// production has to be reachable from the start symbol.
func Convert(grammar xebnf.Grammar) ([]lr.Rule, error) {
	prods := sortedProductions(grammar)
	start := ""
	for _, p := range prods {
		if !isLexical(p.Name.String) {
			start = p.Name.String
			break
		}
	}
	if start == "" {
		return nil, ErrNoSyntacticProduction
	}
	if err := xebnf.Verify(grammar, start); err != nil {
		return nil, fmt.Errorf("invalid EBNF grammar: %w", err)
	}
	c := &converter{
		grammar:  grammar,
		helpers:  make(map[string]bool),
		used:     make(map[string]bool),
		literals: make(map[string]bool),
		regexes:  make(map[string]string),
	}
	for _, p := range prods {
		if isLexical(p.Name.String) {
			continue
		}
		if err := c.production(p); err != nil {
			return nil, err
		}
	}
	for _, p := range prods {
		name := p.Name.String
		if !isLexical(name) || !c.used[name] {
			continue
		}
		if c.literals[name] {
			return nil, fmt.Errorf("%v: terminal '%s' is both a token and a lexical production",
				p.Pos(), name)
		}
		re, err := c.regex(name, make(map[string]bool))
		if err != nil {
			return nil, err
		}
		c.rules = append(c.rules, lr.NewRule(quote(name), re))
	}
	tracer().Debugf("EBNF grammar converted to %d rules", len(c.rules))
	return c.rules, nil
}

// sortedProductions returns the productions in order of appearance.
func sortedProductions(grammar xebnf.Grammar) []*xebnf.Production {
	prods := make([]*xebnf.Production, 0, len(grammar))
	for _, p := range grammar {
		prods = append(prods, p)
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].Name.StringPos.Offset < prods[j].Name.StringPos.Offset
	})
	return prods
}

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

func quote(s string) string {
	return "'" + s + "'"
}

// --- Syntactic productions -------------------------------------------------

type converter struct {
	grammar  xebnf.Grammar
	rules    []lr.Rule
	pending  []lr.Rule         // rules for helper non-terminals
	helpers  map[string]bool   // names of helper non-terminals
	count    map[string]int    // helper count per production
	used     map[string]bool   // lexical productions referenced as terminals
	literals map[string]bool   // text of token terminals
	regexes  map[string]string // compiled lexical productions
}

func (c *converter) production(p *xebnf.Production) error {
	lhs := p.Name.String
	alts, err := c.alternatives(p.Expr, lhs)
	if err != nil {
		return err
	}
	for _, seq := range alts {
		c.rules = append(c.rules, lr.NewRule(lhs, seq...))
	}
	c.rules = append(c.rules, c.pending...)
	c.pending = c.pending[:0]
	return nil
}

// alternatives returns the right hand sides an expression stands for.
func (c *converter) alternatives(e xebnf.Expression, owner string) ([][]string, error) {
	alt, ok := e.(xebnf.Alternative)
	if !ok {
		seq, err := c.sequence(e, owner)
		if err != nil {
			return nil, err
		}
		return [][]string{seq}, nil
	}
	alts := make([][]string, 0, len(alt))
	for _, x := range alt {
		seq, err := c.sequence(x, owner)
		if err != nil {
			return nil, err
		}
		alts = append(alts, seq)
	}
	return alts, nil
}

func (c *converter) sequence(e xebnf.Expression, owner string) ([]string, error) {
	switch x := e.(type) {
	case nil:
		return nil, nil
	case xebnf.Sequence:
		seq := make([]string, 0, len(x))
		for _, item := range x {
			sym, err := c.symbol(item, owner)
			if err != nil {
				return nil, err
			}
			seq = append(seq, sym)
		}
		return seq, nil
	}
	sym, err := c.symbol(e, owner)
	if err != nil {
		return nil, err
	}
	return []string{sym}, nil
}

// symbol returns the grammar symbol for a single EBNF expression, creating
// helper rules for groups, options and repetitions:
//
//     ( a | b )   ⇒   H -> a | b
//     [ a ]       ⇒   H -> a | ε
//     { a }       ⇒   H -> H a | ε
//
func (c *converter) symbol(e xebnf.Expression, owner string) (string, error) {
	switch x := e.(type) {
	case *xebnf.Name:
		if isLexical(x.String) {
			c.used[x.String] = true
			return quote(x.String), nil
		}
		return x.String, nil
	case *xebnf.Token:
		if x.String == "" {
			return "", fmt.Errorf("%v: empty token in production %s", x.Pos(), owner)
		}
		c.literals[x.String] = true
		return quote(x.String), nil
	case *xebnf.Group:
		h := c.helper(owner)
		alts, err := c.alternatives(x.Body, owner)
		if err != nil {
			return "", err
		}
		c.addHelperRules(h, alts, false)
		return h, nil
	case *xebnf.Option:
		h := c.helper(owner)
		alts, err := c.alternatives(x.Body, owner)
		if err != nil {
			return "", err
		}
		c.addHelperRules(h, append(alts, nil), false)
		return h, nil
	case *xebnf.Repetition:
		h := c.helper(owner)
		alts, err := c.alternatives(x.Body, owner)
		if err != nil {
			return "", err
		}
		c.addHelperRules(h, append(alts, nil), true)
		return h, nil
	case *xebnf.Range:
		return "", fmt.Errorf("%v: character range in syntactic production %s", x.Pos(), owner)
	}
	return "", fmt.Errorf("%v: unexpected expression in production %s", e.Pos(), owner)
}

// addHelperRules adds H -> seq for every sequence. For recursive helpers,
// non-empty sequences are prefixed with H.
func (c *converter) addHelperRules(h string, alts [][]string, recursive bool) {
	for _, seq := range alts {
		if recursive && len(seq) > 0 {
			seq = append([]string{h}, seq...)
		}
		c.pending = append(c.pending, lr.NewRule(h, seq...))
	}
}

// helper creates a fresh non-terminal name for a production.
func (c *converter) helper(owner string) string {
	if c.count == nil {
		c.count = make(map[string]int)
	}
	for {
		c.count[owner]++
		name := fmt.Sprintf("%s_%d", owner, c.count[owner])
		if _, exists := c.grammar[name]; !exists && !c.helpers[name] {
			c.helpers[name] = true
			return name
		}
	}
}

// --- Lexical productions ---------------------------------------------------

// regex compiles a lexical production to a regular expression for the
// scanner.
func (c *converter) regex(name string, visiting map[string]bool) (string, error) {
	if re, ok := c.regexes[name]; ok {
		return re, nil
	}
	p := c.grammar[name]
	if visiting[name] {
		return "", fmt.Errorf("%v: lexical production %s is recursive", p.Pos(), name)
	}
	if p.Expr == nil {
		return "", fmt.Errorf("%v: lexical production %s is empty", p.Pos(), name)
	}
	visiting[name] = true
	defer delete(visiting, name)
	var b strings.Builder
	if err := c.compile(&b, p.Expr, visiting); err != nil {
		return "", err
	}
	c.regexes[name] = b.String()
	return b.String(), nil
}

func (c *converter) compile(b *strings.Builder, e xebnf.Expression, visiting map[string]bool) error {
	wrap := func(body xebnf.Expression, suffix string) error {
		b.WriteString("(")
		if err := c.compile(b, body, visiting); err != nil {
			return err
		}
		b.WriteString(")")
		b.WriteString(suffix)
		return nil
	}
	switch x := e.(type) {
	case nil:
		// matches the empty string
	case *xebnf.Token:
		b.WriteString(scanner.Literal(x.String))
	case *xebnf.Range:
		b.WriteString("[")
		b.WriteString(classLiteral(x.Begin.String))
		b.WriteString("-")
		b.WriteString(classLiteral(x.End.String))
		b.WriteString("]")
	case *xebnf.Name:
		re, err := c.regex(x.String, visiting)
		if err != nil {
			return err
		}
		b.WriteString("(" + re + ")")
	case xebnf.Sequence:
		for _, item := range x {
			if err := c.compile(b, item, visiting); err != nil {
				return err
			}
		}
	case xebnf.Alternative:
		b.WriteString("(")
		for i, item := range x {
			if i > 0 {
				b.WriteString("|")
			}
			if err := c.compile(b, item, visiting); err != nil {
				return err
			}
		}
		b.WriteString(")")
	case *xebnf.Group:
		return wrap(x.Body, "")
	case *xebnf.Option:
		return wrap(x.Body, "?")
	case *xebnf.Repetition:
		return wrap(x.Body, "*")
	default:
		return fmt.Errorf("%v: unexpected expression in lexical production", e.Pos())
	}
	return nil
}

// classLiteral escapes a character for use inside a character class.
func classLiteral(s string) string {
	switch s {
	case `\`, `]`, `[`, `-`, `^`:
		return `\` + s
	}
	return s
}
