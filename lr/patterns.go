package lr

import (
	"github.com/npillmayer/lexion/lr/scanner"
)

// TokenPatterns derives the scanner patterns for a grammar.
//
// The list starts with the unnamed skip patterns for whitespace and
// comments, followed by one pattern per terminal, named after the terminal:
// first all terminals without a terminal-defining rule, matched literally,
// in order of first appearance in the rules; then all terminals with a
// terminal-defining rule, in order of their definitions. As the scanner
// breaks ties between matches of equal length in favour of earlier patterns,
// keywords win over identifier patterns.
func (g *Grammar) TokenPatterns() []scanner.Pattern {
	patterns := scanner.SkipPatterns()
	used := make(map[string]bool, len(g.terminals))
	for _, t := range g.terminals {
		used[t] = true
		if _, defined := g.Definition(t); !defined {
			patterns = append(patterns, scanner.Pattern{
				Name:  t,
				Regex: scanner.Literal(Unquote(t)),
			})
		}
	}
	for _, r := range g.definitions {
		if !used[r.LHS] {
			continue // defined but not used, or defined twice
		}
		patterns = append(patterns, scanner.Pattern{
			Name:  r.LHS,
			Regex: r.RHS[0],
		})
		used[r.LHS] = false
	}
	return patterns
}

// Lexer compiles the token patterns of g into a lexer.
func (g *Grammar) Lexer() (*scanner.Lexer, error) {
	return scanner.NewLexer(g.TokenPatterns())
}
