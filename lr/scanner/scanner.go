/*
Package scanner defines the tokenizer interface used by the parsers of package lr,
together with a longest-match tokenizer driven by a list of patterns.

Patterns are regular expressions in lexmachine syntax. A scanner always
selects the longest match at the current input position; if two patterns
match input of the same length, the one earlier in the pattern list wins.
Patterns without a name are skipped (whitespace, comments). Grammars of
package lr derive their pattern lists from their terminals.

    lexer, err := scanner.NewLexer(g.TokenPatterns())
    ...
    sc, err := lexer.Scanner("input.txt", input)
    token, err := sc.NextToken()

Scanners report unrecognized input as *lexion.SyntaxError.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"strings"

	"github.com/npillmayer/lexion"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexion.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexion.scanner")
}

// EOF is the token kind and value of the synthetic end-of-input token.
const EOF = "$"

// Tokenizer is a scanner interface. At the end of input, NextToken returns
// a token of kind EOF, without consuming anything.
type Tokenizer interface {
	NextToken() (lexion.Token, error)
}

// Pattern is a named regular expression. Matches of patterns with an empty
// name are discarded.
type Pattern struct {
	Name  string
	Regex string
}

// IsSkip is true for unnamed patterns.
func (p Pattern) IsSkip() bool {
	return p.Name == ""
}

// --- Fixed patterns --------------------------------------------------------

var skipPatterns = [...]Pattern{
	{Regex: `( |\t|\n|\r)+`},                           // whitespace
	{Regex: `//[^\n]*`},                                // line comment
	{Regex: `/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`}, // block comment
}

// SkipPatterns returns the patterns for whitespace, line comments (// …)
// and block comments (/* … */). All of them are unnamed.
func SkipPatterns() []Pattern {
	return append([]Pattern(nil), skipPatterns[:]...)
}

// Literal returns a pattern body matching text literally.
// ASCII punctuation is escaped, everything else is left as-is.
func Literal(text string) string {
	var b strings.Builder
	for _, r := range text {
		if isSpecial(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isSpecial(r rune) bool {
	if r >= 0x80 || r <= ' ' {
		return false
	}
	return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
}

// Tokenize reads all tokens from t, up to but excluding end of input.
func Tokenize(t Tokenizer) ([]lexion.Token, error) {
	var tokens []lexion.Token
	for {
		tok, err := t.NextToken()
		if err != nil {
			return tokens, err
		}
		if tok.Kind == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
