package scanner

import (
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lexion"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// Lexer is a compiled set of patterns. It is safe to create any number of
// scanners from one lexer, including concurrently.
type Lexer struct {
	lexer    *lexmachine.Lexer
	patterns []Pattern
}

// NewLexer compiles a list of patterns into a DFA. Pattern i is reported
// with token type i; lexmachine prefers earlier patterns for matches of
// equal length.
//
// NewLexer will return an error if compiling the DFA failed.
func NewLexer(patterns []Pattern) (*Lexer, error) {
	lx := &Lexer{
		lexer:    lexmachine.NewLexer(),
		patterns: append([]Pattern(nil), patterns...),
	}
	for id, p := range lx.patterns {
		if p.IsSkip() {
			lx.lexer.Add([]byte(p.Regex), Skip)
		} else {
			lx.lexer.Add([]byte(p.Regex), MakeToken(id))
		}
	}
	if err := lx.lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, fmt.Errorf("cannot compile token patterns: %w", err)
	}
	return lx, nil
}

// Patterns returns the patterns this lexer has been compiled from.
func (lx *Lexer) Patterns() []Pattern {
	return append([]Pattern(nil), lx.patterns...)
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface. file names the source in token locations.
func (lx *Lexer) Scanner(file string, input string) (*Scanner, error) {
	text := []byte(input)
	s, err := lx.lexer.Scanner(text)
	if err != nil {
		return nil, err
	}
	start := lexion.StartOf(file)
	return &Scanner{
		scanner:  s,
		patterns: lx.patterns,
		text:     text,
		loc:      start,
	}, nil
}

// ScanFile reads a source file and creates a scanner for it.
func (lx *Lexer) ScanFile(path string) (*Scanner, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read source: %w", err)
	}
	return lx.Scanner(path, string(input))
}

// Scanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type Scanner struct {
	scanner  *lexmachine.Scanner
	patterns []Pattern
	text     []byte
	pos      int             // byte offset of loc
	loc      lexion.Location // location of text[pos]
}

var _ Tokenizer = (*Scanner)(nil)

// NextToken is part of the Tokenizer interface.
//
// A lexical error is returned as a *lexion.SyntaxError, reporting the run of
// non-whitespace input no pattern could match.
func (sc *Scanner) NextToken() (lexion.Token, error) {
	tok, err, eof := sc.scanner.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			sc.advance(ui.StartTC)
			return lexion.Token{}, lexion.UnexpectedToken(sc.unexpected(ui.StartTC), sc.loc)
		}
		return lexion.Token{}, &lexion.SyntaxError{Message: err.Error(), Location: sc.loc}
	}
	if eof {
		sc.advance(len(sc.text))
		return lexion.Token{Kind: EOF, Value: EOF, Location: sc.loc}, nil
	}
	token := tok.(*lexmachine.Token)
	sc.advance(token.TC)
	t := lexion.Token{
		Kind:     sc.patterns[token.Type].Name,
		Value:    string(token.Lexeme),
		Location: sc.loc,
	}
	tracer().Debugf("token %v", t)
	sc.advance(token.TC + len(token.Lexeme))
	return t, nil
}

// advance moves the location forward to byte offset tc.
func (sc *Scanner) advance(tc int) {
	for sc.pos < tc && sc.pos < len(sc.text) {
		r, size := utf8.DecodeRune(sc.text[sc.pos:])
		if r == '\n' {
			sc.loc.Line++
			sc.loc.Column = 1
		} else {
			sc.loc.Column++
		}
		sc.pos += size
	}
}

// unexpected returns the longest run of non-whitespace at byte offset tc.
func (sc *Scanner) unexpected(tc int) string {
	end := tc
	for end < len(sc.text) {
		r, size := utf8.DecodeRune(sc.text[end:])
		if unicode.IsSpace(r) {
			break
		}
		end += size
	}
	return string(sc.text[tc:end])
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token
// of type id.
func MakeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
