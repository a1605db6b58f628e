package lexion

import "fmt"

// --- Locations -------------------------------------------------------------

// InlineSource is the file name used for input which did not come from a file.
const InlineSource = "inline"

// Location is a position in an input source. Line and Column are 1-based;
// columns count runes, not bytes.
type Location struct {
	File   string
	Line   int
	Column int
}

// StartOf returns the location of the first character of a source.
func StartOf(file string) Location {
	if file == "" {
		file = InlineSource
	}
	return Location{File: file, Line: 1, Column: 1}
}

// Before is a predicate: does l come before other in the same file?
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Column < other.Column
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// --- Tokens ----------------------------------------------------------------

// Token is a token instance, as produced by a scanner. Kind is the grammar
// symbol the token stands for (a quoted terminal like 'id', or the
// end-of-input symbol), Value is the lexeme as it appeared in the input.
//
// An example would be a token for a floating point number:
//
//    Kind     = 'float'        // terminal of the grammar
//    Value    = "3.1416"       // lexeme how it appeared in the input stream
//    Location = inline:1:7     // where the lexeme starts
//
// Tokens are small values and are passed around by value.
type Token struct {
	Kind     string
	Value    string
	Location Location
}

func (t Token) String() string {
	if t.Kind == t.Value {
		return fmt.Sprintf("%s@%s", t.Kind, t.Location)
	}
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Location)
}

// --- Errors ----------------------------------------------------------------

// SyntaxError is the one error type a parse may fail with. It reports both
// lexical errors (no token pattern matches the input) and grammar errors
// (the parse table rejects a token).
type SyntaxError struct {
	Message  string
	Location Location
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", e.Location, e.Message)
}

// UnexpectedToken creates a syntax error for an unexpected input lexeme.
func UnexpectedToken(lexeme string, at Location) *SyntaxError {
	return &SyntaxError{
		Message:  fmt.Sprintf("unexpected token '%s'", lexeme),
		Location: at,
	}
}

// UnexpectedEOF creates a syntax error for input which ended prematurely.
func UnexpectedEOF(at Location) *SyntaxError {
	return &SyntaxError{
		Message:  "unexpected end of input",
		Location: at,
	}
}
