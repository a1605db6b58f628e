package scanner

import (
	"errors"
	"testing"

	"github.com/npillmayer/lexion"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeLexer(t *testing.T, patterns ...Pattern) *Lexer {
	lexer, err := NewLexer(append(SkipPatterns(), patterns...))
	if err != nil {
		t.Fatalf("cannot create lexer: %v", err)
	}
	return lexer
}

func scanAll(t *testing.T, lexer *Lexer, input string) ([]lexion.Token, error) {
	sc, err := lexer.Scanner("", input)
	if err != nil {
		t.Fatalf("cannot create scanner: %v", err)
	}
	return Tokenize(sc)
}

func TestLongestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.scanner")
	defer teardown()
	//
	lexer := makeLexer(t,
		Pattern{Name: "'int'", Regex: `[0-9]+`},
		Pattern{Name: "'dec'", Regex: `[0-9]+\.[0-9]+`},
		Pattern{Name: "'.'", Regex: Literal(".")},
	)
	tokens, err := scanAll(t, lexer, "12.5")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, have %d: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != "'dec'" || tokens[0].Value != "12.5" {
		t.Errorf("expected decimal token 12.5, have %v", tokens[0])
	}
}

func TestTiesGoToEarlierPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.scanner")
	defer teardown()
	//
	lexer := makeLexer(t,
		Pattern{Name: "'if'", Regex: Literal("if")},
		Pattern{Name: "'id'", Regex: `[a-z]+`},
	)
	tokens, err := scanAll(t, lexer, "if iffy")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, have %v", tokens)
	}
	if tokens[0].Kind != "'if'" {
		t.Errorf("expected keyword for 'if', have %v", tokens[0])
	}
	if tokens[1].Kind != "'id'" || tokens[1].Value != "iffy" {
		t.Errorf("expected identifier 'iffy' (longer match), have %v", tokens[1])
	}
}

func TestSkipAndLocations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.scanner")
	defer teardown()
	//
	lexer := makeLexer(t,
		Pattern{Name: "'id'", Regex: `[a-z]+`},
		Pattern{Name: "';'", Regex: Literal(";")},
	)
	input := "a; // comment\n  /* block\n comment */ bc;"
	tokens, err := scanAll(t, lexer, input)
	if err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		value     string
		line, col int
	}{
		{"a", 1, 1}, {";", 1, 2}, {"bc", 3, 13}, {";", 3, 15},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, have %v", len(expected), tokens)
	}
	for i, x := range expected {
		tok := tokens[i]
		if tok.Value != x.value || tok.Location.Line != x.line || tok.Location.Column != x.col {
			t.Errorf("token #%d: expected %q at %d:%d, have %v", i, x.value, x.line, x.col, tok)
		}
		if tok.Location.File != lexion.InlineSource {
			t.Errorf("token #%d: expected file %q, have %q", i, lexion.InlineSource, tok.Location.File)
		}
	}
}

func TestEndOfInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.scanner")
	defer teardown()
	//
	lexer := makeLexer(t, Pattern{Name: "'x'", Regex: Literal("x")})
	sc, err := lexer.Scanner("test", "x\n")
	if err != nil {
		t.Fatal(err)
	}
	if tok, _ := sc.NextToken(); tok.Kind != "'x'" {
		t.Fatalf("expected 'x', have %v", tok)
	}
	for i := 0; i < 2; i++ { // EOF is not consumed
		tok, err := sc.NextToken()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind != EOF || tok.Value != EOF {
			t.Errorf("expected end of input, have %v", tok)
		}
		if tok.Location.Line != 2 || tok.Location.Column != 1 {
			t.Errorf("expected EOF at 2:1, is at %v", tok.Location)
		}
	}
}

func TestUnexpectedToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.scanner")
	defer teardown()
	//
	lexer := makeLexer(t, Pattern{Name: "'a'", Regex: Literal("a")})
	_, err := scanAll(t, lexer, "a a\n a #")
	if err == nil {
		t.Fatalf("expected lexical error for '#'")
	}
	var serr *lexion.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected syntax error, have %T", err)
	}
	if serr.Message != "unexpected token '#'" {
		t.Errorf("unexpected error message %q", serr.Message)
	}
	if serr.Location.Line != 2 || serr.Location.Column != 4 {
		t.Errorf("expected error at 2:4, is at %v", serr.Location)
	}
	//
	_, err = scanAll(t, lexer, "a #?! a")
	if !errors.As(err, &serr) || serr.Message != "unexpected token '#?!'" {
		t.Errorf("expected whole non-whitespace run to be reported, have %v", err)
	}
}

func TestLiteralEscaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexion.scanner")
	defer teardown()
	//
	for _, x := range []struct{ in, out string }{
		{"if", "if"},
		{"+", `\+`},
		{"->", `\-\>`},
		{"a.b", `a\.b`},
		{"(*", `\(\*`},
	} {
		if l := Literal(x.in); l != x.out {
			t.Errorf("expected Literal(%q) = %q, have %q", x.in, x.out, l)
		}
	}
	lexer := makeLexer(t,
		Pattern{Name: "'('", Regex: Literal("(")},
		Pattern{Name: "'*'", Regex: Literal("*")},
		Pattern{Name: "'|'", Regex: Literal("|")},
	)
	tokens, err := scanAll(t, lexer, "( * |")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 || tokens[2].Kind != "'|'" {
		t.Errorf("expected 3 operator tokens, have %v", tokens)
	}
}
