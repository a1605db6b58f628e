package lexion

import (
	"errors"
	"testing"
)

func TestLocations(t *testing.T) {
	start := StartOf("")
	if start.File != InlineSource || start.Line != 1 || start.Column != 1 {
		t.Errorf("expected inline:1:1, have %v", start)
	}
	if start.String() != "inline:1:1" {
		t.Errorf("unexpected location display %q", start.String())
	}
	for _, test := range []struct {
		a, b   Location
		before bool
	}{
		{Location{"f", 1, 5}, Location{"f", 2, 1}, true},
		{Location{"f", 2, 1}, Location{"f", 1, 5}, false},
		{Location{"f", 3, 2}, Location{"f", 3, 7}, true},
		{Location{"f", 3, 7}, Location{"f", 3, 7}, false},
	} {
		if test.a.Before(test.b) != test.before {
			t.Errorf("expected %v before %v to be %v", test.a, test.b, test.before)
		}
	}
}

func TestTokenDisplay(t *testing.T) {
	at := Location{"x.txt", 2, 7}
	if s := (Token{Kind: "'num'", Value: "42", Location: at}).String(); s != `'num'("42")@x.txt:2:7` {
		t.Errorf("unexpected token display %s", s)
	}
	if s := (Token{Kind: "$", Value: "$", Location: at}).String(); s != "$@x.txt:2:7" {
		t.Errorf("unexpected end-of-input display %s", s)
	}
}

func TestSyntaxErrors(t *testing.T) {
	at := Location{"x.txt", 3, 4}
	var err error = UnexpectedToken("#", at)
	if err.Error() != "x.txt:3:4: syntax error: unexpected token '#'" {
		t.Errorf("unexpected error message %q", err.Error())
	}
	var serr *SyntaxError
	if !errors.As(err, &serr) || serr.Location != at {
		t.Errorf("expected syntax error at %v", at)
	}
	if UnexpectedEOF(at).Message != "unexpected end of input" {
		t.Errorf("unexpected message for premature end of input")
	}
}
