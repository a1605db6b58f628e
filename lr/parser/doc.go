/*
Package parser provides a table-driven LR parser. Clients have to use the
tools of package lr to prepare the parse table. The parser utilizes the
table to create a derivation for a given input, provided through the
scanner.Tokenizer interface.

The parser does not care which lookahead strategy has been used to build
the table. Conflicts have been resolved during table construction, so the
parser is always deterministic.

The main focus for this implementation is adaptability and on-the-fly usage.
Clients are able to construct the parse table from a grammar and use the
parser directly, without a code-generation or compile step. If you want, you
can create a grammar from user input and use a parser for it in a couple of
lines of code.

Usage

Clients construct a grammar from a list of rules:

	g, err := lr.NewGrammar([]lr.Rule{
		lr.NewRule("Var", "Sign", "'a'"),   // Var  -> Sign a
		lr.NewRule("Sign", "'+'"),          // Sign -> +
		lr.NewRule("Sign", "'-'"),          // Sign -> -
		lr.NewRule("Sign"),                 // Sign -> ε
	})

This grammar is subjected to table generation

	_, table := lr.Generate(g, lr.LALR1)

Finally parse some input:

	p := parser.New(g, table)
	d, err := p.ParseString("+a")

The result is a derivation tree, see package derivation. Clients
instrument the grammar with semantic operations by walking the derivation.

Errors are of type *lexion.SyntaxError, whether the input could not be
tokenized or the parse table rejected a token. The first error ends the
parse.

Tracing is done with key 'lexion.parser'. Additionally, clients may
request a step-by-step trace of the parser's stack:

	trace := &parser.TraceTable{}
	p := parser.New(g, table, parser.WithTrace(trace))

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexion.parser'.
func tracer() tracing.Trace {
	return tracing.Select("lexion.parser")
}
