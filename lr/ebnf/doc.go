/*
Package ebnf reads grammars written in EBNF and converts them to the flat
rule lists of package lr.

The notation is the one used by the Go language specification (see package
golang.org/x/exp/ebnf):

	Expr   = Term { ( "+" | "-" ) Term } .
	Term   = Factor { "*" Factor } .
	Factor = number | "(" Expr ")" .
	number = digit { digit } .
	digit  = "0" … "9" .

Productions with an upper case name are syntactic. The first of them, in
order of appearance, is the start symbol. Groups, options and repetitions
are replaced by helper non-terminals, named after the production they occur
in (Expr_1, Expr_2, …). Repetitions become left-recursive rules, which suits
LR parsing.

Productions with a lower case name are lexical. A lexical production
referenced from a syntactic one becomes a terminal of the grammar, 'number'
in the example above, defined by a regular expression compiled from the
production. Tokens ("+") in syntactic productions become literal terminals.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ebnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexion.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lexion.lr")
}
