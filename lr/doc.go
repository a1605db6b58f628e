/*
Package lr implements prerequisites for LR parsing.
It holds the grammar model and static grammar analysis, the LR(0) item
algebra, the canonical collection of item sets and the construction of
parse tables with different lookahead strategies.

Building a Grammar

Grammars are given as a flat list of rules. Symbols are plain strings:
terminals are written in single quotes ('id', '+'), the end-of-input
symbol is "$" and an empty production is written as a right hand side
consisting of "ε". Everything else is a non-terminal. The left hand side
of the first rule is the start symbol.

Example:

    g, err := lr.NewGrammar([]lr.Rule{
        lr.NewRule("S", "A", "'a'"),   // S  ->  A a
        lr.NewRule("A", "'b'", "A"),   // A  ->  b A
        lr.NewRule("A"),               // A  ->  ε
    })

The grammar is augmented with a rule S' -> S, which always has index 0:

   g.Dump()

   0: S' -> S
   1: S -> A 'a'
   2: A -> 'b' A
   3: A -> ε

Rules with a terminal as left hand side do not take part in parsing; they
define the pattern a scanner will use to recognize the terminal:

    lr.NewRule("'num'", "[0-9]+")

Terminals without such a rule are recognized literally.

Static Grammar Analysis

NewGrammar computes the set of nullable non-terminals and FIRST and FOLLOW
sets for every symbol. These are mainly used for constructing parse tables,
but are public for clients to inspect:

    for _, A := range g.NonTerminals() {
        fmt.Printf("FIRST(%s) = %v\n", A, g.First(A))
    }

    // Output:
    FIRST(S) = {'a', 'b'}
    FIRST(A) = {'b', ε}

Parser Construction

Using the analysed grammar as input, a bottom-up parser can be constructed.
First the canonical collection of LR(0) item sets (the characteristic
finite state machine, CFSM) is built from the grammar. The collection
is then turned into a parse table, using one of three lookahead strategies:
LR(0), SLR(1) or LALR(1). The collection is made available to clients.
This is intended for debugging purposes, but may be useful for diagnostics,
too. It can be exported to Graphviz's Dot-format.

Example:

    c := lr.BuildLR0Collection(g)
    table := lr.BuildTable(g, c, lr.LALR1Lookahead(g, c))

or, shorter:

    c, table := lr.Generate(g, lr.LALR1)

Conflicting table entries are not reported: the entry written last wins.
Clients may fix up entries by applying overrides to the table before it is
used for parsing.

Tracing is done with key 'lexion.lr'.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexion.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lexion.lr")
}
