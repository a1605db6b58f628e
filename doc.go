/*
Package lexion is an LR parser generator core.

Lexion takes a context-free grammar, given as a flat list of rules, and
derives everything needed to parse input for it: FIRST/FOLLOW sets,
the canonical collection of LR(0) item sets, and an action table under
one of three lookahead strategies (LR(0), SLR(1), LALR(1)). Package
structure is as follows:

■ lr: Package lr holds the grammar model, the item algebra, the
canonical collection and the parse table builders.

■ lr/scanner: Package scanner implements a longest-match tokenizer,
configured from the token patterns a grammar derives.

■ lr/parser: Package parser drives a parse table over a token stream
and produces a derivation tree.

■ lr/derivation: Package derivation holds derivation trees and
walkers over them.

■ lr/ebnf: Package ebnf reads grammars in EBNF notation.

■ cmd/lexion: Command lexion inspects grammars and parse tables and runs
them on input.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lexion
