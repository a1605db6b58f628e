/*
Command lexion generates LR parse tables from grammars and runs them on
input, for inspecting and debugging grammars.

	lexion analyze  expr.ebnf                 # rules, FIRST/FOLLOW, states
	lexion table    expr.ebnf --html t.html   # the parse table
	lexion parse    expr.ebnf "1+2*3"         # derivation tree for input
	lexion repl     expr.ebnf                 # parse lines interactively

Grammars are read from JSON rule lists or, for files ending in ".ebnf",
from EBNF (see package lr/ebnf).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
