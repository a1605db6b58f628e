package main

import (
	"strconv"
	"strings"

	"github.com/npillmayer/lexion/lr"
	"github.com/npillmayer/lexion/lr/derivation"
	"github.com/npillmayer/lexion/lr/iteratable"
	"github.com/pterm/pterm"
)

// rulesTable lists the rules of g with their index, followed by the token
// patterns of the scanner.
func rulesTable(g *lr.Grammar) [][]string {
	data := [][]string{{"#", "Rule"}}
	for i := 0; i < g.Size(); i++ {
		data = append(data, []string{strconv.Itoa(i), g.Rule(i).String()})
	}
	for _, p := range g.TokenPatterns() {
		if !p.IsSkip() {
			data = append(data, []string{"", p.Name + " ~ " + p.Regex})
		}
	}
	return data
}

// symbolsTable lists nullability, FIRST and FOLLOW for every non-terminal.
func symbolsTable(g *lr.Grammar) [][]string {
	data := [][]string{{"Symbol", "Nullable", "FIRST", "FOLLOW"}}
	g.EachNonTerminal(func(A string) {
		nullable := ""
		if g.IsNullable(A) {
			nullable = "yes"
		}
		data = append(data, []string{A, nullable, symbolList(g.First(A)), symbolList(g.Follow(A))})
	})
	return data
}

func symbolList(set *iteratable.Set) string {
	return strings.Join(set.Strings(), " ")
}

// leveledTree converts a derivation into a pterm leveled list, one item per
// node, with leaves showing their lexeme.
func leveledTree(d *derivation.Derivation) pterm.LeveledList {
	var ll pterm.LeveledList
	var add func(id derivation.NodeID, level int)
	add = func(id derivation.NodeID, level int) {
		n := d.Store.Node(id)
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: n.String()})
		for _, ch := range n.Children {
			add(ch, level+1)
		}
	}
	add(d.Root, 0)
	return ll
}

func printTable(data [][]string) {
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printTree(d *derivation.Derivation) {
	root := pterm.NewTreeFromLeveledList(leveledTree(d))
	pterm.DefaultTree.WithRoot(root).Render()
}
