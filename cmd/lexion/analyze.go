package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var analyzeFlags = struct {
	states    *bool
	graphviz  *string
	jsmachine *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "analyze <grammar file>",
		Short:   "Show rules, FIRST and FOLLOW sets and the LR(0) states of a grammar",
		Example: `  lexion analyze expr.ebnf --states --graphviz cfsm.dot`,
		Args:    cobra.ExactArgs(1),
		RunE:    runAnalyze,
	}
	analyzeFlags.states = cmd.Flags().Bool("states", false, "list the states of the LR(0) collection")
	analyzeFlags.graphviz = cmd.Flags().String("graphviz", "", "write the LR(0) collection in GraphViz DOT format to a file")
	analyzeFlags.jsmachine = cmd.Flags().Bool("jsmachine", false, "print the rules in jsmachine format")
	rootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	gen, err := generateFromFlags(args[0])
	if err != nil {
		return err
	}
	if *analyzeFlags.jsmachine {
		fmt.Println(gen.g.JSMachineString())
		return nil
	}
	pterm.DefaultSection.Println("Rules")
	printTable(rulesTable(gen.g))
	pterm.DefaultSection.Println("Symbols")
	printTable(symbolsTable(gen.g))
	if *analyzeFlags.states {
		pterm.DefaultSection.Println("States")
		fmt.Print(gen.c.String())
	}
	pterm.Info.Printf("%d states, %d edges\n", gen.c.Size(), len(gen.c.AllEdges()))
	if *analyzeFlags.graphviz != "" {
		if err := writeFile(*analyzeFlags.graphviz, gen.c.WriteGraphViz); err != nil {
			return err
		}
		pterm.Info.Printf("collection written to %s\n", *analyzeFlags.graphviz)
	}
	return nil
}

// writeFile creates a file and lets write fill it.
func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
