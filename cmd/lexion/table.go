package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tableFlags = struct {
	html *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "table <grammar file>",
		Short:   "Show the parse table of a grammar",
		Example: `  lexion table expr.ebnf --strategy SLR1 --html table.html`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTable,
	}
	tableFlags.html = cmd.Flags().String("html", "", "write the table in HTML format to a file")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	gen, err := generateFromFlags(args[0])
	if err != nil {
		return err
	}
	if *tableFlags.html != "" {
		if err := writeFile(*tableFlags.html, gen.table.WriteHTML); err != nil {
			return err
		}
		pterm.Info.Printf("table written to %s\n", *tableFlags.html)
		return nil
	}
	printTable(gen.table.Rows())
	return nil
}
