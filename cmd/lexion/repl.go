package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	init *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file>",
		Short: "Parse input lines interactively",
		Long: `repl reads lines of input and parses each of them with the parse table
of the grammar. Lines starting with a colon are commands:

  :steps   toggle display of the parser steps
  :table   show the parse table
  :rules   show the grammar rules
  :quit    leave (as does <ctrl>D)`,
		Args: cobra.ExactArgs(1),
		RunE: runREPL,
	}
	replFlags.init = cmd.Flags().String("init", "", "file with lines to evaluate on start-up")
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	gen, err := generateFromFlags(args[0])
	if err != nil {
		return err
	}
	repl, err := readline.New("lexion> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{gen: gen, repl: repl}
	pterm.Info.Println("Welcome to lexion")
	pterm.Info.Println("Quit with <ctrl>D")
	intp.loadInitFile(*replFlags.init)
	intp.REPL()
	return nil
}

// Intp is our interpreter object.
type Intp struct {
	gen       *generator
	repl      *readline.Instance
	steps     bool   // show parser steps
	lastInput string // last line parsed
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		pterm.Error.Printf("unable to open init file: %s\n", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("init file line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	fmt.Println("Good bye!")
}

// Eval evaluates a line of input, either a command or input to parse.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.command(line[1:])
	}
	intp.lastInput = line
	d, trace, err := intp.gen.parse(line, "", intp.steps)
	if trace != nil {
		printTable(trace.Rows())
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	printTree(d)
	return false, nil
}

func (intp *Intp) command(cmd string) (bool, error) {
	switch cmd {
	case "quit", "q":
		return true, nil
	case "steps":
		intp.steps = !intp.steps
		pterm.Info.Printf("showing parser steps: %v\n", intp.steps)
	case "table":
		printTable(intp.gen.table.Rows())
	case "rules":
		printTable(rulesTable(intp.gen.g))
	default:
		err := fmt.Errorf("unknown command :%s", cmd)
		pterm.Error.Println(err.Error())
		return false, err
	}
	return false, nil
}
