// Command rlox is the driver for the Lox tree-walking interpreter: it runs
// a script given as an argument, or starts an interactive REPL.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/Maitgon/rlox/lang"
	"github.com/Maitgon/rlox/parser"
)

// Set via -ldflags at build time.
var version = "dev"

var dumpAST bool

var rootCmd = &cobra.Command{
	Use:           "rlox [script]",
	Short:         "Tree-walking interpreter for the Lox scripting language",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("rlox version {{.Version}}\n")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false,
		"print the parsed program instead of evaluating it (script mode)")
}

// exitError carries a process exit code through cobra's error return.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runScript(args[0])
	}
	return runREPL()
}

func runScript(path string) error {
	var source []byte
	var err error
	if path == "-" {
		source, err = io.ReadAll(os.Stdin)
	} else {
		source, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "rlox: %v\n", err)
		return &exitError{code: 66}
	}

	program, perr := parser.Parse(string(source))
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr)
		return &exitError{code: 65}
	}
	if dumpAST {
		fmt.Println(parser.PrintProgram(program))
		return nil
	}

	interp := lang.NewInterpreter(os.Stdout)
	if rerr := interp.Interpret(program); rerr != nil {
		fmt.Fprintln(os.Stderr, rerr)
		return &exitError{code: 70}
	}
	return nil
}

func runREPL() error {
	interp := lang.NewInterpreter(os.Stdout)
	if !isInteractive() {
		runBufferedREPL(interp, bufio.NewReader(os.Stdin))
		return nil
	}
	runInteractiveREPL(interp)
	return nil
}

// evalUnit parses and runs one REPL input unit. It reports false when the
// input ended mid-construct and more lines should be read first.
func evalUnit(interp *lang.Interpreter, src string) bool {
	program, perr := parser.Parse(src)
	if perr == nil {
		if err := interp.Interpret(program); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		return true
	}

	// An input that is a single bare expression is an implicit print.
	expr, eerr := parser.ParseExpression(src)
	if eerr == nil {
		val, err := interp.Evaluate(expr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return true
		}
		fmt.Println(val.String())
		return true
	}

	if parser.IsIncomplete(perr) || parser.IsIncomplete(eerr) {
		return false
	}
	fmt.Fprintln(os.Stderr, perr)
	return true
}

func runBufferedREPL(interp *lang.Interpreter, reader *bufio.Reader) {
	var buffer strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			return
		}
		atEOF := errors.Is(err, io.EOF)
		buffer.WriteString(line)

		src := buffer.String()
		if strings.TrimSpace(src) == "" {
			if atEOF {
				return
			}
			buffer.Reset()
			continue
		}

		if evalUnit(interp, src) {
			buffer.Reset()
		} else if atEOF {
			// No more input can complete the construct.
			if _, perr := parser.Parse(src); perr != nil {
				fmt.Fprintln(os.Stderr, perr)
			}
		}
		if atEOF {
			return
		}
	}
}

func runInteractiveREPL(interp *lang.Interpreter) {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	historyPath := replHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	var buffer strings.Builder

	for {
		prompt := "rlox> "
		if buffer.Len() > 0 {
			prompt = "  ... "
		}
		input, err := state.Prompt(prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				buffer.Reset()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}
		buffer.WriteString(input)
		buffer.WriteString("\n")

		src := buffer.String()
		if strings.TrimSpace(src) == "" {
			buffer.Reset()
			continue
		}
		if !evalUnit(interp, src) {
			continue
		}
		buffer.Reset()
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			state.AppendHistory(trimmed)
		}
	}
}

func replHistoryPath() string {
	if path := os.Getenv("RLOX_HISTORY"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".rlox_history")
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
