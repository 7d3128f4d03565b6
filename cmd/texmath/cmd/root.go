package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "texmath",
	Short: "Inspect the go-texmath streaming math-markup parser",
	Long: `texmath is a debugging and inspection tool for go-texmath, a Go
implementation of a streaming TeX/LaTeX math-markup parser.

It exposes the parser's two layers directly:
  - lex:   the raw token stream (internal/lexer)
  - parse: the public semantic event stream (pkg/texmath, pkg/event)

Neither subcommand renders math; both are debugging aids for callers
building a renderer on top of the event stream.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVarP(&evalExpr, "eval", "e", "", "use this inline expression instead of reading a file")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format: text, json, yaml")
}

// evalExpr and format are shared across lex/parse as persistent flags.
var (
	evalExpr string
	format   string
)

// readInput resolves the expression to operate on, from either -e or a
// single file argument; it never reads stdin since math expressions are
// expected to be short, single-line inline arguments (unlike dwscript's
// program-length inputs).
func readInput(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		data, err := readFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return data, nil
	}
	return "", fmt.Errorf("either provide a file path or use -e/--eval for an inline expression")
}
