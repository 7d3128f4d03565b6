package cmd

import (
	"fmt"

	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/internal/token"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a math expression and print the resulting tokens",
	Long: `Tokenize a math expression with the lexer's raw Cursor.NextToken
loop and print each token, stopping at end of input or the first lexical
error.

Examples:
  # Tokenize an inline expression
  texmath lex -e '\frac{1}{2}'

  # Tokenize a file's contents
  texmath lex expr.tex

  # Show byte positions alongside each token
  texmath lex --show-pos -e 'x^2_i'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's byte offset")
}

// lexedToken is the JSON/YAML-friendly rendering of one token.Token.
type lexedToken struct {
	Kind string `json:"kind" yaml:"kind"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Char string `json:"char,omitempty" yaml:"char,omitempty"`
	Pos  int    `json:"pos" yaml:"pos"`
}

func runLex(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	cur := lexer.NewCursor(input)
	var tokens []lexedToken
	for {
		tok, err := cur.NextToken()
		if err != nil {
			if pe, ok := err.(*perr.Error); ok && pe.Kind == perr.EndOfInput {
				break
			}
			return fmt.Errorf("lex error at byte %d: %w", cur.Pos(), err)
		}
		tokens = append(tokens, toLexedToken(tok))
	}

	if format != "text" {
		out, err := marshalFormat(tokens)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	for _, t := range tokens {
		printLexedToken(t)
	}
	return nil
}

func toLexedToken(tok token.Token) lexedToken {
	lt := lexedToken{Kind: tok.Kind.String(), Pos: tok.Pos}
	if tok.Kind == token.ControlSequence {
		lt.Name = tok.Name
	} else {
		lt.Char = string(tok.Char)
	}
	return lt
}

func printLexedToken(t lexedToken) {
	var body string
	if t.Kind == "ControlSequence" {
		body = `\` + t.Name
	} else {
		body = t.Char
	}
	if showPos {
		fmt.Printf("[%-15s] %-20q @%d\n", t.Kind, body, t.Pos)
		return
	}
	fmt.Printf("[%-15s] %q\n", t.Kind, body)
}
