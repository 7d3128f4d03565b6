package cmd

import (
	"fmt"

	"github.com/cwbudde/go-texmath/pkg/event"
	"github.com/cwbudde/go-texmath/pkg/texmath"
	"github.com/spf13/cobra"
)

var traceAtoms bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a math expression and print its public event stream",
	Long: `Parse a math expression and print the event.Event stream a renderer
would consume, one event per line, indented to reflect Begin/End nesting.

Examples:
  # Parse an inline expression
  texmath parse -e '\frac{1}{2}'

  # Parse a file's contents and print as JSON
  texmath parse --format json expr.tex

  # Trace each atom as it's parsed, to stderr
  texmath parse --trace -e 'x_i^2'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&traceAtoms, "trace", false, "print a trace line per atom parsed, to stderr")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	var opts []texmath.Option
	if traceAtoms {
		opts = append(opts, texmath.WithTrace(func(msg string) {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: %s\n", msg)
		}))
	}

	events, perr := texmath.Parse(input, opts...)

	if format != "text" {
		out, err := marshalFormat(events)
		if err != nil {
			return err
		}
		fmt.Println(out)
	} else {
		printEvents(events)
	}

	if perr != nil {
		if pe, ok := perr.(*texmath.ParseError); ok {
			return fmt.Errorf("%s", pe.Format(false))
		}
		return perr
	}
	return nil
}

// printEvents renders the stream with two-space indentation tracking
// Begin/End nesting depth, the way the teacher's dumpASTNode walks the AST.
func printEvents(events []event.Event) {
	depth := 0
	for _, ev := range events {
		if _, ok := ev.(event.End); ok {
			depth--
		}
		fmt.Printf("%s%s\n", indent(depth), describeEvent(ev))
		if _, ok := ev.(event.Begin); ok {
			depth++
		}
	}
}

func indent(depth int) string {
	if depth < 0 {
		depth = 0
	}
	s := ""
	for i := 0; i < depth; i++ {
		s += "  "
	}
	return s
}

func describeEvent(ev event.Event) string {
	switch e := ev.(type) {
	case event.Begin:
		return fmt.Sprintf("Begin(%s)", e.Kind)
	case event.End:
		return "End"
	case event.Content:
		if e.View != "" {
			return fmt.Sprintf("Content(%s, %q)", e.Role, e.View)
		}
		return fmt.Sprintf("Content(%s, %q)", e.Role, string(e.Char))
	case event.Visual:
		return fmt.Sprintf("Visual(%s)", e.Kind)
	case event.Script:
		return fmt.Sprintf("Script(%s, %s)", e.Type, e.Position)
	case event.StateChange:
		return describeStateChange(e)
	case event.Space:
		return "Space"
	case event.Alignment:
		return "Alignment"
	case event.NewLine:
		return "NewLine"
	default:
		return fmt.Sprintf("%T", ev)
	}
}

func describeStateChange(e event.StateChange) string {
	switch e.Kind {
	case event.StateFont:
		return "StateChange(Font)"
	case event.StateStyle:
		return "StateChange(Style)"
	case event.StateColor:
		return fmt.Sprintf("StateChange(Color, %s)", e.Color)
	default:
		return "StateChange(?)"
	}
}
