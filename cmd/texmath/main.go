// Command texmath is a small debugging and inspection tool for the
// go-texmath parser: it tokenizes or parses a math expression and prints
// the resulting stream in a chosen format (spec §9's CLI surface).
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-texmath/cmd/texmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
