// Command birdie runs Birdiescript source files, inline -c strings, or
// an interactive REPL (spec §6).
package main

import (
	"os"

	"github.com/birdiescript/birdie/cmd/birdie/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
