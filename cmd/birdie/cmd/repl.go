package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/birdiescript/birdie/internal/interp"
	"github.com/birdiescript/birdie/internal/lexer"
)

// runREPL drives the -r line-at-a-time loop spec §5 (SUPPLEMENTED
// FEATURES) describes: re-tokenize each line, append to a running
// Context's token vector, and re-execute rather than spawning a fresh
// Context per line, so definitions and stack contents persist across
// prompts exactly as core.py:repl_environment keeps one BContext alive
// for the session. The REPL reads its own prompt/line loop directly off
// stdin rather than through capability.IO: the REPL prompt is itself one
// of spec §1's out-of-core "external collaborators", like the rest of
// the CLI driver.
func runREPL(table interp.BuiltinTable, debug bool, encoding string) {
	ctx := interp.NewContext("", table, resolveEncoding(encoding))
	ctx.Debug = debug

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, replPrompt(ctx))
		if !scanner.Scan() {
			fmt.Fprintln(os.Stderr)
			return
		}
		line := scanner.Text()

		toks, lexErr := lexer.New(line).Tokenize()
		if lexErr != nil {
			fmt.Fprintf(os.Stderr, "%v\n", lexErr)
			continue
		}

		start := len(ctx.Tokens)
		ctx.Tokens = append(ctx.Tokens, toks...)
		ctx.Cursor = start
		ctx.Broken = interp.NotBroken

		if err := ctx.Execute(); err != nil {
			if debug {
				printUnwindTrace(ctx, err)
			} else {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
			continue
		}

		printStackLine(ctx)
	}
}

// replPrompt shows the pending-block nesting depth so a multi-line `{`
// left open at end-of-line is visible before the next prompt, matching
// core.py's behavior of printing the open-block buffer between lines.
func replPrompt(ctx *interp.Context) string {
	if ctx.Nesting > 0 {
		return fmt.Sprintf("... (%d) ", ctx.Nesting)
	}
	return "> "
}

func printStackLine(ctx *interp.Context) {
	items := ctx.Items()
	strs := make([]string, len(items))
	for i, v := range items {
		strs[i] = v.String()
	}
	fmt.Fprintln(os.Stderr, stackJoin(strs))
}

func stackJoin(strs []string) string {
	out := "["
	for i, s := range strs {
		if i > 0 {
			out += " "
		}
		out += s
	}
	return out + "]"
}
