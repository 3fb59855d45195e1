package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/birdiescript/birdie/internal/builtins"
	"github.com/birdiescript/birdie/internal/capability/native"
	"github.com/birdiescript/birdie/internal/interp"
	"github.com/birdiescript/birdie/internal/lexer"
	"github.com/birdiescript/birdie/internal/ops"
	"github.com/birdiescript/birdie/internal/token"
	"github.com/birdiescript/birdie/internal/value"
)

// Version information (set by build flags)
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "birdie [FILE] [ARGS...]",
	Short: "Birdiescript interpreter",
	Long: `Birdie is the Go implementation of Birdiescript, a small,
stack-based, concatenative scripting language aimed at terse code-golf
and shell use.

FILE is the script to run; a missing FILE or "-" reads the script from
stdin. Any trailing positional arguments are bound to the script under
the pre-bound name A.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
}

var (
	flagCmd      string
	flagDebug    bool
	flagEncoding string
	flagMaxDepth int
	flagREPL     bool
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&flagCmd, "cmd", "c", "", "run CMD string instead of reading a script file")
	rootCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "print an unwind trace on error")
	rootCmd.Flags().StringVarP(&flagEncoding, "encoding", "e", "", "input encoding override")
	rootCmd.Flags().IntVarP(&flagMaxDepth, "maxdepth", "m", 0, "recursion budget (0 = unbounded)")
	rootCmd.Flags().BoolVarP(&flagREPL, "repl", "r", false, "start an interactive REPL")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

// runRoot is the single entry point spec §6 describes: lex, build a root
// Context pre-bound with A/_f/_s/_d/_t/_v, execute, print the final
// stack. There is no run/compile/fmt subcommand split (unlike the
// teacher's Pascal toolchain) — Birdiescript has exactly one thing to do
// with a script.
func runRoot(cmd *cobra.Command, args []string) error {
	filename := "-"
	var scriptArgs []string
	if flagCmd == "" && len(args) > 0 {
		filename = args[0]
		scriptArgs = args[1:]
	} else {
		scriptArgs = args
	}

	script, err := readScript(flagCmd, filename)
	if err != nil {
		exitWithError("%v", err)
	}

	table, clock := buildTable(flagEncoding)

	if flagREPL {
		runREPL(table, flagDebug, flagEncoding)
		return nil
	}

	ctx, runErr := runScript(script, filename, scriptArgs, table, clock, flagEncoding, flagDebug, flagMaxDepth)
	if runErr != nil {
		if flagDebug {
			printUnwindTrace(ctx, runErr)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", runErr)
		}
		os.Exit(1)
	}

	printStack(ctx)
	return nil
}

// buildTable assembles the process-wide builtins table (spec §4.5: "a
// single process-wide map populated at startup") from both halves of the
// catalogue: the Operator Table (internal/ops) and the bulk builtins
// catalogue (internal/builtins), wired against the real-OS capability
// backend. Split out of runRoot so tests can build a table without going
// through cobra flag parsing.
func buildTable(encoding string) (interp.BuiltinTable, *native.Clock) {
	capIO := native.New(encoding)
	clock := native.NewClock()
	rng := native.NewRandom(clock.Now().UnixNano())
	foreign := native.NewForeign()

	table := make(interp.BuiltinTable)
	var registrations []*value.Builtin
	registrations = append(registrations, ops.All()...)
	registrations = append(registrations, builtins.All(capIO, clock, rng, foreign)...)
	for _, b := range registrations {
		if regErr := table.Register(b); regErr != nil {
			exitWithError("%v", regErr)
		}
	}
	return table, clock
}

// runScript lexes and executes one script to completion (or to its first
// error), returning the Context so the caller can print its final stack
// or format an unwind trace.
func runScript(script, filename string, scriptArgs []string, table interp.BuiltinTable, clock *native.Clock, encoding string, debug bool, maxDepth int) (*interp.Context, error) {
	toks, lexErr := lexer.New(script).Tokenize()
	if lexErr != nil {
		return nil, lexErr
	}

	ctx := newRootContext(script, filename, toks, table, encoding, debug, scriptArgs, clock)
	ctx.MaxDepth = maxDepth
	return ctx, ctx.Execute()
}

// newRootContext builds the root Context and pre-binds the startup names
// spec §6 lists: A (argv), _f (filename), _s (script text), _d/_t
// (startup date/time), _v (interpreter version).
func newRootContext(script, filename string, toks []token.Token, table interp.BuiltinTable, encoding string, debug bool, scriptArgs []string, clock *native.Clock) *interp.Context {
	ctx := interp.NewContext(script, table, resolveEncoding(encoding))
	ctx.Debug = debug
	ctx.Tokens = toks

	argv := make([]value.Value, len(scriptArgs))
	for i, a := range scriptArgs {
		argv[i] = value.NewStr(a)
	}
	ctx.Scope["A"] = value.NewList(argv)
	ctx.Scope["_f"] = value.NewStr(filename)
	ctx.Scope["_s"] = value.NewStr(script)
	now := clock.Now()
	ctx.Scope["_d"] = value.NewStr(now.Format("2006-01-02"))
	ctx.Scope["_t"] = value.NewStr(now.Format("15:04:05"))
	ctx.Scope["_v"] = value.NewStr(Version)
	return ctx
}

func resolveEncoding(e string) string {
	if e != "" {
		return e
	}
	if env, ok := os.LookupEnv(native.EncodingEnvVar); ok {
		return env
	}
	return "utf-8"
}

// readScript resolves the -c string, a named file, or stdin (a missing
// FILE or "-" means stdin, per spec §6).
func readScript(cmdString, filename string) (string, error) {
	if cmdString != "" {
		return cmdString, nil
	}
	if filename == "" || filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}
	return string(data), nil
}

// printStack writes the final operand stack, one value's String() form
// per line, bottom to top — what the driver does with the interpreter's
// output per spec §2's "final stack (printed by the driver)".
func printStack(ctx *interp.Context) {
	for _, v := range ctx.Items() {
		fmt.Println(v.String())
	}
}

// printUnwindTrace walks the Context parent chain under -d, the way the
// teacher's CompilerError.FormatWithContext prints surrounding source
// lines, here printing one frame per activation record instead.
func printUnwindTrace(ctx *interp.Context, err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	depth := 0
	for c := ctx; c != nil; c = c.Parent {
		label := c.Script
		if depth == 0 {
			label = "script"
		}
		fmt.Fprintf(os.Stderr, "  at %s (cursor %d)\n", label, c.Cursor)
		depth++
	}
}
