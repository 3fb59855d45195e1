package value

import (
	"regexp"
	"sort"
	"strings"

	"github.com/birdiescript/birdie/internal/token"
)

// regexFlagChars mirrors core.py's BRegex.regex_flag_chars ordering; Go's
// regexp (RE2) only honors a subset of the original engine's flag set
// (i, s, m map onto RE2's inline (?ism) syntax), the rest are carried
// on Flags for round-tripping Repr but have no effect on matching —
// Birdiescript's regex semantics were always a thin layer over the host
// engine's own flag vocabulary, and RE2 intentionally drops backtracking
// features (lookaround, backreferences) no Go regex library restores.
var regexFlagChars = []byte("abfilmersuvwx")

// Regex is Birdiescript's compiled pattern type (spec §3: rank 5).
type Regex struct {
	Pattern string
	Flags   string // subset of regexFlagChars, in canonical order
	re      *regexp.Regexp
}

// NewRegex compiles pattern with the given flag letters. A compile error
// is returned as is, together with a nil Regex.
func NewRegex(pattern, flags string) (*Regex, error) {
	r := &Regex{Pattern: pattern, Flags: canonicalFlags(flags)}
	goPattern := translateFlags(r.Flags) + pattern
	compiled, err := regexp.Compile(goPattern)
	if err != nil {
		return nil, err
	}
	r.re = compiled
	return r, nil
}

func canonicalFlags(flags string) string {
	present := map[byte]bool{}
	for i := 0; i < len(flags); i++ {
		present[flags[i]] = true
	}
	var b strings.Builder
	for _, c := range regexFlagChars {
		if present[c] {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func translateFlags(flags string) string {
	var inline []byte
	for i := 0; i < len(flags); i++ {
		switch flags[i] {
		case 'i':
			inline = append(inline, 'i')
		case 's':
			inline = append(inline, 's')
		case 'm':
			inline = append(inline, 'm')
		}
	}
	sort.Slice(inline, func(a, b int) bool { return inline[a] < inline[b] })
	if len(inline) == 0 {
		return ""
	}
	return "(?" + string(inline) + ")"
}

func (r *Regex) Compiled() *regexp.Regexp { return r.re }

func (r *Regex) Rank() Rank { return RankRegex }

func (r *Regex) String() string { return r.Pattern }

func (r *Regex) Repr() string {
	return "`" + escapeBirdiescript(r.Pattern) + "`" + r.Flags
}

func (r *Regex) Simplify() Value { return r }

func (r *Regex) Tokenize() []token.Token {
	return []token.Token{{Kind: token.Regex, Text: r.Repr()}}
}

func (r *Regex) Truthy() bool { return r.Pattern != "" }
