// Package token defines the flat token stream produced by the lexer and
// the name-parser that classifies how a name token should act when the
// dispatch loop reaches it.
package token

import "fmt"

// Kind identifies the lexical category of a Token, per spec §4.1.
type Kind int

const (
	Invalid Kind = iota
	Comment
	BlockComment
	BlockStart
	BlockEnd
	Complex
	Int
	Regex
	Str
	Chars
	Herestr
	Heredoc
	Name
)

//go:generate stringer -type=Kind
func (k Kind) String() string {
	switch k {
	case Comment:
		return "comment"
	case BlockComment:
		return "blockcomment"
	case BlockStart:
		return "blockstart"
	case BlockEnd:
		return "blockend"
	case Complex:
		return "complex"
	case Int:
		return "int"
	case Regex:
		return "regex"
	case Str:
		return "str"
	case Chars:
		return "chars"
	case Herestr:
		return "herestr"
	case Heredoc:
		return "heredoc"
	case Name:
		return "name"
	default:
		return "invalid"
	}
}

// Position is a 1-based line/column location within a source script.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit: its Kind, its raw source text (including
// any role/tier prefix), and the offset it was read from.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

func (t Token) String() string { return t.Text }

// Tier selects which scope a name definition/lookup targets, per spec §4.2
// and §4.5.
type Tier int

const (
	Local Tier = iota
	Nonlocal
	Global
)

func (t Tier) String() string {
	switch t {
	case Nonlocal:
		return "nonlocal"
	case Global:
		return "global"
	default:
		return "local"
	}
}

// Role is how a name token acts when the dispatch loop executes it, per
// spec §4.2.
type Role int

const (
	RoleCall Role = iota
	RoleRef
	RoleDef
	RoleUndef
	RoleDefcall
	RoleCallExplicit
)

// Name is a parsed name token: its normalized identifier, scope tier, and
// execution role.
type Name struct {
	Ident string
	Tier  Tier
	Role  Role
}

// rolePrefixes maps the literal prefix spelling (spec §4.1) to a role.
// Longest prefixes are checked first by ParseName.
var rolePrefixes = []struct {
	prefix string
	role   Role
}{
	{`\}`, RoleDefcall},
	{`\:`, RoleCallExplicit},
	{`:\`, RoleUndef},
	{`:`, RoleDef},
	{`\`, RoleRef},
}

// ParseName splits a raw name token's text into its role, optional scope
// tier, and normalized identifier. Name text is case-normalized: first
// character upper, remainder lower, after stripping the tier letter
// (spec §4.2).
func ParseName(text string) Name {
	role := RoleCall
	rest := text
	hasPrefix := false
	for _, rp := range rolePrefixes {
		if len(rest) >= len(rp.prefix) && rest[:len(rp.prefix)] == rp.prefix {
			role = rp.role
			rest = rest[len(rp.prefix):]
			hasPrefix = true
			break
		}
	}

	// The tier letter only ever appears immediately after one of the role
	// prefixes above (spec §4.1); a bare call name has no tier letter to
	// strip, so "length" must stay "length", not become tier=local "ength".
	tier := Local
	if hasPrefix && len(rest) >= 2 {
		switch rest[0] {
		case 'l':
			tier = Local
			rest = rest[1:]
		case 'g':
			tier = Global
			rest = rest[1:]
		case 'n':
			tier = Nonlocal
			rest = rest[1:]
		}
	}

	return Name{Ident: Normalize(rest), Tier: tier, Role: role}
}

// Normalize upper-cases the first rune of a name and lower-cases the rest,
// matching spec §4.2's case-normalization rule.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = toUpper(r[0])
	for i := 1; i < len(r); i++ {
		r[i] = toLower(r[i])
	}
	return string(r)
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
