package interp

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	berrors "github.com/birdiescript/birdie/internal/errors"
	"github.com/birdiescript/birdie/internal/token"
	"github.com/birdiescript/birdie/internal/value"
)

// intBases maps a based-int's trailing base letter to its numeric base
// (core.py: parse_int's `bases` table).
var intBases = map[byte]int{
	'i': 2, 't': 3, 'q': 4, 'p': 5, 'h': 6, 's': 7, 'o': 8, 'n': 9,
	'k': 10, 'u': 11, 'z': 12, 'r': 13, 'w': 14, 'v': 15, 'x': 16,
}

// parseLiteral converts one literal token into the value it denotes,
// grounded on core.py's per-kind parse_* functions.
func parseLiteral(t token.Token) (value.Value, error) {
	switch t.Kind {
	case token.Int:
		return parseIntLiteral(t.Text)
	case token.Complex:
		return parseComplexLiteral(t.Text)
	case token.Str:
		return parseStrLiteral(t.Text)
	case token.Chars:
		return parseCharsLiteral(t.Text)
	case token.Regex:
		return parseRegexLiteral(t.Text)
	case token.Herestr:
		return parseHerestrLiteral(t.Text)
	case token.Heredoc:
		return parseHeredocLiteral(t.Text)
	default:
		return nil, berrors.Syntax(t.Pos.Offset, "invalid token: %q", t.Text)
	}
}

func parseIntLiteral(text string) (value.Value, error) {
	neg := strings.HasSuffix(text, "m")
	if neg {
		text = text[:len(text)-1]
	}
	base := 10
	if len(text) > 0 {
		if b, ok := intBases[text[len(text)-1]]; ok {
			base = b
			text = text[:len(text)-1]
		} else if strings.HasPrefix(text, "0") {
			base = 16
		}
	}
	v, ok := new(big.Int).SetString(text, base)
	if !ok {
		return nil, fmt.Errorf("invalid int literal %q", text)
	}
	if neg {
		v.Neg(v)
	}
	return &value.Int{V: v}, nil
}

func parseComplexLiteral(text string) (value.Value, error) {
	neg := strings.HasSuffix(text, "m")
	if neg {
		text = "-" + text[:len(text)-1]
	}
	text = strings.Replace(text, "Inf", "inf", 1)
	text = strings.Replace(text, "Nan", "nan", 1)
	if strings.HasSuffix(text, "j") {
		mantissa := text[:len(text)-1]
		x, err := strconv.ParseFloat(mantissa, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid complex literal %q", text)
		}
		return &value.Complex{Re: 0, Im: x}, nil
	}
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid float literal %q", text)
	}
	return &value.Float{V: x}, nil
}

func parseCharsLiteral(text string) (value.Value, error) {
	if text == "'" {
		text += "'"
	}
	return &value.Str{V: text[1:]}, nil
}

var stringEscapeRx = regexp.MustCompile(`\\\\|\\` + "`" + `|\\x[0-9a-f]{1,2}|\\X[0-9A-F]{1,2}|\\u[0-9a-f]{1,6}|\\U[0-9A-F]{1,6}`)

func parseStrLiteral(text string) (value.Value, error) {
	if !strings.HasSuffix(text, "`") {
		text += "`"
	}
	body := text[1 : len(text)-1]
	return &value.Str{V: unescapeBirdiescript(body)}, nil
}

// unescapeBirdiescript resolves the backslash escapes core.py's
// string_char_rx table recognizes: literal backslash/backtick, and
// \x/\X/\u/\U hex codepoint escapes (lower-case forms take 1-2 hex
// digits, upper-case forms up to 6).
func unescapeBirdiescript(s string) string {
	return stringEscapeRx.ReplaceAllStringFunc(s, func(m string) string {
		switch {
		case m == `\\`:
			return `\`
		case m == "\\`":
			return "`"
		case m[1] == 'x' || m[1] == 'X' || m[1] == 'u' || m[1] == 'U':
			n, err := strconv.ParseInt(m[2:], 16, 32)
			if err != nil {
				return m
			}
			if n < 0 || n > 0x10FFFF {
				return strconv.FormatInt(n, 16)
			}
			return string(rune(n))
		}
		return m
	})
}

func parseRegexLiteral(text string) (value.Value, error) {
	idx := strings.LastIndex(text, "`")
	pattern, flags := text[1:idx], text[idx+1:]
	pattern = unescapeRegexPattern(pattern)
	r, err := value.NewRegex(pattern, flags)
	if err != nil {
		return nil, err
	}
	return r, nil
}

var regexEscapeRx = regexp.MustCompile("\\\\+`?")

// unescapeRegexPattern halves a run of backslashes (core.py:
// sub_regex_escape_match collapses \\+ to half as many literal
// backslashes, with a trailing backtick left untouched).
func unescapeRegexPattern(pattern string) string {
	return regexEscapeRx.ReplaceAllStringFunc(pattern, func(m string) string {
		if strings.HasSuffix(m, "`") {
			return m[len(m)/2:]
		}
		return m[len(m)/2:]
	})
}

func parseHerestrLiteral(text string) (value.Value, error) {
	if strings.HasSuffix(text, "\n") {
		text = text[:len(text)-1]
	}
	if len(text) < 3 {
		return &value.Str{V: ""}, nil
	}
	return &value.Str{V: text[3:]}, nil
}

var heredocNameSplitRx = regexp.MustCompile(`\s`)

func parseHeredocLiteral(text string) (value.Value, error) {
	rest := text[2:]
	loc := heredocNameSplitRx.FindStringIndex(rest)
	if loc == nil {
		return &value.Str{V: ""}, nil
	}
	name := rest[:loc[0]]
	body := rest[loc[1]:]
	chomp := strings.HasPrefix(name, "-")
	if chomp {
		name = name[1:]
	}
	if name != "" {
		if i := strings.LastIndex(body, name); i >= 0 && i == len(body)-len(name) {
			body = body[:i]
		}
	}
	if chomp && strings.HasSuffix(body, "\n") {
		body = body[:len(body)-1]
	}
	return &value.Str{V: body}, nil
}
