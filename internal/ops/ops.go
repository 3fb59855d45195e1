package ops

import "github.com/birdiescript/birdie/internal/value"

// All returns every Operator Table entry (spec §4.6, §4.7): the
// overloaded arithmetic/sequence/function operators, their unary
// counterparts, the control-flow operators, and the list-mark pair.
// Registration names match the tokens' raw spelling (token.ParseName
// strips the role prefix and tier letter before lookup, so these are bare).
func All() []*value.Builtin {
	return []*value.Builtin{
		value.NewBuiltin(Add, "+"),
		value.NewBuiltin(Sub, "-"),
		value.NewBuiltin(Mul, "*"),
		value.NewBuiltin(Div, "/"),
		value.NewBuiltin(Mod, "%"),
		value.NewBuiltin(And, "&"),
		value.NewBuiltin(Or, "|"),
		value.NewBuiltin(Xor, "^"),
		value.NewBuiltin(Lt, "<"),
		value.NewBuiltin(Gt, ">"),

		value.NewBuiltin(Underscore, "_"),
		value.NewBuiltin(Tilde, "~"),
		value.NewBuiltin(Hash, "#"),
		value.NewBuiltin(LeftParen, "("),
		value.NewBuiltin(RightParen, ")"),
		value.NewBuiltin(U, "U", "Up", "Upto"),

		value.NewBuiltin(If, "I"),
		value.NewBuiltin(DoWhile, "D"),
		value.NewBuiltin(DoUntil, "Du"),
		value.NewBuiltin(While, "W"),
		value.NewBuiltin(WhileUntil, "Wt"),
		value.NewBuiltin(Break, "Bk"),
		value.NewBuiltin(BreakOne, "Br"),
		value.NewBuiltin(Exit, "Ex"),
		value.NewBuiltin(ReturnOp, "Rt"),
		value.NewBuiltin(Goto, "Go"),
		value.NewBuiltin(Label, "Ll"),

		value.NewBuiltin(ListMarkStart, "["),
		value.NewBuiltin(ListMarkEnd, "]"),
	}
}
