package value

import "testing"

func TestIntReprPicksShorterBase(t *testing.T) {
	i := NewInt(1048575)
	if got := i.Repr(); got != "0fffff" {
		t.Fatalf("Repr() = %q, want 0fffff", got)
	}
}

func TestIntReprNegativeUsesTrailingM(t *testing.T) {
	i := NewInt(-5)
	if got := i.Repr(); got != "5m" {
		t.Fatalf("Repr() = %q, want 5m", got)
	}
}

func TestFloatSimplifyToInt(t *testing.T) {
	f := NewFloat(3.0)
	s := f.Simplify()
	i, ok := s.(*Int)
	if !ok {
		t.Fatalf("Simplify() = %T, want *Int", s)
	}
	if i.Int64() != 3 {
		t.Fatalf("Simplify() = %v, want 3", i)
	}
}

func TestFloatSimplifyIdempotent(t *testing.T) {
	f := NewFloat(2.5)
	s1 := f.Simplify()
	s2 := s1.Simplify()
	if !Equal(s1, s2) {
		t.Fatalf("simplify not idempotent: %v != %v", s1, s2)
	}
}

func TestComplexSimplifyDropsZeroImag(t *testing.T) {
	c := NewComplex(4, 0)
	s := c.Simplify()
	i, ok := s.(*Int)
	if !ok {
		t.Fatalf("Simplify() = %T, want *Int", s)
	}
	if i.Int64() != 4 {
		t.Fatalf("Simplify() = %v, want 4", i)
	}
}

func TestEqualAcrossNumRanksAfterSimplify(t *testing.T) {
	if !Equal(NewInt(3), NewFloat(3.0)) {
		t.Fatal("Int(3) should equal Float(3.0)")
	}
	if !Equal(NewFloat(3.0), NewComplex(3, 0)) {
		t.Fatal("Float(3.0) should equal Complex(3+0i)")
	}
	if !Equal(NewInt(3), NewComplex(3, 0)) {
		t.Fatal("Int(3) should equal Complex(3+0i)")
	}
}

func TestStrictEqualRequiresSameRank(t *testing.T) {
	if StrictEqual(NewInt(3), NewFloat(3.0)) {
		t.Fatal("StrictEqual should distinguish Int from Float")
	}
}

func TestStrSimplifyToCodepointList(t *testing.T) {
	s := NewStr("ab")
	l, ok := s.Simplify().(*List)
	if !ok || len(l.Items) != 2 {
		t.Fatalf("Simplify() = %#v, want 2-item List", s.Simplify())
	}
	if !Equal(l.Items[0], NewInt('a')) || !Equal(l.Items[1], NewInt('b')) {
		t.Fatalf("codepoints = %v", l.Items)
	}
}

func TestStrReprTickForm(t *testing.T) {
	if got := NewStr("foo").Repr(); got != "'foo" {
		t.Fatalf("Repr() = %q, want 'foo", got)
	}
}

func TestStrReprBacktickFormWhenNotAllLower(t *testing.T) {
	got := NewStr("Foo Bar").Repr()
	if got != "`Foo Bar`" {
		t.Fatalf("Repr() = %q, want `Foo Bar`", got)
	}
}

func TestListOrderingLexicographic(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewInt(2)})
	b := NewList([]Value{NewInt(1), NewInt(3)})
	less, err := Less(a, b)
	if err != nil || !less {
		t.Fatalf("Less() = %v, %v; want true, nil", less, err)
	}
}

func TestCrossGroupOrderingIsError(t *testing.T) {
	if _, err := Less(NewInt(1), NewStr("x")); err == nil {
		t.Fatal("expected error ordering Num against Seq")
	}
}

func TestConvertIntToStrCharacter(t *testing.T) {
	v, err := Convert(NewInt('A'), RankStr)
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "A" {
		t.Fatalf("Convert() = %q, want A", v.String())
	}
}

func TestConvertComplexToIntIsCoercionError(t *testing.T) {
	if _, err := Convert(NewComplex(1, 1), RankInt); err == nil {
		t.Fatal("expected CoercionError converting Complex to Int")
	}
}

func TestCoerceLiftsLowerRank(t *testing.T) {
	v, err := Coerce(NewInt(2), NewFloat(1.0))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(*Float); !ok {
		t.Fatalf("Coerce() = %T, want *Float", v)
	}
}

func TestComplexStringMathForm(t *testing.T) {
	if got := NewComplex(3, 4).String(); got != "(3+4j)" {
		t.Fatalf("String() = %q, want (3+4j)", got)
	}
}

func TestComplexReprPostfixForm(t *testing.T) {
	if got := NewComplex(3, 4).Repr(); got != "4j3+" {
		t.Fatalf("Repr() = %q, want 4j3+", got)
	}
}

func TestCoerceIdentityWhenAlreadyHigherRank(t *testing.T) {
	v, err := Coerce(NewFloat(2.0), NewInt(1))
	if err != nil {
		t.Fatal(err)
	}
	if v.(*Float).V != 2.0 {
		t.Fatalf("Coerce() changed value: %v", v)
	}
}
