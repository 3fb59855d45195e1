package token

import "testing"

func TestParseNameBareCall(t *testing.T) {
	n := ParseName("length")
	if n.Role != RoleCall || n.Tier != Local || n.Ident != "Length" {
		t.Fatalf("got %+v", n)
	}
}

func TestParseNameRef(t *testing.T) {
	n := ParseName(`\x`)
	if n.Role != RoleRef || n.Ident != "X" {
		t.Fatalf("got %+v", n)
	}
}

func TestParseNameDefGlobalTier(t *testing.T) {
	n := ParseName(":gx")
	if n.Role != RoleDef || n.Tier != Global || n.Ident != "X" {
		t.Fatalf("got %+v", n)
	}
}

func TestParseNameUndefNonlocalTier(t *testing.T) {
	n := ParseName(`:\nfoo`)
	if n.Role != RoleUndef || n.Tier != Nonlocal || n.Ident != "Foo" {
		t.Fatalf("got %+v", n)
	}
}

func TestParseNameDefcall(t *testing.T) {
	n := ParseName(`\}sq`)
	if n.Role != RoleDefcall || n.Ident != "Sq" {
		t.Fatalf("got %+v", n)
	}
}

func TestParseNameCallExplicit(t *testing.T) {
	n := ParseName(`\:add`)
	if n.Role != RoleCallExplicit || n.Ident != "Add" {
		t.Fatalf("got %+v", n)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"abc": "Abc",
		"ABC": "Abc",
		"a":   "A",
		"":    "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
