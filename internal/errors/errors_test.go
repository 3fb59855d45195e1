package errors

import (
	"strings"
	"testing"
)

func TestSyntaxCarriesOffset(t *testing.T) {
	err := Syntax(12, "unexpected character %q", '!')
	if !strings.Contains(err.Error(), "character 12") {
		t.Fatalf("expected offset in message, got %q", err.Error())
	}
}

func TestTypeNamesOperatorAndOperands(t *testing.T) {
	err := Type("+", "Int", "Block")
	if !strings.Contains(err.Error(), "+") || !strings.Contains(err.Error(), "Block") {
		t.Fatalf("got %q", err.Error())
	}
}

func TestNameErrorQuotesIdent(t *testing.T) {
	err := Name("foo")
	if !strings.Contains(err.Error(), `"foo"`) {
		t.Fatalf("got %q", err.Error())
	}
}

func TestCategoriesDistinct(t *testing.T) {
	cats := []Category{CategorySyntax, CategoryType, CategoryCoercion, CategoryName, CategoryValue, CategoryIO}
	seen := map[Category]bool{}
	for _, c := range cats {
		if seen[c] {
			t.Fatalf("duplicate category %v", c)
		}
		seen[c] = true
	}
}
