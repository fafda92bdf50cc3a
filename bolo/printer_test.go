package bolo

import "testing"

func TestFormatRoundTripsUnits(t *testing.T) {
	cases := []string{
		"extern sin(x)",
		"extern rand()",
		"def add(a b) a + b",
		"def pick(a b c) a < b * c",
		"def shadow(x x) x",
		"foo(1, bar(2), x + 1)",
		"(1 + 2) * 3",
		"1 - (2 - 3)",
	}

	for _, source := range cases {
		unit, err := NewParser(source).Next()
		if err != nil {
			t.Fatalf("parse %q: %v", source, err)
		}
		printed := Format(unit)

		reparsed, err := NewParser(printed).Next()
		if err != nil {
			t.Fatalf("reparse %q (from %q): %v", printed, source, err)
		}
		if again := Format(reparsed); again != printed {
			t.Fatalf("format not stable: %q then %q", printed, again)
		}
	}
}

func TestFormatNumberLiterals(t *testing.T) {
	cases := map[string]string{
		"1":      "1",
		"3.25":   "3.25",
		"0.5":    "0.5",
		"1000.0": "1000",
	}

	for source, want := range cases {
		expr := mustParseExpr(t, source)
		if got := FormatExpr(expr); got != want {
			t.Fatalf("input %q: formatted as %q, want %q", source, got, want)
		}
	}
}

func TestFormatInsertsOnlyNecessaryParens(t *testing.T) {
	cases := map[string]string{
		"1 + 2 * 3":   "1 + 2 * 3",
		"(1 + 2) * 3": "(1 + 2) * 3",
		"(1 * 2) + 3": "1 * 2 + 3",
		"1 - (2 - 3)": "1 - (2 - 3)",
		"(1 - 2) - 3": "1 - 2 - 3",
		"(a < b) + c": "(a < b) + c",
		"a < (b + c)": "a < b + c",
		"((x))":       "x",
	}

	for source, want := range cases {
		expr := mustParseExpr(t, source)
		if got := FormatExpr(expr); got != want {
			t.Fatalf("input %q: formatted as %q, want %q", source, got, want)
		}
	}
}

func TestFormatAnonymousWrapperPrintsBareExpression(t *testing.T) {
	unit, err := NewParser("6 * 7").Next()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := Format(unit); got != "6 * 7" {
		t.Fatalf("unexpected output %q", got)
	}
}

func mustParseExpr(t *testing.T, source string) Expr {
	t.Helper()

	unit, err := NewParser(source).Next()
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	return unit.(*Function).Body
}
