package bolo

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a top-level unit back to canonical Bologna source. The
// output reparses to an identical tree; anonymous wrapper functions render
// as their bare body expression.
func Format(unit TopLevel) string {
	switch u := unit.(type) {
	case *Function:
		if u.IsAnon() {
			return FormatExpr(u.Body)
		}
		return fmt.Sprintf("def %s %s", formatPrototype(u.Proto), FormatExpr(u.Body))
	case *Prototype:
		return "extern " + formatPrototype(u)
	default:
		return ""
	}
}

func formatPrototype(proto *Prototype) string {
	return fmt.Sprintf("%s(%s)", proto.Name, strings.Join(proto.Params, " "))
}

// FormatExpr renders an expression with the minimal parentheses needed to
// preserve its shape under reparsing.
func FormatExpr(expr Expr) string {
	var b strings.Builder
	writeExpr(&b, expr, 0, false)
	return b.String()
}

func writeExpr(b *strings.Builder, expr Expr, parentPrec int, rightOperand bool) {
	switch e := expr.(type) {
	case *NumberExpr:
		// 'f' keeps the output in plain decimal; exponent forms would not
		// re-lex as a single number token.
		b.WriteString(strconv.FormatFloat(e.Value, 'f', -1, 64))
	case *VariableExpr:
		b.WriteString(e.Name)
	case *CallExpr:
		b.WriteString(e.Callee)
		b.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, arg, 0, false)
		}
		b.WriteByte(')')
	case *BinaryExpr:
		prec := binopPrecedence[e.Op]
		// A looser child always needs parens; an equally tight child only
		// does on the right, where the parser would otherwise rebind it to
		// the left.
		parens := prec < parentPrec || (prec == parentPrec && rightOperand)
		if parens {
			b.WriteByte('(')
		}
		writeExpr(b, e.Left, prec, false)
		fmt.Fprintf(b, " %c ", e.Op)
		writeExpr(b, e.Right, prec, true)
		if parens {
			b.WriteByte(')')
		}
	}
}
