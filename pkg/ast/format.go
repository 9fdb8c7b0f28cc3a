package ast

import (
	"strconv"
	"strings"
)

type precedence int

const (
	additivePrecedence precedence = iota
	multiplicativePrecedence
	atomicPrecedence
)

func precedenceOf(expr Expression) precedence {
	switch expr.(type) {
	case *Addition:
		return additivePrecedence
	case *Multiplication:
		return multiplicativePrecedence
	default:
		return atomicPrecedence
	}
}

// Format renders expr in infix form, e.g. "2 * f(5) + f(1)". Left-nested
// operators of equal precedence print bare, right-nested ones keep their
// parentheses so the rendering preserves tree shape.
func Format(expr Expression) string {
	var b strings.Builder
	writeExpression(&b, expr)
	return b.String()
}

func writeExpression(b *strings.Builder, expr Expression) {
	switch n := expr.(type) {
	case *Number:
		if n == nil {
			b.WriteString("<nil>")
			return
		}
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *Addition:
		if n == nil {
			b.WriteString("<nil>")
			return
		}
		writeBinary(b, " + ", additivePrecedence, n.Left, n.Right)
	case *Multiplication:
		if n == nil {
			b.WriteString("<nil>")
			return
		}
		writeBinary(b, " * ", multiplicativePrecedence, n.Left, n.Right)
	case *F:
		if n == nil {
			b.WriteString("<nil>")
			return
		}
		b.WriteString("f(")
		writeExpression(b, n.Argument)
		b.WriteByte(')')
	default:
		b.WriteString("<nil>")
	}
}

func writeBinary(b *strings.Builder, op string, prec precedence, left, right Expression) {
	writeOperand(b, left, precedenceOf(left) < prec)
	b.WriteString(op)
	writeOperand(b, right, precedenceOf(right) <= prec)
}

func writeOperand(b *strings.Builder, expr Expression, parens bool) {
	if parens {
		b.WriteByte('(')
	}
	writeExpression(b, expr)
	if parens {
		b.WriteByte(')')
	}
}

// Size counts the nodes in expr. Nil children count as zero.
func Size(expr Expression) int {
	switch n := expr.(type) {
	case *Number:
		if n == nil {
			return 0
		}
		return 1
	case *Addition:
		if n == nil {
			return 0
		}
		return 1 + Size(n.Left) + Size(n.Right)
	case *Multiplication:
		if n == nil {
			return 0
		}
		return 1 + Size(n.Left) + Size(n.Right)
	case *F:
		if n == nil {
			return 0
		}
		return 1 + Size(n.Argument)
	default:
		return 0
	}
}

// Depth is the height of expr; a lone leaf has depth 1.
func Depth(expr Expression) int {
	switch n := expr.(type) {
	case *Number:
		if n == nil {
			return 0
		}
		return 1
	case *Addition:
		if n == nil {
			return 0
		}
		return 1 + max(Depth(n.Left), Depth(n.Right))
	case *Multiplication:
		if n == nil {
			return 0
		}
		return 1 + max(Depth(n.Left), Depth(n.Right))
	case *F:
		if n == nil {
			return 0
		}
		return 1 + Depth(n.Argument)
	default:
		return 0
	}
}
