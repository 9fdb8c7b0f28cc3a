package interpreter

import (
	"fmt"
	"math"

	"enumstudy/evaluator-go/pkg/ast"
)

func (i *Interpreter) evaluateExpression(node ast.Expression) (int64, error) {
	if node == nil {
		return 0, errNilExpression
	}
	i.depth++
	defer func() { i.depth-- }()
	if i.maxDepth > 0 && i.depth > i.maxDepth {
		return 0, fmt.Errorf("%w (limit %d)", ErrDepthExceeded, i.maxDepth)
	}
	i.visits++

	switch n := node.(type) {
	case *ast.Number:
		if n == nil {
			return 0, errNilExpression
		}
		return n.Value, nil
	case *ast.Addition:
		if n == nil {
			return 0, errNilExpression
		}
		left, right, err := i.evaluateOperands(n.Left, n.Right)
		if err != nil {
			return 0, err
		}
		return addInt64(left, right)
	case *ast.Multiplication:
		if n == nil {
			return 0, errNilExpression
		}
		left, right, err := i.evaluateOperands(n.Left, n.Right)
		if err != nil {
			return 0, err
		}
		return mulInt64(left, right)
	case *ast.F:
		if n == nil {
			return 0, errNilExpression
		}
		return i.evaluateF(n)
	default:
		return 0, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateOperands(left, right ast.Expression) (int64, int64, error) {
	l, err := i.evaluateExpression(left)
	if err != nil {
		return 0, 0, err
	}
	r, err := i.evaluateExpression(right)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// evaluateF selects an arm by the evaluated argument, not by its shape.
// For v > 1 it evaluates 2 * f(v-1) + f(1); the trailing f(1) stands in for
// the recurrence's +1 and only agrees with it while f(1) == 1.
func (i *Interpreter) evaluateF(node *ast.F) (int64, error) {
	v, err := i.evaluateExpression(node.Argument)
	if err != nil {
		return 0, err
	}
	switch {
	case v == 1:
		return v, nil
	case v > 1:
		if cached, ok := i.memoLookup(v); ok {
			return cached, nil
		}
		i.logger.Debug().Int64("argument", v).Int("depth", i.depth).Msg("expanding f")
		rewritten := ast.NewAddition(
			ast.NewMultiplication(ast.NewNumber(2), ast.NewF(ast.NewNumber(v-1))),
			ast.NewF(ast.NewNumber(1)),
		)
		result, err := i.evaluateExpression(rewritten)
		if err != nil {
			return 0, err
		}
		i.memoStore(v, result)
		return result, nil
	default:
		if i.domain == DomainStrict {
			return 0, &DomainError{Argument: v}
		}
		i.logger.Debug().Int64("argument", v).Msg("f argument out of domain, falling back to 0")
		return i.evaluateExpression(ast.NewNumber(0))
	}
}

func (i *Interpreter) memoLookup(arg int64) (int64, bool) {
	if i.memo == nil {
		return 0, false
	}
	return i.memo.Get(arg)
}

func (i *Interpreter) memoStore(arg, result int64) {
	if i.memo == nil {
		return
	}
	i.memo.Add(arg, result)
}

func addInt64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, &OverflowError{Operator: "+", Left: a, Right: b}
	}
	return a + b, nil
}

func mulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, &OverflowError{Operator: "*", Left: a, Right: b}
	}
	c := a * b
	if c/b != a {
		return 0, &OverflowError{Operator: "*", Left: a, Right: b}
	}
	return c, nil
}
