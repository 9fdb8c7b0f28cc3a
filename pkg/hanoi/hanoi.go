// Package hanoi counts Tower of Hanoi moves through the f recurrence,
// f(n) = 2*f(n-1) + 1 with f(1) = 1, evaluated as an expression tree.
package hanoi

import (
	"enumstudy/evaluator-go/pkg/ast"
	"enumstudy/evaluator-go/pkg/interpreter"
)

// MaxDisks is the largest n whose step count fits in an int64.
const MaxDisks = 63

// Expression returns the tree f(n).
func Expression(n int64) ast.Expression {
	return ast.NewF(ast.NewNumber(n))
}

// StepsFor returns 2^n - 1 for 1 <= n <= MaxDisks and 0 for n <= 0.
// Larger n fail with interpreter.ErrOverflow.
func StepsFor(n int64) (int64, error) {
	return StepsForWith(interpreter.New(), n)
}

// StepsForWith evaluates f(n) with interp, so callers choose the domain
// policy, memoization and logging.
func StepsForWith(interp *interpreter.Interpreter, n int64) (int64, error) {
	return interp.Evaluate(Expression(n))
}
