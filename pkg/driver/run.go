package driver

import (
	"enumstudy/evaluator-go/pkg/ast"
	"enumstudy/evaluator-go/pkg/interpreter"
)

// Result is the outcome of evaluating one named expression.
type Result struct {
	Name       string
	Expression ast.Expression
	Value      int64
	Err        error
	Expected   *int64
}

// Failed reports an evaluation error or a value that differs from the
// document's expectation.
func (r Result) Failed() bool {
	if r.Err != nil {
		return true
	}
	return r.Expected != nil && *r.Expected != r.Value
}

// Run evaluates every expression of doc in order. Errors are recorded per
// result; one failing expression does not stop the rest.
func Run(doc *Document, interp *interpreter.Interpreter) []Result {
	if doc == nil {
		return nil
	}
	results := make([]Result, 0, len(doc.Expressions))
	for _, entry := range doc.Expressions {
		value, err := interp.Evaluate(entry.Expression)
		results = append(results, Result{
			Name:       entry.Name,
			Expression: entry.Expression,
			Value:      value,
			Err:        err,
			Expected:   entry.Expected,
		})
	}
	return results
}
