package ast

type NodeType string

const (
	NodeNumber         NodeType = "Number"
	NodeAddition       NodeType = "Addition"
	NodeMultiplication NodeType = "Multiplication"
	NodeF              NodeType = "F"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Expression is the closed set of arithmetic nodes. Only the variants in this
// package implement it.
type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Number is an integer leaf.
type Number struct {
	nodeImpl
	expressionMarker

	Value int64 `json:"value"`
}

func NewNumber(value int64) *Number {
	return &Number{nodeImpl: newNodeImpl(NodeNumber), Value: value}
}

type Addition struct {
	nodeImpl
	expressionMarker

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewAddition(left, right Expression) *Addition {
	return &Addition{nodeImpl: newNodeImpl(NodeAddition), Left: left, Right: right}
}

type Multiplication struct {
	nodeImpl
	expressionMarker

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewMultiplication(left, right Expression) *Multiplication {
	return &Multiplication{nodeImpl: newNodeImpl(NodeMultiplication), Left: left, Right: right}
}

// F wraps another expression. Its meaning is assigned by the evaluator: the
// argument is evaluated first and the result selects the recurrence arm.
type F struct {
	nodeImpl
	expressionMarker

	Argument Expression `json:"argument"`
}

func NewF(argument Expression) *F {
	return &F{nodeImpl: newNodeImpl(NodeF), Argument: argument}
}
