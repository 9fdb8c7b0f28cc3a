package ast

// Short constructors for building trees in code and tests.

func Num(value int64) *Number {
	return NewNumber(value)
}

func Add(left, right Expression) *Addition {
	return NewAddition(left, right)
}

func Mul(left, right Expression) *Multiplication {
	return NewMultiplication(left, right)
}

func Fn(argument Expression) *F {
	return NewF(argument)
}
