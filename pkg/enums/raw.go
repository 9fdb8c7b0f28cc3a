// Package enums collects small enumerations: plain cases with exhaustive
// matches, raw-value cases with failable construction, and a tagged union
// carrying associated values.
package enums

// rawValued is implemented by enumerations backed by a fixed literal per case.
type rawValued[R comparable] interface {
	comparable
	RawValue() R
}

// fromRawValue finds the case whose raw value equals raw. Construction fails
// when no declared case matches.
func fromRawValue[E rawValued[R], R comparable](cases []E, raw R) (E, bool) {
	for _, c := range cases {
		if c.RawValue() == raw {
			return c, true
		}
	}
	var zero E
	return zero, false
}
