package enums

import "fmt"

// CompassPoint is a plain enumeration; its raw value is the case name.
type CompassPoint int

const (
	North CompassPoint = iota
	South
	East
	West
)

var compassPoints = [...]CompassPoint{North, South, East, West}

// CompassPoints lists every case in declaration order.
func CompassPoints() []CompassPoint {
	return append([]CompassPoint(nil), compassPoints[:]...)
}

func (c CompassPoint) String() string {
	switch c {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("CompassPoint(%d)", int(c))
	}
}

func (c CompassPoint) RawValue() string {
	return c.String()
}

// CompassPointFromRawValue returns the case named raw, if any.
func CompassPointFromRawValue(raw string) (CompassPoint, bool) {
	return fromRawValue(compassPoints[:], raw)
}

// Describe matches every case explicitly.
func (c CompassPoint) Describe() string {
	switch c {
	case North:
		return "Lots of planets have a north"
	case South:
		return "Watch out for penguins"
	case East:
		return "Where the sun rises"
	case West:
		return "Where the skies are blue"
	default:
		panic(fmt.Sprintf("enums: unknown compass point %d", int(c)))
	}
}
