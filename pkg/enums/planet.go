package enums

import "fmt"

// Planet raw values are assigned implicitly from Mercury = 1 upwards.
type Planet int

const (
	Mercury Planet = iota + 1
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

var planets = [...]Planet{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}

// Planets returns every case in order from the sun. The slice is a copy.
func Planets() []Planet {
	return append([]Planet(nil), planets[:]...)
}

var planetNames = [...]string{
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
}

func (p Planet) String() string {
	if p < Mercury || p > Neptune {
		return fmt.Sprintf("Planet(%d)", int(p))
	}
	return planetNames[p]
}

// RawValue is the planet's position from the sun.
func (p Planet) RawValue() int {
	return int(p)
}

// PlanetFromRawValue fails for positions outside 1...8.
func PlanetFromRawValue(raw int) (Planet, bool) {
	return fromRawValue(planets[:], raw)
}

// Describe singles out Earth and lets every other case share one arm.
func (p Planet) Describe() string {
	switch p {
	case Earth:
		return "Mostly harmless"
	default:
		return "Not a safe place for humans"
	}
}

// DescribePosition describes the planet at position, or explains that none
// exists there.
func DescribePosition(position int) string {
	planet, ok := PlanetFromRawValue(position)
	if !ok {
		return fmt.Sprintf("There isn't a planet at position %d", position)
	}
	return planet.Describe()
}
