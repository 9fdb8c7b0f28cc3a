package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompassPointDescriptions(t *testing.T) {
	want := map[CompassPoint]string{
		North: "Lots of planets have a north",
		South: "Watch out for penguins",
		East:  "Where the sun rises",
		West:  "Where the skies are blue",
	}
	for _, point := range CompassPoints() {
		assert.Equal(t, want[point], point.Describe(), point.String())
	}
	assert.Panics(t, func() { _ = CompassPoint(42).Describe() })
}

func TestCompassPointRawValues(t *testing.T) {
	assert.Equal(t, "West", West.RawValue())
	for _, point := range CompassPoints() {
		got, ok := CompassPointFromRawValue(point.RawValue())
		require.True(t, ok, point.String())
		assert.Equal(t, point, got)
	}
	_, ok := CompassPointFromRawValue("north")
	assert.False(t, ok, "raw values are case sensitive")
}

func TestPlanetImplicitRawValues(t *testing.T) {
	require.Len(t, Planets(), 8)
	for idx, planet := range Planets() {
		assert.Equal(t, idx+1, planet.RawValue(), planet.String())
	}
	assert.Equal(t, 3, Earth.RawValue())
	assert.Equal(t, "Planet(9)", Planet(9).String())
}

func TestPlanetFailableConstruction(t *testing.T) {
	planet, ok := PlanetFromRawValue(7)
	require.True(t, ok)
	assert.Equal(t, Uranus, planet)

	for _, raw := range []int{0, 9, -1} {
		_, ok := PlanetFromRawValue(raw)
		assert.False(t, ok, "position %d", raw)
	}
}

func TestCaseListsAreCopies(t *testing.T) {
	planets := Planets()
	planets[6] = Earth
	got, ok := PlanetFromRawValue(7)
	require.True(t, ok)
	assert.Equal(t, Uranus, got)
	assert.Equal(t, Uranus, Planets()[6])

	points := CompassPoints()
	points[0] = West
	got2, ok := CompassPointFromRawValue("North")
	require.True(t, ok)
	assert.Equal(t, North, got2)

	controls := ASCIIControlCharacters()
	require.Len(t, controls, 3)
	controls[0] = LineFeed
	got3, ok := ASCIIControlCharacterFromRawValue('\t')
	require.True(t, ok)
	assert.Equal(t, Tab, got3)
}

func TestPlanetDescriptions(t *testing.T) {
	assert.Equal(t, "Mostly harmless", Earth.Describe())
	assert.Equal(t, "Not a safe place for humans", Mars.Describe())
	assert.Equal(t, "Mostly harmless", DescribePosition(3))
	assert.Equal(t, "Not a safe place for humans", DescribePosition(7))
	assert.Equal(t, "There isn't a planet at position 9", DescribePosition(9))
}

func TestASCIIControlCharacters(t *testing.T) {
	assert.Equal(t, '\t', Tab.RawValue())
	assert.Equal(t, '\n', LineFeed.RawValue())
	assert.Equal(t, '\r', CarriageReturn.RawValue())

	got, ok := ASCIIControlCharacterFromRawValue('\n')
	require.True(t, ok)
	assert.Equal(t, LineFeed, got)
	assert.Equal(t, "LineFeed", got.String())

	_, ok = ASCIIControlCharacterFromRawValue('a')
	assert.False(t, ok)
}

func TestDescribeBarcode(t *testing.T) {
	cases := []struct {
		name string
		code Barcode
		want string
	}{
		{name: "UPCA", code: UPCA{NumberSystem: 8, Manufacturer: 85909, Product: 51226, Check: 3}, want: "UPC-A: 8, 85909, 51226, 3."},
		{name: "QRCode", code: QRCode{ProductCode: "ABCDEFGHIJKLMNOP"}, want: "QR code: ABCDEFGHIJKLMNOP."},
		{name: "Nil", code: nil, want: "unknown barcode"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DescribeBarcode(tc.code), tc.name)
	}
}
