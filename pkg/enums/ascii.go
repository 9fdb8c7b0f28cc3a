package enums

import "fmt"

// ASCIIControlCharacter carries an explicit rune raw value per case.
type ASCIIControlCharacter rune

const (
	Tab            ASCIIControlCharacter = '\t'
	LineFeed       ASCIIControlCharacter = '\n'
	CarriageReturn ASCIIControlCharacter = '\r'
)

var asciiControlCharacters = [...]ASCIIControlCharacter{Tab, LineFeed, CarriageReturn}

func ASCIIControlCharacters() []ASCIIControlCharacter {
	return append([]ASCIIControlCharacter(nil), asciiControlCharacters[:]...)
}

func (c ASCIIControlCharacter) String() string {
	switch c {
	case Tab:
		return "Tab"
	case LineFeed:
		return "LineFeed"
	case CarriageReturn:
		return "CarriageReturn"
	default:
		return fmt.Sprintf("ASCIIControlCharacter(%q)", rune(c))
	}
}

func (c ASCIIControlCharacter) RawValue() rune {
	return rune(c)
}

func ASCIIControlCharacterFromRawValue(raw rune) (ASCIIControlCharacter, bool) {
	return fromRawValue(asciiControlCharacters[:], raw)
}
