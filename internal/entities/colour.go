package entities

import (
	"github.com/KirkDiggler/delver-sim/internal/errors"
)

// Colour is a display colour that every text surface can render
type Colour string

// Supported colours
const (
	ColourGray   Colour = "gray"
	ColourRed    Colour = "red"
	ColourGreen  Colour = "green"
	ColourYellow Colour = "yellow"
	ColourBlue   Colour = "blue"
	ColourPink   Colour = "pink"
	ColourCyan   Colour = "cyan"
	ColourWhite  Colour = "white"
)

// Colours lists every supported colour
var Colours = []Colour{
	ColourGray, ColourRed, ColourGreen, ColourYellow,
	ColourBlue, ColourPink, ColourCyan, ColourWhite,
}

// ParseColour validates a colour name
func ParseColour(name string) (Colour, error) {
	for _, c := range Colours {
		if string(c) == name {
			return c, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown colour %q", name)
}
