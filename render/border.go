package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineDouble  LineType = iota // ╔═╗║╚╝
	LineSingle                  // ┌─┐│└┘
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineASCII                   // +-+|++
	LineHidden                  // spaces (frame cells kept, nothing visible)
)

var lineNames = [...]string{
	LineDouble:  "double",
	LineSingle:  "single",
	LineRounded: "rounded",
	LineHeavy:   "heavy",
	LineASCII:   "ascii",
	LineHidden:  "hidden",
}

func (lt LineType) String() string {
	if int(lt) < len(lineNames) {
		return lineNames[lt]
	}
	return "unknown"
}

// ParseLineType maps a name such as "double" or "rounded" to its LineType
func ParseLineType(name string) (LineType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range lineNames {
		if n == name {
			return LineType(i), nil
		}
	}
	return LineDouble, fmt.Errorf("unknown line type %q", name)
}

// Border returns the glyph set for the line type; unknown values fall back to double
func (lt LineType) Border() lipgloss.Border {
	switch lt {
	case LineSingle:
		return lipgloss.NormalBorder()
	case LineRounded:
		return lipgloss.RoundedBorder()
	case LineHeavy:
		return lipgloss.ThickBorder()
	case LineASCII:
		return lipgloss.ASCIIBorder()
	case LineHidden:
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.DoubleBorder()
	}
}
