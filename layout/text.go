package layout

import (
	"errors"
	"strings"
)

// ErrZeroWidth is returned when text is wrapped into a column narrower than one cell
var ErrZeroWidth = errors.New("layout: wrapping width must be at least 1")

// Placement is a word positioned relative to the top-left of its text block
type Placement struct {
	Word string
	DX   int
	DY   int
}

// Wrap places whitespace-separated words into lines of at most width cells.
// A word longer than width still gets placed, overflowing the right edge.
func Wrap(text string, width int) ([]Placement, error) {
	if width <= 0 {
		return nil, ErrZeroWidth
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	placements := make([]Placement, 0, len(words))
	dx, dy := 0, 0
	for _, word := range words {
		if dx+len(word) > width {
			dy++
			dx = 0
		}
		placements = append(placements, Placement{Word: word, DX: dx, DY: dy})
		// One trailing space after every word
		dx += len(word) + 1
	}
	return placements, nil
}

// TextHeight returns the number of lines Wrap produces for text at width, 0 for blank text
func TextHeight(text string, width int) (int, error) {
	placements, err := Wrap(text, width)
	if err != nil {
		return 0, err
	}
	if len(placements) == 0 {
		return 0, nil
	}
	return placements[len(placements)-1].DY + 1, nil
}
