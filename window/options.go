package window

import "github.com/lixenwraith/termwin/layout"

// Options controls how a window is positioned and what parts of it get drawn
type Options struct {
	Horizontal    layout.Alignment // X policy against the parent
	Vertical      layout.Alignment // Y policy against the parent
	TextVertical  layout.Alignment // text block policy inside the content rectangle
	TextPadding   int              // cells between the border and the text on each side
	RenderBorder  bool
	RenderContent bool
}

// DefaultOptions returns the options every new window starts with
func DefaultOptions() Options {
	return Options{
		Horizontal:    layout.AlignNone(),
		Vertical:      layout.AlignNone(),
		TextVertical:  layout.AlignMin(0),
		TextPadding:   1,
		RenderBorder:  true,
		RenderContent: true,
	}
}

// TextInset is the distance from the window's outer edge to its text on each side.
// One frame cell is always reserved, drawn or not.
func (o Options) TextInset() int {
	return o.TextPadding + 1
}
