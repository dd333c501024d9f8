package layout

import "fmt"

// AlignKind enumerates the alignment policies of a single axis
type AlignKind uint8

const (
	AlignKindNone   AlignKind = iota // use the stored relative coordinate
	AlignKindMin                     // pin to the parent's leading edge
	AlignKindCenter                  // pin to the parent's midpoint
	AlignKindMax                     // pin to the parent's trailing edge
)

func (k AlignKind) String() string {
	switch k {
	case AlignKindNone:
		return "none"
	case AlignKindMin:
		return "min"
	case AlignKindCenter:
		return "center"
	case AlignKindMax:
		return "max"
	default:
		return "unknown"
	}
}

// Alignment is the policy of one axis with its signed cell offset.
// The zero value is AlignNone().
type Alignment struct {
	kind   AlignKind
	offset int16
}

// AlignNone keeps the node's own relative coordinate
func AlignNone() Alignment { return Alignment{} }

// AlignMin anchors to the leading edge; negative offsets are discarded
func AlignMin(offset int16) Alignment { return Alignment{kind: AlignKindMin, offset: offset} }

// AlignCenter anchors to the parent's midpoint
func AlignCenter(offset int16) Alignment { return Alignment{kind: AlignKindCenter, offset: offset} }

// AlignMax anchors to the trailing edge; positive offsets reject the anchor
func AlignMax(offset int16) Alignment { return Alignment{kind: AlignKindMax, offset: offset} }

// Kind returns the alignment policy
func (a Alignment) Kind() AlignKind { return a.kind }

// Offset returns the signed displacement carried by the policy
func (a Alignment) Offset() int16 { return a.offset }

func (a Alignment) String() string {
	if a.kind == AlignKindNone {
		return "none"
	}
	return fmt.Sprintf("%s(%d)", a.kind, a.offset)
}

// Frame corrections applied by Resolve. Center loses the parent's leading
// border cell, max loses the parent's trailing and the child's own trailing cell.
const (
	frameCenterBias = -1
	frameMaxBias    = -2
)

// Resolve maps the policy to an absolute coordinate for a framed child.
// origin is the parent's interior origin on this axis, relative the child's
// own stored coordinate, parentExtent and childExtent the outer sizes.
// Rejected anchors fall back to origin+relative.
func (a Alignment) Resolve(origin, relative, parentExtent, childExtent int) int {
	return a.resolve(origin, relative, parentExtent, childExtent, frameCenterBias, frameMaxBias)
}

// Place positions an unframed block of size cells inside a span of extent
// cells starting at origin. Offset and fallback rules match Resolve.
func (a Alignment) Place(origin, relative, extent, size int) int {
	return a.resolve(origin, relative, extent, size, 0, 0)
}

func (a Alignment) resolve(origin, relative, parentExtent, childExtent, centerBias, maxBias int) int {
	fallback := origin + relative
	offset := int(a.offset)

	switch a.kind {
	case AlignKindMin:
		// Anchor cannot be pulled outside the leading edge
		if offset < 0 {
			return origin
		}
		return origin + offset

	case AlignKindCenter:
		candidate := origin + parentExtent/2 - childExtent/2 + centerBias + offset
		if candidate < 0 {
			return fallback
		}
		return candidate

	case AlignKindMax:
		if offset > 0 {
			return fallback
		}
		candidate := origin + parentExtent - childExtent + maxBias + offset
		if candidate < 0 {
			return fallback
		}
		return candidate

	default:
		return fallback
	}
}
