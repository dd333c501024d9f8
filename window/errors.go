package window

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrGeometry is matched by every GeometryError
var ErrGeometry = errors.New("window: invalid geometry")

// ErrShared is returned by Validate when one window appears at two places in the tree
var ErrShared = errors.New("window: window has more than one parent")

// GeometryError reports a window whose size or position cannot be laid out
type GeometryError struct {
	Path  string // child index path from the root, e.g. "root/0/2"
	Title string
	Field string
	Value int
	Min   int
}

func (e *GeometryError) Error() string {
	var name string
	switch {
	case e.Path == "":
		name = strconv.Quote(e.Title)
	case e.Title == "":
		name = e.Path
	default:
		name = e.Path + " " + strconv.Quote(e.Title)
	}
	return fmt.Sprintf("window %s: %s is %d, need at least %d", name, e.Field, e.Value, e.Min)
}

// Is lets errors.Is match ErrGeometry
func (e *GeometryError) Is(target error) bool {
	return target == ErrGeometry
}
