// Package layout holds the pure arithmetic of the window engine: word-wrap
// placement, wrapped text height, and per-axis alignment resolution.
//
// Nothing here touches a terminal. The renderer and the window tree both call
// into this package so that sizing and drawing always agree on where words land.
package layout
