package drawer

import (
	"cmp"
	"io"
)

// Drawer is an interface that defines the methods for drawing an algorithm result.
type Drawer[K cmp.Ordered] interface {
	// SetAttribute sets a graph level attribute.
	SetAttribute(key, value string)
	// SetVertexLabel adds an external label next to a vertex.
	SetVertexLabel(vertex K, label string) error
	// Highlight marks an edge as part of the result.
	Highlight(source, target K) error
	// Draw writes the DOT description.
	Draw(w io.Writer) error
	// DrawFile creates a file with the DOT description.
	DrawFile(path string) error
}
