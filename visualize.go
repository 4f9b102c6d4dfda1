package ordset

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	rootPaint     = color.New(color.FgCyan)
	internalPaint = color.New(color.FgYellow)
	leafPaint     = color.New(color.FgGreen)
)

// Visualizer renders a tree level by level for debugging, coloring each
// node by kind: the root cyan, internal nodes yellow, leaves green. Colors
// follow the fatih/color global settings, so they degrade to plain text on
// non-terminal output.
type Visualizer[K any] struct {
	Tree *Tree[K]
}

// Visualize returns the rendered tree, one level per line with each node's
// keys between brackets.
func (v *Visualizer[K]) Visualize() string {
	var b strings.Builder

	level := []*node[K]{v.Tree.root}
	for len(level) > 0 {
		var next []*node[K]
		for i, n := range level {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(paint(n))
			next = append(next, n.children...)
		}
		b.WriteString("\n")
		level = next
	}
	return b.String()
}

func paint[K any](n *node[K]) string {
	keys := make([]string, len(n.keys))
	for i, k := range n.keys {
		keys[i] = fmt.Sprintf("%v", k)
	}
	label := "[" + strings.Join(keys, " ") + "]"

	switch n.kind {
	case kindRoot:
		return rootPaint.Sprint(label)
	case kindInternal:
		return internalPaint.Sprint(label)
	default:
		return leafPaint.Sprint(label)
	}
}
