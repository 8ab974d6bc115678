package btree

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Visualizer renders a tree as text using only the read-only node surface.
type Visualizer[K cmp.Ordered] struct {
	Tree *Tree[K]

	// NoColor disables ANSI colors regardless of the terminal.
	NoColor bool
}

/*
Visualize draws one node per line, indented by depth:

	[20]
	├── [10]
	└── [30 | 40]
*/
func (v *Visualizer[K]) Visualize() string {
	var sb strings.Builder
	internal, leaf := v.palette()
	v.draw(&sb, v.Tree.Root(), "", "", internal, leaf)
	return strings.TrimSuffix(sb.String(), "\n")
}

func (v *Visualizer[K]) draw(sb *strings.Builder, n *Node[K], prefix, connector string, internal, leaf *color.Color) {
	paint := internal
	if n.IsLeaf() {
		paint = leaf
	}
	sb.WriteString(prefix + connector + paint.Sprint(label(n)) + "\n")

	switch connector {
	case "├── ":
		prefix += "│   "
	case "└── ":
		prefix += "    "
	}

	children := n.Children()
	for i, c := range children {
		next := "├── "
		if i == len(children)-1 {
			next = "└── "
		}
		v.draw(sb, c, prefix, next, internal, leaf)
	}
}

// Levels draws the tree level by level, one line per depth.
func (v *Visualizer[K]) Levels() string {
	internal, leaf := v.palette()

	var lines []string
	for level := []*Node[K]{v.Tree.Root()}; len(level) > 0; {
		var next []*Node[K]
		labels := make([]string, 0, len(level))
		for _, n := range level {
			if n.IsLeaf() {
				labels = append(labels, leaf.Sprint(label(n)))
				continue
			}
			labels = append(labels, internal.Sprint(label(n)))
			next = append(next, n.Children()...)
		}
		lines = append(lines, fmt.Sprintf("%d: %s", len(lines), strings.Join(labels, " ")))
		level = next
	}
	return strings.Join(lines, "\n")
}

func (v *Visualizer[K]) palette() (internal, leaf *color.Color) {
	internal = color.New(color.FgCyan, color.Bold)
	leaf = color.New(color.FgGreen)
	if v.NoColor {
		internal.DisableColor()
		leaf.DisableColor()
	}
	return internal, leaf
}

func label[K any](n *Node[K]) string {
	keys := n.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return "[" + strings.Join(parts, " | ") + "]"
}
