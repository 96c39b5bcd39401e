package kdtree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented preorder listing of the subtree rooted at n to
// w, one node per line with its side tag, splitting axis, and location.
// The sentinel prints as "(empty)".
func (n *Node) Dump(w io.Writer) {
	n.dump(w, "", "")
}

func (n *Node) dump(w io.Writer, indent, tag string) {
	if n.IsSentinel() {
		fmt.Fprintf(w, "%s%s(empty)\n", indent, tag)
		return
	}
	fmt.Fprintf(w, "%s%saxis=%d location=%v\n", indent, tag, n.Axis, []float64(n.Location))
	for _, c := range n.Children() {
		childTag := "L "
		if c.Side == SideRight {
			childTag = "R "
		}
		c.Node.dump(w, indent+"  ", childTag)
	}
}

// String renders the whole tree in Dump format.
func (t *Tree) String() string {
	var b strings.Builder
	t.root.Dump(&b)
	return b.String()
}
