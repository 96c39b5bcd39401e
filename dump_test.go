package kdtree

import (
	"strings"
	"testing"
)

func dumpString(n *Node) string {
	var b strings.Builder
	n.Dump(&b)
	return b.String()
}

func TestDump_Empty(t *testing.T) {
	tree, err := New(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tree.String(); !strings.Contains(got, "(empty)") {
		t.Errorf("empty tree dump = %q, want it to contain (empty)", got)
	}
}

func TestDump_Structure(t *testing.T) {
	tree, err := New([]Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := tree.String()

	want := `axis=0 location=[2 2]
  L axis=1 location=[1 1]
    L axis=0 location=[0 0]
  R axis=1 location=[3 3]
`
	if got != want {
		t.Errorf("dump mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDump_OneLinePerNode(t *testing.T) {
	tree, err := New([]Point{{1}, {2}, {3}, {4}, {5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Count(tree.String(), "\n")
	if lines != 5 {
		t.Errorf("dump has %d lines, want 5", lines)
	}
}
