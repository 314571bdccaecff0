package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rangeFixture(t *testing.T) (*Document, *Node, []*Node) {
	t.Helper()
	d := NewDocument()
	parent := d.CreateElement("div")
	var nodes []*Node
	for _, s := range []string{"a", "b", "c", "d"} {
		nodes = append(nodes, parent.AppendChild(d.CreateText(s)))
	}
	return d, parent, nodes
}

func TestReparentRangeMovesRun(t *testing.T) {
	_, parent, nodes := rangeFixture(t)

	// Move [b, d) before a.
	ReparentRange(parent, nodes[1], nodes[3], nodes[0])

	if got := childData(parent); !cmp.Equal(got, []string{"b", "c", "a", "d"}) {
		t.Errorf("children = %v, want [b c a d]", got)
	}
}

func TestReparentRangeNilDefaults(t *testing.T) {
	_, parent, nodes := rangeFixture(t)

	// Nil start, end before c: moves [a, c) to the end.
	ReparentRange(parent, nil, nodes[2], nil)

	if got := childData(parent); !cmp.Equal(got, []string{"c", "d", "a", "b"}) {
		t.Errorf("children = %v, want [c d a b]", got)
	}
}

func TestRemoveRange(t *testing.T) {
	_, parent, nodes := rangeFixture(t)

	RemoveRange(parent, nodes[1], nodes[3])

	if got := childData(parent); !cmp.Equal(got, []string{"a", "d"}) {
		t.Errorf("children = %v, want [a d]", got)
	}
	if nodes[1].Parent() != nil || nodes[2].Parent() != nil {
		t.Error("removed nodes still attached")
	}
}

func TestRemoveRangeAll(t *testing.T) {
	_, parent, _ := rangeFixture(t)

	RemoveRange(parent, nil, nil)

	if parent.FirstChild() != nil {
		t.Error("container not emptied")
	}
}
