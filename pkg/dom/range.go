package dom

// Range helpers operate on the contiguous run of siblings between two
// markers. A part's visible content is always exactly the nodes between
// its start and end marker; these are the only functions that may move or
// drop such a run wholesale.

// ReparentRange moves the siblings [start, end) of container into
// container before ref. A nil start begins at container's first child; a
// nil end runs to the last child; a nil ref appends.
func ReparentRange(container *Node, start, end, ref *Node) {
	if start == nil {
		start = container.firstChild
	}
	for cur := start; cur != end; {
		next := cur.nextSibling
		container.InsertBefore(cur, ref)
		cur = next
	}
}

// RemoveRange detaches the siblings [start, end) from container.
// A nil start begins at container's first child; a nil end runs to the
// last child.
func RemoveRange(container *Node, start, end *Node) {
	if start == nil {
		start = container.firstChild
	}
	for cur := start; cur != end; {
		next := cur.nextSibling
		container.RemoveChild(cur)
		cur = next
	}
}
