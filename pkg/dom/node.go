package dom

import "sort"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindComment              // <!-- ... -->
	KindFragment             // Detached grouping without wrapper
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// OpStats counts structural mutations on a document's trees. The counters
// are a cheap observable side channel for tests and metrics; they are not
// used by the engine itself.
type OpStats struct {
	Inserts uint64
	Removes uint64
}

// Document owns nodes and acts as the node factory. Every node created
// through a Document carries a reference back to it so mutation stats are
// attributed to the right owner.
type Document struct {
	Stats OpStats
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement creates a detached element node.
func (d *Document) CreateElement(tag string) *Node {
	return &Node{kind: KindElement, Tag: tag, doc: d}
}

// CreateText creates a detached text node.
func (d *Document) CreateText(data string) *Node {
	return &Node{kind: KindText, Data: data, doc: d}
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(data string) *Node {
	return &Node{kind: KindComment, Data: data, doc: d}
}

// CreateFragment creates an empty fragment node.
func (d *Document) CreateFragment() *Node {
	return &Node{kind: KindFragment, doc: d}
}

// Node is a live, mutable DOM node. Unlike a virtual node it has identity:
// parts hold direct references to the nodes they own and mutate them in
// place across commits.
type Node struct {
	kind Kind

	// Tag is the element tag name (lowercase), empty for non-elements.
	Tag string

	// Data holds the content of text and comment nodes.
	Data string

	attrs     map[string]string
	props     map[string]any
	listeners map[string][]*listenerEntry

	doc *Document

	parent      *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node
}

// Kind returns the node type.
func (n *Node) Kind() Kind { return n.kind }

// Document returns the owning document.
func (n *Node) Document() *Document { return n.doc }

// Parent returns the parent node, or nil for detached nodes.
func (n *Node) Parent() *Node { return n.parent }

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node { return n.firstChild }

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node { return n.lastChild }

// PrevSibling returns the previous sibling, or nil.
func (n *Node) PrevSibling() *Node { return n.prevSibling }

// NextSibling returns the next sibling, or nil.
func (n *Node) NextSibling() *Node { return n.nextSibling }

// ChildNodes returns the children as a slice. The slice is a snapshot;
// mutating the tree does not affect it.
func (n *Node) ChildNodes() []*Node {
	var out []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		out = append(out, c)
	}
	return out
}

// AppendChild appends child as the last child of n.
// Appending a fragment splices the fragment's children in and empties it.
func (n *Node) AppendChild(child *Node) *Node {
	return n.InsertBefore(child, nil)
}

// InsertBefore inserts child before ref, which must be a child of n.
// A nil ref appends. Inserting a fragment splices the fragment's children
// in and leaves the fragment empty; the returned node is then the fragment
// itself (which is no longer in any tree).
func (n *Node) InsertBefore(child, ref *Node) *Node {
	if child.kind == KindFragment {
		for c := child.firstChild; c != nil; {
			next := c.nextSibling
			n.InsertBefore(c, ref)
			c = next
		}
		child.firstChild = nil
		child.lastChild = nil
		return child
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	if ref == nil {
		child.prevSibling = n.lastChild
		if n.lastChild != nil {
			n.lastChild.nextSibling = child
		} else {
			n.firstChild = child
		}
		n.lastChild = child
	} else {
		child.prevSibling = ref.prevSibling
		child.nextSibling = ref
		if ref.prevSibling != nil {
			ref.prevSibling.nextSibling = child
		} else {
			n.firstChild = child
		}
		ref.prevSibling = child
	}
	if n.doc != nil {
		n.doc.Stats.Inserts++
	}
	return child
}

// RemoveChild detaches child from n.
func (n *Node) RemoveChild(child *Node) *Node {
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else {
		n.firstChild = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	} else {
		n.lastChild = child.prevSibling
	}
	child.parent = nil
	child.prevSibling = nil
	child.nextSibling = nil
	if n.doc != nil {
		n.doc.Stats.Removes++
	}
	return child
}

// Remove detaches n from its parent. Detached nodes are a no-op.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Clone returns a deep copy of the node and its subtree. Attributes are
// copied; properties and event listeners are not, matching cloneNode
// semantics.
func (n *Node) Clone() *Node {
	clone := &Node{kind: n.kind, Tag: n.Tag, Data: n.Data, doc: n.doc}
	if n.attrs != nil {
		clone.attrs = make(map[string]string, len(n.attrs))
		for k, v := range n.attrs {
			clone.attrs[k] = v
		}
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		cc := c.Clone()
		cc.parent = clone
		cc.prevSibling = clone.lastChild
		if clone.lastChild != nil {
			clone.lastChild.nextSibling = cc
		} else {
			clone.firstChild = cc
		}
		clone.lastChild = cc
	}
	return clone
}

// SetAttr sets an attribute on an element node.
func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// Attr returns the attribute value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// RemoveAttr removes an attribute if present.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// AttrNames returns the attribute names in sorted order.
// Sorting keeps serialization and tests deterministic.
func (n *Node) AttrNames() []string {
	names := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SetProp sets an object property on the node. Properties live beside
// attributes and are never string-coerced.
func (n *Node) SetProp(name string, value any) {
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[name] = value
}

// Prop returns the property value and whether it is set.
func (n *Node) Prop(name string) (any, bool) {
	v, ok := n.props[name]
	return v, ok
}
