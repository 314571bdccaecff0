package tpl

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"github.com/weft-dev/weft/internal/errors"
	"github.com/weft-dev/weft/pkg/dom"
)

// marker is the per-process sentinel woven into synthesized markup. It is
// randomized so author content cannot collide with it.
var marker = "{{weft-" + strconv.FormatUint(rand.Uint64(), 36) + "}}"

// nodeMarker is the comment-wrapped marker used in node position.
var nodeMarker = "<!--" + marker + "-->"

// commentMarker is the space-padded marker used for bindings that sit
// inside an authored comment. Such bindings are inert.
var commentMarker = " " + marker + " "

// boundAttributeSuffix is appended to bound attribute names during markup
// synthesis so the parser's special-casing of certain attribute names
// never applies to a bound attribute.
const boundAttributeSuffix = "$weft$"

// markerRegex splits text and attribute values on either marker shape:
// the first binding in an attribute value is a bare marker, later ones in
// the same value (and raw-text element content) are comment-wrapped.
var markerRegex = regexp.MustCompile(regexp.QuoteMeta(marker) + "|" + regexp.QuoteMeta(nodeMarker))

// lastAttributeNameRegex matches the trailing `name=` of a strand that
// ends inside an attribute value. Which characters terminate a name
// determines where bindings are located, so the character classes must
// not drift:
//
// Group 1: whitespace before the attribute name
// Group 2: the attribute name
// Group 3: `=` plus the quote and value text seen so far
var lastAttributeNameRegex = regexp.MustCompile(
	`([ \t\n\f\r])` +
		`([^\x00-\x1f\x7f-\x9f "'>=/]+)` +
		`([ \t\n\f\r]*=[ \t\n\f\r]*(?:[^ \t\n\f\r"'` + "`" + `<>=]*|"[^"]*|'[^']*))$`)

// partKind discriminates part descriptors.
type partKind uint8

const (
	partAttribute partKind = iota
	partNode
)

// partDesc records where a dynamic slot ended up inside the compiled
// fragment. Index is the position in a depth-first walk over elements,
// text, and comments; -1 marks an inert binding that is skipped at
// instantiation but still consumes a value slot.
type partDesc struct {
	kind    partKind
	index   int
	name    string   // attribute name (attribute parts only)
	strands []string // static segments around the attribute's slots
}

func (p partDesc) active() bool { return p.index != -1 }

// Template is the compiled, reusable artifact for one distinct skeleton:
// a detached fragment holding marker nodes plus the ordered part
// descriptors that locate every dynamic slot. Templates are compiled once
// and live for the process lifetime.
type Template struct {
	fragment *dom.Node
	parts    []partDesc
	kind     ResultKind
}

// Compile parses a Result's markup skeleton and locates every dynamic
// slot, producing a Template. Callers normally go through the engine's
// template cache instead of compiling directly.
func Compile(doc *dom.Document, res Result) *Template {
	frag, err := dom.ParseFragment(doc, res.Markup())
	if err != nil {
		panic(errors.New("E041").Wrap(err))
	}
	if res.Kind == KindSVG {
		// Unwrap the synthesized <svg> container: its children are the
		// template's real content.
		if svg := frag.FirstChild(); svg != nil {
			frag.RemoveChild(svg)
			dom.ReparentRange(frag, svg.FirstChild(), nil, nil)
		}
	}

	t := &Template{fragment: frag, kind: res.Kind}
	t.compile(res)
	return t
}

// compile walks the parsed fragment depth-first in lock-step with the
// slot count, recording one descriptor per slot. Literal text segments
// and extra comment markers are inserted so that at instantiation every
// node slot is unambiguously delimited by a previous/next sibling pair.
func (t *Template) compile(res Result) {
	slots := len(res.Values)
	w := newWalker(t.fragment)

	// Nodes that must go away but cannot be removed mid-walk without
	// disturbing the cursor and index accounting.
	var doomed []*dom.Node

	lastPartIndex := 0
	index := -1
	partIndex := 0

	for partIndex < slots {
		node := w.next()
		if node == nil {
			break
		}
		index++

		switch node.Kind() {
		case dom.KindElement:
			// Count suffixed attributes, then recover each original name
			// from the strand that precedes its first slot.
			count := 0
			for _, name := range node.AttrNames() {
				if strings.HasSuffix(name, boundAttributeSuffix) {
					count++
				}
			}
			for ; count > 0; count-- {
				strand := res.Strands[partIndex]
				m := lastAttributeNameRegex.FindStringSubmatch(strand)
				name := m[2]
				lookup := strings.ToLower(name) + boundAttributeSuffix
				value, _ := node.Attr(lookup)
				node.RemoveAttr(lookup)
				statics := markerRegex.Split(value, -1)
				t.parts = append(t.parts, partDesc{
					kind:    partAttribute,
					index:   index,
					name:    name,
					strands: statics,
				})
				partIndex += len(statics) - 1
			}

		case dom.KindText:
			data := node.Data
			if !strings.Contains(data, marker) {
				continue
			}
			parent := node.Parent()
			segments := markerRegex.Split(data, -1)
			lastSegment := len(segments) - 1
			// One inserted node per slot: a literal text node when the
			// segment has content, a comment marker otherwise. Each
			// doubles as the boundary of the part before it.
			for i := 0; i < lastSegment; i++ {
				var insert *dom.Node
				s := segments[i]
				if s == "" {
					insert = createMarker(node.Document())
				} else {
					// A suffixed attribute name can leak into raw-text
					// content (e.g. inside <textarea>); strip it back.
					if am := lastAttributeNameRegex.FindStringSubmatchIndex(s); am != nil &&
						strings.HasSuffix(s[am[4]:am[5]], boundAttributeSuffix) {
						s = s[:am[0]] + s[am[2]:am[3]] +
							strings.TrimSuffix(s[am[4]:am[5]], boundAttributeSuffix) + s[am[6]:am[7]]
					}
					insert = node.Document().CreateText(s)
				}
				parent.InsertBefore(insert, node)
				index++
				t.parts = append(t.parts, partDesc{kind: partNode, index: index})
			}
			if segments[lastSegment] == "" {
				// No trailing text to anchor the walk; swap in a comment.
				parent.InsertBefore(createMarker(node.Document()), node)
				doomed = append(doomed, node)
			} else {
				node.Data = segments[lastSegment]
			}
			partIndex += lastSegment

		case dom.KindComment:
			if node.Data == marker {
				parent := node.Parent()
				// Add a leading marker when this slot has no previous
				// sibling, or when the previous sibling already delimits
				// the preceding slot.
				if node.PrevSibling() == nil || index == lastPartIndex {
					index++
					parent.InsertBefore(createMarker(node.Document()), node)
				}
				lastPartIndex = index
				t.parts = append(t.parts, partDesc{kind: partNode, index: index})
				// Keep the marker when it is the range's only possible end
				// anchor; otherwise drop it after the walk.
				if node.NextSibling() == nil {
					node.Data = ""
				} else {
					doomed = append(doomed, node)
					index--
				}
				partIndex++
			} else {
				// Bindings inside authored comments cannot be activated;
				// record an inert descriptor per occurrence so value
				// indexes stay aligned.
				for i := 0; ; {
					j := strings.Index(node.Data[i:], marker)
					if j < 0 {
						break
					}
					t.parts = append(t.parts, partDesc{kind: partNode, index: -1})
					partIndex++
					i += j + 1
				}
			}
		}
	}

	for _, n := range doomed {
		n.Remove()
	}
}

// createMarker creates an empty comment node used as a range boundary.
func createMarker(d *dom.Document) *dom.Node {
	return d.CreateComment("")
}

// walker iterates elements, text, and comments in depth-first document
// order, excluding the root. Inserting nodes before the current node is
// safe mid-walk.
type walker struct {
	root *dom.Node
	cur  *dom.Node
}

func newWalker(root *dom.Node) *walker {
	return &walker{root: root, cur: root}
}

func (w *walker) next() *dom.Node {
	if w.cur == nil {
		return nil
	}
	if fc := w.cur.FirstChild(); fc != nil {
		w.cur = fc
		return fc
	}
	for n := w.cur; n != nil && n != w.root; n = n.Parent() {
		if sib := n.NextSibling(); sib != nil {
			w.cur = sib
			return sib
		}
	}
	w.cur = nil
	return nil
}
