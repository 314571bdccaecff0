package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses HTML5 markup into a detached fragment owned by d.
// Parsing happens in a <div> insertion context, which matches how a
// browser parses innerHTML of an ordinary container: comments are kept,
// <template> content becomes regular children, and attribute names are
// lowercased by the tokenizer.
func ParseFragment(d *Document, markup string) (*Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, err
	}
	frag := d.CreateFragment()
	for _, hn := range nodes {
		if converted := convert(d, hn); converted != nil {
			frag.AppendChild(converted)
		}
	}
	return frag, nil
}

// convert maps an x/net/html node tree onto the live node representation.
// Doctype and document nodes cannot occur in fragment context and are
// dropped.
func convert(d *Document, hn *html.Node) *Node {
	var n *Node
	switch hn.Type {
	case html.ElementNode:
		n = d.CreateElement(hn.Data)
		for _, a := range hn.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			n.SetAttr(name, a.Val)
		}
	case html.TextNode:
		n = d.CreateText(hn.Data)
	case html.CommentNode:
		n = d.CreateComment(hn.Data)
	default:
		return nil
	}
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		if converted := convert(d, c); converted != nil {
			n.AppendChild(converted)
		}
	}
	return n
}
