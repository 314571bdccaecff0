package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/weft-dev/weft/pkg/dom"
)

// RendererConfig configures the HTML serializer.
type RendererConfig struct {
	// Pretty enables pretty-printed output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// StripComments drops comment nodes from the output. Rendered trees
	// carry empty comment markers around each dynamic range; stripping
	// them yields clean static HTML.
	StripComments bool
}

// Renderer serializes a dom tree to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString serializes a node tree to an HTML string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node, 0, false)
}

// renderNode dispatches on node kind. raw is true inside raw-text
// elements like script and style, where text is emitted unescaped.
func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int, raw bool) error {
	if node == nil {
		return nil
	}

	switch node.Kind() {
	case dom.KindElement:
		return r.renderElement(w, node, depth)
	case dom.KindText:
		return r.renderText(w, node, raw)
	case dom.KindComment:
		return r.renderComment(w, node)
	case dom.KindFragment:
		return r.renderChildren(w, node, depth, raw)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind())
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := w.Write([]byte{'<'}); err != nil {
		return err
	}
	if _, err := w.Write([]byte(tag)); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	hasBlockChildren := node.FirstChild() != nil && !isInlineElement(tag)
	if r.config.Pretty && hasBlockChildren {
		w.Write([]byte{'\n'})
	}

	if err := r.renderChildren(w, node, depth+1, isRawTextElement(tag)); err != nil {
		return err
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}
	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}
	return nil
}

func (r *Renderer) renderChildren(w io.Writer, node *dom.Node, depth int, raw bool) error {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if err := r.renderNode(w, c, depth, raw); err != nil {
			return err
		}
	}
	return nil
}

// renderAttributes writes attributes in sorted name order so output is
// deterministic.
func (r *Renderer) renderAttributes(w io.Writer, node *dom.Node) error {
	for _, name := range node.AttrNames() {
		value, _ := node.Attr(name)
		if value == "" {
			// Bare form for presence-only attributes.
			if _, err := fmt.Fprintf(w, " %s", name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(value)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderText(w io.Writer, node *dom.Node, raw bool) error {
	text := node.Data
	if !raw {
		text = escapeHTML(text)
	}
	_, err := w.Write([]byte(text))
	return err
}

func (r *Renderer) renderComment(w io.Writer, node *dom.Node) error {
	if r.config.StripComments {
		return nil
	}
	_, err := fmt.Fprintf(w, "<!--%s-->", node.Data)
	return err
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
