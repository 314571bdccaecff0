package render

import (
	"fmt"
	"io"

	"github.com/weft-dev/weft/pkg/dom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root node for the page content.
	Body *dom.Node

	// Title is the page title.
	Title string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.).
	Links []LinkTag

	// Scripts contains script tags to include.
	Scripts []ScriptTag

	// Styles contains inline CSS styles.
	Styles []string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string
	Content   string
	Property  string
	HTTPEquiv string
	Charset   string
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string
	Href        string
	Type        string
	Sizes       string
	CrossOrigin string
	Media       string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string
	Type   string
	Defer  bool
	Async  bool
	Module bool
	Inline string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := w.Write([]byte("<!DOCTYPE html>\n")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<html lang="%s">`+"\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}
	if _, err := w.Write([]byte("<body>\n")); err != nil {
		return err
	}
	if page.Body != nil {
		if err := r.RenderToWriter(w, page.Body); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("\n</body>\n</html>\n"))
	return err
}

func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	if _, err := w.Write([]byte("<head>\n")); err != nil {
		return err
	}
	if _, err := w.Write([]byte(`<meta charset="utf-8">` + "\n")); err != nil {
		return err
	}
	if _, err := w.Write([]byte(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, m := range page.Meta {
		if err := renderMetaTag(w, m); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `<link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	for _, l := range page.Links {
		if err := renderLinkTag(w, l); err != nil {
			return err
		}
	}
	for _, css := range page.Styles {
		if _, err := fmt.Fprintf(w, "<style>%s</style>\n", css); err != nil {
			return err
		}
	}
	for _, s := range page.Scripts {
		if err := renderScriptTag(w, s); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("</head>\n"))
	return err
}

func renderMetaTag(w io.Writer, m MetaTag) error {
	if _, err := w.Write([]byte("<meta")); err != nil {
		return err
	}
	for _, kv := range [][2]string{
		{"charset", m.Charset},
		{"name", m.Name},
		{"property", m.Property},
		{"http-equiv", m.HTTPEquiv},
		{"content", m.Content},
	} {
		if kv[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, kv[0], escapeAttr(kv[1])); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(">\n"))
	return err
}

func renderLinkTag(w io.Writer, l LinkTag) error {
	if _, err := w.Write([]byte("<link")); err != nil {
		return err
	}
	for _, kv := range [][2]string{
		{"rel", l.Rel},
		{"href", l.Href},
		{"type", l.Type},
		{"sizes", l.Sizes},
		{"crossorigin", l.CrossOrigin},
		{"media", l.Media},
	} {
		if kv[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, kv[0], escapeAttr(kv[1])); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(">\n"))
	return err
}

func renderScriptTag(w io.Writer, s ScriptTag) error {
	if _, err := w.Write([]byte("<script")); err != nil {
		return err
	}
	typ := s.Type
	if s.Module {
		typ = "module"
	}
	if typ != "" {
		if _, err := fmt.Fprintf(w, ` type="%s"`, escapeAttr(typ)); err != nil {
			return err
		}
	}
	if s.Src != "" {
		if _, err := fmt.Fprintf(w, ` src="%s"`, escapeAttr(s.Src)); err != nil {
			return err
		}
	}
	if s.Defer {
		if _, err := w.Write([]byte(" defer")); err != nil {
			return err
		}
	}
	if s.Async {
		if _, err := w.Write([]byte(" async")); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte(">")); err != nil {
		return err
	}
	if s.Inline != "" {
		if _, err := w.Write([]byte(s.Inline)); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("</script>\n"))
	return err
}
