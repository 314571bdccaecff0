// Package render serializes dom trees to HTML.
//
// It handles all aspects of producing valid, secure output:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Raw-text elements (script, style)
//   - Full page rendering with DOCTYPE, head, body
//
// # Basic Usage
//
// To render a node tree to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To stream HTML to a writer:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	err := renderer.RenderToWriter(w, node)
//
// # Full Page Rendering
//
// To render a complete HTML document:
//
//	page := render.PageData{
//	    Body:  bodyNode,
//	    Title: "My Page",
//	}
//	err := renderer.RenderPage(w, page)
//
// # Security
//
// All text content is escaped by default. Content inside script and
// style elements is emitted verbatim, so only put trusted strings there.
package render
