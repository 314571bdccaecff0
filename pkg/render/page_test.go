package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/weft-dev/weft/pkg/dom"
)

func renderPage(t *testing.T, page PageData) string {
	t.Helper()
	var buf bytes.Buffer
	r := NewRenderer(RendererConfig{})
	if err := r.RenderPage(&buf, page); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestRenderPageSkeleton(t *testing.T) {
	doc := dom.NewDocument()
	body := doc.CreateElement("main")
	body.AppendChild(doc.CreateText("content"))

	got := renderPage(t, PageData{Body: body, Title: "Home"})

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		`<meta charset="utf-8">`,
		`<meta name="viewport"`,
		"<title>Home</title>",
		"<main>content</main>",
		"</body>",
		"</html>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderPageTitleEscaped(t *testing.T) {
	got := renderPage(t, PageData{Title: "a < b"})
	if !strings.Contains(got, "<title>a &lt; b</title>") {
		t.Errorf("title not escaped:\n%s", got)
	}
}

func TestRenderPageLang(t *testing.T) {
	got := renderPage(t, PageData{Lang: "de"})
	if !strings.Contains(got, `<html lang="de">`) {
		t.Errorf("lang not applied:\n%s", got)
	}
}

func TestRenderPageHeadEntries(t *testing.T) {
	got := renderPage(t, PageData{
		Title:       "T",
		StyleSheets: []string{"/app.css"},
		Meta:        []MetaTag{{Name: "description", Content: "demo"}},
		Links:       []LinkTag{{Rel: "icon", Href: "/favicon.ico"}},
		Styles:      []string{"body { margin: 0 }"},
		Scripts:     []ScriptTag{{Src: "/app.js", Defer: true}},
	})

	for _, want := range []string{
		`<link rel="stylesheet" href="/app.css">`,
		`<meta name="description" content="demo">`,
		`<link rel="icon" href="/favicon.ico">`,
		"<style>body { margin: 0 }</style>",
		`<script src="/app.js" defer></script>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderPageModuleScript(t *testing.T) {
	got := renderPage(t, PageData{
		Scripts: []ScriptTag{{Src: "/m.js", Module: true}},
	})
	if !strings.Contains(got, `<script type="module" src="/m.js"></script>`) {
		t.Errorf("module script wrong:\n%s", got)
	}
}

func TestRenderPageInlineScript(t *testing.T) {
	got := renderPage(t, PageData{
		Scripts: []ScriptTag{{Inline: "console.log(1 < 2)"}},
	})
	if !strings.Contains(got, "<script>console.log(1 < 2)</script>") {
		t.Errorf("inline script wrong:\n%s", got)
	}
}
