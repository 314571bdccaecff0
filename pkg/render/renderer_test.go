package render

import (
	"strings"
	"testing"

	"github.com/weft-dev/weft/pkg/dom"
)

func textNode(doc *dom.Document, s string) *dom.Node {
	return doc.CreateText(s)
}

func TestRenderElement(t *testing.T) {
	doc := dom.NewDocument()

	tests := []struct {
		name  string
		build func() *dom.Node
		want  string
	}{
		{
			name: "simple element",
			build: func() *dom.Node {
				div := doc.CreateElement("div")
				div.AppendChild(textNode(doc, "hello"))
				return div
			},
			want: "<div>hello</div>",
		},
		{
			name: "attributes sorted",
			build: func() *dom.Node {
				a := doc.CreateElement("a")
				a.SetAttr("title", "t")
				a.SetAttr("href", "/x")
				return a
			},
			want: `<a href="/x" title="t"></a>`,
		},
		{
			name: "empty attribute is bare",
			build: func() *dom.Node {
				input := doc.CreateElement("input")
				input.SetAttr("disabled", "")
				return input
			},
			want: "<input disabled>",
		},
		{
			name: "void element has no close tag",
			build: func() *dom.Node {
				br := doc.CreateElement("br")
				return br
			},
			want: "<br>",
		},
		{
			name: "text escaped",
			build: func() *dom.Node {
				p := doc.CreateElement("p")
				p.AppendChild(textNode(doc, `a < b & "c"`))
				return p
			},
			want: "<p>a &lt; b &amp; &quot;c&quot;</p>",
		},
		{
			name: "attribute value escaped",
			build: func() *dom.Node {
				div := doc.CreateElement("div")
				div.SetAttr("title", `say "hi" & go`)
				return div
			},
			want: `<div title="say &quot;hi&quot; &amp; go"></div>`,
		},
		{
			name: "script text unescaped",
			build: func() *dom.Node {
				s := doc.CreateElement("script")
				s.AppendChild(textNode(doc, "if (a < b && c) { run(); }"))
				return s
			},
			want: "<script>if (a < b && c) { run(); }</script>",
		},
		{
			name: "comment preserved",
			build: func() *dom.Node {
				div := doc.CreateElement("div")
				div.AppendChild(doc.CreateComment("note"))
				return div
			},
			want: "<div><!--note--></div>",
		},
		{
			name: "nested structure",
			build: func() *dom.Node {
				ul := doc.CreateElement("ul")
				for _, s := range []string{"a", "b"} {
					li := doc.CreateElement("li")
					li.AppendChild(textNode(doc, s))
					ul.AppendChild(li)
				}
				return ul
			},
			want: "<ul><li>a</li><li>b</li></ul>",
		},
	}

	r := NewRenderer(RendererConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.RenderToString(tt.build())
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripComments(t *testing.T) {
	doc := dom.NewDocument()
	div := doc.CreateElement("div")
	div.AppendChild(doc.CreateComment(""))
	div.AppendChild(textNode(doc, "content"))
	div.AppendChild(doc.CreateComment(""))

	r := NewRenderer(RendererConfig{StripComments: true})
	got, err := r.RenderToString(div)
	if err != nil {
		t.Fatal(err)
	}
	if got != "<div>content</div>" {
		t.Errorf("got %q", got)
	}
}

func TestPrettyOutput(t *testing.T) {
	doc := dom.NewDocument()
	ul := doc.CreateElement("ul")
	li := doc.CreateElement("li")
	li.AppendChild(textNode(doc, "a"))
	ul.AppendChild(li)

	r := NewRenderer(RendererConfig{Pretty: true})
	got, err := r.RenderToString(ul)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\n") {
		t.Errorf("pretty output has no newlines: %q", got)
	}
	if !strings.Contains(got, "  <li>") {
		t.Errorf("missing indented li: %q", got)
	}
}

func TestRenderFragment(t *testing.T) {
	doc := dom.NewDocument()
	frag := doc.CreateFragment()
	frag.AppendChild(textNode(doc, "a"))
	b := doc.CreateElement("b")
	b.AppendChild(textNode(doc, "c"))
	frag.AppendChild(b)

	r := NewRenderer(RendererConfig{})
	got, err := r.RenderToString(frag)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a<b>c</b>" {
		t.Errorf("got %q", got)
	}
}
