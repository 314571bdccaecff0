package dom

import (
	"testing"
)

func TestParseFragmentBasic(t *testing.T) {
	d := NewDocument()
	frag, err := ParseFragment(d, `<p class="x">hello <b>world</b></p>`)
	if err != nil {
		t.Fatal(err)
	}

	p := frag.FirstChild()
	if p == nil || p.Kind() != KindElement || p.Tag != "p" {
		t.Fatalf("first child = %+v, want <p>", p)
	}
	if v, _ := p.Attr("class"); v != "x" {
		t.Errorf("class = %q", v)
	}
	if p.FirstChild().Data != "hello " {
		t.Errorf("text = %q", p.FirstChild().Data)
	}
	b := p.LastChild()
	if b.Tag != "b" || b.FirstChild().Data != "world" {
		t.Errorf("nested element wrong: %+v", b)
	}
}

func TestParseFragmentKeepsComments(t *testing.T) {
	d := NewDocument()
	frag, err := ParseFragment(d, `<!--note--><span></span>`)
	if err != nil {
		t.Fatal(err)
	}

	c := frag.FirstChild()
	if c.Kind() != KindComment || c.Data != "note" {
		t.Errorf("comment not preserved: %+v", c)
	}
}

func TestParseFragmentLowercasesAttrNames(t *testing.T) {
	d := NewDocument()
	frag, err := ParseFragment(d, `<div DATA-X="1"></div>`)
	if err != nil {
		t.Fatal(err)
	}

	div := frag.FirstChild()
	if !div.HasAttr("data-x") {
		t.Errorf("attrs = %v, want data-x", div.AttrNames())
	}
}

func TestParseFragmentMultipleRoots(t *testing.T) {
	d := NewDocument()
	frag, err := ParseFragment(d, `<li>a</li><li>b</li>`)
	if err != nil {
		t.Fatal(err)
	}

	if n := len(frag.ChildNodes()); n != 2 {
		t.Errorf("root count = %d, want 2", n)
	}
}
