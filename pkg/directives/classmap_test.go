package directives

import (
	"testing"

	"github.com/weft-dev/weft/pkg/dom"
	"github.com/weft-dev/weft/pkg/tpl"
)

var classStrands = tpl.Statics(`<div class="base {{}}">x</div>`)

func renderClasses(e *tpl.Engine, container *dom.Node, m map[string]bool) {
	e.Render(tpl.HTML(classStrands, ClassMap(m)), container, nil)
}

func classAttr(t *testing.T, container *dom.Node) string {
	t.Helper()
	v, _ := elems(container, "div")[0].Attr("class")
	return v
}

func TestClassMapKeepsStatics(t *testing.T) {
	e, container := listTarget()
	renderClasses(e, container, map[string]bool{"on": true, "off": false})

	if got := classAttr(t, container); got != "base on" {
		t.Errorf("class = %q", got)
	}
}

func TestClassMapRemovesOnlyManaged(t *testing.T) {
	e, container := listTarget()
	renderClasses(e, container, map[string]bool{"a": true, "b": true})
	renderClasses(e, container, map[string]bool{"b": true})

	if got := classAttr(t, container); got != "base b" {
		t.Errorf("class = %q", got)
	}

	// Statics survive a full wipe of the map.
	renderClasses(e, container, nil)
	if got := classAttr(t, container); got != "base" {
		t.Errorf("class = %q", got)
	}
}

func TestClassMapAddedNamesSorted(t *testing.T) {
	e, container := listTarget()
	renderClasses(e, container, map[string]bool{"zebra": true, "apple": true, "mid": true})

	if got := classAttr(t, container); got != "base apple mid zebra" {
		t.Errorf("class = %q", got)
	}
}

func TestClassMapWrongPositionPanics(t *testing.T) {
	e, container := listTarget()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-class attribute")
		}
	}()
	strands := tpl.Statics(`<div title="{{}}">x</div>`)
	e.Render(tpl.HTML(strands, ClassMap(map[string]bool{"a": true})), container, nil)
}

func TestClassMapNodePositionPanics(t *testing.T) {
	e, container := listTarget()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for node position")
		}
	}()
	strands := tpl.Statics(`<div>{{}}</div>`)
	e.Render(tpl.HTML(strands, ClassMap(map[string]bool{"a": true})), container, nil)
}

var styleStrands = tpl.Statics(`<div style="color: red; {{}}">x</div>`)

func renderStyles(e *tpl.Engine, container *dom.Node, m map[string]string) {
	e.Render(tpl.HTML(styleStrands, StyleMap(m)), container, nil)
}

func styleAttr(t *testing.T, container *dom.Node) string {
	t.Helper()
	v, _ := elems(container, "div")[0].Attr("style")
	return v
}

func TestStyleMapMergesWithStatics(t *testing.T) {
	e, container := listTarget()
	renderStyles(e, container, map[string]string{"margin": "4px"})

	if got := styleAttr(t, container); got != "color: red; margin: 4px" {
		t.Errorf("style = %q", got)
	}
}

func TestStyleMapUpdatesAndRemoves(t *testing.T) {
	e, container := listTarget()
	renderStyles(e, container, map[string]string{"margin": "4px", "padding": "1px"})
	renderStyles(e, container, map[string]string{"margin": "8px"})

	if got := styleAttr(t, container); got != "color: red; margin: 8px" {
		t.Errorf("style = %q", got)
	}

	// A managed key may override a static declaration; removal then
	// drops the declaration entirely.
	renderStyles(e, container, map[string]string{"color": "blue"})
	if got := styleAttr(t, container); got != "color: blue" {
		t.Errorf("style = %q", got)
	}
}

func TestStyleMapWrongPositionPanics(t *testing.T) {
	e, container := listTarget()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-style attribute")
		}
	}()
	strands := tpl.Statics(`<div class="{{}}">x</div>`)
	e.Render(tpl.HTML(strands, StyleMap(map[string]string{"a": "b"})), container, nil)
}
