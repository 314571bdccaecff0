package directives

import (
	"testing"

	"github.com/weft-dev/weft/pkg/tpl"
)

var textStrands = tpl.Statics(`<p>{{}}</p>`)

func TestGuardSkipsUnchangedValue(t *testing.T) {
	e, container := listTarget()

	evals := 0
	render := func(v any) {
		e.Render(tpl.HTML(textStrands, Guard(v, func() any {
			evals++
			return v
		})), container, nil)
	}

	render("a")
	render("a")
	if evals != 1 {
		t.Errorf("evals = %d, want 1", evals)
	}

	render("b")
	if evals != 2 {
		t.Errorf("evals = %d, want 2", evals)
	}
	if got := textContent(elems(container, "p")[0]); got != "b" {
		t.Errorf("content = %q", got)
	}
}

func TestGuardComparesSliceElements(t *testing.T) {
	e, container := listTarget()

	evals := 0
	render := func(v []int) {
		e.Render(tpl.HTML(textStrands, Guard(v, func() any {
			evals++
			return "rendered"
		})), container, nil)
	}

	// Distinct slice headers with equal elements do not re-render.
	render([]int{1, 2})
	render([]int{1, 2})
	if evals != 1 {
		t.Errorf("evals = %d, want 1", evals)
	}

	render([]int{1, 3})
	render([]int{1, 3, 4})
	if evals != 3 {
		t.Errorf("evals = %d, want 3", evals)
	}
}

func TestIfDefinedRemovesAttribute(t *testing.T) {
	e, container := listTarget()
	strands := tpl.Statics(`<a title="{{}}">x</a>`)

	render := func(v any) {
		e.Render(tpl.HTML(strands, IfDefined(v)), container, nil)
	}

	render("hint")
	a := elems(container, "a")[0]
	if v, _ := a.Attr("title"); v != "hint" {
		t.Errorf("title = %q", v)
	}

	render(nil)
	if a.HasAttr("title") {
		t.Error("attribute not removed for nil")
	}

	render("back")
	if v, _ := a.Attr("title"); v != "back" {
		t.Errorf("title = %q", v)
	}
}

func TestIfDefinedNodePositionCommitsEmpty(t *testing.T) {
	e, container := listTarget()

	e.Render(tpl.HTML(textStrands, IfDefined("x")), container, nil)
	e.Render(tpl.HTML(textStrands, IfDefined(nil)), container, nil)

	p := elems(container, "p")[0]
	if got := textContent(p); got != "" {
		t.Errorf("content = %q", got)
	}
}
