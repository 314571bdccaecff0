package tpl

import (
	"testing"

	"github.com/weft-dev/weft/pkg/dom"
)

var boolStrands = Statics(`<button ?disabled="{{}}">go</button>`)

func TestBooleanAttributeToggle(t *testing.T) {
	e, container := newTestTarget()
	e.Render(HTML(boolStrands, true), container, nil)

	btn := firstElem(container, "button")
	if !btn.HasAttr("disabled") {
		t.Error("attribute not set for truthy value")
	}

	e.Render(HTML(boolStrands, false), container, nil)
	if btn.HasAttr("disabled") {
		t.Error("attribute not removed for falsy value")
	}

	e.Render(HTML(boolStrands, ""), container, nil)
	if btn.HasAttr("disabled") {
		t.Error("empty string should stay falsy")
	}

	e.Render(HTML(boolStrands, "yes"), container, nil)
	if v, ok := btn.Attr("disabled"); !ok || v != "" {
		t.Errorf("attr = %q, %v; want empty present", v, ok)
	}
}

var propStrands = Statics(`<input .data="{{}}">`)

func TestPropertyBindingKeepsType(t *testing.T) {
	e, container := newTestTarget()
	payload := map[string]int{"n": 7}
	e.Render(HTML(propStrands, payload), container, nil)

	input := firstElem(container, "input")
	got, ok := input.Prop("data")
	if !ok {
		t.Fatal("property not set")
	}
	if m, ok := got.(map[string]int); !ok || m["n"] != 7 {
		t.Errorf("Prop = %#v", got)
	}
	if input.HasAttr("data") {
		t.Error("property binding leaked into attributes")
	}
}

func TestPropertyCompositeCoerces(t *testing.T) {
	e, container := newTestTarget()
	strands := Statics(`<input .data="n={{}}">`)
	e.Render(HTML(strands, 7), container, nil)

	got, _ := firstElem(container, "input").Prop("data")
	if got != "n=7" {
		t.Errorf("Prop = %#v, want %q", got, "n=7")
	}
}

var clickStrands = Statics(`<button @click="{{}}">go</button>`)

func TestEventListenerLifecycle(t *testing.T) {
	e, container := newTestTarget()

	var calls []string
	first := func(ev *dom.Event) { calls = append(calls, "first") }
	second := func(ev *dom.Event) { calls = append(calls, "second") }

	e.Render(HTML(clickStrands, first), container, nil)
	btn := firstElem(container, "button")
	if btn.ListenerCount("click") != 1 {
		t.Fatalf("ListenerCount = %d", btn.ListenerCount("click"))
	}

	btn.Dispatch("click", nil)

	// Swapping the handler must not stack listeners.
	e.Render(HTML(clickStrands, second), container, nil)
	if btn.ListenerCount("click") != 1 {
		t.Errorf("ListenerCount after swap = %d", btn.ListenerCount("click"))
	}
	btn.Dispatch("click", nil)

	e.Render(HTML(clickStrands, nil), container, nil)
	if btn.ListenerCount("click") != 0 {
		t.Errorf("ListenerCount after nil = %d", btn.ListenerCount("click"))
	}
	btn.Dispatch("click", nil)

	want := []string{"first", "second"}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestEventReceiverForwarded(t *testing.T) {
	e, container := newTestTarget()

	type app struct{ hits int }
	state := &app{}

	handler := func(receiver any, ev *dom.Event) {
		receiver.(*app).hits++
	}
	e.Render(HTML(clickStrands, handler), container, &RenderOptions{
		EventReceiver: state,
	})

	firstElem(container, "button").Dispatch("click", nil)
	if state.hits != 1 {
		t.Errorf("hits = %d, want 1", state.hits)
	}
}

func TestEventListenerSpecOptions(t *testing.T) {
	e, container := newTestTarget()

	fn := func(ev *dom.Event) {}
	e.Render(HTML(clickStrands, ListenerSpec{Func: fn}), container, nil)
	btn := firstElem(container, "button")

	// Changed options force a remove and re-add, never a stack.
	e.Render(HTML(clickStrands, ListenerSpec{Func: fn, Capture: true}), container, nil)
	if btn.ListenerCount("click") != 1 {
		t.Errorf("ListenerCount = %d", btn.ListenerCount("click"))
	}
}

func TestEventBadValuePanics(t *testing.T) {
	e, container := newTestTarget()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-callable event value")
		}
	}()
	e.Render(HTML(clickStrands, 42), container, nil)
}

func TestAttributeGroupSingleWrite(t *testing.T) {
	e, container := newTestTarget()
	strands := Statics(`<div title="{{}}-{{}}">x</div>`)
	e.Render(HTML(strands, "a", "b"), container, nil)

	div := firstElem(container, "div")
	if v, _ := div.Attr("title"); v != "a-b" {
		t.Errorf("title = %q", v)
	}

	// One changed slot rewrites the whole group.
	e.Render(HTML(strands, "a", "c"), container, nil)
	if v, _ := div.Attr("title"); v != "a-c" {
		t.Errorf("title = %q", v)
	}
}

func TestAttributeIterableValueJoined(t *testing.T) {
	e, container := newTestTarget()
	strands := Statics(`<div class="{{}}">x</div>`)
	e.Render(HTML(strands, []string{"a", "b"}), container, nil)

	if v, _ := firstElem(container, "div").Attr("class"); v != "ab" {
		t.Errorf("class = %q", v)
	}
}
