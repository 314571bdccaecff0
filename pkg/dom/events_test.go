package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDispatchCaptureThenBubble(t *testing.T) {
	d := NewDocument()
	root := d.CreateElement("div")
	mid := root.AppendChild(d.CreateElement("section"))
	leaf := mid.AppendChild(d.CreateElement("button"))

	var order []string
	log := func(name string) Listener {
		return func(*Event) { order = append(order, name) }
	}

	root.AddEventListener("click", log("root-capture"), ListenerOptions{Capture: true})
	root.AddEventListener("click", log("root-bubble"), ListenerOptions{})
	mid.AddEventListener("click", log("mid-bubble"), ListenerOptions{})
	leaf.AddEventListener("click", log("leaf"), ListenerOptions{})

	leaf.Dispatch("click", nil)

	want := []string{"root-capture", "leaf", "mid-bubble", "root-bubble"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("dispatch order mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatchTargetAndCurrent(t *testing.T) {
	d := NewDocument()
	parent := d.CreateElement("div")
	child := parent.AppendChild(d.CreateElement("button"))

	parent.AddEventListener("click", func(ev *Event) {
		if ev.Target != child {
			t.Error("Target should be the dispatching node")
		}
		if ev.Current != parent {
			t.Error("Current should be the listening node")
		}
	}, ListenerOptions{})

	ev := child.Dispatch("click", "payload")
	if ev.Data != "payload" {
		t.Errorf("Data = %v", ev.Data)
	}
}

func TestOnceListenerRemovedAfterFirstDispatch(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("button")

	calls := 0
	el.AddEventListener("click", func(*Event) { calls++ }, ListenerOptions{Once: true})

	el.Dispatch("click", nil)
	el.Dispatch("click", nil)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if el.ListenerCount("click") != 0 {
		t.Error("once listener still registered")
	}
}

func TestStopPropagation(t *testing.T) {
	d := NewDocument()
	parent := d.CreateElement("div")
	child := parent.AppendChild(d.CreateElement("button"))

	parentCalled := false
	child.AddEventListener("click", func(ev *Event) { ev.StopPropagation() }, ListenerOptions{})
	parent.AddEventListener("click", func(*Event) { parentCalled = true }, ListenerOptions{})

	child.Dispatch("click", nil)

	if parentCalled {
		t.Error("propagation not stopped")
	}
}

func TestRemoveEventListenerByHandle(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("button")

	calls := 0
	h := el.AddEventListener("click", func(*Event) { calls++ }, ListenerOptions{})
	el.AddEventListener("click", func(*Event) { calls++ }, ListenerOptions{})

	el.RemoveEventListener(h)
	el.Dispatch("click", nil)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if el.ListenerCount("click") != 1 {
		t.Errorf("ListenerCount = %d, want 1", el.ListenerCount("click"))
	}

	// Removing twice is a no-op.
	el.RemoveEventListener(h)
	if el.ListenerCount("click") != 1 {
		t.Error("double removal changed listener set")
	}
}
