package dom

// ListenerOptions mirrors the addEventListener options triple. Passive is
// carried so parts can compare option identity; it has no behavioral
// effect in an in-memory tree.
type ListenerOptions struct {
	Capture bool
	Once    bool
	Passive bool
}

// Event is a dispatched event. Data carries arbitrary payload.
type Event struct {
	Type    string
	Target  *Node
	Current *Node
	Data    any

	stopped bool
}

// StopPropagation prevents the event from reaching further nodes.
func (e *Event) StopPropagation() { e.stopped = true }

// Listener is an event callback.
type Listener func(*Event)

type listenerEntry struct {
	fn   Listener
	opts ListenerOptions
}

// ListenerHandle identifies a registered listener for later removal.
// Function values are not comparable in Go, so registration returns a
// handle instead of matching on the callback.
type ListenerHandle struct {
	node  *Node
	typ   string
	entry *listenerEntry
}

// AddEventListener registers a listener for the given event type and
// returns a handle for removal.
func (n *Node) AddEventListener(typ string, fn Listener, opts ListenerOptions) *ListenerHandle {
	if n.listeners == nil {
		n.listeners = make(map[string][]*listenerEntry)
	}
	entry := &listenerEntry{fn: fn, opts: opts}
	n.listeners[typ] = append(n.listeners[typ], entry)
	return &ListenerHandle{node: n, typ: typ, entry: entry}
}

// RemoveEventListener removes a previously registered listener.
// Unknown handles are a no-op.
func (n *Node) RemoveEventListener(h *ListenerHandle) {
	if h == nil || h.node != n {
		return
	}
	entries := n.listeners[h.typ]
	for i, e := range entries {
		if e == h.entry {
			n.listeners[h.typ] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of listeners for the event type.
func (n *Node) ListenerCount(typ string) int {
	return len(n.listeners[typ])
}

// Dispatch fires an event at n: capture listeners run root-to-target,
// then bubbling listeners run target-to-root. Once listeners are removed
// after their first invocation.
func (n *Node) Dispatch(typ string, data any) *Event {
	ev := &Event{Type: typ, Target: n, Data: data}

	var path []*Node
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}

	// Capture phase, outermost first.
	for i := len(path) - 1; i >= 0 && !ev.stopped; i-- {
		path[i].invoke(ev, true)
	}
	// Bubble phase, target first.
	for i := 0; i < len(path) && !ev.stopped; i++ {
		path[i].invoke(ev, false)
	}
	return ev
}

func (n *Node) invoke(ev *Event, capture bool) {
	entries := n.listeners[ev.Type]
	if len(entries) == 0 {
		return
	}
	// Snapshot so listeners may remove themselves safely.
	snapshot := make([]*listenerEntry, len(entries))
	copy(snapshot, entries)
	for _, e := range snapshot {
		if e.opts.Capture != capture {
			continue
		}
		if e.opts.Once {
			n.RemoveEventListener(&ListenerHandle{node: n, typ: ev.Type, entry: e})
		}
		ev.Current = n
		e.fn(ev)
		if ev.stopped {
			return
		}
	}
}
