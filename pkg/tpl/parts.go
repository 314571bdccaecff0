package tpl

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/weft-dev/weft/internal/errors"
	"github.com/weft-dev/weft/pkg/dom"
)

// noChangeType is the sentinel a directive assigns to suppress the DOM
// write for the current commit cycle.
type noChangeType struct{}

// NoChange indicates a binding value has not changed and the pending
// commit should be skipped entirely.
var NoChange any = noChangeType{}

// nothingType is the sentinel that clears a node range.
type nothingType struct{}

// Nothing renders no content. Committing it clears the part's range;
// committing it again is a no-op.
var Nothing any = nothingType{}

// Part is a live binding between one dynamic value slot and a DOM
// location. SetValue is cheap and may be called repeatedly before a
// Commit; Commit performs the actual DOM write.
type Part interface {
	SetValue(value any)
	Commit()
}

// partState carries per-part directive state (previous keys, class sets,
// guard values). Ownership is 1:1 with the part, so the state lives on
// the part itself rather than in a side table.
type partState struct {
	directiveState any
}

// DirectiveState returns state a directive stashed on this part.
func (s *partState) DirectiveState() any { return s.directiveState }

// SetDirectiveState stores directive state on this part.
func (s *partState) SetDirectiveState(v any) { s.directiveState = v }

// StatefulPart is implemented by every concrete part type; directives use
// it to keep state across commits.
type StatefulPart interface {
	Part
	DirectiveState() any
	SetDirectiveState(v any)
}

// isPrimitive reports whether v commits as text by simple comparison:
// nil, strings, booleans, and numbers.
func isPrimitive(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	}
	return false
}

// coerceString is the permissive fallback stringification for values the
// engine has no dedicated handling for.
func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// truthy reports the boolean interpretation of a value for ?attr
// bindings: nil, false, empty string, and numeric zero are false.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}
	return true
}

// toIterable normalizes slice and array values to []any. Strings and
// byte slices are not iterables here; they commit as text.
func toIterable(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case []Result:
		out := make([]any, len(val))
		for i, r := range val {
			out[i] = r
		}
		return out, true
	case string, []byte, nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// ============================================================
// Attribute parts
// ============================================================

// AttributeCommitter owns all sibling attribute parts that interpolate
// into a single attribute string. It writes the attribute at most once
// per commit cycle regardless of how many of its parts changed.
type AttributeCommitter struct {
	element *dom.Node
	name    string
	strands []string
	dirty   bool
	parts   []Part
}

// NewAttributeCommitter creates a committer and one AttributePart per
// dynamic slot in the attribute value.
func NewAttributeCommitter(element *dom.Node, name string, strands []string) *AttributeCommitter {
	c := &AttributeCommitter{element: element, name: name, strands: strands, dirty: true}
	for i := 0; i < len(strands)-1; i++ {
		c.parts = append(c.parts, &AttributePart{committer: c})
	}
	return c
}

// Parts returns the committer's parts in slot order.
func (c *AttributeCommitter) Parts() []Part { return c.parts }

// Element returns the element the attribute lives on.
func (c *AttributeCommitter) Element() *dom.Node { return c.element }

// Name returns the attribute name.
func (c *AttributeCommitter) Name() string { return c.name }

// Strands returns the static segments around the attribute's slots.
func (c *AttributeCommitter) Strands() []string { return c.strands }

func (c *AttributeCommitter) markDirty() { c.dirty = true }

func (c *AttributeCommitter) interpolate() string {
	last := len(c.strands) - 1
	var b strings.Builder
	for i := 0; i < last; i++ {
		b.WriteString(c.strands[i])
		part, ok := c.parts[i].(*AttributePart)
		if !ok {
			continue
		}
		v := part.value
		if items, iterable := toIterable(v); iterable && !isPrimitive(v) {
			for _, item := range items {
				b.WriteString(coerceString(item))
			}
		} else {
			b.WriteString(coerceString(v))
		}
	}
	b.WriteString(c.strands[last])
	return b.String()
}

// Commit writes the interpolated attribute value if any part changed.
func (c *AttributeCommitter) Commit() {
	if c.dirty {
		c.dirty = false
		c.element.SetAttr(c.name, c.interpolate())
	}
}

// AttributePart holds the last-seen value for one slot inside an
// attribute group.
type AttributePart struct {
	committer interface {
		markDirty()
		Commit()
	}
	value any
	partState
}

// Committer returns the owning attribute group.
func (p *AttributePart) Committer() *AttributeCommitter {
	c, _ := p.committer.(*AttributeCommitter)
	return c
}

// SetValue stores the pending value. Setting an unchanged primitive does
// not mark the group dirty, so an identical commit writes nothing.
func (p *AttributePart) SetValue(value any) {
	if value == NoChange {
		return
	}
	if isPrimitive(value) && value == p.value {
		return
	}
	p.value = value
	if _, isDir := value.(Directive); !isDir {
		p.committer.markDirty()
	}
}

// Value returns the part's current value.
func (p *AttributePart) Value() any { return p.value }

// Commit resolves directives and asks the owning group to write.
func (p *AttributePart) Commit() {
	for {
		d, ok := p.value.(Directive)
		if !ok {
			break
		}
		p.value = NoChange
		d(p)
	}
	if p.value == NoChange {
		return
	}
	p.committer.Commit()
}

// ============================================================
// Property parts
// ============================================================

// PropertyCommitter writes to an object property instead of the
// attribute string. When the binding is the attribute's sole content the
// raw value is passed through without string coercion.
type PropertyCommitter struct {
	AttributeCommitter
	single bool
}

// NewPropertyCommitter creates a property committer with one
// PropertyPart per slot.
func NewPropertyCommitter(element *dom.Node, name string, strands []string) *PropertyCommitter {
	c := &PropertyCommitter{
		AttributeCommitter: AttributeCommitter{element: element, name: name, strands: strands, dirty: true},
	}
	c.single = len(strands) == 2 && strands[0] == "" && strands[1] == ""
	for i := 0; i < len(strands)-1; i++ {
		c.parts = append(c.parts, &PropertyPart{AttributePart{committer: c}})
	}
	return c
}

func (c *PropertyCommitter) value() any {
	if c.single {
		if part, ok := c.parts[0].(*PropertyPart); ok {
			return part.AttributePart.value
		}
	}
	return c.interpolate()
}

// Commit writes the property if any part changed.
func (c *PropertyCommitter) Commit() {
	if c.dirty {
		c.dirty = false
		c.element.SetProp(c.name, c.value())
	}
}

// PropertyPart is an AttributePart owned by a PropertyCommitter.
type PropertyPart struct {
	AttributePart
}

// ============================================================
// Boolean attribute parts
// ============================================================

// BooleanAttributePart toggles attribute presence: a truthy value sets
// the attribute to the empty string, a falsy value removes it. The
// binding must be the attribute's sole content.
type BooleanAttributePart struct {
	element *dom.Node
	name    string
	value   bool
	set     bool
	pending any
	partState
}

// NewBooleanAttributePart validates the sole-content rule and creates the
// part. Violations are template-authoring bugs and panic.
func NewBooleanAttributePart(element *dom.Node, name string, strands []string) *BooleanAttributePart {
	if len(strands) != 2 || strands[0] != "" || strands[1] != "" {
		panic(errors.New("E001").
			WithSuggestion("Bind ?" + name + " as the attribute's entire value"))
	}
	return &BooleanAttributePart{element: element, name: name, pending: NoChange}
}

// SetValue stores the pending value.
func (p *BooleanAttributePart) SetValue(value any) { p.pending = value }

// Commit toggles the attribute when the boolean interpretation changed.
func (p *BooleanAttributePart) Commit() {
	for {
		d, ok := p.pending.(Directive)
		if !ok {
			break
		}
		p.pending = NoChange
		d(p)
	}
	if p.pending == NoChange {
		return
	}
	value := truthy(p.pending)
	if !p.set || p.value != value {
		if value {
			p.element.SetAttr(p.name, "")
		} else {
			p.element.RemoveAttr(p.name)
		}
		p.value = value
		p.set = true
	}
	p.pending = NoChange
}

// ============================================================
// Event parts
// ============================================================

// EventHandler is the handler-object form of an event listener.
type EventHandler interface {
	HandleEvent(*dom.Event)
}

// ListenerSpec pairs a handler with listener options. Use it when a
// binding needs capture, once, or passive behavior.
type ListenerSpec struct {
	Func    func(*dom.Event)
	Handler EventHandler
	Capture bool
	Once    bool
	Passive bool
}

// EventPart installs one event listener and swaps the forwarded handler
// on commit. The listener is removed and reinstalled only when the
// effective (capture, once, passive) options actually change.
type EventPart struct {
	element   *dom.Node
	eventName string
	receiver  any
	value     any
	pending   any
	handle    *dom.ListenerHandle
	opts      dom.ListenerOptions
	partState
}

// NewEventPart creates an event part for `@event` bindings. receiver is
// forwarded to handlers of the form func(receiver any, e *dom.Event).
func NewEventPart(element *dom.Node, eventName string, receiver any) *EventPart {
	return &EventPart{element: element, eventName: eventName, receiver: receiver, pending: NoChange}
}

// SetValue stores the pending listener.
func (p *EventPart) SetValue(value any) { p.pending = value }

// Commit reconciles the installed listener with the pending one.
func (p *EventPart) Commit() {
	for {
		d, ok := p.pending.(Directive)
		if !ok {
			break
		}
		p.pending = NoChange
		d(p)
	}
	if p.pending == NoChange {
		return
	}
	newListener := p.pending
	if newListener != nil {
		validateListener(p.eventName, newListener)
	}
	oldListener := p.value

	newOpts := listenerOptions(newListener)
	shouldRemove := newListener == nil ||
		(oldListener != nil && newOpts != p.opts)
	shouldAdd := newListener != nil && (oldListener == nil || shouldRemove)

	if shouldRemove && p.handle != nil {
		p.element.RemoveEventListener(p.handle)
		p.handle = nil
	}
	if shouldAdd {
		p.opts = newOpts
		p.handle = p.element.AddEventListener(p.eventName, p.handleEvent, p.opts)
	}
	p.value = newListener
	p.pending = NoChange
}

func (p *EventPart) handleEvent(ev *dom.Event) {
	switch h := p.value.(type) {
	case func(*dom.Event):
		h(ev)
	case func(any, *dom.Event):
		h(p.receiver, ev)
	case EventHandler:
		h.HandleEvent(ev)
	case ListenerSpec:
		if h.Func != nil {
			h.Func(ev)
		} else if h.Handler != nil {
			h.Handler.HandleEvent(ev)
		}
	case *ListenerSpec:
		if h.Func != nil {
			h.Func(ev)
		} else if h.Handler != nil {
			h.Handler.HandleEvent(ev)
		}
	}
}

func listenerOptions(v any) dom.ListenerOptions {
	switch spec := v.(type) {
	case ListenerSpec:
		return dom.ListenerOptions{Capture: spec.Capture, Once: spec.Once, Passive: spec.Passive}
	case *ListenerSpec:
		return dom.ListenerOptions{Capture: spec.Capture, Once: spec.Once, Passive: spec.Passive}
	}
	return dom.ListenerOptions{}
}

func validateListener(eventName string, v any) {
	switch v.(type) {
	case func(*dom.Event), func(any, *dom.Event), EventHandler, ListenerSpec, *ListenerSpec:
	default:
		panic(errors.New("E005").
			WithDetail(fmt.Sprintf("@%s received a %T", eventName, v)))
	}
}

// ============================================================
// Node parts
// ============================================================

// NodePart owns the mutable node range between its start and end marker.
// The range's content is one of: empty, primitive text, a single owned
// node, a nested template instance, or an ordered list of child parts.
type NodePart struct {
	options   *RenderOptions
	startNode *dom.Node
	endNode   *dom.Node
	value     any
	pending   any
	partState
}

// NewNodePart creates a part that is not yet attached anywhere. Call one
// of AppendInto, InsertAfterNode, AppendIntoPart, or InsertAfterPart
// before committing.
func NewNodePart(options *RenderOptions) *NodePart {
	return &NodePart{options: options, pending: NoChange}
}

// StartNode returns the range's start marker.
func (p *NodePart) StartNode() *dom.Node { return p.startNode }

// EndNode returns the range's end marker.
func (p *NodePart) EndNode() *dom.Node { return p.endNode }

// Options returns the render options the part was created with.
func (p *NodePart) Options() *RenderOptions { return p.options }

// AppendInto appends the part's markers at the end of container.
func (p *NodePart) AppendInto(container *dom.Node) {
	d := container.Document()
	p.startNode = container.AppendChild(createMarker(d))
	p.endNode = container.AppendChild(createMarker(d))
}

// InsertAfterNode positions the part between ref and ref's next sibling.
func (p *NodePart) InsertAfterNode(ref *dom.Node) {
	p.startNode = ref
	p.endNode = ref.NextSibling()
}

// AppendIntoPart appends this part inside another part's range.
func (p *NodePart) AppendIntoPart(ref *NodePart) {
	d := ref.startNode.Document()
	p.startNode = createMarker(d)
	ref.insert(p.startNode)
	p.endNode = createMarker(d)
	ref.insert(p.endNode)
}

// InsertAfterPart positions this part directly after ref. The two parts
// share a boundary marker.
func (p *NodePart) InsertAfterPart(ref *NodePart) {
	d := ref.endNode.Document()
	p.startNode = createMarker(d)
	ref.insert(p.startNode)
	p.endNode = ref.endNode
	ref.endNode = p.startNode
}

// SetValue stores the pending value.
func (p *NodePart) SetValue(value any) { p.pending = value }

// Value returns the committed state: nil, a primitive, a *dom.Node, a
// *Instance, a []*NodePart, or the Nothing sentinel.
func (p *NodePart) Value() any { return p.value }

// Commit resolves directives and writes the pending value into the
// range. The value's kind is inspected once; unknown kinds fall back to
// text stringification.
func (p *NodePart) Commit() {
	if p.startNode.Parent() == nil {
		return
	}
	for {
		d, ok := p.pending.(Directive)
		if !ok {
			break
		}
		p.pending = NoChange
		d(p)
	}
	value := p.pending
	if value == NoChange {
		return
	}

	switch {
	case isPrimitive(value):
		if value != p.value {
			p.commitText(value)
		}
	case isResult(value):
		p.commitResult(value.(Result))
	case isNode(value):
		p.commitNode(value.(*dom.Node))
	case value == Nothing:
		p.value = Nothing
		p.Clear()
	default:
		if items, ok := toIterable(value); ok {
			p.commitIterable(items)
		} else {
			p.commitText(value)
		}
	}
}

func isResult(v any) bool {
	_, ok := v.(Result)
	return ok
}

func isNode(v any) bool {
	_, ok := v.(*dom.Node)
	return ok
}

func (p *NodePart) insert(node *dom.Node) {
	p.endNode.Parent().InsertBefore(node, p.endNode)
}

func (p *NodePart) commitNode(node *dom.Node) {
	if prev, ok := p.value.(*dom.Node); ok && prev == node {
		return
	}
	p.Clear()
	p.insert(node)
	p.value = node
}

func (p *NodePart) commitText(value any) {
	text := coerceString(value)
	node := p.startNode.NextSibling()
	// Reuse the existing single text node when topology permits.
	if node != nil && node == p.endNode.PrevSibling() && node.Kind() == dom.KindText {
		node.Data = text
	} else {
		p.commitNode(p.startNode.Document().CreateText(text))
	}
	p.value = value
}

func (p *NodePart) commitResult(res Result) {
	template := p.options.TemplateFactory(res)
	if inst, ok := p.value.(*Instance); ok && inst.template == template {
		inst.Update(res.Values)
		return
	}
	inst := NewInstance(template, res.Processor, p.options)
	frag := inst.clone()
	inst.Update(res.Values)
	p.commitNode(frag)
	p.value = inst
}

func (p *NodePart) commitIterable(items []any) {
	// Reuse child parts from the previous render where possible; new
	// parts are appended, excess parts are dropped with their DOM.
	parts, wasList := p.value.([]*NodePart)
	if !wasList {
		parts = nil
		p.value = parts
		p.Clear()
	}

	var itemPart *NodePart
	i := 0
	for _, item := range items {
		if i < len(parts) {
			itemPart = parts[i]
		} else {
			itemPart = NewNodePart(p.options)
			if i == 0 {
				itemPart.AppendIntoPart(p)
			} else {
				itemPart.InsertAfterPart(parts[i-1])
			}
			parts = append(parts, itemPart)
		}
		itemPart.SetValue(item)
		itemPart.Commit()
		i++
	}
	if i < len(parts) {
		parts = parts[:i]
		if itemPart != nil {
			p.clearFrom(itemPart.endNode)
		} else {
			p.Clear()
		}
	}
	p.value = parts
}

// Clear empties the part's range.
func (p *NodePart) Clear() { p.clearFrom(p.startNode) }

// clearFrom removes the nodes strictly between start and the end marker.
func (p *NodePart) clearFrom(start *dom.Node) {
	dom.RemoveRange(p.startNode.Parent(), start.NextSibling(), p.endNode)
}
