package tpl

import (
	"github.com/weft-dev/weft/pkg/dom"
)

// Processor decides which concrete part type serves a binding site.
// Instances consult it while binding a cloned fragment; a custom
// processor can substitute part implementations without touching the
// compiler.
type Processor interface {
	// HandleAttributeExpressions returns one part per dynamic slot in
	// the attribute. name is the author-written attribute name with any
	// sigil still attached.
	HandleAttributeExpressions(element *dom.Node, name string, strands []string, options *RenderOptions) []Part

	// HandleTextExpression returns an unattached part for a binding in
	// node position.
	HandleTextExpression(options *RenderOptions) *NodePart
}

// defaultProcessor dispatches on the attribute name's first rune:
// "." property, "@" event, "?" boolean attribute, anything else a
// plain attribute group.
type defaultProcessor struct{}

// DefaultProcessor is the processor used when a Result does not carry
// its own.
var DefaultProcessor Processor = defaultProcessor{}

func (defaultProcessor) HandleAttributeExpressions(element *dom.Node, name string, strands []string, options *RenderOptions) []Part {
	switch name[0] {
	case '.':
		return NewPropertyCommitter(element, name[1:], strands).Parts()
	case '@':
		var receiver any
		if options != nil {
			receiver = options.EventReceiver
		}
		return []Part{NewEventPart(element, name[1:], receiver)}
	case '?':
		return []Part{NewBooleanAttributePart(element, name[1:], strands)}
	}
	return NewAttributeCommitter(element, name, strands).Parts()
}

func (defaultProcessor) HandleTextExpression(options *RenderOptions) *NodePart {
	return NewNodePart(options)
}
