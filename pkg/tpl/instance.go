package tpl

import (
	"github.com/weft-dev/weft/pkg/dom"
)

// Instance is one live copy of a compiled Template: a cloned fragment
// plus the bound parts that update it. The fragment is handed to the
// caller on clone; the instance keeps only the parts.
type Instance struct {
	template  *Template
	processor Processor
	options   *RenderOptions
	parts     []Part
}

// NewInstance prepares an instance of template. Call clone once to
// produce the live fragment, then Update for each render.
func NewInstance(template *Template, processor Processor, options *RenderOptions) *Instance {
	return &Instance{template: template, processor: processor, options: options}
}

// Template returns the compiled template this instance was cloned from.
func (inst *Instance) Template() *Template { return inst.template }

// Parts returns the instance's bound parts in value order. Inert slots
// (expressions inside comments) are nil.
func (inst *Instance) Parts() []Part { return inst.parts }

// clone deep-copies the template fragment and binds a part at each
// recorded location. The walk advances through the clone in the same
// pre-order the compiler used, so recorded indices line up.
func (inst *Instance) clone() *dom.Node {
	frag := inst.template.fragment.Clone()
	w := newWalker(frag)
	node := w.next()
	nodeIndex := 0

	for _, desc := range inst.template.parts {
		if !desc.active() {
			inst.parts = append(inst.parts, nil)
			continue
		}
		for nodeIndex < desc.index {
			nodeIndex++
			node = w.next()
		}
		if desc.kind == partNode {
			part := inst.processor.HandleTextExpression(inst.options)
			part.InsertAfterNode(node.PrevSibling())
			inst.parts = append(inst.parts, part)
		} else {
			inst.parts = append(inst.parts,
				inst.processor.HandleAttributeExpressions(node, desc.name, desc.strands, inst.options)...)
		}
	}
	return frag
}

// Update pushes one value into each part, then commits every part. The
// two passes let grouped attribute parts coalesce into a single write.
func (inst *Instance) Update(values []any) {
	for i, part := range inst.parts {
		if part == nil || i >= len(values) {
			continue
		}
		part.SetValue(values[i])
	}
	for _, part := range inst.parts {
		if part != nil {
			part.Commit()
		}
	}
}
