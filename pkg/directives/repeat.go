package directives

import (
	"github.com/weft-dev/weft/internal/errors"
	"github.com/weft-dev/weft/pkg/dom"
	"github.com/weft-dev/weft/pkg/tpl"
)

// repeatState survives between renders on the container part.
type repeatState struct {
	keys  []any
	parts []*tpl.NodePart
}

// Repeat renders a keyed list. Items with the same key across renders
// keep their DOM subtree and their part state; the list is reconciled
// with head/tail scans so pure reorders move whole ranges instead of
// rewriting them. Keys must be comparable and unique within one render;
// duplicate keys leave the list in an unspecified order.
func Repeat[T any](items []T, key func(item T, index int) any, render func(item T, index int) tpl.Result) tpl.Directive {
	return func(p tpl.Part) {
		containerPart, ok := p.(*tpl.NodePart)
		if !ok {
			panic(errors.New("E004").
				WithSuggestion("Use repeat only in node position, not inside an attribute"))
		}

		state, _ := containerPart.DirectiveState().(*repeatState)
		if state == nil {
			state = &repeatState{}
			containerPart.SetDirectiveState(state)
		}
		oldKeys := state.keys
		oldParts := state.parts

		newKeys := make([]any, len(items))
		newValues := make([]tpl.Result, len(items))
		for i, item := range items {
			newKeys[i] = key(item, i)
			newValues[i] = render(item, i)
		}
		newParts := make([]*tpl.NodePart, len(items))

		var newKeyToIndex, oldKeyToIndex map[any]int

		oldHead := 0
		oldTail := len(oldParts) - 1
		newHead := 0
		newTail := len(newKeys) - 1

		for oldHead <= oldTail && newHead <= newTail {
			switch {
			case oldParts[oldHead] == nil:
				// Part was moved by an earlier random-access match.
				oldHead++
			case oldParts[oldTail] == nil:
				oldTail--
			case oldKeys[oldHead] == newKeys[newHead]:
				newParts[newHead] = updatePart(oldParts[oldHead], newValues[newHead])
				oldHead++
				newHead++
			case oldKeys[oldTail] == newKeys[newTail]:
				newParts[newTail] = updatePart(oldParts[oldTail], newValues[newTail])
				oldTail--
				newTail--
			case oldKeys[oldHead] == newKeys[newTail]:
				// Old head moved to the back of the unscanned window.
				newParts[newTail] = updatePart(oldParts[oldHead], newValues[newTail])
				insertPartBefore(containerPart, oldParts[oldHead], partAt(newParts, newTail+1))
				oldHead++
				newTail--
			case oldKeys[oldTail] == newKeys[newHead]:
				// Old tail moved to the front of the unscanned window.
				newParts[newHead] = updatePart(oldParts[oldTail], newValues[newHead])
				insertPartBefore(containerPart, oldParts[oldTail], oldParts[oldHead])
				oldTail--
				newHead++
			default:
				if newKeyToIndex == nil {
					newKeyToIndex = keyIndexMap(newKeys, newHead, newTail)
					oldKeyToIndex = keyIndexMap(oldKeys, oldHead, oldTail)
				}
				if _, kept := newKeyToIndex[oldKeys[oldHead]]; !kept {
					removePart(oldParts[oldHead])
					oldHead++
				} else if _, kept := newKeyToIndex[oldKeys[oldTail]]; !kept {
					removePart(oldParts[oldTail])
					oldTail--
				} else {
					// Random-access move or brand-new key at newHead.
					oldIndex, existed := oldKeyToIndex[newKeys[newHead]]
					var oldPart *tpl.NodePart
					if existed {
						oldPart = oldParts[oldIndex]
					}
					if oldPart == nil {
						newPart := createAndInsertPart(containerPart, oldParts[oldHead])
						updatePart(newPart, newValues[newHead])
						newParts[newHead] = newPart
					} else {
						newParts[newHead] = updatePart(oldPart, newValues[newHead])
						insertPartBefore(containerPart, oldPart, oldParts[oldHead])
						oldParts[oldIndex] = nil
					}
					newHead++
				}
			}
		}

		// Remaining new keys are appends before the part that follows
		// the window (or the container end).
		for newHead <= newTail {
			newPart := createAndInsertPart(containerPart, partAt(newParts, newTail+1))
			updatePart(newPart, newValues[newHead])
			newParts[newHead] = newPart
			newHead++
		}
		// Remaining old parts were removed from the list.
		for oldHead <= oldTail {
			if oldPart := oldParts[oldHead]; oldPart != nil {
				removePart(oldPart)
			}
			oldHead++
		}

		state.keys = newKeys
		state.parts = newParts
	}
}

func partAt(parts []*tpl.NodePart, i int) *tpl.NodePart {
	if i < 0 || i >= len(parts) {
		return nil
	}
	return parts[i]
}

func keyIndexMap(keys []any, head, tail int) map[any]int {
	m := make(map[any]int, tail-head+1)
	for i := head; i <= tail; i++ {
		m[keys[i]] = i
	}
	return m
}

func updatePart(part *tpl.NodePart, value tpl.Result) *tpl.NodePart {
	part.SetValue(value)
	part.Commit()
	return part
}

// createAndInsertPart makes a part with its own marker pair, placed
// before ref's start marker (or at the container end when ref is nil).
func createAndInsertPart(containerPart *tpl.NodePart, ref *tpl.NodePart) *tpl.NodePart {
	container := containerPart.StartNode().Parent()
	beforeNode := containerPart.EndNode()
	if ref != nil {
		beforeNode = ref.StartNode()
	}
	d := container.Document()
	startNode := container.InsertBefore(d.CreateComment(""), beforeNode)
	container.InsertBefore(d.CreateComment(""), beforeNode)
	part := tpl.NewNodePart(containerPart.Options())
	part.InsertAfterNode(startNode)
	return part
}

// insertPartBefore moves part's whole range in front of ref.
func insertPartBefore(containerPart, part, ref *tpl.NodePart) {
	container := containerPart.StartNode().Parent()
	beforeNode := containerPart.EndNode()
	if ref != nil {
		beforeNode = ref.StartNode()
	}
	endNode := part.EndNode().NextSibling()
	if endNode != beforeNode {
		dom.ReparentRange(container, part.StartNode(), endNode, beforeNode)
	}
}

func removePart(part *tpl.NodePart) {
	dom.RemoveRange(part.StartNode().Parent(), part.StartNode(), part.EndNode().NextSibling())
}
