package directives

import (
	"reflect"

	"github.com/weft-dev/weft/pkg/tpl"
)

// sameComparable reports a == b without panicking on values whose
// dynamic type is not comparable; those always count as changed.
func sameComparable(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}

type ifDefinedState struct {
	value any
	seen  bool
}

// IfDefined commits value unless it is nil. For attribute bindings a nil
// value removes the attribute entirely instead of writing "nil" text;
// elsewhere nil simply commits as usual.
func IfDefined(value any) tpl.Directive {
	return func(p tpl.Part) {
		sp, _ := p.(tpl.StatefulPart)
		var state *ifDefinedState
		if sp != nil {
			state, _ = sp.DirectiveState().(*ifDefinedState)
		}

		attrPart, isAttr := p.(*tpl.AttributePart)
		if value == nil && isAttr {
			if state == nil || state.value != nil {
				com := attrPart.Committer()
				com.Element().RemoveAttr(com.Name())
			}
		} else if state == nil || !sameComparable(state.value, value) {
			p.SetValue(value)
		}

		if sp != nil {
			if state == nil {
				state = &ifDefinedState{}
				sp.SetDirectiveState(state)
			}
			state.value = value
			state.seen = true
		}
	}
}
