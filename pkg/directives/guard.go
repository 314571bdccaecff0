package directives

import (
	"reflect"

	"github.com/weft-dev/weft/pkg/tpl"
)

type guardState struct {
	value any
	seen  bool
}

// Guard skips re-evaluation when value is unchanged since the last
// render. Slices of any element type compare element-wise; everything
// else compares by equality. When the value differs, render is invoked
// and its result committed.
func Guard(value any, render func() any) tpl.Directive {
	return func(p tpl.Part) {
		sp, _ := p.(tpl.StatefulPart)
		var state *guardState
		if sp != nil {
			state, _ = sp.DirectiveState().(*guardState)
		}

		if state != nil && state.seen && guardEqual(state.value, value) {
			return
		}

		p.SetValue(render())
		if sp != nil {
			if state == nil {
				state = &guardState{}
				sp.SetDirectiveState(state)
			}
			state.value = value
			state.seen = true
		}
	}
}

func asItems(v any) ([]any, bool) {
	switch v.(type) {
	case nil, string, []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func guardEqual(prev, next any) bool {
	prevItems, prevOK := asItems(prev)
	nextItems, nextOK := asItems(next)
	if prevOK && nextOK {
		if len(prevItems) != len(nextItems) {
			return false
		}
		for i := range nextItems {
			if !sameComparable(prevItems[i], nextItems[i]) {
				return false
			}
		}
		return true
	}
	if prevOK != nextOK {
		return false
	}
	return sameComparable(prev, next)
}
