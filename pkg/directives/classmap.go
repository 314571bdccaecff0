package directives

import (
	"sort"
	"strings"

	"github.com/weft-dev/weft/internal/errors"
	"github.com/weft-dev/weft/pkg/tpl"
)

// singleAttributePart enforces that p is the sole binding of the plain
// attribute named want. code selects the diagnostic for the directive.
func singleAttributePart(p tpl.Part, want, code string) *tpl.AttributePart {
	part, ok := p.(*tpl.AttributePart)
	if !ok {
		panic(errors.New(code))
	}
	com := part.Committer()
	if com == nil || com.Name() != want || len(com.Parts()) > 1 {
		panic(errors.New(code))
	}
	return part
}

// ClassMap toggles class names on the bound element. Keys with a true
// value are present; false keys are removed. Classes written by the
// attribute's static strands are kept; classes added by earlier renders
// of this directive are removed when their key turns false or vanishes.
//
// The binding must be the single expression of a plain class attribute.
func ClassMap(classes map[string]bool) tpl.Directive {
	return func(p tpl.Part) {
		part := singleAttributePart(p, "class", "E002")
		com := part.Committer()
		el := com.Element()

		managed, _ := part.DirectiveState().(map[string]bool)
		if managed == nil {
			// First render: the attribute still holds the marker text,
			// so write the statics back before managing names.
			el.SetAttr("class", strings.TrimSpace(strings.Join(com.Strands(), " ")))
			managed = make(map[string]bool)
			part.SetDirectiveState(managed)
		}

		current, _ := el.Attr("class")
		names := strings.Fields(current)
		kept := names[:0]
		for _, name := range names {
			if managed[name] && !classes[name] {
				delete(managed, name)
				continue
			}
			kept = append(kept, name)
		}

		var added []string
		for name, on := range classes {
			if on && !containsName(kept, name) {
				added = append(added, name)
				managed[name] = true
			}
		}
		sort.Strings(added)

		el.SetAttr("class", strings.Join(append(kept, added...), " "))
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
