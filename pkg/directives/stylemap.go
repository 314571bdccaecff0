package directives

import (
	"sort"
	"strings"

	"github.com/weft-dev/weft/pkg/tpl"
)

// StyleMap sets inline style declarations on the bound element.
// Properties set by earlier renders of this directive are removed when
// their key vanishes; declarations from the attribute's static strands
// persist.
//
// The binding must be the single expression of a plain style attribute.
func StyleMap(styles map[string]string) tpl.Directive {
	return func(p tpl.Part) {
		part := singleAttributePart(p, "style", "E003")
		com := part.Committer()
		el := com.Element()

		managed, _ := part.DirectiveState().(map[string]bool)
		if managed == nil {
			el.SetAttr("style", strings.TrimSpace(strings.Join(com.Strands(), " ")))
			managed = make(map[string]bool)
			part.SetDirectiveState(managed)
		}

		current, _ := el.Attr("style")
		props, order := parseStyle(current)

		kept := order[:0]
		for _, name := range order {
			if managed[name] {
				if _, still := styles[name]; !still {
					delete(managed, name)
					delete(props, name)
					continue
				}
			}
			kept = append(kept, name)
		}

		var added []string
		for name, value := range styles {
			if _, present := props[name]; !present {
				added = append(added, name)
			}
			props[name] = value
			managed[name] = true
		}
		sort.Strings(added)

		el.SetAttr("style", serializeStyle(props, append(kept, added...)))
	}
}

// parseStyle splits "a: 1; b: 2" into values and declaration order.
func parseStyle(s string) (map[string]string, []string) {
	props := make(map[string]string)
	var order []string
	for _, decl := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, seen := props[name]; !seen {
			order = append(order, name)
		}
		props[name] = strings.TrimSpace(value)
	}
	return props, order
}

func serializeStyle(props map[string]string, order []string) string {
	var b strings.Builder
	for _, name := range order {
		value, ok := props[name]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
	}
	return b.String()
}
