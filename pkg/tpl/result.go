package tpl

import (
	"strings"

	"github.com/weft-dev/weft/internal/errors"
)

// ResultKind discriminates the markup dialect of a Result. Templates from
// different dialects share machinery but are never cross-cached.
type ResultKind string

const (
	KindHTML ResultKind = "html"
	KindSVG  ResultKind = "svg"
)

// Result pairs a template's static strands with its current dynamic
// values. A Result is created fresh on every evaluation and is immutable;
// it is consumed by Render or by nesting inside another Result's value
// slot.
type Result struct {
	// Strands are the static literal fragments surrounding the dynamic
	// slots: len(Strands) == number of slots + 1. Callers should hoist
	// strand slices to package level so the identity-based template cache
	// can take its fast path.
	Strands []string

	// Values are the current dynamic values, one per slot.
	Values []any

	// Kind is the markup dialect.
	Kind ResultKind

	// Processor chooses the part type for each binding site.
	Processor Processor
}

// HTML creates an HTML Result from static strands and dynamic values.
// The number of values must be exactly len(strands)-1; a mismatch is a
// template-authoring bug and panics.
func HTML(strands []string, values ...any) Result {
	return newResult(strands, values, KindHTML)
}

// SVG creates a Result whose markup is parsed in SVG context. Use it for
// templates whose nodes end up inside an <svg> subtree.
func SVG(strands []string, values ...any) Result {
	return newResult(strands, values, KindSVG)
}

func newResult(strands []string, values []any, kind ResultKind) Result {
	if len(strands) == 0 || len(values) != len(strands)-1 {
		panic(errors.Newf(errors.CategoryTemplate,
			"template needs %d values for %d strands, got %d",
			len(strands)-1, len(strands), len(values)))
	}
	return Result{
		Strands:   strands,
		Values:    values,
		Kind:      kind,
		Processor: DefaultProcessor,
	}
}

// Statics splits template source on the {{}} placeholder into the strand
// array for HTML and SVG. Hoist the returned slice into a package-level
// variable so repeated evaluations share one identity:
//
//	var rowStrands = tpl.Statics(`<tr class={{}}><td>{{}}</td></tr>`)
//
//	func row(class, text string) tpl.Result {
//	    return tpl.HTML(rowStrands, class, text)
//	}
func Statics(src string) []string {
	return strings.Split(src, "{{}}")
}

// Markup synthesizes the parseable markup skeleton: each slot is replaced
// by a marker the compiler can relocate after parsing. Three marker shapes
// are used and their placement is load-bearing:
//
//   - a binding recognized as an attribute value gets the attribute name
//     suffixed and a bare text marker, since unquoted attribute values
//     cannot contain a comment;
//   - a binding inside a comment gets a space-padded bare marker, which
//     the compiler treats as inert;
//   - a binding in node position gets a comment-wrapped marker, so any
//     surrounding markup, including <template> content, is tolerated.
func (r Result) Markup() string {
	last := len(r.Strands) - 1
	var b strings.Builder
	inComment := false
	for i := 0; i < last; i++ {
		s := r.Strands[i]

		// Track whether this slot falls inside an unclosed comment.
		commentOpen := strings.LastIndex(s, "<!--")
		inComment = (commentOpen > -1 || inComment) &&
			strings.Index(s[commentOpen+1:], "-->") == -1

		if m := lastAttributeNameRegex.FindStringSubmatchIndex(s); m != nil {
			// Attribute binding: rewrite `name=` to `name$weft$=` and drop
			// a bare marker where the value continues.
			b.WriteString(s[:m[0]])
			b.WriteString(s[m[2]:m[3]]) // leading whitespace
			b.WriteString(s[m[4]:m[5]]) // attribute name
			b.WriteString(boundAttributeSuffix)
			b.WriteString(s[m[6]:m[7]]) // `=` and the value so far
			b.WriteString(marker)
		} else if inComment {
			b.WriteString(s)
			b.WriteString(commentMarker)
		} else {
			b.WriteString(s)
			b.WriteString(nodeMarker)
		}
	}
	b.WriteString(r.Strands[last])
	if r.Kind == KindSVG {
		return "<svg>" + b.String() + "</svg>"
	}
	return b.String()
}

// ContentKey derives a cache key from strand content, letting structurally
// identical templates authored at different call sites share one compiled
// Template. The marker joiner cannot occur in author markup.
func (r Result) ContentKey() string {
	return strings.Join(r.Strands, marker)
}
