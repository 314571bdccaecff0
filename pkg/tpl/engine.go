package tpl

import (
	"fmt"
	"time"

	"github.com/weft-dev/weft/internal/errors"
	"github.com/weft-dev/weft/pkg/dom"
)

// TemplateFactory maps a Result to its compiled Template. The engine's
// own factory caches compilations; tests substitute counting factories.
type TemplateFactory func(Result) *Template

// RenderOptions carries per-render configuration down to the parts.
type RenderOptions struct {
	// EventReceiver is forwarded as the first argument to event
	// listeners of the form func(receiver any, e *dom.Event).
	EventReceiver any

	// TemplateFactory resolves Results to Templates. Nil means the
	// rendering engine's cache.
	TemplateFactory TemplateFactory
}

// templateCache looks templates up first by the identity of the strand
// slice (the fast path when the same Result constructor runs again),
// then by joined content for structurally identical markup built from
// distinct slices.
type templateCache struct {
	byStrands map[*string]*Template
	byContent map[string]*Template
}

func newTemplateCache() *templateCache {
	return &templateCache{
		byStrands: make(map[*string]*Template),
		byContent: make(map[string]*Template),
	}
}

// Engine owns the template caches and the per-container root parts.
// It is not safe for concurrent use; drive each engine from one
// goroutine.
type Engine struct {
	doc      *dom.Document
	caches   map[ResultKind]*templateCache
	roots    map[*dom.Node]*NodePart
	compiles uint64
	renders  uint64
}

// NewEngine creates an engine that compiles against doc.
func NewEngine(doc *dom.Document) *Engine {
	return &Engine{
		doc:    doc,
		caches: make(map[ResultKind]*templateCache),
		roots:  make(map[*dom.Node]*NodePart),
	}
}

// Document returns the document templates compile against.
func (e *Engine) Document() *dom.Document { return e.doc }

// CompileCount reports how many skeleton compilations this engine has
// performed. Identical markup rendered twice compiles once.
func (e *Engine) CompileCount() uint64 { return e.compiles }

// RenderCount reports how many Render calls this engine has served.
func (e *Engine) RenderCount() uint64 { return e.renders }

// Template returns the compiled template for res, compiling on first
// sight. HTML and SVG results cache separately even for equal markup.
func (e *Engine) Template(res Result) *Template {
	cache, ok := e.caches[res.Kind]
	if !ok {
		cache = newTemplateCache()
		e.caches[res.Kind] = cache
	}
	key := &res.Strands[0]
	if t, ok := cache.byStrands[key]; ok {
		templateCacheHits.Inc()
		return t
	}
	content := res.ContentKey()
	t, ok := cache.byContent[content]
	if !ok {
		start := time.Now()
		t = Compile(e.doc, res)
		e.compiles++
		templateCompiles.Inc()
		compileSeconds.Observe(time.Since(start).Seconds())
		cache.byContent[content] = t
	} else {
		templateCacheHits.Inc()
	}
	cache.byStrands[key] = t
	return t
}

// Render writes res into container. The first render of a container
// discards its existing children and installs a root part; subsequent
// renders reuse that part, so unchanged subtrees are left alone.
func (e *Engine) Render(res Result, container *dom.Node, opts *RenderOptions) {
	if container == nil ||
		(container.Kind() != dom.KindElement && container.Kind() != dom.KindFragment) {
		kind := "nil"
		if container != nil {
			kind = container.Kind().String()
		}
		panic(errors.New("E040").
			WithDetail(fmt.Sprintf("render target is %s", kind)))
	}

	options := &RenderOptions{}
	if opts != nil {
		*options = *opts
	}
	if options.TemplateFactory == nil {
		options.TemplateFactory = e.Template
	}

	part, ok := e.roots[container]
	if !ok {
		dom.RemoveRange(container, container.FirstChild(), nil)
		part = NewNodePart(options)
		part.AppendInto(container)
		e.roots[container] = part
	}
	part.SetValue(res)
	part.Commit()
	e.renders++
	renderTotal.Inc()
}

var defaultEngine = NewEngine(dom.NewDocument())

// Render renders res into container using the package-level engine.
func Render(res Result, container *dom.Node, opts *RenderOptions) {
	defaultEngine.Render(res, container, opts)
}
