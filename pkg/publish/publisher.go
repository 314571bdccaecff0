package publish

import (
	"bytes"
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/weft-dev/weft/internal/errors"
	"github.com/weft-dev/weft/pkg/dom"
	"github.com/weft-dev/weft/pkg/render"
	"github.com/weft-dev/weft/pkg/tpl"
)

// Page is one route to publish as a static HTML file.
type Page struct {
	// Path is the site-relative route, e.g. "/" or "/about".
	Path string

	// Title overrides the publisher's default page title.
	Title string

	// Result is the page content.
	Result tpl.Result
}

// Asset is a non-HTML file published alongside the pages.
type Asset struct {
	Path        string
	ContentType string
	Data        []byte
}

// Publisher renders pages to static HTML and writes them to a Store.
type Publisher struct {
	store       Store
	renderer    *render.Renderer
	logger      *slog.Logger
	title       string
	styleSheets []string
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithTitle sets the default page title.
func WithTitle(title string) Option {
	return func(p *Publisher) { p.title = title }
}

// WithStyleSheets adds stylesheet links to every published page.
func WithStyleSheets(hrefs ...string) Option {
	return func(p *Publisher) { p.styleSheets = append(p.styleSheets, hrefs...) }
}

// NewPublisher creates a publisher writing to store.
func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{
		store:    store,
		renderer: render.NewRenderer(render.RendererConfig{StripComments: true}),
		logger:   slog.Default().With("component", "publish"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish renders every page and writes pages and assets to the store.
// The first error stops the run.
func (p *Publisher) Publish(ctx context.Context, pages []Page, assets []Asset) error {
	if len(pages) == 0 {
		return errors.New("E121")
	}
	start := time.Now()
	doc := dom.NewDocument()
	engine := tpl.NewEngine(doc)

	for _, page := range pages {
		body := doc.CreateElement("div")
		engine.Render(page.Result, body, nil)

		title := page.Title
		if title == "" {
			title = p.title
		}
		var buf bytes.Buffer
		err := p.renderer.RenderPage(&buf, render.PageData{
			Body:        body,
			Title:       title,
			StyleSheets: p.styleSheets,
		})
		if err != nil {
			return err
		}

		file := routeFile(page.Path)
		if err := p.store.Put(ctx, file, "text/html; charset=utf-8", buf.Bytes()); err != nil {
			return err
		}
		p.logger.Info("published page", "route", page.Path, "file", file, "bytes", buf.Len())
	}

	for _, asset := range assets {
		if err := p.store.Put(ctx, strings.TrimPrefix(asset.Path, "/"), asset.ContentType, asset.Data); err != nil {
			return err
		}
		p.logger.Info("published asset", "file", asset.Path, "bytes", len(asset.Data))
	}

	p.logger.Info("publish complete",
		"pages", len(pages), "assets", len(assets), "duration", time.Since(start))
	return nil
}

// routeFile maps a route to its output file: "/" becomes index.html,
// "/about" becomes about/index.html, explicit .html paths pass through.
func routeFile(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return "index.html"
	}
	if path.Ext(route) == ".html" {
		return route
	}
	return route + "/index.html"
}
