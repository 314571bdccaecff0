package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/weft-dev/weft/pkg/directives"
	"github.com/weft-dev/weft/pkg/tpl"
)

// showcaseRoutes are the pages served, rendered, and published by the
// CLI. Each exercises a different slice of the template engine.
var showcaseRoutes = []struct {
	Pattern string
	Page    func(r *http.Request) tpl.Result
}{
	{"/", indexPage},
	{"/list", listPage},
	{"/styles", stylesPage},
}

var indexStrands = tpl.Statics(`
<main class="page">
  <h1>{{}}</h1>
  <p>{{}}</p>
  <nav>{{}}</nav>
</main>`)

func indexPage(r *http.Request) tpl.Result {
	links := []any{
		navLink("/list", "Keyed lists"),
		navLink("/styles", "Class and style maps"),
	}
	return tpl.HTML(indexStrands,
		"weft showcase",
		"A small tour of the template engine.",
		links,
	)
}

var navLinkStrands = tpl.Statics(`<a href="{{}}">{{}}</a> `)

func navLink(href, label string) tpl.Result {
	return tpl.HTML(navLinkStrands, href, label)
}

var listStrands = tpl.Statics(`
<main class="page">
  <h1>{{}}</h1>
  <ul>{{}}</ul>
</main>`)

var listItemStrands = tpl.Statics(`<li ?data-even="{{}}">{{}}</li>`)

func listPage(r *http.Request) tpl.Result {
	count := 10
	if q := r.URL.Query().Get("n"); q != "" {
		fmt.Sscanf(q, "%d", &count)
	}
	items := make([]int, count)
	for i := range items {
		items[i] = i + 1
	}
	return tpl.HTML(listStrands,
		fmt.Sprintf("%d items", count),
		directives.Repeat(items,
			func(n, _ int) any { return n },
			func(n, _ int) tpl.Result {
				return tpl.HTML(listItemStrands, n%2 == 0, fmt.Sprintf("item %d", n))
			},
		),
	)
}

var stylesStrands = tpl.Statics(`
<main class="page">
  <h1>{{}}</h1>
  <p class="{{}}" style="{{}}">{{}}</p>
</main>`)

func stylesPage(r *http.Request) tpl.Result {
	theme := r.URL.Query().Get("theme")
	return tpl.HTML(stylesStrands,
		"Class and style maps",
		directives.ClassMap(map[string]bool{
			"note":  true,
			"dark":  theme == "dark",
			"light": theme != "dark",
		}),
		directives.StyleMap(map[string]string{
			"max-width": "40rem",
			"margin":    "0 auto",
		}),
		"The class list and style declarations above are managed declaratively.",
	)
}

// routeTitle derives a page title from the route pattern.
func routeTitle(pattern string) string {
	name := strings.Trim(pattern, "/")
	if name == "" {
		return "weft"
	}
	return "weft · " + name
}
