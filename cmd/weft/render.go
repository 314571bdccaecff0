package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/spf13/cobra"

	"github.com/weft-dev/weft/pkg/dom"
	"github.com/weft-dev/weft/pkg/render"
	"github.com/weft-dev/weft/pkg/tpl"
)

func renderCmd() *cobra.Command {
	var (
		out    string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render [route]",
		Short: "Render a page to HTML",
		Long: `Render one showcase page and print its HTML.

Examples:
  weft render /
  weft render /list --pretty
  weft render /styles --out styles.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route := "/"
			if len(args) == 1 {
				route = args[0]
			}
			return runRender(route, out, pretty)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the HTML")

	return cmd
}

func runRender(route, out string, pretty bool) error {
	var page func(r *http.Request) tpl.Result
	for _, rt := range showcaseRoutes {
		if rt.Pattern == route {
			page = rt.Page
			break
		}
	}
	if page == nil {
		return fmt.Errorf("unknown route %q", route)
	}

	doc := dom.NewDocument()
	body := doc.CreateElement("div")
	engine := tpl.NewEngine(doc)
	engine.Render(page(httptest.NewRequest(http.MethodGet, route, nil)), body, nil)

	renderer := render.NewRenderer(render.RendererConfig{
		Pretty:        pretty,
		StripComments: true,
	})
	html, err := renderer.RenderToString(body)
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(out, []byte(html+"\n"), 0644); err != nil {
		return err
	}
	success("Wrote %s", out)
	return nil
}
