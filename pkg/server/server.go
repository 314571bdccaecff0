package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/weft-dev/weft/pkg/dom"
	"github.com/weft-dev/weft/pkg/render"
	"github.com/weft-dev/weft/pkg/tpl"
)

const tracerName = "weft"

// Page produces the template result for one request.
type Page func(r *http.Request) tpl.Result

// Middleware is a function that wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Server serves weft pages over HTTP.
type Server struct {
	config     *Config
	router     chi.Router
	reload     *ReloadServer
	renderer   *render.Renderer
	logger     *slog.Logger
	tracer     trace.Tracer
	httpServer *http.Server
}

// New creates a Server with the given configuration. A nil config uses
// the defaults.
func New(config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	} else {
		config.fillDefaults()
	}

	s := &Server{
		config: config,
		logger: slog.Default().With("component", "server"),
		tracer: otel.Tracer(tracerName),
		renderer: render.NewRenderer(render.RendererConfig{
			Pretty:        config.Pretty,
			StripComments: !config.KeepMarkers,
		}),
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Handle("/metrics", promhttp.Handler())
	if config.LiveReload {
		s.reload = NewReloadServer()
		r.Get("/_weft/reload", s.reload.HandleWebSocket)
	}
	s.router = r

	return s
}

// Use adds middleware to the router. Call before HandlePage.
func (s *Server) Use(mw Middleware) {
	s.router.Use(func(next http.Handler) http.Handler { return mw(next) })
}

// HandlePage mounts a page at a chi route pattern.
func (s *Server) HandlePage(pattern string, page Page) {
	s.router.Get(pattern, s.servePage(pattern, page))
}

// Reload returns the live-reload broadcaster, or nil when live reload
// is disabled.
func (s *Server) Reload() *ReloadServer { return s.reload }

// Handler returns the root http.Handler for mounting in external routers.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) servePage(pattern string, page Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := s.tracer.Start(r.Context(), "weft.page",
			trace.WithAttributes(attribute.String("weft.route", pattern)))
		defer span.End()
		start := time.Now()

		defer func() {
			if rec := recover(); rec != nil {
				pagePanics.Inc()
				span.SetStatus(codes.Error, fmt.Sprint(rec))
				s.logger.Error("page render failed",
					"route", pattern, "error", rec)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		doc := dom.NewDocument()
		body := doc.CreateElement("div")
		engine := tpl.NewEngine(doc)
		engine.Render(page(r.WithContext(ctx)), body, nil)

		pageData := render.PageData{
			Body:        body,
			Title:       s.config.Title,
			StyleSheets: s.config.StyleSheets,
		}
		if s.config.LiveReload {
			pageData.Scripts = append(pageData.Scripts, render.ScriptTag{Inline: reloadClientScript})
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.renderer.RenderPage(w, pageData); err != nil {
			span.SetStatus(codes.Error, err.Error())
			s.logger.Error("page write failed", "route", pattern, "error", err)
			return
		}

		elapsed := time.Since(start)
		pagesServed.WithLabelValues(pattern).Inc()
		pageDuration.WithLabelValues(pattern).Observe(elapsed.Seconds())
		s.logger.Info("page served",
			"route", pattern, "path", r.URL.Path, "duration", elapsed)
	}
}

// ListenAndServe runs the server until ctx is canceled or SIGINT/SIGTERM
// arrives, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "address", s.config.Address)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	case sig := <-sigCh:
		s.logger.Info("signal received", "signal", sig.String())
	}
	return s.Shutdown()
}

// Shutdown stops the server, waiting up to ShutdownTimeout for in-flight
// requests.
func (s *Server) Shutdown() error {
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	return s.httpServer.Shutdown(ctx)
}

// reloadClientScript reconnects and reloads the page when the server
// broadcasts a change.
const reloadClientScript = `(function(){
  var url = (location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/_weft/reload";
  function connect(){
    var ws = new WebSocket(url);
    ws.onmessage = function(ev){
      var msg = JSON.parse(ev.data);
      if (msg.type === "reload") location.reload();
    };
    ws.onclose = function(){ setTimeout(connect, 1000); };
  }
  connect();
})();`
