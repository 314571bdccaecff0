package server

import "time"

// Config configures the preview server.
type Config struct {
	// Address is the listen address, e.g. ":8080".
	Address string

	// Title is the default page title when a page does not set one.
	Title string

	// StyleSheets are external stylesheet paths added to every page.
	StyleSheets []string

	// Pretty enables pretty-printed HTML output.
	Pretty bool

	// KeepMarkers keeps the engine's comment markers in the output.
	// Off by default; served pages are static HTML.
	KeepMarkers bool

	// LiveReload injects the reload client script and serves the
	// /_weft/reload WebSocket endpoint.
	LiveReload bool

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// HTTP server timeouts.
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":8080",
		Title:             "weft",
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = d.IdleTimeout
	}
}
