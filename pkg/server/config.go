package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/hoist/internal/config"
	"github.com/vango-dev/hoist/pkg/render"
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	// Address is the listen address. Default: ":3000".
	Address string

	// ReadHeaderTimeout, ReadTimeout, WriteTimeout and IdleTimeout are
	// passed to http.Server.
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 15 seconds.
	ShutdownTimeout time.Duration

	// Lang is the lang attribute of every document. Default: "en".
	Lang string

	// Render configures the markup shape.
	Render render.RendererConfig

	// Head lists stylesheets, scripts and metas shared by every page.
	// Pages may add to it and set the title through Ctx.
	Head render.HeadConfig

	// StaticDir is served under StaticPrefix when set.
	StaticDir    string
	StaticPrefix string

	// Metrics enables Prometheus metrics served at MetricsPath.
	Metrics     bool
	MetricsPath string

	// MetricsRegistry receives the metrics. Default: a fresh registry with
	// the Go and process collectors.
	MetricsRegistry *prometheus.Registry

	// Tracing opens an OpenTelemetry span per request using the global
	// tracer provider.
	Tracing bool
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           ":3000",
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ShutdownTimeout:   15 * time.Second,
		Lang:              render.DefaultLang,
		StaticPrefix:      "/static/",
		MetricsPath:       "/metrics",
	}
}

// FromConfig builds a ServerConfig from a loaded project configuration.
func FromConfig(c *config.Config) *ServerConfig {
	sc := DefaultServerConfig()
	sc.Address = c.Address()
	sc.ReadTimeout = c.ReadTimeout()
	sc.WriteTimeout = c.WriteTimeout()
	sc.ShutdownTimeout = c.ShutdownTimeout()
	if c.Lang != "" {
		sc.Lang = c.Lang
	}
	sc.Render = render.RendererConfig{
		Compact: c.Render.Compact,
		Escape:  c.Render.Escape,
	}
	sc.StaticDir = c.StaticPath()
	if c.Static.Prefix != "" {
		sc.StaticPrefix = c.Static.Prefix
	}
	sc.Metrics = c.Metrics.Enabled
	if c.Metrics.Path != "" {
		sc.MetricsPath = c.Metrics.Path
	}
	sc.Tracing = c.Tracing.Enabled
	return sc
}

// withDefaults fills unset fields from DefaultServerConfig.
func (c *ServerConfig) withDefaults() *ServerConfig {
	defaults := DefaultServerConfig()
	if c == nil {
		return defaults
	}
	out := *c
	if out.Address == "" {
		out.Address = defaults.Address
	}
	if out.ReadHeaderTimeout == 0 {
		out.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if out.ReadTimeout == 0 {
		out.ReadTimeout = defaults.ReadTimeout
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = defaults.WriteTimeout
	}
	if out.IdleTimeout == 0 {
		out.IdleTimeout = defaults.IdleTimeout
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if out.Lang == "" {
		out.Lang = defaults.Lang
	}
	if out.StaticPrefix == "" {
		out.StaticPrefix = defaults.StaticPrefix
	}
	if out.MetricsPath == "" {
		out.MetricsPath = defaults.MetricsPath
	}
	return &out
}
