package main

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/vango-dev/displaycard/app/routes"
	"github.com/vango-dev/displaycard/internal/config"
	"github.com/vango-dev/displaycard/internal/logging"
	"github.com/vango-dev/displaycard/pkg/catalog"
)

type rootOptions struct {
	configPath string
	envFile    string
}

// app holds what every command builds from the configuration.
type app struct {
	cfg      *config.Config
	log      *logging.Logger
	registry *prometheus.Registry
	site     *routes.Site
}

func loadApp(opts *rootOptions) (*app, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(dir, opts.configPath, opts.envFile)
	if err != nil {
		return nil, err
	}

	log := logging.New(logging.FromConfig(cfg.Log))
	slog.SetDefault(log.Logger)

	// W3C trace context in and out; spans go to whatever provider is set.
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client := catalog.New(catalog.Config{
		BaseURL: cfg.Catalog.BaseURL,
		Timeout: cfg.CatalogTimeout(),
		Metrics: catalog.NewMetrics(registry),
		Logger:  log.Logger,
	})

	return &app{
		cfg:      cfg,
		log:      log,
		registry: registry,
		site: &routes.Site{
			Catalog: client,
			Limit:   cfg.Catalog.Limit,
			Title:   cfg.Page.Title,
			CTAURL:  cfg.Page.CTAURL,
			Logger:  log.Logger,
		},
	}, nil
}

func (a *app) Close() error {
	return a.log.Close()
}
