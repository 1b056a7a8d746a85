package server

import (
	"context"
	"net/http"

	"stabilitylog/internal/handlers"
	applog "stabilitylog/internal/log"
)

func newRouter(metricsHandler http.Handler) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
		applog.Debug(context.Background(), "route registered", "path", "/metrics")
	}
	mux.HandleFunc("/api/draft", handlers.DraftResource)
	mux.HandleFunc("/api/draft/", handlers.DraftResource)
	applog.Debug(context.Background(), "route registered", "path", "/api/draft/")
	mux.HandleFunc("/api/records", handlers.RecordResource)
	mux.HandleFunc("/api/records/", handlers.RecordResource)
	applog.Debug(context.Background(), "route registered", "path", "/api/records/")
	mux.HandleFunc("/api/chambers", handlers.Chambers)
	applog.Debug(context.Background(), "route registered", "path", "/api/chambers")
	mux.HandleFunc("/draft", handlers.DraftForm)
	mux.HandleFunc("/draft/import", handlers.DraftImport)
	applog.Debug(context.Background(), "route registered", "path", "/draft")
	mux.HandleFunc("/records/", handlers.RecordPage)
	applog.Debug(context.Background(), "route registered", "path", "/records/")
	mux.HandleFunc("/", handlers.Workspace)
	applog.Debug(context.Background(), "route registered", "path", "/")
	return mux
}
