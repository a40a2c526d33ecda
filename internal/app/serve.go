package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobd/apidocopenapi/openapi"
	"github.com/gorilla/mux"
)

const swaggerPrefix = "/swagger/"

// Router serves the Swagger UI under /swagger/ and the current document as
// /openapi.json and /openapi.yaml.
func (a *App) Router() *mux.Router {
	title := "API documentation"
	if doc := a.Document(); doc != nil && doc.Info != nil && doc.Info.Title != "" {
		title = doc.Info.Title
	}

	r := mux.NewRouter()
	r.HandleFunc("/openapi.json", a.serveDocument(openapi.FormatJSON, openapi.ContentType)).Methods(http.MethodGet)
	r.HandleFunc("/openapi.yaml", a.serveDocument(openapi.FormatYAML, "application/x-yaml")).Methods(http.MethodGet)
	r.PathPrefix(swaggerPrefix).Handler(openapi.SwaggerHandlerMust(swaggerPrefix, title, a.Document))
	r.Handle("/", http.RedirectHandler(swaggerPrefix, http.StatusFound))
	return r
}

func (a *App) serveDocument(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		doc := a.Document()
		if doc == nil {
			http.Error(w, "document not available", http.StatusServiceUnavailable)
			return
		}
		b, err := openapi.Marshal(doc, format)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(b)
	}
}

// serve runs the HTTP server until ctx is cancelled.
func (a *App) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Serve,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		a.log.Infof("Swagger UI: http://%s%s", a.cfg.Serve, swaggerPrefix)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
