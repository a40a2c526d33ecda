// Package app runs the apidoc-openapi command: it loads apiDoc output,
// compiles it and writes, watches or serves the resulting document.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	ao "github.com/Gobd/apidocopenapi"
	"github.com/Gobd/apidocopenapi/apidoc"
	"github.com/Gobd/apidocopenapi/internal/config"
	"github.com/Gobd/apidocopenapi/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// App holds the configuration and the last compiled document.
type App struct {
	cfg config.Config
	log *logrus.Logger

	mu  sync.RWMutex
	doc *openapi3.T
}

// New returns an App for cfg. cfg is expected to be validated.
func New(cfg config.Config, log *logrus.Logger) *App {
	return &App{cfg: cfg, log: log}
}

// Run builds the document once and, when watching or serving, keeps running
// until ctx is cancelled. A failed first build is only logged when watching
// or serving.
func (a *App) Run(ctx context.Context) error {
	err := a.Build()
	if !a.cfg.Watch && a.cfg.Serve == "" {
		return err
	}
	if err != nil {
		a.log.Error(err)
	}

	g, ctx := errgroup.WithContext(ctx)
	if a.cfg.Watch {
		g.Go(func() error { return a.watch(ctx) })
	}
	if a.cfg.Serve != "" {
		g.Go(func() error { return a.serve(ctx) })
	}
	return g.Wait()
}

// Document returns the last compiled document, or nil.
func (a *App) Document() *openapi3.T {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.doc
}

// Build loads the input, compiles it and writes the output file.
func (a *App) Build() error {
	a.log.Debugf("read input: %s", a.cfg.Src)
	res, err := apidoc.LoadDir(a.cfg.Src)
	if err != nil {
		return err
	}
	a.log.Debugf("loaded %d endpoints of project %q", len(res.Endpoints), res.Project.DisplayTitle())

	if a.cfg.Parse {
		a.log.Info("Parsed, nothing written.")
		return nil
	}

	endpoints := apidoc.Filter{Groups: a.cfg.Groups, LatestOnly: a.cfg.LatestOnly}.Apply(res.Endpoints)
	if len(endpoints) == 0 {
		a.log.Info("Nothing to do.")
		return nil
	}
	a.log.Debugf("compiling %d endpoints", len(endpoints))
	for _, ep := range endpoints {
		a.log.Tracef("endpoint %s %s (%s.%s, version %s)", ep.Method, ep.URL, ep.Group, ep.Name, ep.Version)
	}

	project := res.Project
	if a.cfg.ServerURL != "" {
		project.URL = a.cfg.ServerURL
	}
	doc := ao.Compile(project, endpoints)
	a.log.Tracef("%d paths, %d schemas, %d shared responses",
		doc.Paths.Len(), len(doc.Components.Schemas), len(doc.Components.Responses))

	a.mu.Lock()
	a.doc = doc
	a.mu.Unlock()

	if err := a.write(doc); err != nil {
		return err
	}
	a.log.Info("Done.")
	return nil
}

func (a *App) write(doc *openapi3.T) error {
	data, err := openapi.Marshal(doc, a.cfg.Format)
	if err != nil {
		return err
	}

	if a.cfg.Simulate {
		a.log.Warn("!!! Simulation !!! No file or dir will be copied or created.")
	}

	dest := a.cfg.OutputPath()
	a.log.Debugf("create dir: %s", filepath.Dir(dest))
	if !a.cfg.Simulate {
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	a.log.Debugf("write openapi %s file: %s", a.cfg.Format, dest)
	if !a.cfg.Simulate {
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}
	return nil
}
