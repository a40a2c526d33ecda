// Command apidoc-openapi converts apiDoc output into an OpenAPI 3 document.
//
// Run apiDoc first, then point -src at its output directory:
//
//	apidoc -i src/ -o apidoc/
//	apidoc-openapi -src apidoc/ -dest doc/ -format yaml
//
// With -watch the document is rebuilt whenever apiDoc rewrites its output,
// and -serve :8080 serves a Swagger UI for it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gobd/apidocopenapi/internal/app"
	"github.com/Gobd/apidocopenapi/internal/config"
)

func main() {
	cfg, err := config.Parse("apidoc-openapi", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid options: %v\n", err)
		os.Exit(2)
	}

	log := app.NewLogger(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New(cfg, log).Run(ctx); err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}
