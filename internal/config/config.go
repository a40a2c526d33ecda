// Package config holds the settings of the apidoc-openapi command.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/Gobd/apidocopenapi/openapi"
	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"
)

// Config controls one run of the command. Zero values mean "not set" when a
// config file is merged with flags.
type Config struct {
	// Src is the directory holding api_data.json and api_project.json.
	Src string `yaml:"src" json:"src"`
	// Dest is the directory the document is written to.
	Dest string `yaml:"dest" json:"dest"`
	// Format is json or yaml.
	Format string `yaml:"format" json:"format"`
	// File overrides the output file name. Defaults to openapi.<format>.
	File string `yaml:"file" json:"file"`
	// ServerURL replaces the project URL as the document's server.
	ServerURL string `yaml:"server_url" json:"server_url"`
	// Groups restricts compilation to endpoints of these groups.
	Groups []string `yaml:"groups" json:"groups"`
	// LatestOnly keeps only the highest version of each endpoint.
	LatestOnly bool `yaml:"latest_only" json:"latest_only"`

	Debug    bool `yaml:"debug" json:"debug"`
	Verbose  bool `yaml:"verbose" json:"verbose"`
	Silent   bool `yaml:"silent" json:"silent"`
	Colorize bool `yaml:"colorize" json:"colorize"`

	// Simulate logs what would be written without touching the file system.
	Simulate bool `yaml:"simulate" json:"simulate"`
	// Parse only loads and validates the input.
	Parse bool `yaml:"parse" json:"parse"`
	// Watch recompiles whenever the input files change.
	Watch bool `yaml:"watch" json:"watch"`
	// Serve is a listen address for the Swagger UI, e.g. ":8080".
	Serve string `yaml:"serve" json:"serve"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Src:      ".",
		Dest:     filepath.Join(".", "doc"),
		Format:   openapi.FormatJSON,
		Colorize: true,
	}
}

// Load reads a YAML or JSON config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// OutputPath is the file the document is written to.
func (c Config) OutputPath() string {
	name := c.File
	if name == "" {
		name = "openapi." + c.Format
	}
	return filepath.Join(c.Dest, name)
}

// Validate checks the settings before a run.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Src, validation.Required),
		validation.Field(&c.Dest, validation.When(!c.Parse && !c.Simulate, validation.Required)),
		validation.Field(&c.Format, validation.Required, validation.In(openapi.FormatJSON, openapi.FormatYAML)),
		validation.Field(&c.ServerURL, is.URL),
		validation.Field(&c.Serve, validation.By(listenAddr)),
		validation.Field(&c.Silent, validation.When(c.Debug || c.Verbose, validation.By(notSet))),
	)
}

func notSet(value any) error {
	if b, _ := value.(bool); b {
		return errors.New("cannot be combined with debug or verbose")
	}
	return nil
}

func listenAddr(value any) error {
	addr, _ := value.(string)
	if addr == "" {
		return nil
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return errors.New("must be host:port")
	}
	if !govalidator.IsPort(port) {
		return errors.New("must have a valid port")
	}
	if host != "" && !govalidator.IsHost(host) {
		return errors.New("must have a valid host")
	}
	return nil
}
