package config

import (
	"flag"
	"io"
	"strings"
)

// Parse builds a Config from command line arguments. When -config names a
// file, its settings replace the defaults and explicit flags override both.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()
	var path string
	fs := newFlagSet(name, &cfg, &path, output)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}

	loaded, err := Load(path)
	if err != nil {
		return cfg, err
	}
	// Second pass: the file's values become the flag defaults, so only flags
	// given explicitly change them.
	if err := newFlagSet(name, &loaded, &path, io.Discard).Parse(args); err != nil {
		return loaded, err
	}
	return loaded, nil
}

func newFlagSet(name string, c *Config, configPath *string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(configPath, "config", *configPath, "Path to a YAML or JSON configuration file")
	fs.StringVar(&c.Src, "src", c.Src, "Directory with api_data.json and api_project.json")
	fs.StringVar(&c.Dest, "dest", c.Dest, "Output directory")
	fs.StringVar(&c.Format, "format", c.Format, "Output format (json|yaml)")
	fs.StringVar(&c.File, "file", c.File, "Output file name (default openapi.<format>)")
	fs.StringVar(&c.ServerURL, "server", c.ServerURL, "Server URL, replaces the project url")
	fs.Var((*stringList)(&c.Groups), "groups", "Comma separated endpoint groups to include")
	fs.BoolVar(&c.LatestOnly, "latest", c.LatestOnly, "Only keep the latest version of each endpoint")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Show debug messages")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "Verbose output")
	fs.BoolVar(&c.Silent, "silent", c.Silent, "Turn all output off")
	fs.BoolVar(&c.Colorize, "color", c.Colorize, "Colorize log output")
	fs.BoolVar(&c.Simulate, "simulate", c.Simulate, "Execute but do not write any file")
	fs.BoolVar(&c.Parse, "parse", c.Parse, "Only parse and validate the input")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "Recompile when the input changes")
	fs.StringVar(&c.Serve, "serve", c.Serve, "Serve the Swagger UI on this address, e.g. :8080")
	return fs
}

// stringList is a comma separated flag value.
type stringList []string

func (s *stringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = nil
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}
