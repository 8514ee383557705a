// Package main is the settings inspection tool for the gocs engine.
//
// csconfig reads and writes the css_config.xml file shared by all
// engine invocations, through the same dynamic property path the
// engine's command-line directives use.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/csscript/gocs/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		asTOML      bool
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to the config file (default: next to the engine executable)")
	flag.BoolVar(&asTOML, "toml", false, "Print settings as TOML (ls only)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("csconfig %s (%s)\n", version, commit)
		return 0
	}

	if configPath == "" {
		path, err := config.DefaultConfigFile()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: cannot resolve the default config location; use -config")
			return 1
		}
		configPath = path
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return 2
	}

	switch args[0] {
	case "ls":
		return runList(configPath, asTOML)
	case "get":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: csconfig get <name>")
			return 2
		}
		return runGet(configPath, args[1])
	case "set":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "Usage: csconfig set <name> <value>")
			return 2
		}
		return runSet(configPath, args[1], args[2])
	case "init":
		return runInit(configPath)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", args[0])
		usage()
		return 2
	}
}

func runList(path string, asTOML bool) int {
	s := load(path)

	if asTOML {
		values := make(map[string]string)
		for _, d := range config.AllDescriptors() {
			values[d.Name] = d.Value(s)
		}
		out, err := toml.Marshal(values)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		os.Stdout.Write(out)
		return 0
	}

	for _, d := range config.AllDescriptors() {
		_, v, err := s.Get(d.Name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("%s = %s\n", d.Name, v)
	}
	return 0
}

func runGet(path, name string) int {
	s := load(path)

	canonical, v, err := s.Get(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, config.ErrUnknownProperty) {
			return 2
		}
		return 1
	}
	fmt.Printf("%s = %s\n", canonical, v)
	return 0
}

func runSet(path, name, value string) int {
	s := config.Load(path, config.WithCreateMissing())

	if err := s.Set(name, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if err := s.Save(path, config.WithStrict()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runInit(path string) int {
	if err := config.NewSettings().Save(path, config.WithStrict()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Wrote defaults to %s\n", path)
	return 0
}

// load returns the file's settings, or defaults when the file is
// missing, without writing anything back.
func load(path string) *config.Settings {
	if s := config.Load(path); s != nil {
		return s
	}
	return config.NewSettings()
}

func usage() {
	fmt.Fprintf(os.Stderr, `csconfig - gocs engine settings tool

Usage:
  csconfig [flags] ls          List all settings
  csconfig [flags] get <name>  Print one setting
  csconfig [flags] set <name> <value>
                               Assign a setting (add:/del: amend lists)
  csconfig [flags] init        Write a defaults file

Flags:
`)
	flag.PrintDefaults()
}
