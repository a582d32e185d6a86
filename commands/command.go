// Package commands implements the sitebuilder subcommands: the three pipeline
// stages (fetch, render, publish), the sequential build orchestrator and the
// interval scheduler.
package commands

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/stayhomeandlearn/sitebuilder/config"
)

const APP = "sitebuilder"
const VERSION = "v0.1.0"

// Command is the interface implemented by the sitebuilder subcommands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

// Options are the global command line options, shared by all subcommands.
type Options struct {
	Config string
	Debug  bool
}

type command struct {
	credentials string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the Google service account 'credentials.json' file")

	return flagset
}

func (c command) merge(cfg *config.Config) {
	if strings.TrimSpace(c.credentials) != "" {
		cfg.Credentials = c.credentials
	}
}

// configuration resolves the effective configuration: an explicit --config
// file, the default configuration file if present, or the built-in defaults.
func configuration(options *Options) (config.Config, error) {
	if path := strings.TrimSpace(options.Config); path != "" {
		return config.Load(path)
	}

	if _, err := os.Stat(config.DefaultConfig); err == nil {
		return config.Load(config.DefaultConfig)
	}

	return config.Default(), nil
}

// Parse matches the first command line argument against the command list and
// parses the remaining arguments with the matched command's flagset.
func Parse(cli []Command) (Command, error) {
	if flag.NArg() == 0 {
		return nil, nil
	}

	for _, c := range cli {
		if c.Name() == flag.Arg(0) {
			flagset := c.FlagSet()
			if err := flagset.Parse(flag.Args()[1:]); err != nil {
				return nil, err
			}

			return c, nil
		}
	}

	return nil, fmt.Errorf("invalid command '%s'", flag.Arg(0))
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
