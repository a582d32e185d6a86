package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/stayhomeandlearn/sitebuilder/config"
)

var BuildCmd = Build{
	command: command{
		credentials: "",
		debug:       false,
	},
}

// Build runs the three pipeline stages strictly in sequence. A failure in an
// earlier stage prevents the later stages from running at all - there is no
// checkpointing and a failed run starts again from fetch.
type Build struct {
	command
}

func (cmd *Build) Name() string {
	return "build"
}

func (cmd *Build) Description() string {
	return "Runs fetch, render and publish in sequence"
}

func (cmd *Build) Usage() string {
	return "--credentials <file>"
}

func (cmd *Build) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] build [options]\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the workbook, renders the static site and uploads it to the bucket")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sitebuilder build --credentials "credentials.json"`)
	fmt.Println(`    sitebuilder --config "config.yaml" build`)
	fmt.Println()
}

func (cmd *Build) FlagSet() *flag.FlagSet {
	return cmd.flagset("build")
}

func (cmd *Build) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := configuration(options)
	if err != nil {
		return err
	}

	cmd.merge(&cfg)

	return build(context.Background(), cfg, cmd.debug)
}

func build(ctx context.Context, cfg config.Config, debug bool) error {
	if err := fetch(ctx, cfg, debug); err != nil {
		return err
	}

	if err := render(cfg); err != nil {
		return err
	}

	if err := publish(ctx, cfg); err != nil {
		return err
	}

	return nil
}
