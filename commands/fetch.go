package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/stayhomeandlearn/sitebuilder/config"
	"github.com/stayhomeandlearn/sitebuilder/workbook"
)

var FetchCmd = Fetch{
	command: command{
		credentials: "",
		debug:       false,
	},

	workbook: "",
	dir:      "",
}

type Fetch struct {
	command
	workbook string
	dir      string
}

func (cmd *Fetch) Name() string {
	return "fetch"
}

func (cmd *Fetch) Description() string {
	return "Downloads every sheet of the Google Sheets workbook to local CSV files"
}

func (cmd *Fetch) Usage() string {
	return "--credentials <file> --workbook <title> --dir <dir>"
}

func (cmd *Fetch) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] fetch [options]\n", APP)
	fmt.Println()
	fmt.Println("  Downloads every sheet of the workbook to one CSV file per sheet, named after the sheet's title")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sitebuilder fetch --credentials "credentials.json" --workbook "Stay Home and Learn" --dir "data"`)
	fmt.Println()
}

func (cmd *Fetch) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("fetch")

	flagset.StringVar(&cmd.workbook, "workbook", cmd.workbook, "Workbook title e.g. 'Stay Home and Learn'")
	flagset.StringVar(&cmd.dir, "dir", cmd.dir, "Directory for the downloaded CSV files")

	return flagset
}

func (cmd *Fetch) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := configuration(options)
	if err != nil {
		return err
	}

	cmd.merge(&cfg)

	if strings.TrimSpace(cmd.workbook) != "" {
		cfg.Workbook = cmd.workbook
	}

	if strings.TrimSpace(cmd.dir) != "" {
		cfg.DataDir = cmd.dir
	}

	return fetch(context.Background(), cfg, cmd.debug)
}

func fetch(ctx context.Context, cfg config.Config, debug bool) error {
	if debug {
		debugf("fetching workbook '%s' with credentials from %s", cfg.Workbook, cfg.Credentials)
	}

	fetcher := workbook.Fetcher{
		Credentials: cfg.Credentials,
		Workbook:    cfg.Workbook,
		DataDir:     cfg.DataDir,
		Debug:       debug,
	}

	if err := fetcher.Fetch(ctx); err != nil {
		return err
	}

	infof("downloaded workbook '%s' to %s", cfg.Workbook, cfg.DataDir)

	return nil
}
