package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/stayhomeandlearn/sitebuilder/config"
	"github.com/stayhomeandlearn/sitebuilder/site"
)

var RenderCmd = Render{
	template: "",
	data:     "",
	site:     "",
}

type Render struct {
	template string
	data     string
	site     string
	debug    bool
}

func (cmd *Render) Name() string {
	return "render"
}

func (cmd *Render) Description() string {
	return "Generates the static site from the template and the downloaded CSV files"
}

func (cmd *Render) Usage() string {
	return "--template <dir> --data <dir> --site <dir>"
}

func (cmd *Render) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] render [options]\n", APP)
	fmt.Println()
	fmt.Println("  Copies the template assets and renders index.html from the categories in the data directory")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sitebuilder render --template "template" --data "data" --site "site"`)
	fmt.Println()
}

func (cmd *Render) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("render", flag.ExitOnError)

	flagset.StringVar(&cmd.template, "template", cmd.template, "Directory with the template document and static assets")
	flagset.StringVar(&cmd.data, "data", cmd.data, "Directory with the downloaded CSV files")
	flagset.StringVar(&cmd.site, "site", cmd.site, "Output directory for the rendered site")

	return flagset
}

func (cmd *Render) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := configuration(options)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.template) != "" {
		cfg.TemplateDir = cmd.template
	}

	if strings.TrimSpace(cmd.data) != "" {
		cfg.DataDir = cmd.data
	}

	if strings.TrimSpace(cmd.site) != "" {
		cfg.SiteDir = cmd.site
	}

	return render(cfg)
}

func render(cfg config.Config) error {
	renderer := site.Renderer{
		TemplateDir:  cfg.TemplateDir,
		TemplateFile: cfg.TemplateFile,
		DataDir:      cfg.DataDir,
		SiteDir:      cfg.SiteDir,
		Labels:       cfg.Labels,
		Ignore:       cfg.Ignore,
		IntroText:    cfg.IntroText,
		MetaContent:  cfg.MetaContent,
	}

	if err := renderer.Render(); err != nil {
		return err
	}

	infof("rendered site to %s", cfg.SiteDir)

	return nil
}
