package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/stayhomeandlearn/sitebuilder/bucket"
	"github.com/stayhomeandlearn/sitebuilder/config"
)

var PublishCmd = Publish{
	site:    "",
	bucket:  "",
	profile: "",
}

type Publish struct {
	site    string
	bucket  string
	profile string
	debug   bool
}

func (cmd *Publish) Name() string {
	return "publish"
}

func (cmd *Publish) Description() string {
	return "Uploads the rendered site to the S3 bucket"
}

func (cmd *Publish) Usage() string {
	return "--site <dir> --bucket <bucket> --profile <profile>"
}

func (cmd *Publish) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] publish [options]\n", APP)
	fmt.Println()
	fmt.Println("  Uploads every file under the site directory to the bucket, keyed by its relative path")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sitebuilder publish --site "site" --bucket "dev-stayhomeandlearn.org" --profile "personal"`)
	fmt.Println()
}

func (cmd *Publish) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("publish", flag.ExitOnError)

	flagset.StringVar(&cmd.site, "site", cmd.site, "Directory with the rendered site")
	flagset.StringVar(&cmd.bucket, "bucket", cmd.bucket, "Destination S3 bucket")
	flagset.StringVar(&cmd.profile, "profile", cmd.profile, "AWS shared-config profile")

	return flagset
}

func (cmd *Publish) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := configuration(options)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.site) != "" {
		cfg.SiteDir = cmd.site
	}

	if strings.TrimSpace(cmd.bucket) != "" {
		cfg.Bucket = cmd.bucket
	}

	if strings.TrimSpace(cmd.profile) != "" {
		cfg.Profile = cmd.profile
	}

	return publish(context.Background(), cfg)
}

func publish(ctx context.Context, cfg config.Config) error {
	store, err := bucket.NewS3(ctx, cfg.Profile, cfg.Bucket)
	if err != nil {
		return err
	}

	publisher := bucket.Publisher{
		SiteDir:      cfg.SiteDir,
		ContentTypes: cfg.ContentTypes,
		Ignore:       cfg.Ignore,
	}

	if err := publisher.Publish(ctx, store); err != nil {
		return err
	}

	infof("published site to bucket '%s'", cfg.Bucket)

	return nil
}
