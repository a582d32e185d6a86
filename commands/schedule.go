package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var ScheduleCmd = Schedule{
	command: command{
		credentials: "",
		debug:       false,
	},

	every: 24 * time.Hour,
}

// Schedule runs the full build on a fixed interval, for unattended publishing
// without an external cron job. The first build runs immediately on startup.
type Schedule struct {
	command
	every time.Duration
}

func (cmd *Schedule) Name() string {
	return "schedule"
}

func (cmd *Schedule) Description() string {
	return "Runs the build periodically on a fixed interval"
}

func (cmd *Schedule) Usage() string {
	return "--credentials <file> --every <interval>"
}

func (cmd *Schedule) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] schedule [options]\n", APP)
	fmt.Println()
	fmt.Println("  Runs the full fetch/render/publish build immediately and then on every interval until interrupted")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sitebuilder schedule --credentials "credentials.json" --every 12h`)
	fmt.Println()
}

func (cmd *Schedule) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("schedule")

	flagset.DurationVar(&cmd.every, "every", cmd.every, "Interval between builds e.g. 12h")

	return flagset
}

func (cmd *Schedule) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := configuration(options)
	if err != nil {
		return err
	}

	cmd.merge(&cfg)

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler (%v)", err)
	}

	task := func() {
		if err := build(context.Background(), cfg, cmd.debug); err != nil {
			warnf("build failed (%v)", err)
		}
	}

	if _, err := scheduler.NewJob(
		gocron.DurationJob(cmd.every),
		gocron.NewTask(task),
		gocron.WithName("publish"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	); err != nil {
		return fmt.Errorf("failed to create build job (%v)", err)
	}

	scheduler.Start()

	infof("scheduled build every %v", cmd.every)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	return scheduler.Shutdown()
}
