package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/stayhomeandlearn/sitebuilder/commands"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.FetchCmd,
	&commands.RenderCmd,
	&commands.PublishCmd,
	&commands.BuildCmd,
	&commands.ScheduleCmd,
}

var options = commands.Options{
	Config: "",
	Debug:  false,
}

func main() {
	// a .env file is optional - AWS_PROFILE etc. may come from the environment
	godotenv.Load()

	flag.StringVar(&options.Config, "config", options.Config, "Configuration file path")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	help := commands.NewHelp(cli)

	cmd, err := commands.Parse(append(cli, help))
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute(&options)
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
