package commands

import (
	"flag"
	"fmt"
)

// Help lists the available commands or, given a command name, prints that
// command's long form help.
type Help struct {
	cli []Command
}

func NewHelp(cli []Command) *Help {
	return &Help{
		cli: cli,
	}
}

func (h *Help) Name() string {
	return "help"
}

func (h *Help) Description() string {
	return "Displays the help information"
}

func (h *Help) Usage() string {
	return "<command>"
}

func (h *Help) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s help <command>\n", APP)
	fmt.Println()
}

func (h *Help) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("help", flag.ExitOnError)
}

func (h *Help) Execute(args ...any) error {
	if flag.NArg() > 1 {
		for _, c := range h.cli {
			if c.Name() == flag.Arg(1) {
				c.Help()
				return nil
			}
		}

		return fmt.Errorf("invalid command '%s'", flag.Arg(1))
	}

	h.usage()

	return nil
}

func (h *Help) usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] <command> [options]\n", APP)
	fmt.Println()
	fmt.Println("  Commands:")

	for _, c := range h.cli {
		fmt.Printf("    %-9s %s\n", c.Name(), c.Description())
	}

	fmt.Printf("    %-9s %s\n", h.Name(), h.Description())
	fmt.Println()
}
