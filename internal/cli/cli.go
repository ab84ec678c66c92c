// Package cli wires the analysis presets to a go-flags command surface.
// Each subcommand maps 1:1 onto an Analyzer preset; no analysis logic
// lives here.
package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Domains *DomainsCommand
	Random  *RandomCommand
	Export  *ExportCommand
	Status  *StatusCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "dwell"
	parser.LongDescription = "Turn a browsing-history export into time-spent-per-domain reports."

	cmds := &commands{
		Domains: &DomainsCommand{globals: &globals, version: version},
		Random:  &RandomCommand{globals: &globals, version: version},
		Export:  &ExportCommand{globals: &globals, version: version},
		Status:  &StatusCommand{globals: &globals, version: version},
	}

	parser.AddCommand("domains", "Report time spent by domain", "Report time spent per domain, optionally filtered and broken down by month.", cmds.Domains)
	parser.AddCommand("random", "Report time spent on a random domain", "Pick one domain from the history at random and report time spent on it.", cmds.Random)
	parser.AddCommand("export", "Export the full history breakdown", "Export the full per-host, per-month breakdown to a file.", cmds.Export)
	parser.AddCommand("status", "Show input health and totals", "Show how many records loaded, how many were dropped, and the top domains by time spent.", cmds.Status)

	return parser, &globals, cmds
}

// Run is the main entry point for the dwell CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("dwell %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
