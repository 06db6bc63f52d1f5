package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"atomikwiz/internal/config"
)

// loadConfig is a test seam for reading configuration.
var loadConfig = config.Load

// loadSettings reads configuration and lets apply copy every flag the user
// set on top of it, so flags win over file and environment values.
func loadSettings(flags *flag.FlagSet, path string, apply func(cfg *config.Config, name string)) (*config.Config, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	flags.Visit(func(f *flag.Flag) {
		apply(cfg, f.Name)
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseArgs parses flags and reports usage problems on stderr.
func parseArgs(cmd *Command, flags *flag.FlagSet, args []string, stderr io.Writer) bool {
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return false
	}
	return true
}

// singleArg returns the one positional argument a command expects.
func singleArg(cmd *Command, flags *flag.FlagSet, name string, stderr io.Writer) (string, bool) {
	switch {
	case flags.NArg() == 0:
		fmt.Fprintf(stderr, "Missing %s\n", name)
		printCommandUsage(cmd, stderr)
		return "", false
	case flags.NArg() > 1:
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[1:], " "))
		printCommandUsage(cmd, stderr)
		return "", false
	}
	return flags.Arg(0), true
}
