package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"atomikwiz/internal/siteserver"
)

// serveSite is a test seam for running the site server.
var serveSite = siteserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		addr := flags.String("addr", "127.0.0.1:5000", "Address to listen on")
		if !parseArgs(cmd, flags, args, stderr) {
			return ExitUsage
		}
		siteDir, ok := singleArg(cmd, flags, "<site-dir>", stderr)
		if !ok {
			return ExitUsage
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}
		if _, err := os.Stat(siteDir); err != nil {
			fmt.Fprintf(stderr, "Website not found: %v\n", err)
			return ExitError
		}

		cfg := siteserver.Config{Addr: *addr, Root: siteDir}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		fmt.Fprintf(stdout, "Serving quiz at http://%s\n", cfg.Addr)
		if err := serveSite(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
