package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"atomikwiz/internal/config"
	"atomikwiz/internal/logger"
	"atomikwiz/internal/quiz"
	"atomikwiz/internal/render"
	"atomikwiz/internal/ui/console"
	"atomikwiz/internal/ui/live"
)

const keepWebsiteMessage = "Please try again after you have renamed/moved current website folder"

// runBuild builds the handler for the build command.
func runBuild(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		output := flags.String("output", "", "Directory to write the website to (default: ~/website)")
		shuffle := flags.Bool("shuffle", false, "Shuffle questions and their options")
		count := flags.Bool("count", false, "Print the number of questions and exit")
		force := flags.Bool("force", false, "Overwrite an existing website without asking")
		markdown := flags.Bool("markdown", false, "Render question text as Markdown")
		configPath := flags.String("config", "", "Path to config file (default: search for .atomikwiz.yml)")
		verbose := flags.Bool("verbose", false, "Write debug logs to stderr")
		noColor := flags.Bool("no-color", false, "Disable styled output")
		uiMode := flags.String("ui", "", "Build progress view (auto|live|plain)")
		if !parseArgs(cmd, flags, args, stderr) {
			return ExitUsage
		}
		quizPath, ok := singleArg(cmd, flags, "<quiz.txt>", stderr)
		if !ok {
			return ExitUsage
		}

		cfg, err := loadSettings(flags, *configPath, func(cfg *config.Config, name string) {
			switch name {
			case "output":
				cfg.OutputDir = *output
			case "shuffle":
				cfg.Shuffle = *shuffle
			case "force":
				cfg.AssumeYes = *force
			case "markdown":
				cfg.Markdown = *markdown
			case "verbose":
				cfg.Verbose = *verbose
			case "no-color":
				cfg.NoColor = *noColor
			case "ui":
				cfg.UI = *uiMode
			}
		})
		if err != nil {
			console.New(stderr, *noColor).Error("%v", err)
			return ExitError
		}
		out := console.New(stdout, cfg.NoColor)
		errOut := console.New(stderr, cfg.NoColor)
		log := logger.New(cfg, stderr)
		defer func() { _ = log.Sync() }()

		loader := quiz.Loader{Logger: log, Opts: quiz.ParseOptions{Shuffle: cfg.Shuffle}}
		parsed, err := loader.Load(quizPath)
		if err != nil {
			errOut.Error("%v", err)
			return ExitError
		}
		if *count {
			out.Info("%s", countMessage(len(parsed.Questions)))
			return ExitOK
		}

		ready, err := prepareOutput(cfg, out)
		if err != nil {
			errOut.Error("%v", err)
			return ExitError
		}
		if !ready {
			errOut.Warn("%s", keepWebsiteMessage)
			return ExitError
		}

		dir, err := render.OpenOutputDir(cfg.OutputDir)
		if err != nil {
			errOut.Error("%v", err)
			return ExitError
		}
		defer dir.Close()

		mode, err := resolveViewMode(cfg.UI, cfg.Verbose, stdout)
		if err != nil {
			errOut.Error("%v", err)
			return ExitError
		}
		if mode.fallback != "" {
			errOut.Warn("%s", mode.fallback)
		}
		opts := render.Options{Workers: cfg.Workers, Markdown: cfg.Markdown}
		var view *live.Controller
		if mode.live {
			view = live.Start(stdout, live.Options{NoColor: cfg.NoColor})
			opts.Observer = view
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		site := render.NewSite(render.NewTemplEngine(), log, opts)
		summary, err := site.Build(ctx, dir, parsed)
		view.Wait()
		if err != nil {
			errOut.Error("Build failed: %v", err)
			return ExitError
		}
		out.Success("Wrote %s (%s) to %s",
			english.Plural(summary.Pages, "page", ""),
			humanize.Bytes(uint64(summary.Bytes)),
			summary.Root)
		return ExitOK
	}
}

// prepareOutput clears an existing website once the user agrees. It reports
// false when the user keeps the old website.
func prepareOutput(cfg *config.Config, out *console.Sink) (bool, error) {
	info, err := os.Stat(cfg.OutputDir)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("check output dir: %w", err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("output %s exists and is not a directory", cfg.OutputDir)
	}
	if !cfg.AssumeYes {
		label := fmt.Sprintf("The website %s already exists. Overwrite it?", cfg.OutputDir)
		overwrite, err := promptYesNo(bufio.NewReader(input), out, label, false)
		if err != nil {
			return false, err
		}
		if !overwrite {
			return false, nil
		}
	}
	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return false, fmt.Errorf("remove old website: %w", err)
	}
	return true, nil
}

// countMessage reports the number of questions in a quiz.
func countMessage(n int) string {
	return "This quiz contains " + english.Plural(n, "question", "")
}
