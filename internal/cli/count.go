package cli

import (
	"flag"
	"io"

	"atomikwiz/internal/config"
	"atomikwiz/internal/quiz"
	"atomikwiz/internal/ui/console"
)

// runCount builds the handler for the count command.
func runCount(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .atomikwiz.yml)")
		noColor := flags.Bool("no-color", false, "Disable styled output")
		if !parseArgs(cmd, flags, args, stderr) {
			return ExitUsage
		}
		quizPath, ok := singleArg(cmd, flags, "<quiz.txt>", stderr)
		if !ok {
			return ExitUsage
		}

		cfg, err := loadSettings(flags, *configPath, func(cfg *config.Config, name string) {
			if name == "no-color" {
				cfg.NoColor = *noColor
			}
		})
		if err != nil {
			console.New(stderr, *noColor).Error("%v", err)
			return ExitError
		}

		parsed, err := quiz.Load(quizPath, quiz.ParseOptions{})
		if err != nil {
			console.New(stderr, cfg.NoColor).Error("%v", err)
			return ExitError
		}
		console.New(stdout, cfg.NoColor).Info("%s", countMessage(len(parsed.Questions)))
		return ExitOK
	}
}
