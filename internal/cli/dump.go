package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"atomikwiz/internal/quiz"
)

// runDump builds the handler for the dump command.
func runDump(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		format := flags.String("format", "yaml", "Output format (yaml|json)")
		shuffle := flags.Bool("shuffle", false, "Shuffle questions and their options")
		if !parseArgs(cmd, flags, args, stderr) {
			return ExitUsage
		}
		quizPath, ok := singleArg(cmd, flags, "<quiz.txt>", stderr)
		if !ok {
			return ExitUsage
		}
		if *format != "yaml" && *format != "json" {
			fmt.Fprintf(stderr, "invalid format %q (expected yaml|json)\n", *format)
			return ExitUsage
		}

		parsed, err := quiz.Load(quizPath, quiz.ParseOptions{Shuffle: *shuffle})
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitError
		}
		if err := writeQuiz(stdout, parsed, *format); err != nil {
			fmt.Fprintf(stderr, "dump quiz: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// writeQuiz encodes a quiz in the requested format.
func writeQuiz(w io.Writer, parsed quiz.Quiz, format string) error {
	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(parsed)
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(parsed); err != nil {
		return err
	}
	return encoder.Close()
}
