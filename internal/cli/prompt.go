package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"atomikwiz/internal/ui/console"
)

// input is a test seam for answering prompts.
var input io.Reader = os.Stdin

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptYesNo prompts for a yes/no response with a default. End of input
// takes the default.
func promptYesNo(reader *bufio.Reader, sink *console.Sink, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		sink.Prompt("%s [%s]: ", label, suffix)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return false, err
		}
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err == io.EOF {
			return defaultYes, nil
		}
		sink.Warn("Please answer yes or no.")
	}
}
