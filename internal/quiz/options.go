package quiz

import (
	"strings"
	"unicode/utf8"
)

const (
	// OptionIndent is the prefix that marks a line as an option.
	OptionIndent = "    "
	// CorrectMarker flags a correct option when found at markerColumn.
	CorrectMarker = '='

	markerColumn = 7
	textOffset   = 3
)

// ExtractOptions converts raw option lines into options, deciding the
// question kind once every line has been seen.
func ExtractOptions(lines []Line) ([]Option, error) {
	options := make([]Option, 0, len(lines))
	correctCount := 0
	for index, line := range lines {
		if !utf8.ValidString(line.Text) {
			return nil, lineError(ErrOptionFormat, line, "option line is not valid UTF-8")
		}
		runes := []rune(line.Text)
		if len(runes) <= markerColumn {
			return nil, lineError(ErrOptionFormat, line, "option line is too short")
		}

		correct := runes[markerColumn] == CorrectMarker
		source := line.Text
		if correct {
			source = strings.Replace(source, string(CorrectMarker), "", 1)
			correctCount++
		}
		text := optionText(source)
		if text == "" {
			return nil, lineError(ErrOptionFormat, line, "option has no text")
		}
		options = append(options, Option{
			Text:    text,
			Index:   index,
			Kind:    KindSingle,
			Correct: correct,
		})
	}

	if correctCount > 1 {
		for i := range options {
			options[i].Kind = KindMulti
		}
	}
	return options, nil
}

// optionText drops the option label ("a) ") from a trimmed option line.
func optionText(line string) string {
	runes := []rune(strings.TrimSpace(line))
	if len(runes) <= textOffset {
		return ""
	}
	return strings.TrimSpace(string(runes[textOffset:]))
}
