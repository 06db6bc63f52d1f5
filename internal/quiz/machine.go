package quiz

import (
	"fmt"
	"strings"
)

// parseState is the state of the question parser.
type parseState int

const (
	collectingText parseState = iota
	collectingOptions
)

// String returns the state name used in error messages.
func (s parseState) String() string {
	switch s {
	case collectingText:
		return "COLLECTING_TEXT"
	case collectingOptions:
		return "COLLECTING_OPTIONS"
	default:
		return fmt.Sprintf("parseState(%d)", int(s))
	}
}

// lineClass is the grammatical category of a body line.
type lineClass int

const (
	classBlank lineClass = iota
	classImage
	classOption
	classText
)

// classify assigns a body line to its grammatical category.
func classify(text string) lineClass {
	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		return classBlank
	case trimmed == ImageToken:
		return classImage
	case strings.HasPrefix(text, OptionIndent):
		return classOption
	default:
		return classText
	}
}

// action is what the parser does with a line after a transition.
type action int

const (
	actionIgnore action = iota
	actionFinalize
	actionAppendImage
	actionBufferOption
	actionAppendText
	actionReject
)

// transition is the pure transition function of the question parser.
func transition(state parseState, class lineClass) (parseState, action) {
	switch class {
	case classBlank:
		if state == collectingOptions {
			return collectingText, actionFinalize
		}
		return state, actionIgnore
	case classImage:
		return state, actionAppendImage
	case classOption:
		return collectingOptions, actionBufferOption
	default:
		if state == collectingOptions {
			return state, actionReject
		}
		return state, actionAppendText
	}
}
