package quiz

import "math/rand/v2"

// ParseOptions controls the optional randomization of a parse.
type ParseOptions struct {
	// Shuffle permutes the options of every question and the question order.
	Shuffle bool
	// Rand is the randomness source for shuffling; nil uses the global source.
	Rand *rand.Rand
}

func (opts ParseOptions) shuffle(n int, swap func(i, j int)) {
	if opts.Rand != nil {
		opts.Rand.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}

// pendingQuestion accumulates the lines of the question being parsed.
type pendingQuestion struct {
	start       Line
	body        []string
	optionLines []Line
}

func (p pendingQuestion) empty() bool {
	return len(p.body) == 0 && len(p.optionLines) == 0
}

// questionParser walks body lines and emits finalized questions.
type questionParser struct {
	fm        Frontmatter
	opts      ParseOptions
	state     parseState
	pending   pendingQuestion
	images    int
	questions []Question
}

// ParseQuestions turns body lines into questions.
func ParseQuestions(body []Line, fm Frontmatter, opts ParseOptions) ([]Question, error) {
	parser := &questionParser{fm: fm, opts: opts, state: collectingText}
	for _, line := range body {
		if err := parser.step(line); err != nil {
			return nil, err
		}
	}
	if err := parser.finish(); err != nil {
		return nil, err
	}

	questions := parser.questions
	if opts.Shuffle {
		opts.shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}
	return questions, nil
}

func (p *questionParser) step(line Line) error {
	next, act := transition(p.state, classify(line.Text))
	if p.pending.empty() && act != actionIgnore {
		p.pending.start = line
	}
	switch act {
	case actionIgnore:
	case actionFinalize:
		if err := p.finalize(); err != nil {
			return err
		}
	case actionAppendImage:
		tag, err := imageTag(p.fm, p.images)
		if err != nil {
			return err
		}
		p.images++
		p.pending.body = append(p.pending.body, tag)
	case actionBufferOption:
		p.pending.optionLines = append(p.pending.optionLines, line)
	case actionAppendText:
		p.pending.body = append(p.pending.body, line.Text)
	case actionReject:
		return lineError(ErrMalformedQuestion, line, "question text after options; separate questions with a blank line")
	}
	p.state = next
	return nil
}

// finish finalizes a question left open at end of input.
func (p *questionParser) finish() error {
	switch {
	case p.state == collectingOptions:
		return p.finalize()
	case !p.pending.empty():
		return lineError(ErrMalformedQuestion, p.pending.start, "question has no options")
	}
	return nil
}

func (p *questionParser) finalize() error {
	raw := p.pending.optionLines
	if p.opts.Shuffle {
		p.opts.shuffle(len(raw), func(i, j int) { raw[i], raw[j] = raw[j], raw[i] })
	}
	options, err := ExtractOptions(raw)
	if err != nil {
		return err
	}
	p.questions = append(p.questions, Question{
		Title:   p.fm.Title,
		Label:   Legend,
		Body:    p.pending.body,
		Options: options,
	})
	p.pending = pendingQuestion{}
	return nil
}
