package render

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"atomikwiz/internal/quiz"
)

// Options configures a site build.
type Options struct {
	// Workers bounds concurrent question page renders; values below 1 mean 1.
	Workers int
	// Markdown renders question text lines as Markdown.
	Markdown bool
	// Observer receives page progress; nil discards it.
	Observer Observer
}

// Summary describes a finished build.
type Summary struct {
	Root      string
	Pages     int
	Bytes     int64
	Questions int
}

// Site renders a quiz into linked static pages.
type Site struct {
	engine Engine
	body   bodyFormatter
	opts   Options
	logger *zap.Logger
}

// NewSite returns a site renderer. A nil engine uses the templ engine and a
// nil logger discards logs.
func NewSite(engine Engine, logger *zap.Logger, opts Options) *Site {
	if engine == nil {
		engine = NewTemplEngine()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	var body bodyFormatter = plainBody{}
	if opts.Markdown {
		body = newMarkdownBody()
	}
	return &Site{engine: engine, body: body, opts: opts, logger: logger}
}

// Build writes the start page, one page per question and the end page into out.
func (s *Site) Build(ctx context.Context, out *OutputDir, q quiz.Quiz) (summary Summary, err error) {
	total := len(q.Questions)
	observer := s.opts.Observer
	observer.OnBuildStart(q.Frontmatter.Title, total+2)
	defer func() { observer.OnBuildEnd(summary, err) }()

	endIndex := total + 1
	for index := 0; index <= endIndex; index++ {
		observer.OnPage(PageEvent{Index: index, Path: pagePath(index, total), Status: PageQueued, EmittedAt: time.Now()})
	}

	if err := s.page(ctx, out, 0, TemplateStart, StartPage, StartContext(q.Frontmatter, total)); err != nil {
		return Summary{}, err
	}
	if err := s.page(ctx, out, endIndex, TemplateEnd, EndPath(), EndContext(q.Frontmatter)); err != nil {
		return Summary{}, err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.opts.Workers)
	for index, question := range q.Questions {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			body, err := s.body.Format(question.Body)
			if err != nil {
				err = &RenderError{Template: TemplateQuestion, Err: err}
				s.failed(index+1, QuestionPath(index), err)
				return err
			}
			data := QuestionContext(question, index, total, body)
			return s.page(groupCtx, out, index+1, TemplateQuestion, QuestionPath(index), data)
		})
	}
	if err := group.Wait(); err != nil {
		return Summary{}, err
	}

	summary = Summary{Root: out.Path(), Pages: out.Pages(), Bytes: out.Bytes(), Questions: total}
	s.logger.Info("built site",
		zap.String("root", summary.Root),
		zap.Int("pages", summary.Pages),
		zap.Int64("bytes", summary.Bytes))
	return summary, nil
}

func (s *Site) page(ctx context.Context, out *OutputDir, index int, template, target string, data Context) error {
	s.opts.Observer.OnPage(PageEvent{Index: index, Path: target, Status: PageRendering, EmittedAt: time.Now()})
	html, err := s.engine.Render(ctx, template, data)
	if err != nil {
		s.failed(index, target, err)
		return err
	}
	if err := out.WritePage(target, html); err != nil {
		err = fmt.Errorf("write page: %w", err)
		s.failed(index, target, err)
		return err
	}
	s.opts.Observer.OnPage(PageEvent{Index: index, Path: target, Status: PageWritten, Bytes: len(html), EmittedAt: time.Now()})
	s.logger.Debug("wrote page", zap.String("template", template), zap.String("path", target))
	return nil
}

func (s *Site) failed(index int, target string, err error) {
	s.opts.Observer.OnPage(PageEvent{Index: index, Path: target, Status: PageFailed, Error: err.Error(), EmittedAt: time.Now()})
}

// pagePath returns the site path of the page at a build index.
func pagePath(index, total int) string {
	switch {
	case index == 0:
		return StartPage
	case index > total:
		return EndPath()
	default:
		return QuestionPath(index - 1)
	}
}
