//go:build cucumber

package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/cucumber/godog"
)

// TestBuildScenarios runs the quiz build feature scenarios.
func TestBuildScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "spec", "features", "quiz", "build.feature")
	suite := godog.TestSuite{
		Name:                "quiz-build",
		ScenarioInitializer: InitializeBuildScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeBuildScenario wires steps for build scenarios.
func InitializeBuildScenario(ctx *godog.ScenarioContext) {
	state := &buildScenarioState{}
	orig := input
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		input = orig
		return ctx, os.RemoveAll(state.dir)
	})

	ctx.Step(`^a quiz file with (\d+) questions$`, state.givenQuiz)
	ctx.Step(`^the website already exists$`, state.givenExistingWebsite)
	ctx.Step(`^I answer "([^"]*)" to the overwrite prompt$`, state.givenAnswer)
	ctx.Step(`^I run "([^"]+)"$`, state.whenIRun)
	ctx.Step(`^the command succeeds$`, state.thenSucceeds)
	ctx.Step(`^the command fails$`, state.thenFails)
	ctx.Step(`^the output says "([^"]+)"$`, state.thenOutputSays)
	ctx.Step(`^the errors say "([^"]+)"$`, state.thenErrorsSay)
	ctx.Step(`^no website is written$`, state.thenNoWebsite)
	ctx.Step(`^the website has a start page linking to "([^"]+)"$`, state.thenStartLinks)
	ctx.Step(`^question (\d+) links back to "([^"]+)"$`, state.thenPreviousLink)
	ctx.Step(`^question (\d+) links forward to "([^"]+)"$`, state.thenNextLink)
}

type buildScenarioState struct {
	dir      string
	quizPath string
	site     string
	code     int
	stdout   string
	stderr   string
}

// reset prepares a fresh scenario directory.
func (s *buildScenarioState) reset() error {
	dir, err := os.MkdirTemp("", "atomikwiz-build-")
	if err != nil {
		return err
	}
	*s = buildScenarioState{dir: dir, site: filepath.Join(dir, "website")}
	return nil
}

func (s *buildScenarioState) givenQuiz(count int) error {
	var b strings.Builder
	b.WriteString("Scenario quiz\ntitle: Scenario\ndate: 2024-01-01\nstatus: final\n")
	b.WriteString("img_prefix: img_00000\nimg_suffix: png\nquiz_path: ../images\n---\n")
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&b, "\nQuestion number %d?\n    a) = yes\n    b)   no\n", i)
	}
	s.quizPath = filepath.Join(s.dir, "quiz.txt")
	return os.WriteFile(s.quizPath, []byte(b.String()), 0o644)
}

func (s *buildScenarioState) givenExistingWebsite() error {
	return os.MkdirAll(s.site, 0o755)
}

func (s *buildScenarioState) givenAnswer(answer string) error {
	input = strings.NewReader(answer + "\n")
	return nil
}

func (s *buildScenarioState) whenIRun(command string) error {
	args := strings.Fields(command)
	args = append(args, "--output", s.site, "--config", s.configFile(), s.quizPath)
	var stdout, stderr bytes.Buffer
	s.code = Run(args, &stdout, &stderr)
	s.stdout = stdout.String()
	s.stderr = stderr.String()
	return nil
}

// configFile writes a scenario config so the user config is not picked up.
func (s *buildScenarioState) configFile() string {
	path := filepath.Join(s.dir, "atomikwiz.yml")
	_ = os.WriteFile(path, []byte("no_color: true\n"), 0o644)
	return path
}

func (s *buildScenarioState) thenSucceeds() error {
	if s.code != ExitOK {
		return fmt.Errorf("expected exit %d, got %d: %s", ExitOK, s.code, s.stderr)
	}
	return nil
}

func (s *buildScenarioState) thenFails() error {
	if s.code == ExitOK {
		return fmt.Errorf("expected failure, got exit %d", s.code)
	}
	return nil
}

func (s *buildScenarioState) thenOutputSays(text string) error {
	if !strings.Contains(s.stdout, text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout)
	}
	return nil
}

func (s *buildScenarioState) thenErrorsSay(text string) error {
	if !strings.Contains(s.stderr, text) {
		return fmt.Errorf("expected %q in errors, got %q", text, s.stderr)
	}
	return nil
}

func (s *buildScenarioState) thenNoWebsite() error {
	if _, err := os.Stat(s.site); !os.IsNotExist(err) {
		return fmt.Errorf("expected no website at %s", s.site)
	}
	return nil
}

func (s *buildScenarioState) thenStartLinks(href string) error {
	return s.expectLink("start.html", "a.start", href)
}

func (s *buildScenarioState) thenPreviousLink(n int, href string) error {
	return s.expectLink(filepath.Join("questions", fmt.Sprintf("q%d.html", n)), "a.previous", href)
}

func (s *buildScenarioState) thenNextLink(n int, href string) error {
	return s.expectLink(filepath.Join("questions", fmt.Sprintf("q%d.html", n)), "a.next", href)
}

func (s *buildScenarioState) expectLink(page, selector, href string) error {
	f, err := os.Open(filepath.Join(s.site, page))
	if err != nil {
		return err
	}
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return err
	}
	if got, _ := doc.Find(selector).Attr("href"); got != href {
		return fmt.Errorf("%s %s: expected href %q, got %q", page, selector, href, got)
	}
	return nil
}
