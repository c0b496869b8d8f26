package quiz_test

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"task-classifier/internal/config"
	"task-classifier/internal/logger"
	"task-classifier/internal/quiz"
)

const (
	passLine = "Excellent! You can identify task types quickly."
	failLine = "Review REFERENCE.md and try again."
)

func referenceCatalog(t *testing.T) quiz.Catalog {
	t.Helper()
	catalog, err := config.Default()
	if err != nil {
		t.Fatalf("failed to load embedded scenarios: %v", err)
	}
	return catalog
}

func run(t *testing.T, catalog quiz.Catalog, input string) (*quiz.Result, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	result, err := quiz.New(catalog).Run(context.Background(), strings.NewReader(input), out)
	return result, out.String(), err
}

func answers(codes ...string) string {
	return strings.Join(codes, "\n") + "\n"
}

func TestRunAllCorrect(t *testing.T) {
	result, out, err := run(t, referenceCatalog(t), answers("BF", "FS", "MT", "DB", "BF", "DB"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Score() != "6/6" {
		t.Errorf("expected score 6/6, got %s", result.Score())
	}
	if !result.Passed {
		t.Error("expected pass")
	}
	if !strings.HasSuffix(out, "Score: 6/6\n"+passLine+"\n") {
		t.Errorf("unexpected ending:\n%s", out)
	}
	if strings.Count(out, "Correct! (") != 6 {
		t.Errorf("expected 6 confirmations, got %d", strings.Count(out, "Correct! ("))
	}
}

func TestRunCaseAndWhitespaceInsensitive(t *testing.T) {
	result, out, err := run(t, referenceCatalog(t), answers("bf", "  fs", "Mt  ", "\tdb", " bF ", "db\r"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Correct != 6 {
		t.Errorf("expected 6 correct, got %d", result.Correct)
	}
	if !strings.Contains(out, "Score: 6/6\n") {
		t.Errorf("expected score line, got:\n%s", out)
	}
}

func TestRunAllUnknown(t *testing.T) {
	result, out, err := run(t, referenceCatalog(t), answers("XX", "XX", "XX", "XX", "XX", "XX"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Score() != "0/6" {
		t.Errorf("expected score 0/6, got %s", result.Score())
	}
	if result.Passed {
		t.Error("expected fail")
	}
	if !strings.HasSuffix(out, "Score: 0/6\n"+failLine+"\n") {
		t.Errorf("unexpected ending:\n%s", out)
	}
}

func TestRunEmptyLinesAreWrong(t *testing.T) {
	result, out, err := run(t, referenceCatalog(t), strings.Repeat("\n", 6))
	if err != nil {
		t.Fatalf("empty input should not be an error: %v", err)
	}

	if result.Correct != 0 {
		t.Errorf("expected 0 correct, got %d", result.Correct)
	}
	if strings.Count(out, "  Wrong. Correct answer: ") != 6 {
		t.Errorf("expected 6 rejections, got:\n%s", out)
	}
}

func TestRunWrongLabelNamesTrueAnswer(t *testing.T) {
	catalog := referenceCatalog(t)

	for i, s := range catalog.Scenarios {
		for _, code := range catalog.Codes() {
			if code == s.Answer {
				continue
			}

			input := make([]string, len(catalog.Scenarios))
			for j, other := range catalog.Scenarios {
				input[j] = string(other.Answer)
			}
			input[i] = string(code)

			result, out, err := run(t, catalog, answers(input...))
			if err != nil {
				t.Fatalf("scenario %d with %s: unexpected error: %v", s.ID, code, err)
			}

			name, _ := catalog.LabelName(s.Answer)
			want := "  Wrong. Correct answer: " + string(s.Answer) + " (" + name + ")\n\n"
			if !strings.Contains(out, want) {
				t.Errorf("scenario %d with %s: expected %q in output", s.ID, code, want)
			}
			if result.Correct != len(catalog.Scenarios)-1 {
				t.Errorf("scenario %d with %s: expected %d correct, got %d", s.ID, code, len(catalog.Scenarios)-1, result.Correct)
			}
			if result.Outcomes[i].Correct {
				t.Errorf("scenario %d with %s: outcome should be wrong", s.ID, code)
			}
		}
	}
}

func TestRunThresholdBoundary(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		correct int
		passed  bool
		closing string
	}{
		{"five correct", answers("BF", "FS", "MT", "DB", "BF", "XX"), 5, true, passLine},
		{"four correct", answers("BF", "FS", "MT", "DB", "XX", "XX"), 4, false, failLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, out, err := run(t, referenceCatalog(t), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Correct != tt.correct {
				t.Errorf("expected %d correct, got %d", tt.correct, result.Correct)
			}
			if result.Passed != tt.passed {
				t.Errorf("expected passed=%v, got %v", tt.passed, result.Passed)
			}
			if !strings.HasSuffix(out, tt.closing+"\n") {
				t.Errorf("expected closing %q, got:\n%s", tt.closing, out)
			}
		})
	}
}

func TestRunTranscript(t *testing.T) {
	catalog := quiz.Catalog{
		Title: "Mini",
		Labels: []quiz.Label{
			{Code: "BF", Name: "Bug Fix"},
			{Code: "DB", Name: "Debugging"},
		},
		Scenarios: []quiz.Scenario{
			{ID: 1, Description: "first", Clue: "hint one", Answer: "BF"},
			{ID: 2, Description: "second", Clue: "hint two", Answer: "DB"},
		},
		PassMessage: "good",
		FailMessage: "again",
	}

	_, out, err := run(t, catalog, answers("bf", "BF"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "\n--- Mini ---\n\n" +
		"Scenario 1:\n" +
		"  first\n" +
		"  Clue: hint one\n" +
		"  Your answer (BF/DB):   Correct! (Bug Fix)\n\n" +
		"Scenario 2:\n" +
		"  second\n" +
		"  Clue: hint two\n" +
		"  Your answer (BF/DB):   Wrong. Correct answer: DB (Debugging)\n\n" +
		"Score: 1/2\n" +
		"good\n"

	if out != want {
		t.Errorf("transcript mismatch\n got: %q\nwant: %q", out, want)
	}
}

func TestRunVisitsScenariosInOrder(t *testing.T) {
	catalog := referenceCatalog(t)

	result, out, err := run(t, catalog, answers("BF", "FS", "MT", "DB", "BF", "DB"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Count(out, "Your answer (BF/FS/MT/DB): "); got != len(catalog.Scenarios) {
		t.Errorf("expected %d prompts, got %d", len(catalog.Scenarios), got)
	}

	last := -1
	for _, s := range catalog.Scenarios {
		idx := strings.Index(out, "Scenario "+strconv.Itoa(s.ID)+":\n")
		if idx <= last {
			t.Errorf("scenario %d printed out of order", s.ID)
		}
		last = idx
	}

	for i, o := range result.Outcomes {
		if o.ScenarioID != catalog.Scenarios[i].ID {
			t.Errorf("outcome %d: expected scenario %d, got %d", i, catalog.Scenarios[i].ID, o.ScenarioID)
		}
	}
}

func TestRunEndOfInput(t *testing.T) {
	result, out, err := run(t, referenceCatalog(t), answers("BF", "FS"))
	if !errors.Is(err, quiz.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
	if result != nil {
		t.Error("expected nil result on aborted session")
	}
	if strings.Contains(out, "Score:") {
		t.Error("aborted session must not print a score")
	}
	if !strings.Contains(out, "Scenario 3:\n") {
		t.Error("expected third scenario to be presented before abort")
	}
	if strings.Contains(out, "Scenario 4:") {
		t.Error("expected no scenarios after abort")
	}
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	result, _, err := run(t, referenceCatalog(t), "BF\nFS\nMT\nDB\nBF\nDB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Correct != 6 {
		t.Errorf("expected 6 correct, got %d", result.Correct)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &bytes.Buffer{}
	_, err := quiz.New(referenceCatalog(t)).Run(ctx, strings.NewReader(answers("BF")), out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if strings.Contains(out.String(), "Scenario 1:") {
		t.Error("expected no scenario output after cancellation")
	}
}

func TestRunTally(t *testing.T) {
	result, _, err := run(t, referenceCatalog(t), answers("BF", "XX", "MT", "DB", "FS", "DB"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Tally.Attempts != 6 || result.Tally.Correct != 4 {
		t.Errorf("expected tally 4/6, got %d/%d", result.Tally.Correct, result.Tally.Attempts)
	}

	bf, ok := result.Tally.Label("BF")
	if !ok {
		t.Fatal("expected BF tally")
	}
	if bf.Attempts != 2 || bf.Correct != 1 {
		t.Errorf("expected BF 1/2, got %d/%d", bf.Correct, bf.Attempts)
	}

	db, _ := result.Tally.Label("DB")
	if db.Attempts != 2 || db.Correct != 2 {
		t.Errorf("expected DB 2/2, got %d/%d", db.Correct, db.Attempts)
	}
}

func TestRunLogsToScopedLogger(t *testing.T) {
	logs := &bytes.Buffer{}
	runner := quiz.New(referenceCatalog(t))
	runner.SetLogger(logger.New(logs, logger.LevelDebug))

	out := &bytes.Buffer{}
	result, err := runner.Run(context.Background(), strings.NewReader(answers("BF", "FS", "MT", "DB", "BF", "DB")), out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SessionID == "" {
		t.Fatal("expected session id")
	}
	if !strings.Contains(logs.String(), "["+result.SessionID+"]") {
		t.Errorf("expected session id in logs, got:\n%s", logs.String())
	}
	if strings.Contains(out.String(), "[DEBUG]") {
		t.Error("logs must not be written to quiz output")
	}
}
