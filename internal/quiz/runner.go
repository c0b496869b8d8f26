package quiz

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"task-classifier/internal/logger"
	"task-classifier/internal/metrics"

	"github.com/google/uuid"
)

// ErrInputClosed はプロンプト中に入力が尽きたことを表す
var ErrInputClosed = errors.New("input closed before all scenarios were answered")

// Outcome は1問分の採点結果
type Outcome struct {
	ScenarioID int
	Input      string // 読み取った生の行
	Given      Code   // 正規化後の回答
	Expected   Code
	Correct    bool
}

// Result はセッションの結果
type Result struct {
	SessionID string
	Correct   int
	Total     int
	Threshold int
	Passed    bool
	Outcomes  []Outcome
	Tally     metrics.Snapshot
}

// Score は "<correct>/<total>" 形式のスコアを返す
func (r *Result) Score() string {
	return fmt.Sprintf("%d/%d", r.Correct, r.Total)
}

// Runner はクイズの実行器
type Runner struct {
	catalog Catalog
	log     *logger.Logger
}

// New は新しいRunnerを作成する
func New(catalog Catalog) *Runner {
	return &Runner{
		catalog: catalog,
		log:     logger.Default,
	}
}

// SetLogger はロガーを設定する
func (r *Runner) SetLogger(l *logger.Logger) {
	r.log = l
}

// Run は全シナリオを1回ずつ出題し、最後にスコアを出力する。
// 入力が途中で尽きた場合は ErrInputClosed を返し、スコアは出力しない
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (*Result, error) {
	sessionID := uuid.NewString()
	log := r.log.With(sessionID)
	reader := bufio.NewReader(in)
	tally := metrics.New()

	result := &Result{
		SessionID: sessionID,
		Total:     len(r.catalog.Scenarios),
		Threshold: r.catalog.Threshold(),
		Outcomes:  make([]Outcome, 0, len(r.catalog.Scenarios)),
	}

	log.Debug("session started: %d scenarios, threshold %d", result.Total, result.Threshold)

	if r.catalog.Title != "" {
		_, _ = fmt.Fprintf(out, "\n--- %s ---\n\n", r.catalog.Title)
	}

	prompt := r.catalog.prompt()

	for _, s := range r.catalog.Scenarios {
		if err := ctx.Err(); err != nil {
			log.Debug("session cancelled before scenario %d", s.ID)
			return nil, err
		}

		_, _ = fmt.Fprintf(out, "Scenario %d:\n", s.ID)
		_, _ = fmt.Fprintf(out, "  %s\n", s.Description)
		_, _ = fmt.Fprintf(out, "  Clue: %s\n", s.Clue)
		_, _ = io.WriteString(out, prompt)

		line, err := readLine(reader)
		if err != nil {
			log.Debug("scenario %d: %v", s.ID, err)
			return nil, err
		}

		outcome := r.grade(s, line)
		result.Outcomes = append(result.Outcomes, outcome)

		name, _ := r.catalog.LabelName(s.Answer)
		if outcome.Correct {
			tally.RecordCorrect(string(s.Answer))
			_, _ = fmt.Fprintf(out, "  Correct! (%s)\n\n", name)
		} else {
			tally.RecordWrong(string(s.Answer))
			_, _ = fmt.Fprintf(out, "  Wrong. Correct answer: %s (%s)\n\n", s.Answer, name)
		}

		log.Debug("scenario %d: given=%q expected=%s correct=%v", s.ID, outcome.Given, s.Answer, outcome.Correct)
	}

	result.Tally = tally.Snapshot()
	result.Correct = tally.Correct()
	result.Passed = r.catalog.Passed(result.Correct)

	_, _ = fmt.Fprintf(out, "Score: %s\n", result.Score())
	if result.Passed {
		_, _ = fmt.Fprintln(out, r.catalog.PassMessage)
	} else {
		_, _ = fmt.Fprintln(out, r.catalog.FailMessage)
	}

	log.Debug("session finished: score %s, passed=%v", result.Score(), result.Passed)

	return result, nil
}

// grade は1問分の回答を採点する
func (r *Runner) grade(s Scenario, input string) Outcome {
	given := Normalize(input)
	return Outcome{
		ScenarioID: s.ID,
		Input:      input,
		Given:      given,
		Expected:   s.Answer,
		Correct:    given == s.Answer,
	}
}

// readLine は1行読み取る。改行なしの最終行も1行として扱う
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("failed to read answer: %w", err)
}
