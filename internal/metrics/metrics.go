package metrics

import "slices"

// LabelStats はラベル単位の集計
type LabelStats struct {
	Code     string
	Attempts int
	Correct  int
}

// Accuracy はラベル単位の正答率を返す（0.0〜1.0）
func (s LabelStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// Tally は1セッション分の回答結果を集計する。
// ラベルは正解コードで分類する。単一ゴルーチンから使う前提
type Tally struct {
	attempts int
	correct  int
	labels   map[string]*LabelStats
	order    []string
}

// New は新しいTallyを作成する
func New() *Tally {
	return &Tally{
		labels: make(map[string]*LabelStats),
	}
}

func (t *Tally) label(code string) *LabelStats {
	s, ok := t.labels[code]
	if !ok {
		s = &LabelStats{Code: code}
		t.labels[code] = s
		t.order = append(t.order, code)
	}
	return s
}

// RecordCorrect は正解を記録する
func (t *Tally) RecordCorrect(expected string) {
	t.attempts++
	t.correct++
	s := t.label(expected)
	s.Attempts++
	s.Correct++
}

// RecordWrong は不正解を記録する
func (t *Tally) RecordWrong(expected string) {
	t.attempts++
	t.label(expected).Attempts++
}

// Attempts は回答数を返す
func (t *Tally) Attempts() int {
	return t.attempts
}

// Correct は正解数を返す
func (t *Tally) Correct() int {
	return t.correct
}

// Accuracy は全体の正答率を返す（0.0〜1.0）
func (t *Tally) Accuracy() float64 {
	if t.attempts == 0 {
		return 0
	}
	return float64(t.correct) / float64(t.attempts)
}

// Snapshot は集計のスナップショット
type Snapshot struct {
	Attempts int
	Correct  int
	Accuracy float64
	Labels   []LabelStats // 初出順
}

// Label はコードに対応するラベル集計を返す
func (s Snapshot) Label(code string) (LabelStats, bool) {
	i := slices.IndexFunc(s.Labels, func(l LabelStats) bool { return l.Code == code })
	if i < 0 {
		return LabelStats{}, false
	}
	return s.Labels[i], true
}

// Snapshot は現在の集計のスナップショットを返す
func (t *Tally) Snapshot() Snapshot {
	labels := make([]LabelStats, 0, len(t.order))
	for _, code := range t.order {
		labels = append(labels, *t.labels[code])
	}
	return Snapshot{
		Attempts: t.attempts,
		Correct:  t.correct,
		Accuracy: t.Accuracy(),
		Labels:   labels,
	}
}
