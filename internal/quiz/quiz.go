package quiz

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Code はタスク種別のラベルコード (BF, FS など)
type Code string

// Label はラベルコードと表示名の組
type Label struct {
	Code Code
	Name string
}

// Scenario はクイズ1問分のデータ
type Scenario struct {
	ID          int
	Description string
	Clue        string
	Answer      Code
}

// Catalog はシナリオ列とラベル定義をまとめたもの。実行中は変更しない
type Catalog struct {
	Title         string
	Labels        []Label
	Scenarios     []Scenario
	PassThreshold int // 0 の場合は len(Scenarios)-1
	PassMessage   string
	FailMessage   string
}

// LabelName はコードに対応する表示名を返す
func (c Catalog) LabelName(code Code) (string, bool) {
	for _, l := range c.Labels {
		if l.Code == code {
			return l.Name, true
		}
	}
	return "", false
}

// Codes は定義順のラベルコード一覧を返す
func (c Catalog) Codes() []Code {
	codes := make([]Code, 0, len(c.Labels))
	for _, l := range c.Labels {
		codes = append(codes, l.Code)
	}
	return codes
}

// Threshold は合格に必要な正解数を返す
func (c Catalog) Threshold() int {
	if c.PassThreshold > 0 {
		return c.PassThreshold
	}
	return max(len(c.Scenarios)-1, 0)
}

// Passed は正解数が合格ラインに達しているかを返す
func (c Catalog) Passed(correct int) bool {
	return correct >= c.Threshold()
}

// Normalize は回答文字列を比較用の正規形に変換する
func Normalize(input string) Code {
	return Code(cases.Upper(language.Und).String(strings.TrimSpace(input)))
}

// prompt は回答プロンプトを組み立てる
func (c Catalog) prompt() string {
	codes := make([]string, 0, len(c.Labels))
	for _, code := range c.Codes() {
		codes = append(codes, string(code))
	}
	return "  Your answer (" + strings.Join(codes, "/") + "): "
}
