package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"task-classifier/internal/quiz"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var embedded []byte

// 表示文言のデフォルト値
const (
	DefaultTitle       = "Task Type Classifier"
	DefaultPassMessage = "Excellent! You can identify task types quickly."
	DefaultFailMessage = "Review REFERENCE.md and try again."
)

var (
	ErrNoLabels        = errors.New("no labels defined")
	ErrNoScenarios     = errors.New("no scenarios defined")
	ErrDuplicateLabel  = errors.New("duplicate label code")
	ErrNonCanonical    = errors.New("label code is not in canonical form")
	ErrScenarioOrder   = errors.New("scenario ids must be sequential from 1")
	ErrUnknownAnswer   = errors.New("scenario answer is not a defined label")
	ErrInvalidScenario = errors.New("invalid scenario")
)

// FileConfig はシナリオ表の構造
type FileConfig struct {
	Title         string           `yaml:"title" json:"title"`
	PassThreshold int              `yaml:"pass_threshold" json:"pass_threshold"`
	Messages      MessagesConfig   `yaml:"messages" json:"messages"`
	Labels        []LabelConfig    `yaml:"labels" json:"labels"`
	Scenarios     []ScenarioConfig `yaml:"scenarios" json:"scenarios"`
}

// MessagesConfig は締めのメッセージ
type MessagesConfig struct {
	Pass string `yaml:"pass" json:"pass"`
	Fail string `yaml:"fail" json:"fail"`
}

// LabelConfig はラベル定義
type LabelConfig struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

// ScenarioConfig はシナリオ定義
type ScenarioConfig struct {
	ID          int    `yaml:"id" json:"id"`
	Description string `yaml:"description" json:"description"`
	Clue        string `yaml:"clue" json:"clue"`
	Answer      string `yaml:"answer" json:"answer"`
}

// Default は組み込みのシナリオ表を読み込み、検証してCatalogを返す
func Default() (quiz.Catalog, error) {
	cfg, err := Parse(embedded, "yaml")
	if err != nil {
		return quiz.Catalog{}, fmt.Errorf("embedded scenarios: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return quiz.Catalog{}, fmt.Errorf("embedded scenarios: %w", err)
	}
	return cfg.ToCatalog(), nil
}

// Parse はYAMLまたはJSONのバイト列をパースする
func Parse(data []byte, format string) (*FileConfig, error) {
	var config FileConfig

	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	return &config, nil
}

// LoadFile はシナリオ表ファイルを読み込む
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return Parse(data, ext)
}

// Validate はシナリオ表を検証する
func (f *FileConfig) Validate() error {
	if len(f.Labels) == 0 {
		return ErrNoLabels
	}

	codes := make(map[string]struct{}, len(f.Labels))
	for _, l := range f.Labels {
		if l.Code == "" || l.Name == "" {
			return fmt.Errorf("label %q: code and name are required", l.Code)
		}
		if string(quiz.Normalize(l.Code)) != l.Code {
			return fmt.Errorf("%w: %q", ErrNonCanonical, l.Code)
		}
		if _, dup := codes[l.Code]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateLabel, l.Code)
		}
		codes[l.Code] = struct{}{}
	}

	if len(f.Scenarios) == 0 {
		return ErrNoScenarios
	}

	for i, s := range f.Scenarios {
		if s.ID != i+1 {
			return fmt.Errorf("%w: position %d has id %d", ErrScenarioOrder, i+1, s.ID)
		}
		if s.Description == "" {
			return fmt.Errorf("%w: scenario %d has no description", ErrInvalidScenario, s.ID)
		}
		if _, ok := codes[s.Answer]; !ok {
			return fmt.Errorf("%w: scenario %d answer %q", ErrUnknownAnswer, s.ID, s.Answer)
		}
	}

	if f.PassThreshold < 0 || f.PassThreshold > len(f.Scenarios) {
		return fmt.Errorf("pass_threshold must be between 0 and %d", len(f.Scenarios))
	}

	return nil
}

// ToCatalog はFileConfigをquiz.Catalogに変換する
func (f *FileConfig) ToCatalog() quiz.Catalog {
	catalog := quiz.Catalog{
		Title:         DefaultTitle,
		PassThreshold: f.PassThreshold,
		PassMessage:   DefaultPassMessage,
		FailMessage:   DefaultFailMessage,
		Labels:        make([]quiz.Label, 0, len(f.Labels)),
		Scenarios:     make([]quiz.Scenario, 0, len(f.Scenarios)),
	}

	if f.Title != "" {
		catalog.Title = f.Title
	}
	if f.Messages.Pass != "" {
		catalog.PassMessage = f.Messages.Pass
	}
	if f.Messages.Fail != "" {
		catalog.FailMessage = f.Messages.Fail
	}

	for _, l := range f.Labels {
		catalog.Labels = append(catalog.Labels, quiz.Label{
			Code: quiz.Code(l.Code),
			Name: l.Name,
		})
	}

	for _, s := range f.Scenarios {
		catalog.Scenarios = append(catalog.Scenarios, quiz.Scenario{
			ID:          s.ID,
			Description: s.Description,
			Clue:        s.Clue,
			Answer:      quiz.Code(s.Answer),
		})
	}

	return catalog
}
