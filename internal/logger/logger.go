package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level はログレベルを表す
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// sink は同じ出力先を共有するロガー間で共通の状態
type sink struct {
	mu       sync.Mutex
	out      io.Writer
	minLevel Level
}

// Logger はスコープ付きのロガー。
// With で作った子ロガーは親と出力先・レベルを共有する
type Logger struct {
	sink  *sink
	scope string
}

// Default はデフォルトのロガー。
// クイズの出力と混ざらないよう stderr に WARN 以上のみ出す
var Default = New(os.Stderr, LevelWarn)

// New は新しいロガーを作成する
func New(out io.Writer, minLevel Level) *Logger {
	return &Logger{
		sink: &sink{out: out, minLevel: minLevel},
	}
}

// With はスコープを付けた子ロガーを返す
func (l *Logger) With(scope string) *Logger {
	return &Logger{sink: l.sink, scope: scope}
}

// Scope はロガーのスコープを返す
func (l *Logger) Scope() string {
	return l.scope
}

// SetLevel はログレベルを設定する
func (l *Logger) SetLevel(level Level) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.minLevel = level
}

// Enabled は指定レベルが出力対象かを返す
func (l *Logger) Enabled(level Level) bool {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return level >= l.sink.minLevel
}

func (l *Logger) log(level Level, format string, args ...any) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < s.minLevel {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)

	if l.scope != "" {
		_, _ = fmt.Fprintf(s.out, "[%s] [%s] [%s] %s\n", timestamp, level, l.scope, msg)
	} else {
		_, _ = fmt.Fprintf(s.out, "[%s] [%s] %s\n", timestamp, level, msg)
	}
}

// Debug はデバッグログを出力する
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info は情報ログを出力する
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn は警告ログを出力する
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error はエラーログを出力する
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// グローバル関数（デフォルトロガーを使用）

// Debug はデバッグログを出力する
func Debug(format string, args ...any) {
	Default.Debug(format, args...)
}

// Info は情報ログを出力する
func Info(format string, args ...any) {
	Default.Info(format, args...)
}

// Warn は警告ログを出力する
func Warn(format string, args ...any) {
	Default.Warn(format, args...)
}

// Error はエラーログを出力する
func Error(format string, args ...any) {
	Default.Error(format, args...)
}
