// Package main is the entry point for the task type classifier quiz.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-classifier/internal/config"
	"task-classifier/internal/logger"
	"task-classifier/internal/quiz"
)

func main() {
	catalog, err := config.Default()
	if err != nil {
		logger.Error("設定エラー: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// シグナルハンドリング（読み取り待ちでも即座に終了する）
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
		fmt.Println()
		os.Exit(130)
	}()

	result, err := quiz.New(catalog).Run(ctx, os.Stdin, os.Stdout)
	if err != nil {
		if errors.Is(err, quiz.ErrInputClosed) {
			logger.Error("セッション中断: %v", err)
		} else {
			logger.Error("クイズ実行エラー: %v", err)
		}
		os.Exit(1)
	}

	logger.Debug("score %s, passed=%v", result.Score(), result.Passed)
}
