package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"clipboarder/internal/annotate"
	"clipboarder/internal/app"
	"clipboarder/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Парсим флаги командной строки
	startDir := flag.String("start-dir", "", "Starting directory for folder prompts")
	maxTokens := flag.Int("max-tokens", -1, "Default max tokens per chunk (0 = no chunking)")
	refsExt := flag.String("refs-ext", "", "File extension for reference search (default .cs)")
	outputFile := flag.String("output", "", "Also save the combined text to this file (optional)")
	flag.Parse()

	// Прокидываем флаги через env, чтобы их подхватил config.Init
	if *startDir != "" {
		os.Setenv("START_DIR", *startDir)
	}
	if *maxTokens >= 0 {
		os.Setenv("MAX_TOKENS", strconv.Itoa(*maxTokens))
	}
	if *refsExt != "" {
		os.Setenv("REFS_EXT", *refsExt)
	}

	// Загружаем .env (опционально)
	_ = godotenv.Load()

	// Загружаем конфиг
	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.OutputFile = *outputFile
	cfg.RefsExt = annotate.NormalizeExt(cfg.RefsExt)

	// Проверяем стартовую директорию, битую заменяем на текущую
	if fi, err := os.Stat(cfg.StartDir); err != nil || !fi.IsDir() {
		log.Printf("→ %q is not a valid directory. Using current directory instead.", cfg.StartDir)
		cfg.StartDir, _ = os.Getwd()
	} else if abs, err := filepath.Abs(cfg.StartDir); err == nil {
		cfg.StartDir = abs
	}

	log.Printf("Start directory: %s", cfg.StartDir)

	// Создаём app
	a, err := app.New(&cfg)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	// Контекст с сигналами завершения
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	// Запускаем приложение
	if err := a.Run(ctx); err != nil {
		log.Fatalf("app stopped with error: %v", err)
	}
}
