package app

import (
	"bufio"
	"fmt"
	"os"

	"clipboarder/internal/config"
	"clipboarder/internal/tokenizer"
)

type App struct {
	cfg    *config.Config
	tokens *tokenizer.Provider
	in     *bufio.Scanner
}

func New(cfg *config.Config) (*App, error) {
	sc := bufio.NewScanner(os.Stdin)

	// Увеличим буфер: брошенная строка может содержать десятки путей
	const maxLineSize = 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	return &App{
		cfg:    cfg,
		tokens: tokenizer.NewProvider(cfg.TokenizerModel),
		in:     sc,
	}, nil
}

// readLine печатает приглашение и читает одну строку со stdin.
// false означает EOF или ошибку чтения.
func (a *App) readLine(prompt string) (string, bool) {
	fmt.Print(prompt)
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}
