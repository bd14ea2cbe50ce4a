package app

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"clipboarder/internal/annotate"
	"clipboarder/internal/chunker"
	"clipboarder/internal/clipboard"
)

// deliver - общий финал всех режимов: опциональная чистка пустых строк,
// разбиение по токенам и выдача в буфер обмена по одному чанку за раз.
// Пользователь сам задаёт темп: следующий чанк копируется после Enter,
// чтобы успеть вставить предыдущий.
func (a *App) deliver(text string, offerStrip bool) {
	if offerStrip && a.askStrip() {
		text = annotate.StripEmptyLines(text)
	}

	maxTokens := a.readTokenBudget()
	var counter chunker.TokenCounter
	if maxTokens > 0 {
		if c := a.tokens.Get(); c != nil {
			counter = c
		} else {
			log.Println("⚠️  Tokenizer not available. Copying all at once.")
			maxTokens = 0
		}
	}
	chunks := chunker.SplitByTokens(text, maxTokens, counter)
	if maxTokens > 0 {
		for range oversizeChunks(chunks, maxTokens, counter) {
			log.Println("⚠️  One line exceeds max token size; it becomes its own chunk.")
		}
	}

	if a.cfg.OutputFile != "" {
		if err := os.WriteFile(a.cfg.OutputFile, []byte(text), 0644); err != nil {
			log.Printf("⚠️  Failed to save output: %v", err)
		} else {
			log.Printf("💾 Output saved to: %s", a.cfg.OutputFile)
		}
	}

	if len(chunks) == 1 {
		if err := clipboard.Copy(chunks[0]); err != nil {
			log.Printf("⚠️  %v", err)
			return
		}
		log.Println("✅ All content copied to clipboard in one go.")
		return
	}

	for i, ch := range chunks {
		if err := clipboard.Copy(ch); err != nil {
			log.Printf("⚠️  %v", err)
			return
		}
		log.Printf("✅ [%d/%d] chunk copied to clipboard.", i+1, len(chunks))
		if i != len(chunks)-1 {
			if _, ok := a.readLine("Paste it, then press Enter for the next chunk..."); !ok {
				return
			}
		}
	}
	log.Println("✅ All chunks copied.")
}

// oversizeChunks возвращает индексы чанков-переростков: строка длиннее
// бюджета копируется целиком и дальше не делится, пользователя об этом
// предупреждаем.
func oversizeChunks(chunks []string, maxTokens int, counter chunker.TokenCounter) []int {
	var idxs []int
	for i, ch := range chunks {
		if counter.Count(ch) > maxTokens {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

func (a *App) askStrip() bool {
	hint := "y/N"
	if a.cfg.StripEmpty {
		hint = "Y/n"
	}
	ans, ok := a.readLine(fmt.Sprintf("Strip empty lines before copying? (%s): ", hint))
	if !ok {
		return a.cfg.StripEmpty
	}
	switch strings.ToLower(strings.TrimSpace(ans)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return a.cfg.StripEmpty
	}
}

// readTokenBudget читает бюджет токенов на чанк. Пустой ввод берёт
// значение из конфига, мусор отключает чанкование (как в один заход).
func (a *App) readTokenBudget() int {
	prompt := "Enter max token size to chunk (blank = no chunking): "
	if a.cfg.MaxTokens > 0 {
		prompt = fmt.Sprintf("Enter max token size to chunk (blank = %d, 0 = no chunking): ", a.cfg.MaxTokens)
	}
	raw, ok := a.readLine(prompt)
	if !ok {
		return a.cfg.MaxTokens
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return a.cfg.MaxTokens
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Println("→ Invalid number. Will copy everything in one shot.")
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}
