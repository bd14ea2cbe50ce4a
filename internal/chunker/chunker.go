package chunker

import (
	"strings"
)

// TokenCounter - счётчик токенов, инжектится снаружи
// (см. internal/tokenizer). nil означает "токенизатор недоступен".
type TokenCounter interface {
	Count(text string) int
}

// SplitByTokens жадно разбивает текст на чанки, каждый не больше
// maxTokens токенов. Разрезы только по границам строк, строки сохраняют
// свой завершающий "\n", поэтому конкатенация чанков даёт исходный
// текст байт в байт.
//
// Деградация: maxTokens <= 0 или counter == nil -> весь текст одним
// чанком, без ошибок.
//
// Известное ограничение: строка, которая сама по себе больше бюджета,
// становится отдельным чанком и дальше не делится.
func SplitByTokens(text string, maxTokens int, counter TokenCounter) []string {
	if maxTokens <= 0 || counter == nil {
		return []string{text}
	}
	if text == "" {
		return []string{text}
	}

	var chunks []string
	current := ""
	for _, line := range splitLinesKeepEnds(text) {
		if counter.Count(current+line) <= maxTokens {
			current += line
			continue
		}
		if current != "" {
			chunks = append(chunks, current)
		}
		if counter.Count(line) > maxTokens {
			chunks = append(chunks, line)
			current = ""
		} else {
			current = line
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

// splitLinesKeepEnds режет текст на строки, сохраняя "\n".
// Последняя строка может быть без перевода строки.
func splitLinesKeepEnds(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
