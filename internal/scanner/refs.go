package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// RegexError - невалидный пользовательский паттерн. Отдаём его
// отдельным типом, чтобы вызывающий код мог отличить ошибку ввода
// от всего остального (errors.As).
type RegexError struct {
	Pattern string
	Err     error
}

func (e *RegexError) Error() string {
	return fmt.Sprintf("invalid regex %q: %v", e.Pattern, e.Err)
}

func (e *RegexError) Unwrap() error {
	return e.Err
}

// FindReferences обходит root рекурсивно и ищет паттерн в каждой строке
// файлов с расширением ext (без учёта регистра). На каждую совпавшую
// строку - один сниппет с контекстом before/after строк:
//
//	================================================================================
//	relative/path/to/File.cs (line 47):
//	     45: ...
//	>>   47: совпавшая строка
//	     48: ...
//
// Пути в заголовках - относительно root, абсолютный корень наружу не
// утекает. Нечитаемые файлы пропускаются. Пустой результат - не ошибка.
//
// Паттерн компилируется до обхода; невалидный паттерн возвращает
// *RegexError, и файловая система не трогается.
func FindReferences(root, pattern, ext string, before, after int) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &RegexError{Pattern: pattern, Err: err}
	}
	if before < 0 {
		before = 0
	}
	if after < 0 {
		after = 0
	}

	var snippets []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// недоступный каталог/файл - пропускаем
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		lines := splitLinesKeepEnds(strings.ToValidUTF8(string(raw), ""))
		for idx, line := range lines {
			// матчим строку без завершающего "\n", иначе якорь $
			// никогда не сработает
			if re.MatchString(strings.TrimSuffix(line, "\n")) {
				snippets = append(snippets, formatSnippet(root, path, lines, idx, before, after))
			}
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", root, walkErr)
	}
	return snippets, nil
}

// formatSnippet рендерит одно совпадение с контекстным окном.
// Формат фиксированный: им пользуются уже существующие workflow,
// поэтому ">>", ширина номера 4 и линейка из 80 "=" - часть контракта.
func formatSnippet(root, path string, lines []string, idx, before, after int) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("=", 80))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s (line %d):\n", rel, idx+1)

	start := idx - before
	if start < 0 {
		start = 0
	}
	end := idx + after + 1
	if end > len(lines) {
		end = len(lines)
	}
	for i := start; i < end; i++ {
		prefix := "  "
		if i == idx {
			prefix = ">>"
		}
		fmt.Fprintf(&b, "%s %4d: %s\n", prefix, i+1, strings.TrimRightFunc(lines[i], unicode.IsSpace))
	}
	return b.String()
}

func splitLinesKeepEnds(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
