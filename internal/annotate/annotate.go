package annotate

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Combine читает каждый файл и склеивает содержимое в один текст,
// перед каждым файлом - строка-аннотация с его именем (только basename,
// полные пути в результат не попадают). Порядок - порядок входного
// списка, без сортировки.
//
// Нечитаемый файл не прерывает сборку: вместо содержимого в секцию
// подставляется предупреждение.
func Combine(paths []string) string {
	sections := make([]string, 0, len(paths))
	for _, path := range paths {
		header := fmt.Sprintf("# ===== File: %s =====\n", filepath.Base(path))
		content, err := ReadFileText(path)
		if err != nil {
			sections = append(sections, header+fmt.Sprintf("[Warning: Could not read '%s': %v]", path, err))
			continue
		}
		sections = append(sections, header+content)
	}
	return strings.Join(sections, "\n\n")
}

// StripEmptyLines убирает пустые строки и строки из одних пробелов.
// Идемпотентна.
func StripEmptyLines(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// FolderExt - пара "папка + расширение файлов"
type FolderExt struct {
	Folder string
	Ext    string
}

// NormalizeExt гарантирует ведущую точку в расширении
func NormalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// CollectFiles рекурсивно обходит каждую папку и собирает файлы
// с подходящим расширением. Возвращает общий отсортированный список.
// Недоступные каталоги пропускаются.
func CollectFiles(pairs []FolderExt) []string {
	var all []string
	for _, pair := range pairs {
		ext := NormalizeExt(pair.Ext)
		_ = filepath.WalkDir(pair.Folder, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if strings.HasSuffix(d.Name(), ext) {
				all = append(all, path)
			}
			return nil
		})
	}
	sort.Strings(all)
	return all
}
