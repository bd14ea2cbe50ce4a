package scanner

import (
	"regexp"
	"strings"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// GuessPattern строит практичный regex из простого текста пользователя
// (заточено под поиск по C#):
//   - Name или Name() -> \bName\s*\(   (похоже на вызов)
//   - A.B.C           -> \bA\.B\.C\b  (точечный путь)
//   - идентификатор   -> \bName\b
//   - явные regex-конструкции пропускаются как есть
//   - всё остальное экранируется буквально
func GuessPattern(userText string) string {
	s := strings.TrimSpace(userText)
	if s == "" {
		return ""
	}

	// есть скобка - скорее всего вызов метода
	if i := strings.Index(s, "("); i >= 0 {
		name := strings.TrimSpace(s[:i])
		if identifierRe.MatchString(name) {
			return `\b` + name + `\s*\(`
		}
		return regexp.QuoteMeta(s)
	}

	// точечный путь вроде Namespace.Class.Method
	if strings.Contains(s, ".") {
		parts := strings.Split(s, ".")
		allIdents := true
		for _, p := range parts {
			if !identifierRe.MatchString(p) {
				allIdents = false
				break
			}
		}
		if allIdents {
			return `\b` + strings.Join(parts, `\.`) + `\b`
		}
	}

	// пользователь сам написал regex - доверяем и не трогаем
	if strings.ContainsAny(s, `.*+?[]{}|()^$\`) {
		return s
	}

	if identifierRe.MatchString(s) {
		return `\b` + s + `\b`
	}

	return regexp.QuoteMeta(s)
}
