package droppath

import (
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"unicode"
)

// Пути, прилетающие через drag-and-drop, приходят в самых разных видах:
// file://-URI, percent-экранированные, в кавычках, с ~. Здесь всё это
// приводится к каноничному абсолютному пути.

var windowsDriveRe = regexp.MustCompile(`^/[A-Za-z]:`)

// ParseLine разбирает строку с брошенными путями и нормализует каждый
func ParseLine(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	tokens := SplitLine(line)
	paths := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		paths = append(paths, Normalize(tok))
	}
	return paths
}

// SplitLine делит строку на токены с учётом кавычек и пробелов
// (поведение shlex: на Windows без backslash-экранирования).
func SplitLine(line string) []string {
	var tokens []string
	var cur strings.Builder
	var quote rune
	escaped := false
	inToken := false
	posix := runtime.GOOS != "windows"

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case posix && r == '\\' && quote != '\'':
			escaped = true
			inToken = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || (posix && r == '\''):
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

// Normalize приводит один брошенный токен к абсолютному пути:
//   - file://-URI разворачивается в обычный путь
//   - percent-экранирование снимается
//   - на Windows убирается ведущий "/" перед буквой диска (/C:/...)
//   - ~ раскрывается в домашний каталог
func Normalize(p string) string {
	p = strings.TrimSpace(p)

	if u, err := url.Parse(p); err == nil && u.Scheme == "file" {
		// u.Path уже percent-декодирован самим url.Parse,
		// второй раз снимать экранирование нельзя
		p = u.Path
		if runtime.GOOS == "windows" && windowsDriveRe.MatchString(p) {
			p = strings.TrimLeft(p, "/")
		}
	} else if dec, err := url.PathUnescape(p); err == nil {
		p = dec
	}

	if p == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			p = home
		}
	} else if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}

	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return p
}
