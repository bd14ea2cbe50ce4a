package annotate

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ReadFileText читает файл как текст. Байты вне UTF-8 отбрасываются,
// чтобы один битый файл не валил всю сборку. Для .pdf извлекается
// плоский текст.
func ReadFileText(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return readPDFText(path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(raw), ""), nil
}

func readPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if _, err := io.Copy(&b, plain); err != nil {
		return "", err
	}
	return b.String(), nil
}
