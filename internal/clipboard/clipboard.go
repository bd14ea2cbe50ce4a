package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Copy кладёт текст в системный буфер обмена. Ошибка не фатальна для
// вызывающего сценария - текст уже собран, о сбое просто сообщают.
func Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this platform")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	return nil
}
