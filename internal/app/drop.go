package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"clipboarder/internal/annotate"
	"clipboarder/internal/droppath"
)

// runDrop - режим 3: файлы перетаскиваются в терминал, накапливаются
// в списке и по команде S компилируются в один текст.
func (a *App) runDrop() {
	var staged []string

	fmt.Println("\n=== Drop Files Mode ===")
	fmt.Println("Instructions:")
	fmt.Println("  • Drag & drop file(s) into this window, then press Enter to add them.")
	fmt.Println("  • Or type a path manually. Use quotes if it contains spaces.")
	fmt.Println("  • Commands:  L=list, R=remove, C=clear, S=start, Q=back")
	fmt.Println()

	for {
		line, ok := a.readLine(fmt.Sprintf("[staged: %d] Drop files or command (L/R/C/S/Q): ", len(staged)))
		if !ok {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case cmd == "L":
			if len(staged) == 0 {
				fmt.Println("→ No files staged yet.")
				continue
			}
			fmt.Println("Currently staged files:")
			for i, p := range staged {
				fmt.Printf("  %3d. %s\n", i+1, p)
			}

		case isRemoveCommand(cmd):
			idxs := parseIndexes(strings.TrimSpace(line)[1:])
			if len(idxs) == 0 {
				fmt.Println("→ Usage: R <index> [more indices...]")
				continue
			}
			removed := 0
			for _, idx := range idxs {
				if idx >= 1 && idx <= len(staged) {
					staged = append(staged[:idx-1], staged[idx:]...)
					removed++
				}
			}
			fmt.Printf("→ Removed %d item(s).\n", removed)

		case cmd == "C":
			staged = nil
			fmt.Println("→ Cleared all staged files.")

		case cmd == "Q":
			return

		case cmd == "S":
			if len(staged) == 0 {
				fmt.Println("→ Nothing staged yet. Drop some files first.")
				continue
			}
			log.Printf("Found %d file(s) staged.", len(staged))
			a.deliver(annotate.Combine(staged), true)

		default:
			// всё остальное считаем списком брошенных путей
			added, skipped := 0, 0
			for _, p := range droppath.ParseLine(line) {
				fi, err := os.Stat(p)
				if err != nil || !fi.Mode().IsRegular() {
					// каталоги и несуществующие пути игнорируем,
					// для каталогов есть режим 1
					skipped++
					continue
				}
				if !containsString(staged, p) {
					staged = append(staged, p)
					added++
				}
			}
			fmt.Printf("→ Added %d file(s). Skipped %d non-file path(s).\n", added, skipped)
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
