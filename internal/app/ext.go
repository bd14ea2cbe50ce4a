package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"clipboarder/internal/annotate"
)

// runExtScan - режим 1: собрать пары "папка + расширение", обойти их
// рекурсивно и скопировать все подходящие файлы с аннотациями.
func (a *App) runExtScan() {
	fmt.Println("\n=== Copy Files by Extension ===")
	fmt.Println("Stage pairs one per line as:  <folder> || <ext>")
	fmt.Println("Commands:  L=list, R=remove, C=clear, S=start, Q=back")

	var pairs []annotate.FolderExt

	for {
		line, ok := a.readLine(fmt.Sprintf("[pairs: %d] Add pair or command (L/R/C/S/Q): ", len(pairs)))
		if !ok {
			return
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		cmd := strings.ToUpper(trimmed)
		switch {
		case cmd == "L":
			if len(pairs) == 0 {
				fmt.Println("→ No pairs staged yet.")
				continue
			}
			fmt.Println("Currently staged pairs:")
			for i, p := range pairs {
				fmt.Printf("  %3d. %s    (ext = '%s')\n", i+1, p.Folder, p.Ext)
			}

		case isRemoveCommand(cmd):
			idxs := parseIndexes(trimmed[1:])
			if len(idxs) == 0 {
				fmt.Println("→ Usage: R <index> [more indices...]")
				continue
			}
			removed := 0
			for _, idx := range idxs {
				if idx >= 1 && idx <= len(pairs) {
					pairs = append(pairs[:idx-1], pairs[idx:]...)
					removed++
				}
			}
			fmt.Printf("→ Removed %d pair(s).\n", removed)

		case cmd == "C":
			pairs = nil
			fmt.Println("→ Cleared all pairs.")

		case cmd == "Q":
			return

		case cmd == "S":
			if len(pairs) == 0 {
				fmt.Println("→ No pairs staged yet. Add at least one.")
				continue
			}
			files := annotate.CollectFiles(pairs)
			log.Printf("Found %d file(s) total across all selections.", len(files))
			if len(files) == 0 {
				fmt.Println("→ No files found with those extensions in the selected folders.")
				continue
			}
			a.deliver(annotate.Combine(files), true)
			return

		default:
			// не команда - пробуем разобрать как пару "папка || расширение"
			folder, ext, err := parsePair(trimmed)
			if err != nil {
				fmt.Printf("→ %v\n", err)
				continue
			}
			pair := annotate.FolderExt{Folder: folder, Ext: ext}
			if containsPair(pairs, pair) {
				fmt.Println("→ Already added that exact folder+extension pair.")
				continue
			}
			pairs = append(pairs, pair)
			fmt.Printf("→ Added: '%s'  with extension '%s'\n", folder, ext)
		}
	}
}

func parsePair(line string) (folder, ext string, err error) {
	parts := strings.SplitN(line, "||", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("use:  <folder> || <ext>   (e.g.  ./src || .go)")
	}
	folder = strings.TrimSpace(parts[0])
	ext = annotate.NormalizeExt(parts[1])
	if ext == "" {
		return "", "", fmt.Errorf("please provide an extension")
	}
	if fi, statErr := os.Stat(folder); statErr != nil || !fi.IsDir() {
		return "", "", fmt.Errorf("'%s' is not a valid directory", folder)
	}
	return folder, ext, nil
}

func containsPair(pairs []annotate.FolderExt, p annotate.FolderExt) bool {
	for _, q := range pairs {
		if q == p {
			return true
		}
	}
	return false
}
