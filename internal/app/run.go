package app

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
)

func (a *App) Run(ctx context.Context) error {
	log.Println("Application started")

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down application")
			return nil
		default:
		}

		fmt.Println("\n=== Choose Mode ===")
		fmt.Println("1) Copy files by extension")
		fmt.Println("2) Find references (with context) and copy snippets")
		fmt.Println("3) Drop files to compile/copy")
		fmt.Println("Q) Quit")

		line, ok := a.readLine("Your choice: ")
		if !ok {
			if err := a.in.Err(); err != nil {
				return fmt.Errorf("stdin error: %w", err)
			}
			log.Println("stdin closed")
			return nil
		}

		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "1":
			a.runExtScan()
		case "2":
			a.runRefs()
		case "3":
			a.runDrop()
		case "Q":
			log.Println("Quitting.")
			return nil
		case "":
			continue
		default:
			fmt.Println("→ Unknown option. Please type 1, 2, 3, or Q.")
		}
	}
}

// readIntDefault читает неотрицательное число, пустой ввод или мусор
// откатываются на значение по умолчанию
func (a *App) readIntDefault(label string, def int) int {
	raw, ok := a.readLine(fmt.Sprintf("%s (default = %d): ", label, def))
	if !ok {
		return def
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		fmt.Printf("→ Invalid number; using default = %d.\n", def)
		return def
	}
	return v
}

// isRemoveCommand распознаёт команду удаления: "R 2 5" или "R2,5".
// Голую R без индексов тоже принимаем, чтобы подсказать формат.
func isRemoveCommand(cmd string) bool {
	if !strings.HasPrefix(cmd, "R") {
		return false
	}
	rest := cmd[1:]
	return strings.TrimLeft(rest, "0123456789, \t") == ""
}

// parseIndexes разбирает индексы из хвоста команды R, убирает дубли
// и сортирует по убыванию (удалять надо с конца)
func parseIndexes(s string) []int {
	seen := map[int]bool{}
	for _, part := range strings.Fields(strings.ReplaceAll(s, ",", " ")) {
		if v, err := strconv.Atoi(part); err == nil {
			seen[v] = true
		}
	}
	idxs := make([]int, 0, len(seen))
	for v := range seen {
		idxs = append(idxs, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
	return idxs
}
