package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"clipboarder/internal/scanner"
)

// runRefs - режим 2: поиск ссылок по regex с контекстным окном
// и копирование сниппетов.
func (a *App) runRefs() {
	fmt.Println("\n=== Find References ===")

	root, ok := a.readLine(fmt.Sprintf("Root folder (blank = %s): ", a.cfg.StartDir))
	if !ok {
		return
	}
	root = strings.TrimSpace(root)
	if root == "" {
		root = a.cfg.StartDir
	}
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		fmt.Printf("→ '%s' is not a valid directory. Using current directory instead.\n", root)
		root, _ = os.Getwd()
	}
	log.Printf("Searching under: %s", root)

	text, ok := a.readLine("Search text (identifier, Method( or regex): ")
	if !ok {
		return
	}
	guessed := scanner.GuessPattern(text)
	if guessed == "" {
		fmt.Println("→ No pattern provided. Returning to main menu.")
		return
	}
	fmt.Printf("Generated regex: %s\n", guessed)

	pattern, ok := a.readLine("Regex to use (Enter = generated): ")
	if !ok {
		return
	}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		pattern = guessed
	}

	before := a.readIntDefault("Lines of context BEFORE match", a.cfg.ContextBefore)
	after := a.readIntDefault("Lines of context AFTER match", a.cfg.ContextAfter)

	log.Println("Searching for references. This may take a moment...")
	snippets, err := scanner.FindReferences(root, pattern, a.cfg.RefsExt, before, after)
	if err != nil {
		var rerr *scanner.RegexError
		if errors.As(err, &rerr) {
			log.Printf("❌ Regex error: %v", rerr.Err)
		} else {
			log.Printf("❌ Search failed: %v", err)
		}
		return
	}
	if len(snippets) == 0 {
		fmt.Println("→ No references found for that pattern.")
		return
	}

	log.Printf("🔍 Found %d reference snippet(s)", len(snippets))
	a.deliver(strings.Join(snippets, "\n\n"), false)
}
