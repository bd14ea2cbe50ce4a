package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func tenLines(match int, text string) string {
	var b strings.Builder
	for i := 1; i <= 10; i++ {
		if i == match {
			fmt.Fprintf(&b, "%s\n", text)
		} else {
			fmt.Fprintf(&b, "line %d\n", i)
		}
	}
	return b.String()
}

func TestFindReferences_ContextWindow(t *testing.T) {
	dir := t.TempDir()
	// совпадение на строке 5, окно before=2 after=1 -> строки 3..6
	writeFile(t, dir, "Program.cs", tenLines(5, "foo here"))

	snippets, err := FindReferences(dir, "foo", ".cs", 2, 1)
	require.NoError(t, err)
	require.Len(t, snippets, 1)

	want := strings.Repeat("=", 80) + "\n" +
		"Program.cs (line 5):\n" +
		"      3: line 3\n" +
		"      4: line 4\n" +
		">>    5: foo here\n" +
		"      6: line 6\n"
	assert.Equal(t, want, snippets[0])
}

func TestFindReferences_WindowClampedAtFileEdges(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Edge.cs", "foo\nmid\nfoo")

	snippets, err := FindReferences(dir, "foo", ".cs", 5, 5)
	require.NoError(t, err)
	require.Len(t, snippets, 2)

	// окно первой строки начинается со строки 1, последней - кончается на 3
	assert.Contains(t, snippets[0], ">>    1: foo\n")
	assert.Contains(t, snippets[0], "      3: foo\n")
	assert.True(t, strings.HasSuffix(snippets[1], ">>    3: foo\n"))
}

func TestFindReferences_InvalidRegex(t *testing.T) {
	snippets, err := FindReferences(t.TempDir(), "(unbalanced", ".cs", 3, 3)

	require.Error(t, err)
	var rerr *RegexError
	require.True(t, errors.As(err, &rerr), "ошибка должна быть различима как RegexError")
	assert.Equal(t, "(unbalanced", rerr.Pattern)
	assert.Nil(t, snippets)
}

func TestFindReferences_NoMatchesIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Empty.cs", "nothing interesting\n")

	snippets, err := FindReferences(dir, "absent_symbol", ".cs", 3, 3)

	require.NoError(t, err)
	assert.Empty(t, snippets)
}

func TestFindReferences_OneSnippetPerMatchingLine(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Multi.cs", "foo\nbar\nfoo\nbaz\nfoo\n")

	snippets, err := FindReferences(dir, "foo", ".cs", 0, 0)

	require.NoError(t, err)
	// три совпавших строки - три сниппета, окна не сливаются
	assert.Len(t, snippets, 3)
}

func TestFindReferences_RelativePathsInHeaders(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("sub", "Deep.cs"), "foo\n")

	snippets, err := FindReferences(dir, "foo", ".cs", 0, 0)

	require.NoError(t, err)
	require.Len(t, snippets, 1)
	// в заголовке путь относительно корня, абсолютный корень не утекает
	assert.Contains(t, snippets[0], filepath.Join("sub", "Deep.cs")+" (line 1):")
	assert.NotContains(t, snippets[0], dir)
}

func TestFindReferences_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Upper.CS", "foo\n")
	writeFile(t, dir, "skip.txt", "foo\n")

	snippets, err := FindReferences(dir, "foo", ".cs", 0, 0)

	require.NoError(t, err)
	// расширение матчится без учёта регистра, чужие расширения не сканируются
	require.Len(t, snippets, 1)
	assert.Contains(t, snippets[0], "Upper.CS")
}

func TestFindReferences_DeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.cs", "foo\n")
	writeFile(t, dir, "a.cs", "foo\n")

	snippets, err := FindReferences(dir, "foo", ".cs", 0, 0)

	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Contains(t, snippets[0], "a.cs (line 1):")
	assert.Contains(t, snippets[1], "b.cs (line 1):")
}

func TestFindReferences_AnchoredPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Anchored.cs", "using System;\nusing System.IO;\nnamespace X {}\n")

	// якоря должны видеть строку без завершающего "\n"
	snippets, err := FindReferences(dir, "^using System;$", ".cs", 0, 0)

	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.Contains(t, snippets[0], ">>    1: using System;\n")
}

func TestFindReferences_TrailingWhitespaceStripped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Ws.cs", "foo   \t\n")

	snippets, err := FindReferences(dir, "foo", ".cs", 0, 0)

	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.Contains(t, snippets[0], ">>    1: foo\n")
}
