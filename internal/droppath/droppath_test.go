package droppath

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "/tmp/a /tmp/b", []string{"/tmp/a", "/tmp/b"}},
		{"double quotes", `"/tmp/with space/file.txt" /tmp/b`, []string{"/tmp/with space/file.txt", "/tmp/b"}},
		{"tabs and runs of spaces", "a\t \tb", []string{"a", "b"}},
		{"empty", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLine(tt.in))
		})
	}
}

func TestSplitLine_PosixQuoting(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix-only quoting")
	}

	assert.Equal(t, []string{"/tmp/a b"}, SplitLine("'/tmp/a b'"))
	assert.Equal(t, []string{"/tmp/a b"}, SplitLine(`/tmp/a\ b`))
}

func TestNormalize_FileURI(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	assert.Equal(t, "/tmp/foo bar.txt", Normalize("file:///tmp/foo%20bar.txt"))
	assert.Equal(t, "/tmp/plain.txt", Normalize("file:///tmp/plain.txt"))
	// экранирование снимается ровно один раз
	assert.Equal(t, "/tmp/a%20b.txt", Normalize("file:///tmp/a%2520b.txt"))
}

func TestNormalize_PercentDecodingWithoutScheme(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	assert.Equal(t, "/tmp/foo bar.txt", Normalize("/tmp/foo%20bar.txt"))
}

func TestNormalize_TildeExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, Normalize("~"))
	assert.Equal(t, filepath.Join(home, "docs", "a.txt"), Normalize("~/docs/a.txt"))
}

func TestNormalize_RelativeBecomesAbsolute(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cwd, "rel.txt"), Normalize("rel.txt"))
}

func TestParseLine(t *testing.T) {
	assert.Nil(t, ParseLine(""))
	assert.Nil(t, ParseLine("   "))

	if runtime.GOOS != "windows" {
		got := ParseLine(`file:///tmp/a%20b.txt "/tmp/c d.txt"`)
		assert.Equal(t, []string{"/tmp/a b.txt", "/tmp/c d.txt"}, got)
	}
}
