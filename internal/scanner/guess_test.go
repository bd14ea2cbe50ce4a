package scanner

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessPattern(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"identifier", "SettingsManager", `\bSettingsManager\b`},
		{"call with paren", "SetDisplay(", `\bSetDisplay\s*\(`},
		{"call with both parens", "DoThingAsync()", `\bDoThingAsync\s*\(`},
		{"dotted path", "Namespace.Class.Method", `\bNamespace\.Class\.Method\b`},
		{"explicit regex passes through", `\bFoo\b`, `\bFoo\b`},
		{"anchored regex passes through", `^using System;$`, `^using System;$`},
		{"plain text escaped", "hello-world", "hello-world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GuessPattern(tt.in)

			assert.Equal(t, tt.want, got)
			if got != "" {
				// что бы мы ни вернули, это должен быть валидный regex
				_, err := regexp.Compile(got)
				require.NoError(t, err)
			}
		})
	}
}

func TestGuessPattern_MatchesIntendedLines(t *testing.T) {
	re := regexp.MustCompile(GuessPattern("SetDisplay("))

	assert.True(t, re.MatchString("    obj.SetDisplay (true);"))
	assert.False(t, re.MatchString("    obj.SetDisplayMode(true);"))

	re = regexp.MustCompile(GuessPattern("Config"))
	assert.True(t, re.MatchString("var c = new Config();"))
	assert.False(t, re.MatchString("var c = new ConfigLoader();"))
}
