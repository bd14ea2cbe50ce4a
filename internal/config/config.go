package config

import (
	"github.com/caarlos0/env/v10"
)

type Config struct {
	StartDir       string `env:"START_DIR" envDefault:"."`
	RefsExt        string `env:"REFS_EXT" envDefault:".cs"`
	ContextBefore  int    `env:"CONTEXT_BEFORE" envDefault:"3"`
	ContextAfter   int    `env:"CONTEXT_AFTER" envDefault:"3"`
	MaxTokens      int    `env:"MAX_TOKENS" envDefault:"0"`
	StripEmpty     bool   `env:"STRIP_EMPTY" envDefault:"false"`
	TokenizerModel string `env:"TOKENIZER_MODEL" envDefault:"gpt-4o"`
	OutputFile     string
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}
