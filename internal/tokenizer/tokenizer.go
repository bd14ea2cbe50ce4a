package tokenizer

import (
	"log"
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Counter считает токены в тексте
type Counter interface {
	Count(text string) int
}

// Provider лениво резолвит tiktoken-энкодер для заданной модели.
// Если энкодер недоступен (нет словаря, ошибка инициализации) -
// Get() навсегда возвращает nil, и чанкование отключается.
type Provider struct {
	model string

	once sync.Once
	enc  *tiktoken.Tiktoken
}

// NewProvider создаёт провайдер, резолв происходит при первом Get()
func NewProvider(model string) *Provider {
	return &Provider{model: model}
}

// Get возвращает Counter или nil, если токенизатор недоступен.
// Никогда не паникует и не возвращает ошибку.
func (p *Provider) Get() Counter {
	p.once.Do(func() {
		enc, err := tiktoken.EncodingForModel(p.model)
		if err != nil {
			log.Printf("⚠️  Tokenizer for %q unavailable: %v", p.model, err)
			return
		}
		p.enc = enc
	})
	if p.enc == nil {
		return nil
	}
	return p
}

func (p *Provider) Count(text string) int {
	return len(p.enc.Encode(text, nil, nil))
}
