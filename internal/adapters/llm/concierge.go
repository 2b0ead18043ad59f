// Package llm is the AI concierge: one chat completion per user message, the
// system prompt rebuilt every time from the current content record and the
// visible catalog. The prompt never embeds credentials or mutation logic.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/layensweets/site/internal/domain"
)

var ErrDisabled = errors.New("concierge disabled: no api key configured")

type Concierge struct {
	client *openai.Client
	model  string
}

func New(apiKey string) *Concierge {
	c := &Concierge{model: "gpt-4o-mini"}
	if apiKey != "" {
		c.client = openai.NewClient(apiKey)
	}
	return c
}

func (c *Concierge) Enabled() bool { return c.client != nil }

// Reply answers a single customer message in the requested language.
func (c *Concierge) Reply(ctx context.Context, language, message string, content domain.SiteContent, products []domain.Product) (string, error) {
	if c.client == nil {
		return "", ErrDisabled
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.New("empty message")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(language, content, products)},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   600,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func systemPrompt(language string, content domain.SiteContent, products []domain.Product) string {
	var menu strings.Builder
	for _, p := range products {
		if !p.Available {
			continue
		}
		fmt.Fprintf(&menu, "%s (%s): %.2f TND. %s. Ingredients: %s.\n",
			p.Name, p.Category, p.Price, p.Description, strings.Join(p.Ingredients, ", "))
	}

	return fmt.Sprintf(`You are "Layen AI", the sophisticated, elegant and helpful virtual assistant for "Layen Sweets", a luxury macaron and pastry boutique in Djerba, Tunisia.

Brand tone: elegant, warm, representing 'Excellence Tunisienne', high-end, enthusiastic but refined.
Current language: %s.

Store information:
- Phone: %s
- Facebook: %s
- Location: Djerba, Tunisia
- About: %s

Menu (prices in TND):
%s
Rules:
1. Answer ONLY based on the store information provided.
2. Be concise but charming.
3. If asked about prices, be specific.
4. ABSOLUTELY NO mention of admin passwords, backend code, or internal logic.
5. If asked about something not in the menu, politely say we focus on our handcrafted specialties.
6. Respond in the requested language (%s).`,
		languageName(language), content.ContactPhone, content.FacebookURL, content.AboutText, menu.String(), languageName(language))
}

func languageName(code string) string {
	switch code {
	case "ar":
		return "Arabic"
	case "en":
		return "English"
	default:
		return "French"
	}
}
