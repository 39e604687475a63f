package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

// TextGenerator определяет интерфейс генерации текста.
// Позволяет подменять SDK моками в тестах.
type TextGenerator interface {
	GenerateText(ctx context.Context, model string, prompt string, cfg *genai.GenerateContentConfig) (string, error)
}

// ClipGenerator определяет интерфейс запроса видеореконструкции.
type ClipGenerator interface {
	GenerateClip(ctx context.Context, model string, prompt string) (*ClipResult, error)
}

// ClipResult — разобранный ответ на запрос видео. Поля заполняются по тому,
// что реально пришло в ответе: встроенные данные, ссылка на файл или только текст.
type ClipResult struct {
	MIMEType  string
	DataSize  int
	FileURI   string
	Narrative string
}

// HasMedia сообщает, содержит ли результат сгенерированные медиаданные.
func (r *ClipResult) HasMedia() bool {
	return r.DataSize > 0 || r.FileURI != ""
}

// Client инкапсулирует работу с Gemini API через официальный SDK.
type Client struct {
	client *genai.Client
}

var (
	_ TextGenerator = (*Client)(nil)
	_ ClipGenerator = (*Client)(nil)
)

// NewClient создаёт клиент с явно переданным ключом API.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client}, nil
}

const (
	maxRetries = 3
	baseDelay  = 2 * time.Second
	// При перегрузке модели (503) пауза длиннее экспоненциальной.
	overloadedDelay = time.Minute
)

// GenerateText отправляет промпт и возвращает текстовый ответ модели.
// Временные ошибки (429, 500, 502, 503, 504) повторяются с паузой; исчерпание
// квоты и прочие ошибки возвращаются сразу.
func (c *Client) GenerateText(ctx context.Context, model string, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := baseDelay << (attempt - 1)
			if isOverloadedError(lastErr) {
				delay = overloadedDelay
			}
			log.Printf("Retrying Gemini request (attempt %d/%d) after %v: %v", attempt+1, maxRetries, delay, lastErr)

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		result, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
		if err == nil {
			text, textErr := result.Text()
			if textErr != nil {
				return "", fmt.Errorf("get text from result: %w", textErr)
			}
			return text, nil
		}

		lastErr = err

		if isQuotaError(err) {
			return "", fmt.Errorf("gemini quota exceeded: %w", err)
		}
		if !isRetryableError(err) {
			return "", fmt.Errorf("generate content: %w", err)
		}
	}

	return "", fmt.Errorf("max retries exceeded: %w", lastErr)
}

// GenerateClip отправляет «режиссёрский» промпт и разбирает ответ по частям:
// встроенные медиаданные, ссылка на файл или текстовое повествование.
// Без повторов: запрос видео дорогой, а сбой и так деградирует до заглушки.
func (c *Client) GenerateClip(ctx context.Context, model string, prompt string) (*ClipResult, error) {
	result, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("generate clip: %w", err)
	}

	clip := &ClipResult{}
	var narrative strings.Builder

	for _, candidate := range result.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			switch {
			case part.InlineData != nil && len(part.InlineData.Data) > 0:
				if clip.DataSize == 0 {
					clip.MIMEType = part.InlineData.MIMEType
					clip.DataSize = len(part.InlineData.Data)
				}
			case part.FileData != nil && part.FileData.FileURI != "":
				if clip.FileURI == "" {
					clip.FileURI = part.FileData.FileURI
				}
			case part.Text != "":
				narrative.WriteString(part.Text)
			}
		}
	}

	clip.Narrative = strings.TrimSpace(narrative.String())
	return clip, nil
}

// isRetryableError — временные ошибки: rate limit и 5xx от сервиса.
func isRetryableError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "too many requests") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "500") ||
		strings.Contains(msg, "502") ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "504") ||
		strings.Contains(msg, "internal server error") ||
		strings.Contains(msg, "bad gateway") ||
		strings.Contains(msg, "gateway timeout") ||
		strings.Contains(msg, "overloaded")
}

func isOverloadedError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "503") ||
		strings.Contains(msg, "service unavailable") ||
		strings.Contains(msg, "overloaded")
}

func isQuotaError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") || strings.Contains(msg, "daily limit")
}
