package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"parket-portal/internal/assistant"
	"parket-portal/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	config *config.GigaChatConfig
	logger *zap.Logger
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}

	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.Temperature = 0.3

	logger.Info("GigaChat model initialized", zap.String("model", cfg.Model))

	return &LLMService{
		client: client,
		model:  model,
		config: cfg,
		logger: logger,
	}, nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

// Invoke sends a single free-form prompt and returns the raw model answer.
func (s *LLMService) Invoke(ctx context.Context, prompt string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// RankTitles asks the model which knowledge base entries are relevant to
// the user message and returns their titles. A response that cannot be
// parsed into the expected shape is reported as
// assistant.ErrBadRankingResponse so the caller can degrade gracefully;
// transport failures propagate as-is.
func (s *LLMService) RankTitles(ctx context.Context, message string, items []assistant.RankedItem) ([]string, error) {
	itemsJSON, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal knowledge items: %w", err)
	}

	prompt := fmt.Sprintf(`Проанализируй запрос пользователя: "%s"

Вот список доступных элементов базы знаний:
%s

Определи, какие элементы наиболее релевантны запросу пользователя.

ВАЖНО: Верни ТОЛЬКО валидный JSON объект, без дополнительных комментариев или markdown разметки.

Формат ответа:
{"relevant_titles": ["название 1", "название 2"]}

ПРАВИЛА:
- В массив включай ТОЛЬКО точные значения поля title из списка выше
- Если ничего не подходит, верни {"relevant_titles": []}`, message, string(itemsJSON))

	content, err := s.Invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result struct {
		RelevantTitles []string `json:"relevant_titles"`
	}
	if err := s.parseJSONObject(content, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", assistant.ErrBadRankingResponse, err)
	}

	s.logger.Debug("Knowledge ranking completed", zap.Int("count", len(result.RelevantTitles)))

	return result.RelevantTitles, nil
}

// ExtractContent asks the model to structure raw text pulled out of an
// uploaded document into the fixed {"content": ...} shape.
func (s *LLMService) ExtractContent(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if len(text) < 10 {
		s.logger.Warn("Extracted text is too short, skipping structuring", zap.Int("length", len(text)))
		return text, nil
	}

	prompt := fmt.Sprintf(`Проанализируй текст документа и подготовь его содержимое для базы знаний: убери служебный мусор, сохрани все значимые факты, названия и цифры.

Текст документа:
%s

ВАЖНО: Верни ТОЛЬКО валидный JSON объект, без дополнительных комментариев или markdown разметки.

Формат ответа:
{"content": "очищенное содержимое документа"}`, text)

	content, err := s.Invoke(ctx, prompt)
	if err != nil {
		return "", err
	}

	var result struct {
		Content string `json:"content"`
	}
	if err := s.parseJSONObject(content, &result); err != nil {
		return "", fmt.Errorf("invalid extraction response: %w", err)
	}
	if result.Content == "" {
		return "", fmt.Errorf("invalid extraction response: empty content")
	}

	return result.Content, nil
}

// parseJSONObject pulls the first JSON object out of a model answer that may
// be wrapped in markdown fences or surrounded by commentary.
func (s *LLMService) parseJSONObject(content string, out interface{}) error {
	jsonStart := strings.Index(content, "{")
	jsonEnd := strings.LastIndex(content, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return fmt.Errorf("no JSON object in response: %s", content)
	}

	jsonStr := content[jsonStart : jsonEnd+1]

	if err := json.Unmarshal([]byte(jsonStr), out); err != nil {
		jsonStr = strings.TrimSpace(jsonStr)
		jsonStr = strings.TrimPrefix(jsonStr, "```json")
		jsonStr = strings.TrimPrefix(jsonStr, "```")
		jsonStr = strings.TrimSuffix(jsonStr, "```")
		jsonStr = strings.TrimSpace(jsonStr)

		if err := json.Unmarshal([]byte(jsonStr), out); err != nil {
			return fmt.Errorf("failed to parse JSON response: %w, content: %s", err, content)
		}
	}

	return nil
}
