package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"parket-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	answer     string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubGenerator) Invoke(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	return s.answer, s.err
}

func newTestComposer(gen Generator) *Composer {
	return NewComposer(gen, "Вы - полезный ИИ-ассистент.", 5, 3, zap.NewNop())
}

func TestComposeProductExact(t *testing.T) {
	c := newTestComposer(&stubGenerator{})

	resp := c.ComposeProduct(Decision{
		Kind: DecisionExactProduct,
		Code: "ms110",
		Product: &models.Product{
			Name:       "Дуб натуральный",
			VendorCode: "MS110",
			Picture:    "https://cdn.example.ru/ms110.jpg",
			Price:      "3500",
		},
	})

	assert.Equal(t, PayloadProductInfo, resp.Payload.Kind)
	require.NotNil(t, resp.Payload.Product)
	assert.Equal(t, "3500 руб.", resp.Payload.Product.Price)
	require.Len(t, resp.Attachments, 1)
	assert.Equal(t, "image", resp.Attachments[0].Type)
}

func TestComposeProductSuggestions(t *testing.T) {
	c := newTestComposer(&stubGenerator{})

	resp := c.ComposeProduct(Decision{
		Kind: DecisionSimilarSuggestions,
		Code: "ms110",
		Suggestions: []models.Product{
			{VendorCode: "MS1101", Name: "Дуб беленый"},
			{VendorCode: "MS1102", Name: "Дуб копченый"},
		},
	})

	assert.Equal(t, PayloadPlainText, resp.Payload.Kind)
	assert.Contains(t, resp.Payload.Text, "MS110")
	assert.Contains(t, resp.Payload.Text, "🔸 **MS1101** — Дуб беленый")
	assert.Contains(t, resp.Payload.Text, "🔸 **MS1102** — Дуб копченый")
}

func TestComposeProductNotFound(t *testing.T) {
	c := newTestComposer(&stubGenerator{})

	resp := c.ComposeProduct(Decision{Kind: DecisionNotFound, Code: "zz99"})

	assert.Equal(t, PayloadPlainText, resp.Payload.Kind)
	assert.Contains(t, resp.Payload.Text, "ZZ99")
	assert.Contains(t, resp.Payload.Text, "не найдены")
}

func TestComposeKnowledgeSingleDiskCardOnDirectRequest(t *testing.T) {
	gen := &stubGenerator{}
	c := newTestComposer(gen)

	resp, err := c.ComposeKnowledge(context.Background(), "хочу скачать каталог", "", nil, []models.KnowledgeItem{
		{Title: "Каталог продукции", Type: models.KnowledgeTypeYandexDisk, URL: "https://disk.yandex.ru/d/catalog"},
		{Title: "Инструкция", Type: models.KnowledgeTypeDocument, Content: "текст"},
	})

	require.NoError(t, err)
	assert.Equal(t, PayloadDownloadLink, resp.Payload.Kind)
	require.NotNil(t, resp.Payload.Link)
	assert.Equal(t, `Вы можете скачать "Каталог продукции" по следующей ссылке`, resp.Payload.Link.Text)
	// Card paths never call the model
	assert.Equal(t, 0, gen.calls)
}

func TestComposeKnowledgeMultiDiskCards(t *testing.T) {
	c := newTestComposer(&stubGenerator{})

	resp, err := c.ComposeKnowledge(context.Background(), "скачать документы", "", nil, []models.KnowledgeItem{
		{Title: "Каталог", Type: models.KnowledgeTypeYandexDisk, URL: "https://disk.yandex.ru/d/1"},
		{Title: "Брендбук", Type: models.KnowledgeTypeYandexDisk, URL: "https://disk.yandex.ru/d/2"},
	})

	require.NoError(t, err)
	assert.Equal(t, PayloadMultiDownloadLinks, resp.Payload.Kind)
	require.NotNil(t, resp.Payload.Links)
	require.Len(t, resp.Payload.Links.Items, 2)
	assert.Equal(t, `Скачать "Каталог"`, resp.Payload.Links.Items[0].Text)
}

func TestComposeKnowledgeSmallAllDiskSetWithoutKeyword(t *testing.T) {
	gen := &stubGenerator{}
	c := newTestComposer(gen)

	// No download keyword, but the whole result is two disk items
	resp, err := c.ComposeKnowledge(context.Background(), "что есть по дубу", "", nil, []models.KnowledgeItem{
		{Title: "Каталог", Type: models.KnowledgeTypeYandexDisk, URL: "https://disk.yandex.ru/d/1"},
		{Title: "Брендбук", Type: models.KnowledgeTypeYandexDisk, URL: "https://disk.yandex.ru/d/2"},
	})

	require.NoError(t, err)
	assert.Equal(t, PayloadMultiDownloadLinks, resp.Payload.Kind)
	assert.Equal(t, 0, gen.calls)
}

func TestComposeKnowledgeLargeAllDiskSetGrounds(t *testing.T) {
	gen := &stubGenerator{answer: "Ответ по базе знаний"}
	c := newTestComposer(gen)

	items := []models.KnowledgeItem{
		{Title: "Д1", Type: models.KnowledgeTypeYandexDisk, URL: "https://disk.yandex.ru/d/1"},
		{Title: "Д2", Type: models.KnowledgeTypeYandexDisk, URL: "https://disk.yandex.ru/d/2"},
		{Title: "Д3", Type: models.KnowledgeTypeYandexDisk, URL: "https://disk.yandex.ru/d/3"},
		{Title: "Д4", Type: models.KnowledgeTypeYandexDisk, URL: "https://disk.yandex.ru/d/4"},
	}

	resp, err := c.ComposeKnowledge(context.Background(), "что есть по дубу", "", nil, items)

	require.NoError(t, err)
	assert.Equal(t, PayloadPlainText, resp.Payload.Kind)
	assert.Equal(t, "Ответ по базе знаний", resp.Payload.Text)
	assert.Equal(t, 1, gen.calls)
}

func TestComposeKnowledgeGroundedPromptContents(t *testing.T) {
	gen := &stubGenerator{answer: "ок"}
	c := newTestComposer(gen)

	history := []models.ChatMessage{
		{Role: models.MessageRoleUser, Content: "сообщение 1"},
		{Role: models.MessageRoleAssistant, Content: "ответ 1"},
		{Role: models.MessageRoleUser, Content: "сообщение 2"},
		{Role: models.MessageRoleAssistant, Content: "ответ 2"},
		{Role: models.MessageRoleUser, Content: "сообщение 3"},
		{Role: models.MessageRoleAssistant, Content: "ответ 3"},
	}

	_, err := c.ComposeKnowledge(context.Background(), "как укладывать", "Ты ассистент паркетной компании.", history, []models.KnowledgeItem{
		{Title: "Инструкция", Description: "укладка", Content: "текст", Type: models.KnowledgeTypeDocument, URL: "https://example.ru/doc"},
	})

	require.NoError(t, err)
	prompt := gen.lastPrompt
	assert.True(t, strings.HasPrefix(prompt, "Ты ассистент паркетной компании."))
	assert.Contains(t, prompt, "Источник: Инструкция")
	assert.Contains(t, prompt, "Ссылка на ресурс: https://example.ru/doc")
	assert.Contains(t, prompt, "Запрос пользователя: как укладывать")
	// Only the last five history turns survive
	assert.NotContains(t, prompt, "сообщение 1")
	assert.Contains(t, prompt, "ответ 1")
	assert.Contains(t, prompt, "ответ 3")
}

func TestComposeKnowledgeImageAttachments(t *testing.T) {
	gen := &stubGenerator{answer: "ок"}
	c := newTestComposer(gen)

	resp, err := c.ComposeKnowledge(context.Background(), "расскажи про укладку", "", nil, []models.KnowledgeItem{
		{Title: "Инструкция", Type: models.KnowledgeTypeDocument, ImageURL: "https://cdn.example.ru/pic.jpg"},
		{Title: "Статья", Type: models.KnowledgeTypeLink},
	})

	require.NoError(t, err)
	require.Len(t, resp.Attachments, 1)
	assert.Equal(t, "https://cdn.example.ru/pic.jpg", resp.Attachments[0].URL)
}

func TestComposeKnowledgeGeneratorErrorPropagates(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout")}
	c := newTestComposer(gen)

	_, err := c.ComposeKnowledge(context.Background(), "расскажи про укладку", "", nil, []models.KnowledgeItem{
		{Title: "Инструкция", Type: models.KnowledgeTypeDocument},
	})

	assert.Error(t, err)
}

func TestComposeClarificationUsesCatalogTitles(t *testing.T) {
	gen := &stubGenerator{answer: "Возможно, вас интересует каталог?"}
	c := newTestComposer(gen)

	resp, err := c.ComposeClarification(context.Background(), "ага", []models.KnowledgeItem{
		{Title: "Каталог продукции", Type: models.KnowledgeTypeYandexDisk},
		{Title: "Товарный фид", Type: models.KnowledgeTypeXMLFeed},
	})

	require.NoError(t, err)
	assert.Equal(t, PayloadPlainText, resp.Payload.Kind)
	assert.Contains(t, gen.lastPrompt, "Каталог продукции")
	assert.NotContains(t, gen.lastPrompt, "Товарный фид")
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3500", "3500 руб."},
		{"3500.50", "3500.50 руб."},
		{"3500,50", "3500,50 руб."},
		{"", "не указана"},
		{"договорная", "не указана"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPrice(tt.in), "price: %q", tt.in)
	}
}
