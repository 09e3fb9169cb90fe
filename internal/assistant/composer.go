package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"parket-portal/internal/models"

	"go.uber.org/zap"
)

// Generator is the external free-text LLM call used for grounded answers
// and clarification questions.
type Generator interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// downloadKeywords mark an explicit request to receive a file.
var downloadKeywords = []string{
	"скачать", "документ", "файл", "лого", "каталог", "инструкци", "сертификат", "брендбук", "презентац",
}

// Response is a composed assistant message: exactly one payload plus its
// attachments.
type Response struct {
	Payload     Payload
	Attachments []models.Attachment
}

// Composer turns router decisions and selector results into response
// payloads. It is the only producer of structured payload variants.
type Composer struct {
	gen          Generator
	systemPrompt string
	historyTail  int
	maxAutoCards int
	logger       *zap.Logger
}

func NewComposer(gen Generator, systemPrompt string, historyTail, maxAutoCards int, logger *zap.Logger) *Composer {
	return &Composer{
		gen:          gen,
		systemPrompt: systemPrompt,
		historyTail:  historyTail,
		maxAutoCards: maxAutoCards,
		logger:       logger,
	}
}

// ComposeProduct handles the product-lookup decisions that need no external
// call: exact match, prefix suggestions, not found.
func (c *Composer) ComposeProduct(d Decision) Response {
	switch d.Kind {
	case DecisionExactProduct:
		product := *d.Product
		payload := NewProductInfo(ProductInfo{
			Name:        product.Name,
			VendorCode:  product.VendorCode,
			Description: product.Description,
			Picture:     product.Picture,
			Price:       formatPrice(product.Price),
			Params:      product.Params,
		})
		var attachments []models.Attachment
		if product.Picture != "" {
			attachments = append(attachments, models.Attachment{
				Name: product.Name,
				URL:  product.Picture,
				Type: "image",
			})
		}
		return Response{Payload: payload, Attachments: attachments}

	case DecisionSimilarSuggestions:
		lines := make([]string, 0, len(d.Suggestions))
		for _, p := range d.Suggestions {
			lines = append(lines, fmt.Sprintf("🔸 **%s** — %s", p.VendorCode, p.Name))
		}
		text := fmt.Sprintf("Точного артикула %s не найдено, но есть похожие варианты:\n\n%s\n\nПожалуйста, уточните, какой именно артикул вас интересует, и я предоставлю подробную информацию о товаре.",
			strings.ToUpper(d.Code), strings.Join(lines, "\n"))
		return Response{Payload: NewPlainText(text)}

	default:
		text := fmt.Sprintf("Извините, артикул %s и похожие варианты не найдены в моей базе данных товаров.\n\nПожалуйста, проверьте правильность написания артикула или обратитесь к менеджеру для уточнения информации.",
			strings.ToUpper(d.Code))
		return Response{Payload: NewPlainText(text)}
	}
}

// ComposeNoSupplementary answers a supplementary-material request for which
// the knowledge search yielded nothing.
func (c *Composer) ComposeNoSupplementary(code string) Response {
	text := fmt.Sprintf("К сожалению, я не нашел дополнительных материалов (фото, текстуры, интерьерные решения) для артикула %s в базе знаний.\n\nПопробуйте обратиться к менеджеру или проверить наличие таких материалов в других источниках.",
		strings.ToUpper(code))
	return Response{Payload: NewPlainText(text)}
}

// ComposeKnowledge packages a non-empty selector result: download cards for
// yandex_disk items when asked for (or when the whole result is a small set
// of disk documents), a grounded LLM answer otherwise. An empty systemPrompt
// falls back to the configured default.
func (c *Composer) ComposeKnowledge(ctx context.Context, message, systemPrompt string, history []models.ChatMessage, items []models.KnowledgeItem) (Response, error) {
	var diskItems []models.KnowledgeItem
	allDisk := true
	for _, item := range items {
		if item.Type == models.KnowledgeTypeYandexDisk {
			diskItems = append(diskItems, item)
		} else {
			allDisk = false
		}
	}

	directRequest := containsDownloadKeyword(message)
	// The small-all-disk branch fires even without an explicit download
	// keyword. Kept as the product behaves; flagged for product review in
	// DESIGN.md.
	showCards := directRequest || (allDisk && len(diskItems) > 0 && len(diskItems) <= c.maxAutoCards)

	if showCards && len(diskItems) > 1 {
		links := make([]DownloadLinkItem, 0, len(diskItems))
		for _, item := range diskItems {
			links = append(links, DownloadLinkItem{
				Text:  fmt.Sprintf("Скачать \"%s\"", item.Title),
				URL:   item.URL,
				Title: item.Title,
			})
		}
		return Response{Payload: NewMultiDownloadLinks(links)}, nil
	}

	if showCards && len(diskItems) == 1 {
		item := diskItems[0]
		return Response{Payload: NewDownloadLink(DownloadLink{
			Text: fmt.Sprintf("Вы можете скачать \"%s\" по следующей ссылке", item.Title),
			URL:  item.URL,
		})}, nil
	}

	if systemPrompt == "" {
		systemPrompt = c.systemPrompt
	}
	prompt := buildGroundedPrompt(systemPrompt, message, history, items, c.historyTail)
	answer, err := c.gen.Invoke(ctx, prompt)
	if err != nil {
		return Response{}, fmt.Errorf("grounded answer generation failed: %w", err)
	}

	var attachments []models.Attachment
	for _, item := range items {
		if item.ImageURL != "" {
			attachments = append(attachments, models.Attachment{
				Name: item.Title,
				URL:  item.ImageURL,
				Type: "image",
			})
		}
	}

	return Response{Payload: NewPlainText(answer), Attachments: attachments}, nil
}

// ComposeClarification asks the LLM for a friendly disambiguating question
// naming a few plausible topics from the catalog.
func (c *Composer) ComposeClarification(ctx context.Context, message string, catalog []models.KnowledgeItem) (Response, error) {
	prompt := buildClarificationPrompt(message, catalog)
	answer, err := c.gen.Invoke(ctx, prompt)
	if err != nil {
		return Response{}, fmt.Errorf("clarification generation failed: %w", err)
	}
	return Response{Payload: NewPlainText(answer)}, nil
}

func containsDownloadKeyword(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range downloadKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// formatPrice appends the currency suffix to numeric prices; anything else
// renders as "не указана". Comma decimal separators are tolerated.
func formatPrice(price string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(price), ",", ".")
	if normalized == "" {
		return "не указана"
	}
	if _, err := strconv.ParseFloat(normalized, 64); err != nil {
		return "не указана"
	}
	return price + " руб."
}
