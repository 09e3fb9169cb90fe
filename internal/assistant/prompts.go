package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"parket-portal/internal/models"
)

const answerRules = `Твоя главная задача — предоставлять пользователю точную информацию и прямые ссылки на материалы из базы знаний. Внимательно изучи предоставленный контекст.

ПРАВИЛА ОТВЕТА:
1. Отвечай СТРОГО на основе предоставленного контекста из базы знаний.
2. Если в контексте для какого-либо материала (статьи, инструкции, товара) есть "Ссылка на ресурс" или "Ссылка на файл", ты ОБЯЗАН включить эту ссылку в свой ответ. Форматируй ссылки как кликабельные, например: [Название ссылки](URL).
3. Если ссылок несколько, предоставь их все.
4. Не придумывай информацию. Если ответа нет в контексте, сообщи об этом.`

// buildKnowledgeContext renders selected items into the grounded-answer
// context block.
func buildKnowledgeContext(items []models.KnowledgeItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		var b strings.Builder
		fmt.Fprintf(&b, "Источник: %s\nОписание: %s\nСодержимое: %s", item.Title, item.Description, item.Content)
		if item.URL != "" {
			fmt.Fprintf(&b, "\nСсылка на ресурс: %s", item.URL)
		}
		if item.FileURL != "" {
			fmt.Fprintf(&b, "\nСсылка на файл: %s", item.FileURL)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// buildHistoryTail renders the last n chat turns as "role: content" lines.
func buildHistoryTail(history []models.ChatMessage, n int) string {
	if len(history) > n {
		history = history[len(history)-n:]
	}
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}
	return strings.Join(lines, "\n")
}

func buildGroundedPrompt(systemPrompt, message string, history []models.ChatMessage, items []models.KnowledgeItem, historyTail int) string {
	return fmt.Sprintf("%s\n\n%s\n\nКонтекст из базы знаний:\n%s\n\nИстория чата:\n%s\n\nЗапрос пользователя: %s",
		systemPrompt,
		answerRules,
		buildKnowledgeContext(items),
		buildHistoryTail(history, historyTail),
		message,
	)
}

func buildClarificationPrompt(message string, catalog []models.KnowledgeItem) string {
	var titles []string
	for _, item := range catalog {
		if item.Type != models.KnowledgeTypeXMLFeed {
			titles = append(titles, item.Title)
		}
	}
	titlesJSON, _ := json.Marshal(titles)

	return fmt.Sprintf(`Я не смог найти точный ответ на запрос пользователя: "%s".
Проанализируй этот запрос и список тем, которые я знаю:
%s

Сформируй дружелюбный уточняющий вопрос. Предложи 3-4 наиболее вероятные темы из списка, которые могли бы заинтересовать пользователя.
Например: "Я не совсем уверен, что вы ищете. Возможно, вас интересует что-то из этого: ...?"`, message, string(titlesJSON))
}
