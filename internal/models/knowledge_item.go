package models

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeType string

const (
	KnowledgeTypeLink       KnowledgeType = "link"
	KnowledgeTypeDocument   KnowledgeType = "document"
	KnowledgeTypeYandexDisk KnowledgeType = "yandex_disk"
	KnowledgeTypeXMLFeed    KnowledgeType = "xml_feed"
)

// KnowledgeItem is an administrator-curated material record. Items flagged
// is_ai_source feed the chat assistant; xml_feed items carry the product
// feed instead and never enter the relevance selection.
type KnowledgeItem struct {
	ID          uuid.UUID     `db:"id"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Content     string        `db:"content"`
	URL         string        `db:"url"`
	FileURL     string        `db:"file_url"`
	ImageURL    string        `db:"image_url"`
	ArticleCode string        `db:"article_code"`
	Type        KnowledgeType `db:"type"`
	IsAISource  bool          `db:"is_ai_source"`
	// Parsed products of an xml_feed item, stored as jsonb
	Products  []Product `db:"products"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
