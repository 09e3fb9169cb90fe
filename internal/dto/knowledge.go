package dto

type KnowledgeItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	FileURL     string `json:"file_url"`
	ImageURL    string `json:"image_url"`
	ArticleCode string `json:"article_code"`
	Type        string `json:"type" validate:"required,oneof=link document yandex_disk xml_feed"`
	IsAISource  bool   `json:"is_ai_source"`
}

type KnowledgeItemResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Content       string `json:"content,omitempty"`
	URL           string `json:"url,omitempty"`
	FileURL       string `json:"file_url,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	ArticleCode   string `json:"article_code,omitempty"`
	Type          string `json:"type"`
	IsAISource    bool   `json:"is_ai_source"`
	ProductsCount int    `json:"products_count,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type SyncFeedResponse struct {
	Status        string `json:"status"`
	ProductsCount int    `json:"products_count"`
}

type UploadResponse struct {
	FileURL string `json:"file_url"`
}

// ExtractResponse mirrors the document-extraction contract: a status plus
// the schema-shaped output when extraction succeeded.
type ExtractResponse struct {
	Status string            `json:"status"`
	Output map[string]string `json:"output,omitempty"`
	Error  string            `json:"error,omitempty"`
}
