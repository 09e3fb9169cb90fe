package dto

// DTOs of the reference CRUD surface: FAQ, video gallery, settings.

type FAQCategoryRequest struct {
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

type FAQCategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

type FAQRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	SortOrder  int    `json:"sort_order"`
}

type FAQResponse struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	SortOrder  int    `json:"sort_order"`
}

type VideoCategoryRequest struct {
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

type VideoCategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

type VideoRequest struct {
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"required,url"`
	PreviewURL  string `json:"preview_url"`
	SortOrder   int    `json:"sort_order"`
}

type VideoResponse struct {
	ID          string `json:"id"`
	CategoryID  string `json:"category_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	PreviewURL  string `json:"preview_url,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

type AISettingsRequest struct {
	SystemPrompt string `json:"system_prompt" validate:"required"`
}

type AISettingsResponse struct {
	ID           string `json:"id"`
	SystemPrompt string `json:"system_prompt"`
}
