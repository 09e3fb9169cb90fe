package assistant

import (
	"context"
	"errors"
	"strings"

	"parket-portal/internal/models"

	"go.uber.org/zap"
)

// ErrBadRankingResponse marks a relevance-ranking response that failed
// schema validation. The selector treats it as "no relevant items" instead
// of failing the whole pipeline; transport errors still propagate.
var ErrBadRankingResponse = errors.New("relevance ranking response failed schema validation")

// RankedItem is the compact listing sent to the relevance-ranking call.
type RankedItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ArticleCode string `json:"article_code"`
}

// TitleRanker is the external relevance-ranking call: given a user message
// and a listing of knowledge items, it returns the titles of applicable
// items, or an empty slice when none apply.
type TitleRanker interface {
	RankTitles(ctx context.Context, message string, items []RankedItem) ([]string, error)
}

// refilterRules is the ordered category keyword cascade applied after the
// external ranking. First matching keyword wins; rules never combine.
var refilterRules = []string{"логотип", "презентац", "каталог", "сертификат", "брендбук"}

type Selector struct {
	ranker TitleRanker
	logger *zap.Logger
}

func NewSelector(ranker TitleRanker, logger *zap.Logger) *Selector {
	return &Selector{ranker: ranker, logger: logger}
}

// Select picks the knowledge items applicable to a message. Feed items never
// participate; an empty filtered catalog short-circuits without an external
// call. Ranking failures other than schema mismatch propagate to the caller.
func (s *Selector) Select(ctx context.Context, message string, catalog []models.KnowledgeItem) ([]models.KnowledgeItem, error) {
	items := make([]models.KnowledgeItem, 0, len(catalog))
	for _, item := range catalog {
		if item.Type != models.KnowledgeTypeXMLFeed {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, nil
	}

	listing := make([]RankedItem, 0, len(items))
	for _, item := range items {
		listing = append(listing, RankedItem{
			Title:       item.Title,
			Description: item.Description,
			ArticleCode: item.ArticleCode,
		})
	}

	titles, err := s.ranker.RankTitles(ctx, message, listing)
	if err != nil {
		if errors.Is(err, ErrBadRankingResponse) {
			s.logger.Warn("Relevance ranking returned malformed response, treating as no matches",
				zap.Error(err))
			return nil, nil
		}
		return nil, err
	}
	if len(titles) == 0 {
		return nil, nil
	}

	// Map titles back to catalog items by exact title; first item wins for a
	// duplicated title.
	wanted := make(map[string]bool, len(titles))
	for _, title := range titles {
		wanted[title] = true
	}

	var relevant []models.KnowledgeItem
	used := make(map[string]bool)
	for _, item := range items {
		if wanted[item.Title] && !used[item.Title] {
			relevant = append(relevant, item)
			used[item.Title] = true
		}
	}

	return refilterByKeyword(message, relevant), nil
}

func refilterByKeyword(message string, items []models.KnowledgeItem) []models.KnowledgeItem {
	lower := strings.ToLower(message)
	for _, keyword := range refilterRules {
		if !strings.Contains(lower, keyword) {
			continue
		}
		var kept []models.KnowledgeItem
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Title), keyword) {
				kept = append(kept, item)
			}
		}
		return kept
	}
	return items
}
