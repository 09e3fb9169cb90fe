package assistant

import (
	"context"
	"errors"
	"testing"

	"parket-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRanker struct {
	titles []string
	err    error
	calls  int
	gotLen int
}

func (s *stubRanker) RankTitles(_ context.Context, _ string, items []RankedItem) ([]string, error) {
	s.calls++
	s.gotLen = len(items)
	return s.titles, s.err
}

func testCatalog() []models.KnowledgeItem {
	return []models.KnowledgeItem{
		{Title: "Логотип компании", Type: models.KnowledgeTypeYandexDisk},
		{Title: "Каталог продукции", Type: models.KnowledgeTypeYandexDisk},
		{Title: "Инструкция по укладке", Type: models.KnowledgeTypeDocument},
		{Title: "Товарный фид", Type: models.KnowledgeTypeXMLFeed},
	}
}

func TestSelectFiltersFeedItems(t *testing.T) {
	ranker := &stubRanker{titles: []string{"Каталог продукции"}}
	s := NewSelector(ranker, zap.NewNop())

	items, err := s.Select(context.Background(), "где каталог", testCatalog())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Каталог продукции", items[0].Title)
	// The feed item never reaches the ranking call
	assert.Equal(t, 3, ranker.gotLen)
}

func TestSelectEmptyCatalogSkipsRankingCall(t *testing.T) {
	ranker := &stubRanker{}
	s := NewSelector(ranker, zap.NewNop())

	items, err := s.Select(context.Background(), "привет", []models.KnowledgeItem{
		{Title: "Товарный фид", Type: models.KnowledgeTypeXMLFeed},
	})

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0, ranker.calls)
}

func TestSelectUnknownTitlesDropped(t *testing.T) {
	ranker := &stubRanker{titles: []string{"Каталог продукции", "Несуществующий документ"}}
	s := NewSelector(ranker, zap.NewNop())

	items, err := s.Select(context.Background(), "документы", testCatalog())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Каталог продукции", items[0].Title)
}

func TestSelectDuplicateTitleKeepsFirst(t *testing.T) {
	catalog := []models.KnowledgeItem{
		{Title: "Каталог продукции", Description: "первый", Type: models.KnowledgeTypeDocument},
		{Title: "Каталог продукции", Description: "второй", Type: models.KnowledgeTypeDocument},
	}
	ranker := &stubRanker{titles: []string{"Каталог продукции"}}
	s := NewSelector(ranker, zap.NewNop())

	items, err := s.Select(context.Background(), "документы", catalog)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "первый", items[0].Description)
}

func TestSelectRefilterByKeyword(t *testing.T) {
	ranker := &stubRanker{titles: []string{"Логотип компании", "Каталог продукции", "Инструкция по укладке"}}
	s := NewSelector(ranker, zap.NewNop())

	items, err := s.Select(context.Background(), "пришлите логотип", testCatalog())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Логотип компании", items[0].Title)
}

func TestSelectRefilterFirstRuleWins(t *testing.T) {
	// Both rule keywords present; the earlier rule (логотип) is applied and
	// каталог items are dropped.
	ranker := &stubRanker{titles: []string{"Логотип компании", "Каталог продукции"}}
	s := NewSelector(ranker, zap.NewNop())

	items, err := s.Select(context.Background(), "нужен логотип и каталог", testCatalog())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Логотип компании", items[0].Title)
}

func TestSelectBadRankingResponseDegrades(t *testing.T) {
	ranker := &stubRanker{err: ErrBadRankingResponse}
	s := NewSelector(ranker, zap.NewNop())

	items, err := s.Select(context.Background(), "документы", testCatalog())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSelectTransportErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	ranker := &stubRanker{err: boom}
	s := NewSelector(ranker, zap.NewNop())

	_, err := s.Select(context.Background(), "документы", testCatalog())

	assert.ErrorIs(t, err, boom)
}
