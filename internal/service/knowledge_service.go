package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parket-portal/internal/dto"
	"parket-portal/internal/models"
	"parket-portal/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrKnowledgeItemNotFound = errors.New("knowledge item not found")
	ErrNotAFeed              = errors.New("knowledge item is not an xml_feed")
)

type KnowledgeService struct {
	knowledgeRepo *repository.KnowledgeRepository
	feedService   *FeedService
	logger        *zap.Logger
}

func NewKnowledgeService(knowledgeRepo *repository.KnowledgeRepository, feedService *FeedService, logger *zap.Logger) *KnowledgeService {
	return &KnowledgeService{
		knowledgeRepo: knowledgeRepo,
		feedService:   feedService,
		logger:        logger,
	}
}

func (s *KnowledgeService) Create(ctx context.Context, req *dto.KnowledgeItemRequest) (*dto.KnowledgeItemResponse, error) {
	now := time.Now()
	item := &models.KnowledgeItem{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		URL:         req.URL,
		FileURL:     req.FileURL,
		ImageURL:    req.ImageURL,
		ArticleCode: req.ArticleCode,
		Type:        models.KnowledgeType(req.Type),
		IsAISource:  req.IsAISource,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.knowledgeRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create knowledge item: %w", err)
	}

	resp := knowledgeItemToResponse(item)
	return &resp, nil
}

func (s *KnowledgeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.KnowledgeItemResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := knowledgeItemToResponse(item)
	return &resp, nil
}

func (s *KnowledgeService) List(ctx context.Context) ([]dto.KnowledgeItemResponse, error) {
	items, err := s.knowledgeRepo.List(ctx, "created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge items: %w", err)
	}

	resp := make([]dto.KnowledgeItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, knowledgeItemToResponse(item))
	}
	return resp, nil
}

func (s *KnowledgeService) Update(ctx context.Context, id uuid.UUID, req *dto.KnowledgeItemRequest) (*dto.KnowledgeItemResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Title = req.Title
	item.Description = req.Description
	item.Content = req.Content
	item.URL = req.URL
	item.FileURL = req.FileURL
	item.ImageURL = req.ImageURL
	item.ArticleCode = req.ArticleCode
	item.Type = models.KnowledgeType(req.Type)
	item.IsAISource = req.IsAISource
	item.UpdatedAt = time.Now()

	if err := s.knowledgeRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update knowledge item: %w", err)
	}

	resp := knowledgeItemToResponse(item)
	return &resp, nil
}

func (s *KnowledgeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getItem(ctx, id); err != nil {
		return err
	}
	return s.knowledgeRepo.Delete(ctx, id)
}

// SyncFeed re-downloads the product feed of an xml_feed item and replaces
// its stored product list.
func (s *KnowledgeService) SyncFeed(ctx context.Context, id uuid.UUID) (*dto.SyncFeedResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if item.Type != models.KnowledgeTypeXMLFeed || item.URL == "" {
		return nil, ErrNotAFeed
	}

	products, err := s.feedService.Fetch(ctx, item.URL)
	if err != nil {
		return nil, err
	}

	item.Products = products
	item.UpdatedAt = time.Now()

	if err := s.knowledgeRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save feed products: %w", err)
	}

	return &dto.SyncFeedResponse{
		Status:        "success",
		ProductsCount: len(products),
	}, nil
}

// Products returns the catalog of the first xml_feed item that has a
// non-empty product list, the same snapshot the chat assistant sees.
func (s *KnowledgeService) Products(ctx context.Context) ([]models.Product, error) {
	items, err := s.knowledgeRepo.Filter(ctx, map[string]interface{}{"type": models.KnowledgeTypeXMLFeed}, "created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to load feed items: %w", err)
	}

	for _, item := range items {
		if len(item.Products) > 0 {
			return item.Products, nil
		}
	}
	return nil, nil
}

func (s *KnowledgeService) getItem(ctx context.Context, id uuid.UUID) (*models.KnowledgeItem, error) {
	item, err := s.knowledgeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKnowledgeItemNotFound
		}
		return nil, fmt.Errorf("failed to get knowledge item: %w", err)
	}
	return item, nil
}

func knowledgeItemToResponse(item *models.KnowledgeItem) dto.KnowledgeItemResponse {
	return dto.KnowledgeItemResponse{
		ID:            item.ID.String(),
		Title:         item.Title,
		Description:   item.Description,
		Content:       item.Content,
		URL:           item.URL,
		FileURL:       item.FileURL,
		ImageURL:      item.ImageURL,
		ArticleCode:   item.ArticleCode,
		Type:          string(item.Type),
		IsAISource:    item.IsAISource,
		ProductsCount: len(item.Products),
		CreatedAt:     item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.Format(time.RFC3339),
	}
}
