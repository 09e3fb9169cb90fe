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
	"go.uber.org/zap"
)

var ErrCategoryNotFound = errors.New("category not found")

// CatalogService covers the reference-section CRUD: FAQ, the video
// gallery, and the assistant settings.
type CatalogService struct {
	faqRepo      *repository.FAQRepository
	videoRepo    *repository.VideoRepository
	settingsRepo *repository.SettingsRepository
	logger       *zap.Logger
}

func NewCatalogService(
	faqRepo *repository.FAQRepository,
	videoRepo *repository.VideoRepository,
	settingsRepo *repository.SettingsRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		faqRepo:      faqRepo,
		videoRepo:    videoRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (s *CatalogService) ListFAQCategories(ctx context.Context) ([]dto.FAQCategoryResponse, error) {
	categories, err := s.faqRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list FAQ categories: %w", err)
	}

	resp := make([]dto.FAQCategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, dto.FAQCategoryResponse{
			ID:        c.ID.String(),
			Name:      c.Name,
			SortOrder: c.SortOrder,
		})
	}
	return resp, nil
}

func (s *CatalogService) CreateFAQCategory(ctx context.Context, req *dto.FAQCategoryRequest) (*dto.FAQCategoryResponse, error) {
	now := time.Now()
	category := &models.FAQCategory{
		ID:        uuid.New(),
		Name:      req.Name,
		SortOrder: req.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.faqRepo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create FAQ category: %w", err)
	}

	return &dto.FAQCategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		SortOrder: category.SortOrder,
	}, nil
}

func (s *CatalogService) DeleteFAQCategory(ctx context.Context, id uuid.UUID) error {
	return s.faqRepo.DeleteCategory(ctx, id)
}

func (s *CatalogService) ListFAQs(ctx context.Context, categoryID *uuid.UUID) ([]dto.FAQResponse, error) {
	faqs, err := s.faqRepo.List(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list FAQs: %w", err)
	}

	resp := make([]dto.FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		resp = append(resp, faqToResponse(f))
	}
	return resp, nil
}

func (s *CatalogService) CreateFAQ(ctx context.Context, req *dto.FAQRequest) (*dto.FAQResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	now := time.Now()
	faq := &models.FAQ{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Question:   req.Question,
		Answer:     req.Answer,
		SortOrder:  req.SortOrder,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.faqRepo.Create(ctx, faq); err != nil {
		return nil, fmt.Errorf("failed to create FAQ: %w", err)
	}

	resp := faqToResponse(faq)
	return &resp, nil
}

func (s *CatalogService) UpdateFAQ(ctx context.Context, id uuid.UUID, req *dto.FAQRequest) (*dto.FAQResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	faq := &models.FAQ{
		ID:         id,
		CategoryID: categoryID,
		Question:   req.Question,
		Answer:     req.Answer,
		SortOrder:  req.SortOrder,
		UpdatedAt:  time.Now(),
	}

	if err := s.faqRepo.Update(ctx, faq); err != nil {
		return nil, fmt.Errorf("failed to update FAQ: %w", err)
	}

	resp := faqToResponse(faq)
	return &resp, nil
}

func (s *CatalogService) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	return s.faqRepo.Delete(ctx, id)
}

func (s *CatalogService) ListVideoCategories(ctx context.Context) ([]dto.VideoCategoryResponse, error) {
	categories, err := s.videoRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list video categories: %w", err)
	}

	resp := make([]dto.VideoCategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, dto.VideoCategoryResponse{
			ID:        c.ID.String(),
			Name:      c.Name,
			SortOrder: c.SortOrder,
		})
	}
	return resp, nil
}

func (s *CatalogService) CreateVideoCategory(ctx context.Context, req *dto.VideoCategoryRequest) (*dto.VideoCategoryResponse, error) {
	now := time.Now()
	category := &models.VideoCategory{
		ID:        uuid.New(),
		Name:      req.Name,
		SortOrder: req.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.videoRepo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create video category: %w", err)
	}

	return &dto.VideoCategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		SortOrder: category.SortOrder,
	}, nil
}

func (s *CatalogService) DeleteVideoCategory(ctx context.Context, id uuid.UUID) error {
	return s.videoRepo.DeleteCategory(ctx, id)
}

func (s *CatalogService) ListVideos(ctx context.Context, categoryID *uuid.UUID) ([]dto.VideoResponse, error) {
	videos, err := s.videoRepo.List(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	resp := make([]dto.VideoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, videoToResponse(v))
	}
	return resp, nil
}

func (s *CatalogService) CreateVideo(ctx context.Context, req *dto.VideoRequest) (*dto.VideoResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	now := time.Now()
	video := &models.Video{
		ID:          uuid.New(),
		CategoryID:  categoryID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		PreviewURL:  req.PreviewURL,
		SortOrder:   req.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	resp := videoToResponse(video)
	return &resp, nil
}

func (s *CatalogService) UpdateVideo(ctx context.Context, id uuid.UUID, req *dto.VideoRequest) (*dto.VideoResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	video := &models.Video{
		ID:          id,
		CategoryID:  categoryID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		PreviewURL:  req.PreviewURL,
		SortOrder:   req.SortOrder,
		UpdatedAt:   time.Now(),
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	resp := videoToResponse(video)
	return &resp, nil
}

func (s *CatalogService) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	return s.videoRepo.Delete(ctx, id)
}

// GetAISettings returns the active settings row, creating a default one on
// first access.
func (s *CatalogService) GetAISettings(ctx context.Context, defaultPrompt string) (*dto.AISettingsResponse, error) {
	settings, err := s.settingsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AI settings: %w", err)
	}

	if len(settings) == 0 {
		row := &models.AISettings{
			ID:           uuid.New(),
			SystemPrompt: defaultPrompt,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := s.settingsRepo.Create(ctx, row); err != nil {
			return nil, fmt.Errorf("failed to create default AI settings: %w", err)
		}
		settings = []*models.AISettings{row}
	}

	active := settings[0]
	return &dto.AISettingsResponse{
		ID:           active.ID.String(),
		SystemPrompt: active.SystemPrompt,
	}, nil
}

func (s *CatalogService) UpdateAISettings(ctx context.Context, req *dto.AISettingsRequest) (*dto.AISettingsResponse, error) {
	current, err := s.GetAISettings(ctx, req.SystemPrompt)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(current.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid settings id: %w", err)
	}

	if err := s.settingsRepo.Update(ctx, id, req.SystemPrompt); err != nil {
		return nil, fmt.Errorf("failed to update AI settings: %w", err)
	}

	return &dto.AISettingsResponse{
		ID:           current.ID,
		SystemPrompt: req.SystemPrompt,
	}, nil
}

func faqToResponse(f *models.FAQ) dto.FAQResponse {
	return dto.FAQResponse{
		ID:         f.ID.String(),
		CategoryID: f.CategoryID.String(),
		Question:   f.Question,
		Answer:     f.Answer,
		SortOrder:  f.SortOrder,
	}
}

func videoToResponse(v *models.Video) dto.VideoResponse {
	return dto.VideoResponse{
		ID:          v.ID.String(),
		CategoryID:  v.CategoryID.String(),
		Title:       v.Title,
		Description: v.Description,
		URL:         v.URL,
		PreviewURL:  v.PreviewURL,
		SortOrder:   v.SortOrder,
	}
}
