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
	ErrOrderNotFound       = errors.New("order not found")
	ErrLegalEntityNotFound = errors.New("legal entity not found")
)

type OrderService struct {
	orderRepo   *repository.OrderRepository
	userRepo    *repository.UserRepository
	legalRepo   *repository.LegalEntityRepository
	mailService *MailService
	logger      *zap.Logger
}

func NewOrderService(
	orderRepo *repository.OrderRepository,
	userRepo *repository.UserRepository,
	legalRepo *repository.LegalEntityRepository,
	mailService *MailService,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		legalRepo:   legalRepo,
		mailService: mailService,
		logger:      logger,
	}
}

// CreateOrder persists the order, caches the form's contact fields on the
// user profile, and notifies the manager. Mail failure does not fail the
// order.
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var legalEntityID *uuid.UUID
	legalEntityName := ""
	if req.LegalEntityID != "" {
		id, err := uuid.Parse(req.LegalEntityID)
		if err != nil {
			return nil, ErrLegalEntityNotFound
		}
		entity, err := s.legalRepo.GetByID(ctx, id)
		if err != nil || entity.UserID != userID {
			return nil, ErrLegalEntityNotFound
		}
		legalEntityID = &entity.ID
		legalEntityName = entity.Name
	}

	now := time.Now()
	order := &models.Order{
		ID:              uuid.New(),
		OrderNumber:     fmt.Sprintf("ORD-%d", now.UnixMilli()),
		ArticleCode:     req.ArticleCode,
		ProductName:     req.ProductName,
		UserName:        req.UserName,
		UserEmail:       user.Email,
		PhoneNumber:     req.PhoneNumber,
		City:            req.City,
		RetailPoint:     req.RetailPoint,
		LegalEntityID:   legalEntityID,
		LegalEntityName: legalEntityName,
		Quantity:        req.Quantity,
		TotalCost:       req.TotalCost,
		Comment:         req.Comment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Remember the form fields so the next order comes pre-filled.
	patch := map[string]interface{}{
		"phone_number": req.PhoneNumber,
		"city":         req.City,
		"retail_point": req.RetailPoint,
	}
	if err := s.userRepo.UpdateProfile(ctx, userID, patch); err != nil {
		s.logger.Warn("Failed to cache order profile fields", zap.Error(err))
	}

	if err := s.mailService.NotifyManager(
		fmt.Sprintf("Новый заказ %s", order.OrderNumber),
		buildOrderMailBody(order),
	); err != nil {
		s.logger.Error("Failed to send order notification", zap.Error(err), zap.String("order", order.OrderNumber))
	}

	resp := orderToResponse(order)
	return &resp, nil
}

func (s *OrderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]dto.OrderResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	orders, err := s.orderRepo.ListByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return ordersToResponse(orders), nil
}

func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]dto.OrderResponse, error) {
	orders, err := s.orderRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return ordersToResponse(orders), nil
}

func (s *OrderService) ListLegalEntities(ctx context.Context, userID uuid.UUID) ([]dto.LegalEntityResponse, error) {
	entities, err := s.legalRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list legal entities: %w", err)
	}

	resp := make([]dto.LegalEntityResponse, 0, len(entities))
	for _, e := range entities {
		resp = append(resp, legalEntityToResponse(e))
	}
	return resp, nil
}

func (s *OrderService) CreateLegalEntity(ctx context.Context, userID uuid.UUID, req *dto.LegalEntityRequest) (*dto.LegalEntityResponse, error) {
	now := time.Now()
	entity := &models.LegalEntity{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		INN:       req.INN,
		KPP:       req.KPP,
		Address:   req.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.legalRepo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to create legal entity: %w", err)
	}

	resp := legalEntityToResponse(entity)
	return &resp, nil
}

func (s *OrderService) UpdateLegalEntity(ctx context.Context, userID, id uuid.UUID, req *dto.LegalEntityRequest) (*dto.LegalEntityResponse, error) {
	entity, err := s.legalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLegalEntityNotFound
		}
		return nil, fmt.Errorf("failed to get legal entity: %w", err)
	}
	if entity.UserID != userID {
		return nil, ErrLegalEntityNotFound
	}

	entity.Name = req.Name
	entity.INN = req.INN
	entity.KPP = req.KPP
	entity.Address = req.Address
	entity.UpdatedAt = time.Now()

	if err := s.legalRepo.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to update legal entity: %w", err)
	}

	resp := legalEntityToResponse(entity)
	return &resp, nil
}

func (s *OrderService) DeleteLegalEntity(ctx context.Context, userID, id uuid.UUID) error {
	return s.legalRepo.Delete(ctx, id, userID)
}

func buildOrderMailBody(order *models.Order) string {
	body := fmt.Sprintf(`Поступил новый заказ %s.

Товар: %s (артикул %s)
Количество: %d
Сумма: %.2f руб.

Заказчик: %s
Email: %s
Телефон: %s`,
		order.OrderNumber,
		order.ProductName, order.ArticleCode,
		order.Quantity,
		order.TotalCost,
		order.UserName,
		order.UserEmail,
		order.PhoneNumber,
	)
	if order.City != "" {
		body += "\nГород: " + order.City
	}
	if order.RetailPoint != "" {
		body += "\nТорговая точка: " + order.RetailPoint
	}
	if order.LegalEntityName != "" {
		body += "\nЮридическое лицо: " + order.LegalEntityName
	}
	if order.Comment != "" {
		body += "\n\nКомментарий: " + order.Comment
	}
	return body
}

func ordersToResponse(orders []*models.Order) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, orderToResponse(o))
	}
	return resp
}

func orderToResponse(o *models.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              o.ID.String(),
		OrderNumber:     o.OrderNumber,
		ArticleCode:     o.ArticleCode,
		ProductName:     o.ProductName,
		UserName:        o.UserName,
		UserEmail:       o.UserEmail,
		PhoneNumber:     o.PhoneNumber,
		City:            o.City,
		RetailPoint:     o.RetailPoint,
		LegalEntityName: o.LegalEntityName,
		Quantity:        o.Quantity,
		TotalCost:       o.TotalCost,
		Comment:         o.Comment,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
}

func legalEntityToResponse(e *models.LegalEntity) dto.LegalEntityResponse {
	return dto.LegalEntityResponse{
		ID:      e.ID.String(),
		Name:    e.Name,
		INN:     e.INN,
		KPP:     e.KPP,
		Address: e.Address,
	}
}
