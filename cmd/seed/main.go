package main

import (
	"context"
	"log"
	"os"
	"time"

	"parket-portal/internal/models"
	"parket-portal/internal/repository"
	"parket-portal/pkg/auth"
	"parket-portal/pkg/config"
	"parket-portal/pkg/logger"
	"parket-portal/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	settingsRepo := repository.NewSettingsRepository(db, appLogger)
	faqRepo := repository.NewFAQRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	if err := seedAdmin(ctx, userRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed admin user", zap.Error(err))
	}
	if err := seedAISettings(ctx, settingsRepo, cfg.Chat.DefaultSystem, appLogger); err != nil {
		appLogger.Fatal("Failed to seed AI settings", zap.Error(err))
	}
	if err := seedKnowledge(ctx, knowledgeRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed knowledge base", zap.Error(err))
	}
	if err := seedFAQ(ctx, faqRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed FAQ", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func seedAdmin(ctx context.Context, userRepo *repository.UserRepository, appLogger *zap.Logger) error {
	const adminEmail = "admin@parket-portal.ru"

	if existing, _ := userRepo.GetByEmail(ctx, adminEmail); existing != nil {
		appLogger.Info("Admin user already exists, skipping")
		return nil
	}

	password, err := auth.HashPassword(getEnvDefault("SEED_ADMIN_PASSWORD", "admin12345"))
	if err != nil {
		return err
	}

	now := time.Now()
	admin := &models.User{
		ID:        uuid.New(),
		Email:     adminEmail,
		Password:  password,
		FullName:  "Администратор",
		Role:      models.UserRoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	appLogger.Info("Admin user created", zap.String("email", adminEmail))
	return nil
}

func seedAISettings(ctx context.Context, settingsRepo *repository.SettingsRepository, defaultPrompt string, appLogger *zap.Logger) error {
	existing, err := settingsRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		appLogger.Info("AI settings already exist, skipping")
		return nil
	}

	now := time.Now()
	return settingsRepo.Create(ctx, &models.AISettings{
		ID:           uuid.New(),
		SystemPrompt: defaultPrompt,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func seedKnowledge(ctx context.Context, knowledgeRepo *repository.KnowledgeRepository, appLogger *zap.Logger) error {
	existing, err := knowledgeRepo.List(ctx, "created_at ASC")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		appLogger.Info("Knowledge base already seeded, skipping")
		return nil
	}

	items := []*models.KnowledgeItem{
		{
			Title:       "Каталог продукции",
			Description: "Полный каталог паркетной доски и инженерной доски",
			URL:         "https://disk.yandex.ru/d/catalog-parket",
			Type:        models.KnowledgeTypeYandexDisk,
			IsAISource:  true,
		},
		{
			Title:       "Логотип компании",
			Description: "Фирменный логотип в векторном формате",
			URL:         "https://disk.yandex.ru/d/logo-parket",
			Type:        models.KnowledgeTypeYandexDisk,
			IsAISource:  true,
		},
		{
			Title:       "Инструкция по укладке",
			Description: "Пошаговая инструкция по укладке паркетной доски",
			Content:     "Перед укладкой доска должна акклиматизироваться в помещении не менее 48 часов. Влажность основания не должна превышать 2%.",
			Type:        models.KnowledgeTypeDocument,
			IsAISource:  true,
		},
		{
			Title:       "Товарный фид",
			Description: "XML-фид каталога товаров",
			URL:         getEnvDefault("SEED_FEED_URL", "https://parket-portal.ru/feed/products.xml"),
			Type:        models.KnowledgeTypeXMLFeed,
			IsAISource:  true,
		},
	}

	now := time.Now()
	for _, item := range items {
		item.ID = uuid.New()
		item.CreatedAt = now
		item.UpdatedAt = now
		if err := knowledgeRepo.Create(ctx, item); err != nil {
			return err
		}
	}

	appLogger.Info("Knowledge base seeded", zap.Int("items", len(items)))
	return nil
}

func seedFAQ(ctx context.Context, faqRepo *repository.FAQRepository, appLogger *zap.Logger) error {
	existing, err := faqRepo.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		appLogger.Info("FAQ already seeded, skipping")
		return nil
	}

	now := time.Now()
	category := &models.FAQCategory{
		ID:        uuid.New(),
		Name:      "Доставка и оплата",
		SortOrder: 1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := faqRepo.CreateCategory(ctx, category); err != nil {
		return err
	}

	faqs := []*models.FAQ{
		{
			Question:  "Как рассчитать количество упаковок?",
			Answer:    "Воспользуйтесь калькулятором в личном кабинете: укажите артикул, площадь и способ укладки.",
			SortOrder: 1,
		},
		{
			Question:  "Какие сроки доставки?",
			Answer:    "Доставка по Москве занимает 1-2 дня, по России от 3 до 10 дней в зависимости от региона.",
			SortOrder: 2,
		},
	}
	for _, f := range faqs {
		f.ID = uuid.New()
		f.CategoryID = category.ID
		f.CreatedAt = now
		f.UpdatedAt = now
		if err := faqRepo.Create(ctx, f); err != nil {
			return err
		}
	}

	appLogger.Info("FAQ seeded", zap.Int("faqs", len(faqs)))
	return nil
}

func getEnvDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
