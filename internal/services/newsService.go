package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"aiobackend/internal/models"
	"aiobackend/internal/repositories"
)

// NewsService defines the interface for news-related business logic.
type NewsService interface {
	ListNews(ctx context.Context, limit int64, featured *bool) ([]models.NewsItem, error)
	FeaturedNews(ctx context.Context, limit int64) ([]models.NewsItem, error)
	GetNewsByID(ctx context.Context, id string) (*models.NewsItem, error)
	CreateNews(ctx context.Context, payload models.NewsCreate) (string, error)
	SeedNews(ctx context.Context) ([]string, error)
}

type newsServiceImpl struct {
	newsRepo repositories.NewsRepository
}

// NewNewsService creates a new NewsService.
func NewNewsService(newsRepo repositories.NewsRepository) NewsService {
	return &newsServiceImpl{newsRepo: newsRepo}
}

func (s *newsServiceImpl) ListNews(ctx context.Context, limit int64, featured *bool) ([]models.NewsItem, error) {
	log.Debug().Int64("limit", limit).Interface("featured", featured).Msg("Attempting to list news")
	items, err := s.newsRepo.Find(ctx, repositories.NewsFilter{Featured: featured}, limit)
	if err != nil {
		log.Error().Err(err).Msg("Error listing news items")
		return nil, err
	}
	log.Debug().Int("count", len(items)).Msg("Successfully listed news items")
	return items, nil
}

func (s *newsServiceImpl) FeaturedNews(ctx context.Context, limit int64) ([]models.NewsItem, error) {
	featured := true
	return s.ListNews(ctx, limit, &featured)
}

func (s *newsServiceImpl) GetNewsByID(ctx context.Context, id string) (*models.NewsItem, error) {
	log.Debug().Str("news_id", id).Msg("Attempting to retrieve news item by ID")
	item, err := s.newsRepo.FindByID(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("news_id", id).Msg("Error finding news item by ID")
		return nil, err
	}
	return item, nil
}

// CreateNews validates the payload before the store is touched; invalid input
// never reaches the repository.
func (s *newsServiceImpl) CreateNews(ctx context.Context, payload models.NewsCreate) (string, error) {
	if err := payload.Validate(); err != nil {
		log.Warn().Err(err).Msg("Rejected invalid news payload")
		return "", err
	}

	id, err := s.newsRepo.Insert(ctx, payload.Item())
	if err != nil {
		log.Error().Err(err).Str("title_en", payload.TitleEN).Msg("Failed to insert news item")
		return "", err
	}
	log.Info().Str("news_id", id).Str("title_en", payload.TitleEN).Msg("News item created")
	return id, nil
}

// SeedNews inserts the fixed demo records. It is intentionally not
// idempotent; every call inserts a fresh batch.
func (s *newsServiceImpl) SeedNews(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(seedSamples))
	for _, sample := range seedSamples {
		id, err := s.newsRepo.Insert(ctx, sample.Item())
		if err != nil {
			log.Error().Err(err).Str("title_en", sample.TitleEN).Msg("Failed to insert seed news item")
			return nil, err
		}
		ids = append(ids, id)
	}
	log.Info().Int("inserted", len(ids)).Msg("Seeded demo news items")
	return ids, nil
}
