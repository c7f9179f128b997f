// internal/service/cache_service.go
package service

import (
	"context"
	"errors"
	"time"

	"wordlens/internal/middleware"
	"wordlens/internal/model"
	"wordlens/internal/repository"

	"gorm.io/gorm"
)

// WordCacheService is the durable word → analysis cache. Put is an atomic
// overwrite that refreshes the entry timestamp; the cache has no TTL or
// eviction, Delete exists only as an external pruning hook.
type WordCacheService interface {
	Get(ctx context.Context, word string) (*model.WordCacheEntry, error)
	Put(ctx context.Context, word, analysis string) (*model.WordCacheEntry, error)
	Delete(ctx context.Context, word string) error
	List(ctx context.Context) ([]*model.WordCacheEntry, error)
}

type wordCacheService struct {
	db        *gorm.DB
	cacheRepo repository.WordCacheRepository
}

func NewWordCacheService(db *gorm.DB, cacheRepo repository.WordCacheRepository) WordCacheService {
	return &wordCacheService{
		db:        db,
		cacheRepo: cacheRepo,
	}
}

func (s *wordCacheService) Get(ctx context.Context, word string) (*model.WordCacheEntry, error) {
	if word == "" {
		return nil, model.ErrInvalidInput
	}
	return s.cacheRepo.Find(ctx, s.db, word)
}

func (s *wordCacheService) Put(ctx context.Context, word, analysis string) (*model.WordCacheEntry, error) {
	logger := middleware.GetLogger(ctx)
	if word == "" || analysis == "" {
		return nil, model.ErrInvalidInput
	}

	entry := &model.WordCacheEntry{
		Word:      word,
		Analysis:  analysis,
		UpdatedAt: time.Now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.cacheRepo.Upsert(ctx, tx, entry)
	})
	if err != nil {
		logger.Error("Transaction failed for cache Put", "error", err, "word", word)
		return nil, model.ErrInternalServer
	}

	return entry, nil
}

func (s *wordCacheService) Delete(ctx context.Context, word string) error {
	logger := middleware.GetLogger(ctx)
	if word == "" {
		return model.ErrInvalidInput
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.cacheRepo.Delete(ctx, tx, word)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Transaction failed for cache Delete", "error", err, "word", word)
		return model.ErrInternalServer
	}
	return nil
}

func (s *wordCacheService) List(ctx context.Context) ([]*model.WordCacheEntry, error) {
	logger := middleware.GetLogger(ctx)
	entries, err := s.cacheRepo.List(ctx, s.db)
	if err != nil {
		logger.Error("Error listing cache entries", "error", err)
		return nil, model.ErrInternalServer
	}
	return entries, nil
}
