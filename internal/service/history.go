package service

import (
	"context"

	"agrismart/internal/models"
	"agrismart/internal/repository"
)

type HistoryService struct {
	readingRepo repository.ReadingRepo
}

func NewHistoryService(readingRepo repository.ReadingRepo) *HistoryService {
	return &HistoryService{readingRepo: readingRepo}
}

// Readings returns up to limit recorded sensor readings, newest first.
func (s *HistoryService) Readings(ctx context.Context, limit int) ([]models.ReadingSample, error) {
	return s.readingRepo.Latest(ctx, limit)
}
