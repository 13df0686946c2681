package service

import (
	"context"

	"unitdesk/internal/models"
	"unitdesk/internal/repository"
)

type HistoryService struct {
	history repository.History
}

func NewHistoryService(history repository.History) *HistoryService {
	return &HistoryService{history: history}
}

// List returns every entry recorded this session, oldest first.
func (s *HistoryService) List(ctx context.Context) ([]models.HistoryEntry, error) {
	return s.history.List(ctx)
}
