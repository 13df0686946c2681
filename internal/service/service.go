package service

import (
	"context"

	"unitdesk/internal/convert"
	"unitdesk/internal/models"
	"unitdesk/internal/repository"
)

// Converter runs one conversion or calculation and records it on success.
type Converter interface {
	Execute(ctx context.Context, op convert.Operation) (models.HistoryEntry, error)
}

// History exposes read-only access to the session ledger.
type History interface {
	List(ctx context.Context) ([]models.HistoryEntry, error)
}

type Service struct {
	Converter
	History
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Converter: NewConverterService(repos.History),
		History:   NewHistoryService(repos.History),
	}
}
