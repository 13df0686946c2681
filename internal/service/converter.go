package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"unitdesk/internal/convert"
	"unitdesk/internal/models"
	"unitdesk/internal/repository"
)

type ConverterService struct {
	history repository.History
}

func NewConverterService(history repository.History) *ConverterService {
	return &ConverterService{history: history}
}

// categoryOf maps an operation to its ledger category.
func categoryOf(op convert.Operation) models.Category {
	switch op.(type) {
	case convert.Temperature:
		return models.CategoryTemperature
	case convert.NumberBase:
		return models.CategoryNumberBase
	case convert.Logarithm:
		return models.CategoryLogarithm
	case convert.Currency:
		return models.CategoryCurrency
	case convert.Length:
		return models.CategoryLength
	default:
		return models.CategoryCalculator
	}
}

// Execute runs op and, only when it succeeds, appends one entry to the
// ledger. Failed computations leave the ledger untouched.
func (s *ConverterService) Execute(ctx context.Context, op convert.Operation) (models.HistoryEntry, error) {
	res, err := convert.Compute(op)
	if err != nil {
		return models.HistoryEntry{}, err
	}

	entry := models.HistoryEntry{
		EntryID:    uuid.NewString(),
		RecordedAt: time.Now().UTC(),
		Category:   categoryOf(op),
		Input:      convert.Describe(op),
		Result:     res.String(),
	}
	if err := s.history.Append(ctx, entry); err != nil {
		return models.HistoryEntry{}, fmt.Errorf("record history entry: %w", err)
	}
	return entry, nil
}
