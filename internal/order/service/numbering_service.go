package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type SequenceRepository interface {
	Next(ctx context.Context, key string) (int64, error)
}

// NumberingService produces the human-facing order numbers in the form
// PREFIX-YYYY-NNN. Sequences are scoped to the calendar year and restart
// at 1 each January.
type NumberingService struct {
	sequences SequenceRepository
	prefix    string
	logger    *zap.Logger
}

func NewNumberingService(sequences SequenceRepository, prefix string, logger *zap.Logger) *NumberingService {
	return &NumberingService{
		sequences: sequences,
		prefix:    prefix,
		logger:    logger,
	}
}

func (s *NumberingService) Generate(ctx context.Context, now time.Time) (string, error) {
	year := now.Year()
	n, err := s.sequences.Next(ctx, fmt.Sprintf("orders-%d", year))
	if err != nil {
		return "", fmt.Errorf("generating order number: %w", err)
	}

	number := fmt.Sprintf("%s-%d-%03d", s.prefix, year, n)
	s.logger.Debug("order number generated", zap.String("orderNumber", number))
	return number, nil
}
