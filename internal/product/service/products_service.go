package service

import (
	"context"

	"voltline/internal/domain"
)

type Repository interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, query string, audience domain.Audience) ([]domain.Product, error)
}

type ProductService struct {
	repo Repository
}

func NewService(repo Repository) *ProductService {
	return &ProductService{repo: repo}
}

// GetByIDs resolves the requested ids, reporting which ones are unknown
// or inactive so callers can surface them.
func (s *ProductService) GetByIDs(ctx context.Context, ids []string) ([]domain.Product, []string, error) {
	found, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	foundSet := make(map[string]struct{}, len(found))
	for _, p := range found {
		foundSet[p.ID] = struct{}{}
	}

	var notFoundIDs []string
	for _, id := range ids {
		if _, ok := foundSet[id]; !ok {
			notFoundIDs = append(notFoundIDs, id)
		}
	}

	return found, notFoundIDs, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Search(ctx context.Context, query string, audience domain.Audience) ([]domain.Product, error) {
	return s.repo.Search(ctx, query, audience)
}
