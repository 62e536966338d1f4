package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltline/internal/domain"
)

type mockRepository struct {
	FindByIDsFunc func(ctx context.Context, ids []string) ([]domain.Product, error)
	FindByIDFunc  func(ctx context.Context, id string) (*domain.Product, error)
	SearchFunc    func(ctx context.Context, query string, audience domain.Audience) ([]domain.Product, error)
}

func (m *mockRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	return m.FindByIDsFunc(ctx, ids)
}

func (m *mockRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockRepository) Search(ctx context.Context, query string, audience domain.Audience) ([]domain.Product, error) {
	return m.SearchFunc(ctx, query, audience)
}

func TestGetByIDs_ReportsMissingIDs(t *testing.T) {
	repo := &mockRepository{
		FindByIDsFunc: func(ctx context.Context, ids []string) ([]domain.Product, error) {
			return []domain.Product{{ID: "p1"}, {ID: "p3"}}, nil
		},
	}
	svc := NewService(repo)

	found, missing, err := svc.GetByIDs(context.Background(), []string{"p1", "p2", "p3", "p4"})
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, []string{"p2", "p4"}, missing)
}

func TestGetByIDs_AllFound(t *testing.T) {
	repo := &mockRepository{
		FindByIDsFunc: func(ctx context.Context, ids []string) ([]domain.Product, error) {
			return []domain.Product{{ID: "p1"}}, nil
		},
	}
	svc := NewService(repo)

	found, missing, err := svc.GetByIDs(context.Background(), []string{"p1"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Empty(t, missing)
}

func TestSearch_Passthrough(t *testing.T) {
	var gotQuery string
	var gotAudience domain.Audience
	repo := &mockRepository{
		SearchFunc: func(ctx context.Context, query string, audience domain.Audience) ([]domain.Product, error) {
			gotQuery, gotAudience = query, audience
			return nil, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.Search(context.Background(), "câble", domain.AudiencePro)
	require.NoError(t, err)
	assert.Equal(t, "câble", gotQuery)
	assert.Equal(t, domain.AudiencePro, gotAudience)
}
