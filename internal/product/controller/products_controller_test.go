package controller

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	apperrors "voltline/internal/errors"
	"voltline/internal/product/dto"
)

type mockCatalogUseCase struct {
	SearchProductsFunc func(ctx context.Context, req dto.SearchProductsRequest) (*dto.SearchProductsResponse, error)
	GetProductFunc     func(ctx context.Context, id string) (*dto.ProductDTO, error)
}

func (m *mockCatalogUseCase) SearchProducts(ctx context.Context, req dto.SearchProductsRequest) (*dto.SearchProductsResponse, error) {
	return m.SearchProductsFunc(ctx, req)
}

func (m *mockCatalogUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductDTO, error) {
	return m.GetProductFunc(ctx, id)
}

func TestHandleSearchProducts_Success(t *testing.T) {
	uc := &mockCatalogUseCase{
		SearchProductsFunc: func(ctx context.Context, req dto.SearchProductsRequest) (*dto.SearchProductsResponse, error) {
			assert.Equal(t, "câble", req.Query)
			return &dto.SearchProductsResponse{
				Products: []dto.ProductDTO{{ID: "p1", Name: "Câble 2.5mm"}},
			}, nil
		},
	}
	ctrl := NewController(uc, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products/search",
		bytes.NewReader([]byte(`{"query":"câble"}`)))
	ctrl.HandleSearchProducts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Câble 2.5mm")
}

func TestHandleSearchProducts_EmptyQuery(t *testing.T) {
	ctrl := NewController(&mockCatalogUseCase{}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products/search",
		bytes.NewReader([]byte(`{"query":""}`)))
	ctrl.HandleSearchProducts(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestHandleSearchProducts_InvalidAudience(t *testing.T) {
	ctrl := NewController(&mockCatalogUseCase{}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products/search",
		bytes.NewReader([]byte(`{"query":"câble","audience":"staff"}`)))
	ctrl.HandleSearchProducts(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "audience")
}

func TestHandleGetProduct_NotFound(t *testing.T) {
	uc := &mockCatalogUseCase{
		GetProductFunc: func(ctx context.Context, id string) (*dto.ProductDTO, error) {
			return nil, apperrors.NewNotFoundError("product with id " + id + " not found")
		},
	}
	ctrl := NewController(uc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "missing")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	ctrl.HandleGetProduct(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
