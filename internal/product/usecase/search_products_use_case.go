package usecase

import (
	"context"

	"voltline/internal/domain"
	"voltline/internal/product/dto"
)

type Service interface {
	Search(ctx context.Context, query string, audience domain.Audience) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type SearchUseCase struct {
	service Service
}

func NewSearchUseCase(service Service) *SearchUseCase {
	return &SearchUseCase{service: service}
}

func (uc *SearchUseCase) SearchProducts(ctx context.Context, req dto.SearchProductsRequest) (*dto.SearchProductsResponse, error) {
	found, err := uc.service.Search(ctx, req.Query, domain.Audience(req.Audience))
	if err != nil {
		return nil, err
	}

	products := make([]dto.ProductDTO, 0, len(found))
	for _, p := range found {
		products = append(products, toProductDTO(p))
	}

	return &dto.SearchProductsResponse{Products: products}, nil
}

func (uc *SearchUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductDTO, error) {
	p, err := uc.service.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := toProductDTO(*p)
	return &d, nil
}

func toProductDTO(p domain.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		Reference:    p.Reference,
		Description:  p.Description,
		Category:     p.Category,
		Subcategory:  p.Subcategory,
		Images:       p.Images,
		Price:        p.Price,
		Availability: string(p.Availability),
		Featured:     p.Featured,
		Audience:     string(p.Audience),
	}
}
