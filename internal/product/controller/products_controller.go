package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"voltline/internal/domain"
	apperrors "voltline/internal/errors"
	"voltline/internal/product/dto"
)

type CatalogUseCase interface {
	SearchProducts(ctx context.Context, req dto.SearchProductsRequest) (*dto.SearchProductsResponse, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductDTO, error)
}

type Controller struct {
	useCase CatalogUseCase
	logger  *zap.Logger
}

func NewController(useCase CatalogUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleSearchProducts(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateSearchRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	resp, err := c.useCase.SearchProducts(r.Context(), req)
	if err != nil {
		c.logger.Error("search products failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := c.useCase.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "NOT_FOUND",
				"message": err.Error(),
			})
			return
		}
		c.logger.Error("get product failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, product)
}

func (c *Controller) validateSearchRequest(req dto.SearchProductsRequest) error {
	if req.Query == "" {
		return apperrors.NewValidationError("query is required", apperrors.ValidationDetail{
			Field:   "query",
			Message: "query must not be empty",
		})
	}

	if req.Audience != "" && !domain.Audience(req.Audience).Valid() {
		return apperrors.NewValidationError("invalid audience", apperrors.ValidationDetail{
			Field:   "audience",
			Message: "audience must be one of pro, particulier, both",
		})
	}

	return nil
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
