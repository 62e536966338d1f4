package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voltline/internal/domain"
	"voltline/internal/dto"
	apperrors "voltline/internal/errors"
)

type OrderCreator interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

type ProductFinder interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}

type NumberGenerator interface {
	Generate(ctx context.Context, now time.Time) (string, error)
}

// PlaceOrderUseCase turns a checkout submission into a persisted order:
// it resolves cart lines against the catalog, freezes product snapshots
// and totals, draws an order number and creates the order in pending
// state.
type PlaceOrderUseCase struct {
	orders   OrderCreator
	products ProductFinder
	numbers  NumberGenerator
	logger   *zap.Logger
	now      func() time.Time
}

func NewPlaceOrderUseCase(
	orders OrderCreator,
	products ProductFinder,
	numbers NumberGenerator,
	logger *zap.Logger,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		orders:   orders,
		products: products,
		numbers:  numbers,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	uc.logger.Info("placing order",
		zap.String("customerEmail", req.CustomerInfo.Email),
		zap.Int("lineCount", len(req.Items)))

	ids := make([]string, 0, len(req.Items))
	for _, line := range req.Items {
		ids = append(ids, line.ProductID)
	}

	products, err := uc.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for i, line := range req.Items {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, apperrors.NewValidationError("unknown product", apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].productId", i),
				Message: fmt.Sprintf("product %s does not exist or is inactive", line.ProductID),
			})
		}
		if !product.Orderable() {
			return nil, apperrors.NewValidationError("product cannot be ordered", apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].productId", i),
				Message: fmt.Sprintf("product %s has no public price", line.ProductID),
			})
		}

		price := *product.Price
		items = append(items, domain.OrderItem{
			ID:               uuid.NewString(),
			ProductID:        product.ID,
			ProductName:      product.Name,
			ProductReference: product.Reference,
			ProductImage:     product.FirstImage(),
			Quantity:         line.Quantity,
			Price:            price,
			Subtotal:         domain.LineSubtotal(price, line.Quantity),
		})
	}

	totals := domain.ComputeTotals(items)

	now := uc.now()
	number, err := uc.numbers.Generate(ctx, now)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:          uuid.NewString(),
		OrderNumber: number,
		CustomerID:  req.CustomerID,
		CustomerInfo: domain.CustomerInfo{
			Name:       req.CustomerInfo.Name,
			Email:      req.CustomerInfo.Email,
			Phone:      req.CustomerInfo.Phone,
			Address:    req.CustomerInfo.Address,
			City:       req.CustomerInfo.City,
			PostalCode: req.CustomerInfo.PostalCode,
			Notes:      req.CustomerInfo.Notes,
		},
		Items:             items,
		Subtotal:          totals.Subtotal,
		Tax:               totals.Tax,
		Total:             totals.Total,
		Status:            domain.OrderStatusPending,
		PaymentStatus:     domain.PaymentStatusPending,
		PaymentMethod:     domain.PaymentMethod(req.PaymentMethod),
		ShippingMethod:    domain.ShippingMethod(req.ShippingMethod),
		EstimatedDelivery: estimatedDelivery(domain.ShippingMethod(req.ShippingMethod), now),
	}

	created, err := uc.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order placed",
		zap.String("orderId", created.ID),
		zap.String("orderNumber", created.OrderNumber),
		zap.Float64("total", created.Total))
	return created, nil
}

func estimatedDelivery(method domain.ShippingMethod, now time.Time) *time.Time {
	var eta time.Time
	switch method {
	case domain.ShippingExpress:
		eta = now.Add(24 * time.Hour)
	case domain.ShippingPickup:
		eta = now
	default:
		eta = now.Add(3 * 24 * time.Hour)
	}
	return &eta
}
