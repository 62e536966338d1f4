package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"voltline/internal/domain"
	apperrors "voltline/internal/errors"
)

type OrderRepository interface {
	FindAll(ctx context.Context, includeArchived bool) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error)
	FindByStatus(ctx context.Context, status domain.OrderStatus, includeArchived bool) ([]domain.Order, error)
	FindByDateRange(ctx context.Context, from, to time.Time, includeArchived bool) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, notes string) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, paymentStatus domain.PaymentStatus) (*domain.Order, error)
	SetArchived(ctx context.Context, id string, archived bool) (*domain.Order, error)
	Stats(ctx context.Context) (*domain.OrderStats, error)
}

// OrderFilter narrows a listing. Filters are applied with a fixed
// precedence: date range, then status, then customer email.
type OrderFilter struct {
	Status          *domain.OrderStatus
	CustomerEmail   string
	From, To        *time.Time
	IncludeArchived bool
}

// ManageOrdersUseCase is the admin surface over persisted orders:
// listing, lookup, lifecycle advancement, payment status, archival and
// aggregate statistics.
type ManageOrdersUseCase struct {
	orders OrderRepository
	logger *zap.Logger
}

func NewManageOrdersUseCase(orders OrderRepository, logger *zap.Logger) *ManageOrdersUseCase {
	return &ManageOrdersUseCase{
		orders: orders,
		logger: logger,
	}
}

func (uc *ManageOrdersUseCase) List(ctx context.Context, filter OrderFilter) ([]domain.Order, error) {
	switch {
	case filter.From != nil && filter.To != nil:
		return uc.orders.FindByDateRange(ctx, *filter.From, *filter.To, filter.IncludeArchived)
	case filter.Status != nil:
		return uc.orders.FindByStatus(ctx, *filter.Status, filter.IncludeArchived)
	case filter.CustomerEmail != "":
		return uc.orders.FindByCustomerEmail(ctx, filter.CustomerEmail)
	default:
		return uc.orders.FindAll(ctx, filter.IncludeArchived)
	}
}

func (uc *ManageOrdersUseCase) Get(ctx context.Context, id string) (*domain.Order, error) {
	return uc.orders.FindByID(ctx, id)
}

func (uc *ManageOrdersUseCase) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return uc.orders.FindByOrderNumber(ctx, orderNumber)
}

// AdvanceStatus moves an order through its lifecycle. Transitions are
// validated against the lifecycle table; re-setting the current status
// is allowed and only refreshes updatedAt.
func (uc *ManageOrdersUseCase) AdvanceStatus(ctx context.Context, id string, to domain.OrderStatus, notes string) (*domain.Order, error) {
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(order.Status, to); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	updated, err := uc.orders.UpdateStatus(ctx, id, to, notes)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.String("orderId", id),
		zap.String("from", string(order.Status)),
		zap.String("to", string(to)))
	return updated, nil
}

// SetPaymentStatus has no guard logic: any value can replace any prior
// one, payment reconciliation is a manual back-office task.
func (uc *ManageOrdersUseCase) SetPaymentStatus(ctx context.Context, id string, paymentStatus domain.PaymentStatus) (*domain.Order, error) {
	updated, err := uc.orders.UpdatePaymentStatus(ctx, id, paymentStatus)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order payment status updated",
		zap.String("orderId", id),
		zap.String("paymentStatus", string(paymentStatus)))
	return updated, nil
}

// Archive hides or restores a completed order. Archiving requires the
// order to be delivered; unarchiving is always allowed.
func (uc *ManageOrdersUseCase) Archive(ctx context.Context, id string, archived bool) (*domain.Order, error) {
	if archived {
		order, err := uc.orders.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !domain.CanArchive(order.Status) {
			return nil, apperrors.NewConflictError("only delivered orders can be archived")
		}
	}

	updated, err := uc.orders.SetArchived(ctx, id, archived)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order archived flag updated",
		zap.String("orderId", id),
		zap.Bool("archived", archived))
	return updated, nil
}

func (uc *ManageOrdersUseCase) Stats(ctx context.Context) (*domain.OrderStats, error) {
	return uc.orders.Stats(ctx)
}
