package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"voltline/internal/domain"
	"voltline/internal/dto"
	apperrors "voltline/internal/errors"
	"voltline/internal/order/usecase"
)

type PlaceOrderUseCase interface {
	PlaceOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
}

type ManageOrdersUseCase interface {
	List(ctx context.Context, filter usecase.OrderFilter) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, id string, to domain.OrderStatus, notes string) (*domain.Order, error)
	SetPaymentStatus(ctx context.Context, id string, paymentStatus domain.PaymentStatus) (*domain.Order, error)
	Archive(ctx context.Context, id string, archived bool) (*domain.Order, error)
	Stats(ctx context.Context) (*domain.OrderStats, error)
}

type Controller struct {
	place  PlaceOrderUseCase
	manage ManageOrdersUseCase
	logger *zap.Logger
}

func NewController(place PlaceOrderUseCase, manage ManageOrdersUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		place:  place,
		manage: manage,
		logger: logger,
	}
}

// HandleList serves GET /orders with optional status, customerEmail,
// from/to and includeArchived query parameters.
func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	filter, err := parseListFilter(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	orders, err := c.manage.List(r.Context(), filter)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	c.writeJSON(w, http.StatusOK, orders)
}

func parseListFilter(r *http.Request) (usecase.OrderFilter, error) {
	q := r.URL.Query()
	filter := usecase.OrderFilter{
		CustomerEmail:   q.Get("customerEmail"),
		IncludeArchived: q.Get("includeArchived") == "true",
	}

	if raw := q.Get("status"); raw != "" {
		status := domain.OrderStatus(raw)
		if !status.Valid() {
			return filter, apperrors.NewValidationError("invalid status", apperrors.ValidationDetail{
				Field:   "status",
				Message: "status must be one of pending, confirmed, processing, shipped, delivered, cancelled",
			})
		}
		filter.Status = &status
	}

	fromRaw, toRaw := q.Get("from"), q.Get("to")
	if (fromRaw == "") != (toRaw == "") {
		return filter, apperrors.NewValidationError("incomplete date range", apperrors.ValidationDetail{
			Field:   "from",
			Message: "from and to must be supplied together",
		})
	}
	if fromRaw != "" {
		from, err := parseDate(fromRaw)
		if err != nil {
			return filter, apperrors.NewValidationError("invalid date", apperrors.ValidationDetail{
				Field:   "from",
				Message: "from must be an RFC 3339 timestamp or a YYYY-MM-DD date",
			})
		}
		to, err := parseDate(toRaw)
		if err != nil {
			return filter, apperrors.NewValidationError("invalid date", apperrors.ValidationDetail{
				Field:   "to",
				Message: "to must be an RFC 3339 timestamp or a YYYY-MM-DD date",
			})
		}
		// A bare end date means "through that whole day".
		if len(toRaw) == len("2006-01-02") {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter.From, filter.To = &from, &to
	}

	return filter, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// HandleCreate serves POST /orders, the checkout boundary.
func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateCreateRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.place.PlaceOrder(r.Context(), req)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, order)
}

func validateCreateRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	required := []struct {
		field, value string
	}{
		{"customerInfo.name", req.CustomerInfo.Name},
		{"customerInfo.email", req.CustomerInfo.Email},
		{"customerInfo.phone", req.CustomerInfo.Phone},
		{"customerInfo.address", req.CustomerInfo.Address},
		{"customerInfo.city", req.CustomerInfo.City},
		{"customerInfo.postalCode", req.CustomerInfo.PostalCode},
	}
	for _, f := range required {
		if f.value == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}

	if req.CustomerInfo.Email != "" {
		if _, err := mail.ParseAddress(req.CustomerInfo.Email); err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   "customerInfo.email",
				Message: "email must be a valid address",
			})
		}
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}
	if len(req.Items) > 100 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items exceeds maximum of 100",
		})
	}

	seen := make(map[string]bool)
	for idx, line := range req.Items {
		if line.ProductID == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].productId",
				Message: "productId is required",
			})
		}
		if seen[line.ProductID] {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].productId",
				Message: "productId must not be duplicated",
			})
		}
		seen[line.ProductID] = true

		if line.Quantity < 1 || line.Quantity > 10000 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be between 1 and 10000",
			})
		}
	}

	if !domain.PaymentMethod(req.PaymentMethod).Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "paymentMethod",
			Message: "paymentMethod must be one of cash_on_delivery, bank_transfer, card",
		})
	}
	if !domain.ShippingMethod(req.ShippingMethod).Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "shippingMethod",
			Message: "shippingMethod must be one of standard, express, pickup",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

// HandleGet serves GET /orders/{id}.
func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	order, err := c.manage.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

// HandleGetByNumber serves GET /orders/number/{orderNumber}, the
// customer-facing tracking lookup.
func (c *Controller) HandleGetByNumber(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	order, err := c.manage.GetByNumber(r.Context(), chi.URLParam(r, "orderNumber"))
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

// HandleUpdate serves PUT /orders/{id}. The body must carry exactly one
// mutation kind: status (+ optional notes), paymentStatus, or archived.
func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	id := chi.URLParam(r, "id")

	var req dto.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.MutationKinds() != 1 {
		c.writeValidationError(w, "exactly one mutation per request", apperrors.ValidationDetail{
			Field:   "body",
			Message: "supply exactly one of status, paymentStatus, archived",
		})
		return
	}

	var (
		order *domain.Order
		err   error
	)
	switch {
	case req.Status != nil:
		status := domain.OrderStatus(*req.Status)
		if !status.Valid() {
			c.writeValidationError(w, "invalid status", apperrors.ValidationDetail{
				Field:   "status",
				Message: "status must be one of pending, confirmed, processing, shipped, delivered, cancelled",
			})
			return
		}
		notes := ""
		if req.Notes != nil {
			notes = *req.Notes
		}
		order, err = c.manage.AdvanceStatus(r.Context(), id, status, notes)
	case req.PaymentStatus != nil:
		paymentStatus := domain.PaymentStatus(*req.PaymentStatus)
		if !paymentStatus.Valid() {
			c.writeValidationError(w, "invalid payment status", apperrors.ValidationDetail{
				Field:   "paymentStatus",
				Message: "paymentStatus must be one of pending, paid, failed",
			})
			return
		}
		order, err = c.manage.SetPaymentStatus(r.Context(), id, paymentStatus)
	default:
		order, err = c.manage.Archive(r.Context(), id, *req.Archived)
	}
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

// HandleStats serves GET /orders/stats for the admin dashboard.
func (c *Controller) HandleStats(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	stats, err := c.manage.Stats(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, stats)
}

func (c *Controller) handleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusConflict, "CONFLICT", err.Error())
		return
	}
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *Controller) writeErrorResponse(w http.ResponseWriter, traceID string, status int, code, message string) {
	c.writeJSON(w, status, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
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
