package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voltline/internal/domain"
	"voltline/internal/errors"
)

const ordersCollection = "orders"

type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection(ordersCollection)}
}

// notArchived matches orders that are not archived, including records
// written before the archived field existed.
func notArchived() bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"archived": bson.M{"$exists": false}},
		bson.M{"archived": false},
	}}
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func (r *MongoOrderRepository) find(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	cur, err := r.col.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []domain.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decoding orders: %w", err)
	}
	return orders, nil
}

func (r *MongoOrderRepository) FindAll(ctx context.Context, includeArchived bool) ([]domain.Order, error) {
	filter := bson.M{}
	if !includeArchived {
		filter = notArchived()
	}
	return r.find(ctx, filter)
}

func (r *MongoOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return r.findOne(ctx, bson.M{"id": id}, fmt.Sprintf("order with id %s not found", id))
}

func (r *MongoOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return r.findOne(ctx, bson.M{"orderNumber": orderNumber},
		fmt.Sprintf("order with number %s not found", orderNumber))
}

func (r *MongoOrderRepository) findOne(ctx context.Context, filter bson.M, notFoundMsg string) (*domain.Order, error) {
	var order domain.Order
	err := r.col.FindOne(ctx, filter).Decode(&order)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		return nil, fmt.Errorf("querying order: %w", err)
	}
	return &order, nil
}

// FindByCustomerEmail matches case-insensitively; emails are stored
// lowercased at creation, so lowering the query suffices.
func (r *MongoOrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error) {
	return r.find(ctx, bson.M{"customerInfo.email": strings.ToLower(email)})
}

func (r *MongoOrderRepository) FindByStatus(ctx context.Context, status domain.OrderStatus, includeArchived bool) ([]domain.Order, error) {
	filter := bson.M{"status": status}
	if !includeArchived {
		filter["$or"] = notArchived()["$or"]
	}
	return r.find(ctx, filter)
}

// FindByDateRange is inclusive on both bounds.
func (r *MongoOrderRepository) FindByDateRange(ctx context.Context, from, to time.Time, includeArchived bool) ([]domain.Order, error) {
	filter := bson.M{"createdAt": bson.M{"$gte": from, "$lte": to}}
	if !includeArchived {
		filter["$or"] = notArchived()["$or"]
	}
	return r.find(ctx, filter)
}

// Create persists a new order. The caller supplies identity, number,
// frozen customer info, items and totals; timestamps and the archived
// default are assigned here.
func (r *MongoOrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	now := time.Now().UTC()
	order.Archived = false
	order.CreatedAt = now
	order.UpdatedAt = now
	order.CustomerInfo.Email = strings.ToLower(order.CustomerInfo.Email)

	if _, err := r.col.InsertOne(ctx, order); err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}
	return order, nil
}

// UpdateStatus applies the status unconditionally; lifecycle gating is
// the use case layer's concern. Idempotent on repeated calls, updatedAt
// advances each time.
func (r *MongoOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, notes string) (*domain.Order, error) {
	now := time.Now().UTC()
	set := bson.M{"status": status, "updatedAt": now}
	if notes != "" {
		set["notes"] = notes
	}
	if status == domain.OrderStatusDelivered {
		set["actualDelivery"] = now
	}
	return r.updateOne(ctx, id, set)
}

func (r *MongoOrderRepository) UpdatePaymentStatus(ctx context.Context, id string, paymentStatus domain.PaymentStatus) (*domain.Order, error) {
	return r.updateOne(ctx, id, bson.M{"paymentStatus": paymentStatus, "updatedAt": time.Now().UTC()})
}

func (r *MongoOrderRepository) SetArchived(ctx context.Context, id string, archived bool) (*domain.Order, error) {
	return r.updateOne(ctx, id, bson.M{"archived": archived, "updatedAt": time.Now().UTC()})
}

func (r *MongoOrderRepository) updateOne(ctx context.Context, id string, set bson.M) (*domain.Order, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order domain.Order
	err := r.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&order)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}
	return &order, nil
}

// Stats aggregates over the whole collection, archived orders included:
// archival hides orders from default lists but they remain part of the
// business volume. Revenue excludes cancelled orders.
func (r *MongoOrderRepository) Stats(ctx context.Context) (*domain.OrderStats, error) {
	stats := &domain.OrderStats{}

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("counting orders: %w", err)
	}
	stats.TotalOrders = total

	counts := []struct {
		status domain.OrderStatus
		dst    *int64
	}{
		{domain.OrderStatusPending, &stats.PendingOrders},
		{domain.OrderStatusConfirmed, &stats.ConfirmedOrders},
		{domain.OrderStatusProcessing, &stats.ProcessingOrders},
		{domain.OrderStatusShipped, &stats.ShippedOrders},
		{domain.OrderStatusDelivered, &stats.DeliveredOrders},
		{domain.OrderStatusCancelled, &stats.CancelledOrders},
	}
	for _, c := range counts {
		n, err := r.col.CountDocuments(ctx, bson.M{"status": c.status})
		if err != nil {
			return nil, fmt.Errorf("counting %s orders: %w", c.status, err)
		}
		*c.dst = n
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": bson.M{"$ne": domain.OrderStatusCancelled}}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$total"}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregating revenue: %w", err)
	}
	defer cur.Close(ctx)

	var revenue []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &revenue); err != nil {
		return nil, fmt.Errorf("decoding revenue: %w", err)
	}
	if len(revenue) > 0 {
		stats.TotalRevenue = revenue[0].Total
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	return stats, nil
}
