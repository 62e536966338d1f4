package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voltline/internal/domain"
	"voltline/internal/errors"
)

const productsCollection = "products"

type MongoProductRepository struct {
	col *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{col: db.Collection(productsCollection)}
}

// FindByIDs returns the active products among the requested ids.
// Missing or inactive ids are simply absent from the result.
func (r *MongoProductRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cur, err := r.col.Find(ctx, bson.M{
		"id":       bson.M{"$in": ids},
		"isActive": true,
	})
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer cur.Close(ctx)

	var products []domain.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := r.col.FindOne(ctx, bson.M{"id": id, "isActive": true}).Decode(&product)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product: %w", err)
	}
	return &product, nil
}

// Search matches name or reference case-insensitively, optionally
// narrowed to one storefront audience.
func (r *MongoProductRepository) Search(ctx context.Context, query string, audience domain.Audience) ([]domain.Product, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"isActive": true,
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"reference": pattern},
		},
	}
	if audience != "" && audience != domain.AudienceBoth {
		filter["$and"] = bson.A{bson.M{"$or": bson.A{
			bson.M{"audience": bson.M{"$exists": false}},
			bson.M{"audience": domain.AudienceBoth},
			bson.M{"audience": audience},
		}}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}
	defer cur.Close(ctx)

	var products []domain.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}
