package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dermtrack/skincare-system/internal/core/domain"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

const productsCollection = "products"

// ProductRepository persists regimen products. Every query against an
// existing row carries {_id, user_id}, so cross-owner access is a plain miss.
type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

type mongoProduct struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type,omitempty"`
	Frequency string             `bson:"frequency"`
	StartDate string             `bson:"start_date,omitempty"`
	EndDate   string             `bson:"end_date,omitempty"`
	Notes     string             `bson:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m mongoProduct) toDomain() *domain.Product {
	return &domain.Product{
		ID:        m.ID.Hex(),
		UserID:    m.UserID,
		Name:      m.Name,
		Type:      m.Type,
		Frequency: domain.Frequency(m.Frequency),
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

func (r *ProductRepository) FindAll(ctx context.Context, userID string) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, wrapErr("list products", err)
	}
	defer cur.Close(ctx)

	products := make([]*domain.Product, 0)
	for cur.Next(ctx) {
		var mp mongoProduct
		if err := cur.Decode(&mp); err != nil {
			return nil, wrapErr("decode product", err)
		}
		products = append(products, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErr("list products", err)
	}
	return products, nil
}

func (r *ProductRepository) FindOne(ctx context.Context, userID, id string) (*domain.Product, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProduct
	err := r.coll.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, wrapErr("find product", err)
	}
	return mp.toDomain(), nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProduct{
		UserID:    p.UserID,
		Name:      p.Name,
		Type:      p.Type,
		Frequency: string(p.Frequency),
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, wrapErr("insert product", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// Update applies the fields in a single conditioned operation; the owner
// predicate is part of the filter, never re-checked separately.
func (r *ProductRepository) Update(ctx context.Context, userID, id string, in ports.ProductInput) (*domain.Product, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":       in.Name,
		"type":       in.Type,
		"frequency":  in.Frequency,
		"start_date": in.StartDate,
		"end_date":   in.EndDate,
		"notes":      in.Notes,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mp mongoProduct
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "user_id": userID}, update, opts).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, wrapErr("update product", err)
	}
	return mp.toDomain(), nil
}

func (r *ProductRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	oid, ok := parseID(id)
	if !ok {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return false, wrapErr("delete product", err)
	}
	return res.DeletedCount > 0, nil
}
