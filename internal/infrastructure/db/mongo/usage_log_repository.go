package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dermtrack/skincare-system/internal/core/domain"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

const usageLogsCollection = "usage_logs"

// UsageLogRepository persists product usage logs scoped by product id. The
// service layer resolves product ownership before calling in here.
type UsageLogRepository struct {
	coll *mongo.Collection
}

func NewUsageLogRepository(db *mongo.Database) *UsageLogRepository {
	return &UsageLogRepository{coll: db.Collection(usageLogsCollection)}
}

type mongoUsageLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ProductID   string             `bson:"product_id"`
	DateUsed    string             `bson:"date_used"`
	Notes       string             `bson:"notes,omitempty"`
	SideEffects string             `bson:"side_effects,omitempty"`
}

func (m mongoUsageLog) toDomain() *domain.UsageLog {
	return &domain.UsageLog{
		ID:          m.ID.Hex(),
		ProductID:   m.ProductID,
		DateUsed:    m.DateUsed,
		Notes:       m.Notes,
		SideEffects: m.SideEffects,
	}
}

func (r *UsageLogRepository) Create(ctx context.Context, l *domain.UsageLog) (*domain.UsageLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUsageLog{
		ProductID:   l.ProductID,
		DateUsed:    l.DateUsed,
		Notes:       l.Notes,
		SideEffects: l.SideEffects,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, wrapErr("insert usage log", err)
	}

	created := *l
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UsageLogRepository) FindAllByProduct(ctx context.Context, productID string) ([]*domain.UsageLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date_used", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, wrapErr("list usage logs", err)
	}
	defer cur.Close(ctx)

	logs := make([]*domain.UsageLog, 0)
	for cur.Next(ctx) {
		var ml mongoUsageLog
		if err := cur.Decode(&ml); err != nil {
			return nil, wrapErr("decode usage log", err)
		}
		logs = append(logs, ml.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErr("list usage logs", err)
	}
	return logs, nil
}

func (r *UsageLogRepository) FindOne(ctx context.Context, productID, logID string) (*domain.UsageLog, error) {
	oid, ok := parseID(logID)
	if !ok {
		return nil, domain.ErrUsageLogNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ml mongoUsageLog
	err := r.coll.FindOne(ctx, bson.M{"_id": oid, "product_id": productID}).Decode(&ml)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUsageLogNotFound
		}
		return nil, wrapErr("find usage log", err)
	}
	return ml.toDomain(), nil
}

func (r *UsageLogRepository) Update(ctx context.Context, productID, logID string, in ports.UsageLogInput) (*domain.UsageLog, error) {
	oid, ok := parseID(logID)
	if !ok {
		return nil, domain.ErrUsageLogNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"date_used":    in.DateUsed,
		"notes":        in.Notes,
		"side_effects": in.SideEffects,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ml mongoUsageLog
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "product_id": productID}, update, opts).Decode(&ml)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUsageLogNotFound
		}
		return nil, wrapErr("update usage log", err)
	}
	return ml.toDomain(), nil
}
