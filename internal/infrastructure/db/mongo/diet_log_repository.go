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

const dietLogsCollection = "diet_logs"

// DietLogRepository persists diet logs. The unique (user_id, date) index
// (see EnsureIndexes) turns the one-log-per-day rule into an atomic insert.
type DietLogRepository struct {
	coll *mongo.Collection
}

func NewDietLogRepository(db *mongo.Database) *DietLogRepository {
	return &DietLogRepository{coll: db.Collection(dietLogsCollection)}
}

type mongoDietLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Date        string             `bson:"date"`
	Meals       map[string]string  `bson:"meals,omitempty"`
	Snacks      string             `bson:"snacks,omitempty"`
	WaterIntake int                `bson:"water_intake"`
}

func (m mongoDietLog) toDomain() *domain.DietLog {
	return &domain.DietLog{
		ID:          m.ID.Hex(),
		UserID:      m.UserID,
		Date:        m.Date,
		Meals:       m.Meals,
		Snacks:      m.Snacks,
		WaterIntake: m.WaterIntake,
	}
}

func (r *DietLogRepository) FindAll(ctx context.Context, userID string) ([]*domain.DietLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, wrapErr("list diet logs", err)
	}
	defer cur.Close(ctx)

	logs := make([]*domain.DietLog, 0)
	for cur.Next(ctx) {
		var ml mongoDietLog
		if err := cur.Decode(&ml); err != nil {
			return nil, wrapErr("decode diet log", err)
		}
		logs = append(logs, ml.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErr("list diet logs", err)
	}
	return logs, nil
}

func (r *DietLogRepository) FindByDate(ctx context.Context, userID, date string) (*domain.DietLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ml mongoDietLog
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&ml)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDietLogNotFound
		}
		return nil, wrapErr("find diet log by date", err)
	}
	return ml.toDomain(), nil
}

func (r *DietLogRepository) Create(ctx context.Context, l *domain.DietLog) (*domain.DietLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoDietLog{
		UserID:      l.UserID,
		Date:        l.Date,
		Meals:       l.Meals,
		Snacks:      l.Snacks,
		WaterIntake: l.WaterIntake,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDietLogExists
		}
		return nil, wrapErr("insert diet log", err)
	}

	created := *l
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DietLogRepository) Update(ctx context.Context, userID, id string, in ports.DietLogInput) (*domain.DietLog, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrDietLogNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"meals":        in.Meals,
		"snacks":       in.Snacks,
		"water_intake": in.WaterIntake,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ml mongoDietLog
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "user_id": userID}, update, opts).Decode(&ml)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDietLogNotFound
		}
		return nil, wrapErr("update diet log", err)
	}
	return ml.toDomain(), nil
}

// Delete removes the log and returns the removed document so the service can
// clear the day guard for its date.
func (r *DietLogRepository) Delete(ctx context.Context, userID, id string) (*domain.DietLog, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrDietLogNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ml mongoDietLog
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&ml)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDietLogNotFound
		}
		return nil, wrapErr("delete diet log", err)
	}
	return ml.toDomain(), nil
}
