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

const wellBeingCollection = "wellbeing_logs"

// WellBeingRepository persists well-being logs. No day uniqueness applies.
type WellBeingRepository struct {
	coll *mongo.Collection
}

func NewWellBeingRepository(db *mongo.Database) *WellBeingRepository {
	return &WellBeingRepository{coll: db.Collection(wellBeingCollection)}
}

type mongoWellBeingLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Date        string             `bson:"date"`
	Mood        string             `bson:"mood"`
	StressLevel string             `bson:"stress_level"`
	SleepHours  float64            `bson:"sleep_hours"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (m mongoWellBeingLog) toDomain() *domain.WellBeingLog {
	return &domain.WellBeingLog{
		ID:          m.ID.Hex(),
		UserID:      m.UserID,
		Date:        m.Date,
		Mood:        domain.Mood(m.Mood),
		StressLevel: domain.StressLevel(m.StressLevel),
		SleepHours:  m.SleepHours,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *WellBeingRepository) FindAll(ctx context.Context, userID string) ([]*domain.WellBeingLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, wrapErr("list well-being logs", err)
	}
	defer cur.Close(ctx)

	logs := make([]*domain.WellBeingLog, 0)
	for cur.Next(ctx) {
		var ml mongoWellBeingLog
		if err := cur.Decode(&ml); err != nil {
			return nil, wrapErr("decode well-being log", err)
		}
		logs = append(logs, ml.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErr("list well-being logs", err)
	}
	return logs, nil
}

func (r *WellBeingRepository) Create(ctx context.Context, l *domain.WellBeingLog) (*domain.WellBeingLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoWellBeingLog{
		UserID:      l.UserID,
		Date:        l.Date,
		Mood:        string(l.Mood),
		StressLevel: string(l.StressLevel),
		SleepHours:  l.SleepHours,
		CreatedAt:   l.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, wrapErr("insert well-being log", err)
	}

	created := *l
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *WellBeingRepository) Update(ctx context.Context, userID, id string, in ports.WellBeingInput) (*domain.WellBeingLog, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrWellBeingLogNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// An absent date means "keep the stored day": leaving it out of the
	// $set stops a partial payload from blanking it.
	fields := bson.M{
		"mood":         in.Mood,
		"stress_level": in.StressLevel,
		"sleep_hours":  in.SleepHours,
	}
	if in.Date != "" {
		fields["date"] = in.Date
	}
	update := bson.M{"$set": fields}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ml mongoWellBeingLog
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "user_id": userID}, update, opts).Decode(&ml)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWellBeingLogNotFound
		}
		return nil, wrapErr("update well-being log", err)
	}
	return ml.toDomain(), nil
}

func (r *WellBeingRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	oid, ok := parseID(id)
	if !ok {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return false, wrapErr("delete well-being log", err)
	}
	return res.DeletedCount > 0, nil
}
