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
)

const profilesCollection = "profiles"

// ProfileRepository persists profiles with upsert-by-user semantics.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

type mongoProfile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	SkinType   string             `bson:"skin_type"`
	Allergies  string             `bson:"allergies,omitempty"`
	DOB        string             `bson:"dob,omitempty"`
	Gender     string             `bson:"gender,omitempty"`
	Conditions string             `bson:"conditions,omitempty"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (m mongoProfile) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:         m.ID.Hex(),
		UserID:     m.UserID,
		SkinType:   domain.SkinType(m.SkinType),
		Allergies:  m.Allergies,
		DOB:        m.DOB,
		Gender:     m.Gender,
		Conditions: m.Conditions,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, wrapErr("find profile", err)
	}
	return mp.toDomain(), nil
}

// Upsert replaces the user's profile, inserting it on first save. The filter
// on user_id plus the unique index guarantee a single document per user.
func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"user_id":    p.UserID,
		"skin_type":  string(p.SkinType),
		"allergies":  p.Allergies,
		"dob":        p.DOB,
		"gender":     p.Gender,
		"conditions": p.Conditions,
		"updated_at": p.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved mongoProfile
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"user_id": p.UserID}, update, opts).Decode(&saved); err != nil {
		return nil, wrapErr("upsert profile", err)
	}
	return saved.toDomain(), nil
}
