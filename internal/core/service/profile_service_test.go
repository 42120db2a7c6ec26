package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dermtrack/skincare-system/internal/core/domain"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

type stubProfileRepo struct {
	profiles map[string]*domain.Profile // keyed by user id
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func cloneProfile(p *domain.Profile) *domain.Profile {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return cloneProfile(p), nil
}

func (r *stubProfileRepo) Upsert(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	copy := cloneProfile(p)
	if existing, ok := r.profiles[p.UserID]; ok {
		copy.ID = existing.ID
	} else {
		copy.ID = "profile-" + p.UserID
	}
	r.profiles[p.UserID] = cloneProfile(copy)
	return copy, nil
}

func TestProfileService_SaveThenGet(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewProfileService(repo, zerolog.Nop())

	in := ports.ProfileInput{
		SkinType:   "sensitive",
		Allergies:  "nickel",
		DOB:        "1991-04-12",
		Conditions: "eczema",
	}
	saved, err := svc.Save(context.Background(), "user-1", in)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.UserID != "user-1" || saved.SkinType != domain.SkinSensitive {
		t.Fatalf("unexpected profile: %+v", saved)
	}

	got, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Allergies != "nickel" || got.Conditions != "eczema" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestProfileService_SaveIsUpsert(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewProfileService(repo, zerolog.Nop())

	first, _ := svc.Save(context.Background(), "user-1", ports.ProfileInput{SkinType: "dry"})
	second, err := svc.Save(context.Background(), "user-1", ports.ProfileInput{SkinType: "oily"})
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert must keep the record identity: %q vs %q", first.ID, second.ID)
	}
	if len(repo.profiles) != 1 {
		t.Fatalf("expected exactly one profile, got %d", len(repo.profiles))
	}
	if repo.profiles["user-1"].SkinType != domain.SkinOily {
		t.Fatalf("expected latest save to win, got %q", repo.profiles["user-1"].SkinType)
	}
}

func TestProfileService_Get_NotFound(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "nobody"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
