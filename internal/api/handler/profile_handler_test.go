package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/dermtrack/skincare-system/internal/core/domain"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

type stubProfileService struct {
	getFn  func(ctx context.Context, userID string) (*domain.Profile, error)
	saveFn func(ctx context.Context, userID string, in ports.ProfileInput) (*domain.Profile, error)
}

func (s *stubProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.getFn(ctx, userID)
}

func (s *stubProfileService) Save(ctx context.Context, userID string, in ports.ProfileInput) (*domain.Profile, error) {
	return s.saveFn(ctx, userID, in)
}

func TestProfileHandler_Get_Success(t *testing.T) {
	svc := &stubProfileService{
		getFn: func(_ context.Context, userID string) (*domain.Profile, error) {
			return &domain.Profile{ID: "profile-1", UserID: userID, SkinType: domain.SkinDry}, nil
		},
	}
	h := NewProfileHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/profile/user-1", "")
	c.Set("user_id", "user-1")
	c.SetParamNames("userId")
	c.SetParamValues("user-1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got domain.Profile
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.SkinType != domain.SkinDry {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestProfileHandler_Get_ForeignUserIsNotFound(t *testing.T) {
	svc := &stubProfileService{
		getFn: func(context.Context, string) (*domain.Profile, error) {
			t.Fatal("service must not be called for a foreign user id")
			return nil, nil
		},
	}
	h := NewProfileHandler(svc)

	c, _ := newTestContext(t, http.MethodGet, "/profile/user-2", "")
	c.Set("user_id", "user-1")
	c.SetParamNames("userId")
	c.SetParamValues("user-2")

	if err := h.Get(c); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileHandler_Save_OwnerFromToken(t *testing.T) {
	var savedFor string
	svc := &stubProfileService{
		saveFn: func(_ context.Context, userID string, in ports.ProfileInput) (*domain.Profile, error) {
			savedFor = userID
			return &domain.Profile{ID: "profile-1", UserID: userID, SkinType: domain.SkinType(in.SkinType)}, nil
		},
	}
	h := NewProfileHandler(svc)

	// The payload carries a user_id field; it must be ignored in favor of
	// the verified identity.
	body := `{"user_id":"someone-else","skin_type":"combination"}`
	c, rec := newTestContext(t, http.MethodPost, "/profile/user-1", body)
	c.Set("user_id", "user-1")
	c.SetParamNames("userId")
	c.SetParamValues("user-1")

	if err := h.Save(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if savedFor != "user-1" {
		t.Fatalf("expected save for token user, got %q", savedFor)
	}
}

func TestProfileHandler_Save_InvalidSkinType(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newTestContext(t, http.MethodPost, "/profile/user-1", `{"skin_type":"scaly"}`)
	c.Set("user_id", "user-1")
	c.SetParamNames("userId")
	c.SetParamValues("user-1")

	err := h.Save(c)
	if err == nil {
		t.Fatal("expected validation error")
	}
}
