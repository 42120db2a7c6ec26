package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dermtrack/skincare-system/internal/api/handler"
	"github.com/dermtrack/skincare-system/internal/core/domain"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

type fixedDietService struct {
	createErr error
}

func (s *fixedDietService) List(context.Context, string) ([]*domain.DietLog, error) {
	return nil, nil
}

func (s *fixedDietService) Create(_ context.Context, userID string, in ports.DietLogInput) (*domain.DietLog, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.DietLog{ID: "diet-1", UserID: userID, Date: in.Date}, nil
}

func (s *fixedDietService) Update(context.Context, string, string, ports.DietLogInput) (*domain.DietLog, error) {
	return nil, domain.ErrDietLogNotFound
}

func (s *fixedDietService) Delete(context.Context, string, string) error {
	return domain.ErrDietLogNotFound
}

// newDietApp wires the diet routes the way NewRouter does, with the real
// validator and error handler, but a canned service and identity.
func newDietApp(svc ports.DietService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	identity := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user_id", "user-1")
			return next(c)
		}
	}

	h := handler.NewDietHandler(svc)
	diet := e.Group("/diet-log", identity)
	diet.POST("", h.Create)
	diet.DELETE("/:logId", h.Delete)
	return e
}

func TestDietFlow_DuplicateDayRendersConflict(t *testing.T) {
	e := newDietApp(&fixedDietService{createErr: domain.ErrDietLogExists})

	req := httptest.NewRequest(http.MethodPost, "/diet-log", strings.NewReader(`{"date":"2026-08-30"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if resp.Error == "" {
		t.Fatal("expected an error message in the envelope")
	}
}

func TestDietFlow_CreateSucceeds(t *testing.T) {
	e := newDietApp(&fixedDietService{})

	req := httptest.NewRequest(http.MethodPost, "/diet-log", strings.NewReader(`{"date":"2026-08-30","water_intake":5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestDietFlow_ForeignDeleteRendersNotFound(t *testing.T) {
	e := newDietApp(&fixedDietService{})

	req := httptest.NewRequest(http.MethodDelete, "/diet-log/diet-9", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
