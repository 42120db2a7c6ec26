package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dermtrack/skincare-system/internal/core/domain"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

type stubWellBeingRepo struct {
	logs   map[string]*domain.WellBeingLog
	nextID int
}

func newStubWellBeingRepo() *stubWellBeingRepo {
	return &stubWellBeingRepo{logs: make(map[string]*domain.WellBeingLog)}
}

func cloneWellBeingLog(l *domain.WellBeingLog) *domain.WellBeingLog {
	if l == nil {
		return nil
	}
	clone := *l
	return &clone
}

func (r *stubWellBeingRepo) FindAll(_ context.Context, userID string) ([]*domain.WellBeingLog, error) {
	var out []*domain.WellBeingLog
	for _, l := range r.logs {
		if l.UserID == userID {
			out = append(out, cloneWellBeingLog(l))
		}
	}
	return out, nil
}

func (r *stubWellBeingRepo) Create(_ context.Context, l *domain.WellBeingLog) (*domain.WellBeingLog, error) {
	r.nextID++
	copy := cloneWellBeingLog(l)
	copy.ID = "wb-" + strconv.Itoa(r.nextID)
	r.logs[copy.ID] = cloneWellBeingLog(copy)
	return copy, nil
}

func (r *stubWellBeingRepo) Update(_ context.Context, userID, id string, in ports.WellBeingInput) (*domain.WellBeingLog, error) {
	l, ok := r.logs[id]
	if !ok || l.UserID != userID {
		return nil, domain.ErrWellBeingLogNotFound
	}
	l.Mood = domain.Mood(in.Mood)
	l.StressLevel = domain.StressLevel(in.StressLevel)
	l.SleepHours = in.SleepHours
	if in.Date != "" {
		l.Date = in.Date
	}
	return cloneWellBeingLog(l), nil
}

func (r *stubWellBeingRepo) Delete(_ context.Context, userID, id string) (bool, error) {
	l, ok := r.logs[id]
	if !ok || l.UserID != userID {
		return false, nil
	}
	delete(r.logs, id)
	return true, nil
}

func newWellBeingService(repo *stubWellBeingRepo) *WellBeingService {
	return NewWellBeingService(repo, zerolog.Nop())
}

func TestWellBeingService_Create_Success(t *testing.T) {
	svc := newWellBeingService(newStubWellBeingRepo())

	created, err := svc.Create(context.Background(), "user-1", ports.WellBeingInput{
		Date:        "2026-08-30",
		Mood:        "Happy",
		StressScale: 2,
		SleepHours:  7.5,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Mood != domain.MoodHappy {
		t.Fatalf("expected mood Happy, got %q", created.Mood)
	}
	if created.StressLevel != domain.StressLow {
		t.Fatalf("expected stress Low for scale 2, got %q", created.StressLevel)
	}
}

func TestWellBeingService_Create_DefaultsDate(t *testing.T) {
	svc := newWellBeingService(newStubWellBeingRepo())

	created, err := svc.Create(context.Background(), "user-1", ports.WellBeingInput{
		Mood:        "Neutral",
		StressLevel: "Moderate",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	today := time.Now().UTC().Format("2006-01-02")
	if created.Date != today {
		t.Fatalf("expected date to default to %s, got %s", today, created.Date)
	}
}

func TestWellBeingService_Create_MultiplePerDayAllowed(t *testing.T) {
	repo := newStubWellBeingRepo()
	svc := newWellBeingService(repo)

	in := ports.WellBeingInput{Date: "2026-08-30", Mood: "Sad", StressLevel: "High"}
	if _, err := svc.Create(context.Background(), "user-1", in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", in); err != nil {
		t.Fatalf("second create on same day should be allowed, got %v", err)
	}

	logs, _ := svc.List(context.Background(), "user-1")
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
}

func TestWellBeingService_Create_UnknownMood(t *testing.T) {
	svc := newWellBeingService(newStubWellBeingRepo())

	_, err := svc.Create(context.Background(), "user-1", ports.WellBeingInput{
		Date:        "2026-08-30",
		Mood:        "Tired",
		StressLevel: "Low",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown mood, got %v", err)
	}
}

func TestWellBeingService_StressBands(t *testing.T) {
	svc := newWellBeingService(newStubWellBeingRepo())

	cases := []struct {
		scale int
		want  domain.StressLevel
	}{
		{1, domain.StressLow},
		{3, domain.StressLow},
		{4, domain.StressModerate},
		{6, domain.StressModerate},
		{7, domain.StressHigh},
		{10, domain.StressHigh},
	}
	for _, tc := range cases {
		created, err := svc.Create(context.Background(), "user-1", ports.WellBeingInput{
			Date:        "2026-08-30",
			Mood:        "Neutral",
			StressScale: tc.scale,
		})
		if err != nil {
			t.Fatalf("scale %d: create failed: %v", tc.scale, err)
		}
		if created.StressLevel != tc.want {
			t.Fatalf("scale %d: expected %q, got %q", tc.scale, tc.want, created.StressLevel)
		}
	}
}

func TestWellBeingService_StressValidation(t *testing.T) {
	svc := newWellBeingService(newStubWellBeingRepo())

	// Out-of-range scale.
	_, err := svc.Create(context.Background(), "user-1", ports.WellBeingInput{
		Date: "2026-08-30", Mood: "Neutral", StressScale: 11,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for scale 11, got %v", err)
	}

	// Unknown band name.
	_, err = svc.Create(context.Background(), "user-1", ports.WellBeingInput{
		Date: "2026-08-30", Mood: "Neutral", StressLevel: "Extreme",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown band, got %v", err)
	}

	// Neither scale nor band.
	_, err = svc.Create(context.Background(), "user-1", ports.WellBeingInput{
		Date: "2026-08-30", Mood: "Neutral",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation when stress is missing, got %v", err)
	}
}

func TestWellBeingService_Update_ScaleWinsOverBand(t *testing.T) {
	repo := newStubWellBeingRepo()
	svc := newWellBeingService(repo)

	created, _ := svc.Create(context.Background(), "user-1", ports.WellBeingInput{
		Date: "2026-08-30", Mood: "Neutral", StressLevel: "Low",
	})

	updated, err := svc.Update(context.Background(), "user-1", created.ID, ports.WellBeingInput{
		Mood:        "Anxious",
		StressLevel: "Low",
		StressScale: 8,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.StressLevel != domain.StressHigh {
		t.Fatalf("expected scale 8 to resolve High, got %q", updated.StressLevel)
	}
	if updated.Mood != domain.MoodAnxious {
		t.Fatalf("expected mood Anxious, got %q", updated.Mood)
	}
}

func TestWellBeingService_Update_PreservesDateWhenOmitted(t *testing.T) {
	repo := newStubWellBeingRepo()
	svc := newWellBeingService(repo)

	created, _ := svc.Create(context.Background(), "user-1", ports.WellBeingInput{
		Date: "2026-08-30", Mood: "Neutral", StressLevel: "Low",
	})

	// A payload without a date must not blank the stored one.
	updated, err := svc.Update(context.Background(), "user-1", created.ID, ports.WellBeingInput{
		Mood:        "Happy",
		StressLevel: "Low",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Date != "2026-08-30" {
		t.Fatalf("expected stored date to survive the update, got %q", updated.Date)
	}

	// An explicit date still moves the log.
	updated, err = svc.Update(context.Background(), "user-1", created.ID, ports.WellBeingInput{
		Date:        "2026-08-31",
		Mood:        "Happy",
		StressLevel: "Low",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Date != "2026-08-31" {
		t.Fatalf("expected date to change when provided, got %q", updated.Date)
	}
}

func TestWellBeingService_Delete(t *testing.T) {
	svc := newWellBeingService(newStubWellBeingRepo())

	created, _ := svc.Create(context.Background(), "owner", ports.WellBeingInput{
		Date: "2026-08-30", Mood: "Angry", StressLevel: "High",
	})

	if err := svc.Delete(context.Background(), "intruder", created.ID); !errors.Is(err, domain.ErrWellBeingLogNotFound) {
		t.Fatalf("expected ErrWellBeingLogNotFound for foreign delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), "owner", created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "owner", created.ID); !errors.Is(err, domain.ErrWellBeingLogNotFound) {
		t.Fatalf("expected ErrWellBeingLogNotFound on second delete, got %v", err)
	}
}
