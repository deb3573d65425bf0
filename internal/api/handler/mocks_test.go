package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/comebackscout/comeback-scout/internal/cache"
	"github.com/comebackscout/comeback-scout/internal/config"
	"github.com/comebackscout/comeback-scout/internal/models"
)

type MockMatchSource struct {
	SnapshotFunc   func() []models.Match
	MatchFunc      func(id string) (models.Match, error)
	SuperteamsFunc func() []models.Superteam
}

func (m *MockMatchSource) Snapshot() []models.Match {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc()
	}
	return nil
}

func (m *MockMatchSource) Match(id string) (models.Match, error) {
	if m.MatchFunc != nil {
		return m.MatchFunc(id)
	}
	return models.Match{}, nil
}

func (m *MockMatchSource) Superteams() []models.Superteam {
	if m.SuperteamsFunc != nil {
		return m.SuperteamsFunc()
	}
	return nil
}

type MockAlertStore struct {
	InsertIfAbsentFunc func(ctx context.Context, alert models.Alert) (bool, error)
	ListFunc           func(ctx context.Context) ([]models.Alert, error)
	MarkReadFunc       func(ctx context.Context, id string) error
}

func (m *MockAlertStore) InsertIfAbsent(ctx context.Context, alert models.Alert) (bool, error) {
	if m.InsertIfAbsentFunc != nil {
		return m.InsertIfAbsentFunc(ctx, alert)
	}
	return true, nil
}

func (m *MockAlertStore) List(ctx context.Context) ([]models.Alert, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockAlertStore) MarkRead(ctx context.Context, id string) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id)
	}
	return nil
}

type MockPinger struct {
	HealthCheckFunc func(ctx context.Context) error
}

func (m *MockPinger) HealthCheck(ctx context.Context) error {
	if m.HealthCheckFunc != nil {
		return m.HealthCheckFunc(ctx)
	}
	return nil
}

func newTestHandler(matches *MockMatchSource, alerts *MockAlertStore, db *MockPinger) *Handler {
	if matches == nil {
		matches = &MockMatchSource{}
	}
	if alerts == nil {
		alerts = &MockAlertStore{}
	}
	if db == nil {
		db = &MockPinger{}
	}
	return New(matches, alerts, db, cache.New(true), &config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
