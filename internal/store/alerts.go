// Package store persists comeback alerts in Postgres.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/comebackscout/comeback-scout/internal/models"
)

// ErrAlertNotFound is returned when an alert ID does not exist.
var ErrAlertNotFound = errors.New("alert not found")

// listLimit caps GET /api/alerts responses.
const listLimit = 50

// Alerts is the pgx-backed alert store.
type Alerts struct {
	pool *pgxpool.Pool
}

// NewAlerts creates an alert store on an existing pool.
func NewAlerts(pool *pgxpool.Pool) *Alerts {
	return &Alerts{pool: pool}
}

// InsertIfAbsent creates an alert unless one already exists for the same
// (match, team) pair. Reports whether a row was created. The alert ID and
// timestamp are assigned here.
func (a *Alerts) InsertIfAbsent(ctx context.Context, alert models.Alert) (bool, error) {
	tag, err := a.pool.Exec(ctx, "alert_insert",
		uuid.NewString(), alert.MatchID, alert.TeamName, alert.Opponent,
		alert.Score, alert.Probability, alert.Minute, alert.Reason,
		time.Now().UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("insert alert: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List returns alerts newest-first, capped at 50.
func (a *Alerts) List(ctx context.Context) ([]models.Alert, error) {
	rows, err := a.pool.Query(ctx, "alert_list", listLimit)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var al models.Alert
		if err := rows.Scan(
			&al.ID, &al.MatchID, &al.TeamName, &al.Opponent, &al.Score,
			&al.Probability, &al.Minute, &al.Reason, &al.Timestamp, &al.Read,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, al)
	}
	return alerts, rows.Err()
}

// MarkRead flags an alert as read.
func (a *Alerts) MarkRead(ctx context.Context, id string) error {
	tag, err := a.pool.Exec(ctx, "alert_mark_read", id)
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAlertNotFound
	}
	return nil
}

// Purge deletes read alerts created before the cutoff. Returns the number
// of rows removed.
func (a *Alerts) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	tag, err := a.pool.Exec(ctx, "alert_purge", cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge alerts: %w", err)
	}
	return tag.RowsAffected(), nil
}
