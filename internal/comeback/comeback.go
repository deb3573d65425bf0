// Package comeback evaluates the live slate and records alerts for matches
// where the trailing monitored team is statistically primed to recover.
//
// Pipeline: snapshot slate → filter comeback scenarios above the alert
// threshold → insert alerts (deduplicated per match+team) → report count.
package comeback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/comebackscout/comeback-scout/internal/engine"
	"github.com/comebackscout/comeback-scout/internal/models"
)

// MatchSource supplies the current slate.
type MatchSource interface {
	Snapshot() []models.Match
}

// AlertSink records alerts with (match, team) deduplication.
type AlertSink interface {
	InsertIfAbsent(ctx context.Context, alert models.Alert) (bool, error)
}

// Check evaluates all live matches and creates alerts for comeback scenarios
// with probability above the alert threshold. Returns the number of alerts
// created (existing alerts for the same match+team are skipped).
func Check(ctx context.Context, matches MatchSource, sink AlertSink, logger *slog.Logger) (int, error) {
	created := 0
	for _, m := range matches.Snapshot() {
		if !m.IsComebackScenario || m.ComebackProbability <= engine.AlertThreshold || m.LosingTeam == nil {
			continue
		}

		trailing, opponent := trailingSides(m)
		_, reason := engine.Probability(trailing, opponent, 0.7)

		inserted, err := sink.InsertIfAbsent(ctx, models.Alert{
			MatchID:     m.ID,
			TeamName:    trailing.Name,
			Opponent:    opponent.Name,
			Score:       m.ScoreLine(),
			Probability: m.ComebackProbability,
			Minute:      m.Minute,
			Reason:      reason,
		})
		if err != nil {
			return created, fmt.Errorf("insert alert for match %s: %w", m.ID, err)
		}
		if inserted {
			created++
			logger.Info("comeback alert created",
				"match_id", m.ID, "team", trailing.Name,
				"probability", m.ComebackProbability, "minute", m.Minute)
		}
	}
	return created, nil
}

// trailingSides splits a comeback-scenario match into the trailing side and
// its opponent. LosingTeam must be non-nil.
func trailingSides(m models.Match) (trailing, opponent models.TeamStats) {
	if m.HomeTeam.Name == *m.LosingTeam {
		return m.HomeTeam, m.AwayTeam
	}
	return m.AwayTeam, m.HomeTeam
}
