// Package models defines the wire types shared by the API server and the
// scout watcher. All values are server-supplied snapshots: clients replace
// them wholesale on every poll and never merge.
package models

import (
	"strconv"
	"time"
)

// Match status values.
const (
	StatusLive     = "live"
	StatusHalftime = "halftime"
	StatusFinished = "finished"
)

// TeamStats is one side of a live fixture.
type TeamStats struct {
	Name             string  `json:"name"`
	Logo             string  `json:"logo"`
	Score            int     `json:"score"`
	XG               float64 `json:"xg"`
	Possession       int     `json:"possession"`
	Shots            int     `json:"shots"`
	ShotsOnTarget    int     `json:"shots_on_target"`
	Corners          int     `json:"corners"`
	DangerousAttacks int     `json:"dangerous_attacks"`
}

// Match is a live-match snapshot.
type Match struct {
	ID                  string    `json:"id"`
	HomeTeam            TeamStats `json:"home_team"`
	AwayTeam            TeamStats `json:"away_team"`
	Minute              int       `json:"minute"`
	Status              string    `json:"status"`
	ComebackProbability float64   `json:"comeback_probability"`
	IsComebackScenario  bool      `json:"is_comeback_scenario"`
	LosingTeam          *string   `json:"losing_team"`
	Timestamp           time.Time `json:"timestamp"`
}

// ScoreLine renders the current score as "2-1" (home first).
func (m Match) ScoreLine() string {
	return scoreLine(m.HomeTeam.Score, m.AwayTeam.Score)
}

// Alert is a comeback alert created when a monitored team trails but the
// underlying numbers favor a recovery.
type Alert struct {
	ID          string    `json:"id"`
	MatchID     string    `json:"match_id"`
	TeamName    string    `json:"team_name"`
	Opponent    string    `json:"opponent"`
	Score       string    `json:"score"`
	Probability float64   `json:"probability"`
	Minute      int       `json:"minute"`
	Reason      string    `json:"reason"`
	Timestamp   time.Time `json:"timestamp"`
	Read        bool      `json:"read"`
}

// Superteam is a monitored club with its historical comeback rate.
type Superteam struct {
	Name         string  `json:"name"`
	Logo         string  `json:"logo"`
	ComebackRate float64 `json:"comeback_rate"`
}

func scoreLine(home, away int) string {
	return strconv.Itoa(home) + "-" + strconv.Itoa(away)
}
