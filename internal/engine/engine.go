// Package engine owns the live-match slate. Fixtures have stable IDs and
// evolve minute by minute, so alert deduplication on (match_id, team_name)
// is meaningful across polls. Upstream provider integration would replace
// the simulation behind the same Snapshot/Match surface.
package engine

import (
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comebackscout/comeback-scout/internal/config"
	"github.com/comebackscout/comeback-scout/internal/models"
)

// ErrMatchNotFound is returned by Match for unknown IDs.
var ErrMatchNotFound = errors.New("match not found")

const fullTimeMinute = 90

// Engine holds the current slate of live fixtures.
type Engine struct {
	mu      sync.RWMutex
	matches []*models.Match
	rng     *rand.Rand
	logger  *slog.Logger

	superteams []config.SuperteamConfig
	opponents  []config.OpponentConfig
	rates      map[string]float64 // club name → historical comeback rate
	next       int                // rotation cursor into superteams
}

// New builds an engine with count concurrent fixtures, rotating through the
// monitored superteam registry.
func New(count int, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if count < 1 {
		count = 1
	}
	if count > len(config.SuperteamRegistry) {
		count = len(config.SuperteamRegistry)
	}

	e := &Engine{
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:     logger,
		superteams: config.SuperteamRegistry,
		opponents:  config.OpponentRegistry,
		rates:      make(map[string]float64, len(config.SuperteamRegistry)),
	}
	for _, st := range e.superteams {
		e.rates[st.Name] = st.ComebackRate
	}

	e.matches = make([]*models.Match, 0, count)
	for i := 0; i < count; i++ {
		e.matches = append(e.matches, e.newFixture())
	}
	return e
}

// Snapshot returns a deep copy of the current slate.
func (e *Engine) Snapshot() []models.Match {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]models.Match, 0, len(e.matches))
	for _, m := range e.matches {
		out = append(out, copyMatch(m))
	}
	return out
}

// Match returns a single fixture by ID.
func (e *Engine) Match(id string) (models.Match, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, m := range e.matches {
		if m.ID == id {
			return copyMatch(m), nil
		}
	}
	return models.Match{}, ErrMatchNotFound
}

// Superteams returns the monitored-club registry.
func (e *Engine) Superteams() []models.Superteam {
	out := make([]models.Superteam, 0, len(e.superteams))
	for _, st := range e.superteams {
		out = append(out, models.Superteam{
			Name:         st.Name,
			Logo:         st.Logo,
			ComebackRate: st.ComebackRate,
		})
	}
	return out
}

// Advance moves every fixture forward one simulated minute. Finished
// fixtures are replaced with fresh ones so the slate stays full.
func (e *Engine) Advance() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, m := range e.matches {
		if m.Status == models.StatusFinished {
			e.logger.Info("fixture finished, rotating in a new one",
				"match_id", m.ID, "score", m.ScoreLine())
			e.matches[i] = e.newFixture()
			continue
		}

		m.Minute++
		switch {
		case m.Minute >= fullTimeMinute:
			m.Status = models.StatusFinished
		case m.Minute == 45:
			m.Status = models.StatusHalftime
		default:
			m.Status = models.StatusLive
		}

		e.tickStats(&m.HomeTeam)
		e.tickStats(&m.AwayTeam)

		// Roughly one goal every 30 simulated minutes, biased toward the
		// side generating more expected goals.
		if m.Status == models.StatusLive && e.rng.Float64() < 1.0/30 {
			if e.rng.Float64() < m.HomeTeam.XG/(m.HomeTeam.XG+m.AwayTeam.XG) {
				m.HomeTeam.Score++
			} else {
				m.AwayTeam.Score++
			}
		}

		e.score(m)
		m.Timestamp = time.Now().UTC()
	}
}

// --------------------------------------------------------------------------
// Fixture generation
// --------------------------------------------------------------------------

// newFixture creates a live match for the next superteam in rotation.
// Roughly half start with the superteam trailing, its stats skewed to favor
// a recovery.
func (e *Engine) newFixture() *models.Match {
	st := e.superteams[e.next%len(e.superteams)]
	e.next++
	opp := e.opponents[e.rng.Intn(len(e.opponents))]

	minute := 15 + e.rng.Intn(71) // 15–85
	losing := e.rng.Float64() > 0.5

	var home, away models.TeamStats
	if losing {
		homeScore := e.rng.Intn(2)
		home = models.TeamStats{
			Name:             st.Name,
			Logo:             st.Logo,
			Score:            homeScore,
			XG:               round1(1.5 + e.rng.Float64()*1.3),
			Possession:       58 + e.rng.Intn(15),
			Shots:            12 + e.rng.Intn(9),
			ShotsOnTarget:    5 + e.rng.Intn(6),
			Corners:          6 + e.rng.Intn(7),
			DangerousAttacks: 45 + e.rng.Intn(31),
		}
		away = models.TeamStats{
			Name:             opp.Name,
			Logo:             opp.Logo,
			Score:            homeScore + 1,
			XG:               round1(0.5 + e.rng.Float64()*0.7),
			Possession:       100 - home.Possession,
			Shots:            4 + e.rng.Intn(5),
			ShotsOnTarget:    2 + e.rng.Intn(3),
			Corners:          2 + e.rng.Intn(4),
			DangerousAttacks: 15 + e.rng.Intn(16),
		}
	} else {
		homeScore := 1 + e.rng.Intn(3)
		home = models.TeamStats{
			Name:             st.Name,
			Logo:             st.Logo,
			Score:            homeScore,
			XG:               round1(1.2 + e.rng.Float64()*1.3),
			Possession:       52 + e.rng.Intn(17),
			Shots:            10 + e.rng.Intn(9),
			ShotsOnTarget:    4 + e.rng.Intn(6),
			Corners:          5 + e.rng.Intn(6),
			DangerousAttacks: 35 + e.rng.Intn(26),
		}
		away = models.TeamStats{
			Name:             opp.Name,
			Logo:             opp.Logo,
			Score:            e.rng.Intn(homeScore + 1),
			XG:               round1(0.4 + e.rng.Float64()*1.1),
			Possession:       100 - home.Possession,
			Shots:            5 + e.rng.Intn(6),
			ShotsOnTarget:    2 + e.rng.Intn(4),
			Corners:          3 + e.rng.Intn(5),
			DangerousAttacks: 20 + e.rng.Intn(21),
		}
	}

	m := &models.Match{
		ID:        uuid.NewString(),
		HomeTeam:  home,
		AwayTeam:  away,
		Minute:    minute,
		Status:    models.StatusLive,
		Timestamp: time.Now().UTC(),
	}
	e.score(m)
	return m
}

// score recomputes the comeback evaluation for a fixture in place.
// Only the monitored superteam (always the home side) is evaluated.
func (e *Engine) score(m *models.Match) {
	if m.HomeTeam.Score >= m.AwayTeam.Score {
		m.ComebackProbability = 0
		m.IsComebackScenario = false
		m.LosingTeam = nil
		return
	}

	prob, _ := Probability(m.HomeTeam, m.AwayTeam, e.rates[m.HomeTeam.Name])
	name := m.HomeTeam.Name
	m.ComebackProbability = prob
	m.IsComebackScenario = prob > ScenarioThreshold
	m.LosingTeam = &name
}

// tickStats drifts a side's volume stats upward as the match progresses.
func (e *Engine) tickStats(t *models.TeamStats) {
	if e.rng.Float64() < 0.3 {
		t.Shots++
		if e.rng.Float64() < 0.4 {
			t.ShotsOnTarget++
		}
	}
	if e.rng.Float64() < 0.5 {
		t.DangerousAttacks++
	}
	if e.rng.Float64() < 0.1 {
		t.Corners++
	}
}

func copyMatch(m *models.Match) models.Match {
	out := *m
	if m.LosingTeam != nil {
		name := *m.LosingTeam
		out.LosingTeam = &name
	}
	return out
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
