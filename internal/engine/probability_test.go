package engine

import (
	"strings"
	"testing"

	"github.com/comebackscout/comeback-scout/internal/models"
)

func TestProbability_BaseRateCredit(t *testing.T) {
	team := models.TeamStats{Possession: 50}
	opp := models.TeamStats{Possession: 50}

	prob, reason := Probability(team, opp, 0.8)
	if prob != 24 { // 0.8 * 30
		t.Errorf("prob = %v, want 24 from base rate alone", prob)
	}
	if !strings.Contains(reason, "pedigree") {
		t.Errorf("reason %q missing pedigree factor", reason)
	}
}

func TestProbability_ZeroWhenNothingFavorsTeam(t *testing.T) {
	team := models.TeamStats{XG: 0.5, Possession: 40, Shots: 3}
	opp := models.TeamStats{XG: 2.0, Possession: 60, Shots: 15, ShotsOnTarget: 7, DangerousAttacks: 50}

	prob, reason := Probability(team, opp, 0)
	if prob != 0 {
		t.Errorf("prob = %v, want 0", prob)
	}
	if reason != "" {
		t.Errorf("reason = %q, want empty", reason)
	}
}

func TestProbability_FactorCaps(t *testing.T) {
	tests := []struct {
		name string
		team models.TeamStats
		opp  models.TeamStats
		want float64
	}{
		{
			name: "xG edge capped at 25",
			team: models.TeamStats{XG: 5.0},
			opp:  models.TeamStats{XG: 0.1},
			want: 25,
		},
		{
			name: "shot edge capped at 15",
			team: models.TeamStats{Shots: 30},
			opp:  models.TeamStats{Shots: 1},
			want: 15,
		},
		{
			name: "shots on target capped at 10",
			team: models.TeamStats{ShotsOnTarget: 12},
			opp:  models.TeamStats{ShotsOnTarget: 1},
			want: 10,
		},
		{
			name: "dangerous attacks capped at 10",
			team: models.TeamStats{DangerousAttacks: 90},
			opp:  models.TeamStats{DangerousAttacks: 5},
			want: 10,
		},
		{
			name: "possession above 55 scores half a point per percent",
			team: models.TeamStats{Possession: 65},
			opp:  models.TeamStats{Possession: 35},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prob, _ := Probability(tt.team, tt.opp, 0)
			if prob != tt.want {
				t.Errorf("prob = %v, want %v", prob, tt.want)
			}
		})
	}
}

func TestProbability_TotalCappedAt95(t *testing.T) {
	team := models.TeamStats{XG: 4.0, Possession: 75, Shots: 25, ShotsOnTarget: 12, DangerousAttacks: 90}
	opp := models.TeamStats{XG: 0.2, Possession: 25, Shots: 2, ShotsOnTarget: 1, DangerousAttacks: 5}

	prob, _ := Probability(team, opp, 0.9)
	if prob != 95 {
		t.Errorf("prob = %v, want cap at 95", prob)
	}
}

func TestProbability_ReasonLimitedToThreeFactors(t *testing.T) {
	team := models.TeamStats{XG: 2.5, Possession: 70, Shots: 20, ShotsOnTarget: 9, DangerousAttacks: 70}
	opp := models.TeamStats{XG: 0.5, Possession: 30, Shots: 5, ShotsOnTarget: 2, DangerousAttacks: 20}

	_, reason := Probability(team, opp, 0.75)
	if n := len(strings.Split(reason, ", ")); n > 3 {
		t.Errorf("reason has %d factors, want at most 3: %q", n, reason)
	}
}
