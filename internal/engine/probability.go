package engine

import (
	"fmt"
	"strings"

	"github.com/comebackscout/comeback-scout/internal/models"
)

// Probability thresholds.
const (
	// ScenarioThreshold marks a match as a comeback scenario.
	ScenarioThreshold = 50.0
	// AlertThreshold gates alert creation during a comeback check.
	AlertThreshold = 60.0

	probabilityCap = 95.0
	maxReasons     = 3
)

// Probability scores the chance (0–100) of the trailing team recovering,
// from its live stats against the opponent's, plus the club's historical
// comeback rate. Returns the score and a short human-readable reason built
// from the top contributing factors.
func Probability(team, opponent models.TeamStats, comebackRate float64) (float64, string) {
	var probability float64
	var reasons []string

	// Base credit for a club with comeback pedigree.
	if comebackRate > 0 {
		probability += comebackRate * 30
		reasons = append(reasons, fmt.Sprintf("Comeback pedigree (%d%%)", int(comebackRate*100)))
	}

	// Expected-goals edge.
	if team.XG > opponent.XG {
		xgDiff := team.XG - opponent.XG
		probability += min(xgDiff*15, 25)
		reasons = append(reasons, fmt.Sprintf("xG edge (%.1f vs %.1f)", team.XG, opponent.XG))
	}

	// Possession dominance above 55%.
	if team.Possession > 55 {
		probability += float64(team.Possession-55) * 0.5
		reasons = append(reasons, fmt.Sprintf("Possession control (%d%%)", team.Possession))
	}

	// Shot volume edge.
	if team.Shots > opponent.Shots {
		shotDiff := float64(team.Shots - opponent.Shots)
		probability += min(shotDiff*2, 15)
		reasons = append(reasons, fmt.Sprintf("More shots (%d vs %d)", team.Shots, opponent.Shots))
	}

	// Shots on target edge (contributes to the score, not the reason text).
	if team.ShotsOnTarget > opponent.ShotsOnTarget {
		probability += min(float64(team.ShotsOnTarget-opponent.ShotsOnTarget)*3, 10)
	}

	// Attacking pressure.
	if team.DangerousAttacks > opponent.DangerousAttacks {
		probability += min(float64(team.DangerousAttacks-opponent.DangerousAttacks)*0.3, 10)
		reasons = append(reasons, "Sustained attacking pressure")
	}

	probability = min(probability, probabilityCap)

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return probability, strings.Join(reasons, ", ")
}
