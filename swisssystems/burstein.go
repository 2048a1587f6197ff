/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swisssystems

import (
	"fmt"
	"sort"

	"github.com/mikeb26/swissreport/tournament"
)

// BursteinInfo implements Info for the Burstein system, whose checklist
// carries Sonneborn-Berger, Buchholz, and median Buchholz tie-breaks.
type BursteinInfo struct{}

func (BursteinInfo) SpecialtyHeaders() []string {
	return []string{"SB", "Buch", "Med"}
}

func (BursteinInfo) SpecialtyColumns(
	player *tournament.Player, t *tournament.Tournament) []string {

	sb, buch, med := bursteinTiebreaks(player, t)
	return []string{
		fmt.Sprintf("%.2f", sb),
		fmt.Sprintf("%.1f", buch),
		fmt.Sprintf("%.1f", med),
	}
}

// bursteinTiebreaks computes the three tie-break values over the player's
// played games. Byes and forfeits contribute nothing. Sonneborn-Berger
// weights each opponent's unaccelerated score by the game result; median
// Buchholz discards the best and worst opponent scores (zero when fewer
// than three opponents exist).
func bursteinTiebreaks(
	player *tournament.Player,
	t *tournament.Tournament) (sb, buch, med float64) {

	var oppScores []float64
	for _, match := range player.Matches {
		if !match.GameWasPlayed || match.Opponent == player.ID {
			continue
		}
		oppScore := t.Players[match.Opponent].ScoreWithoutAcceleration
		oppScores = append(oppScores, oppScore)
		buch += oppScore
		switch match.Score {
		case tournament.MatchScoreWin:
			sb += oppScore
		case tournament.MatchScoreDraw:
			sb += oppScore / 2
		}
	}

	if len(oppScores) >= 3 {
		sort.Float64s(oppScores)
		med = buch - oppScores[0] - oppScores[len(oppScores)-1]
	}
	return sb, buch, med
}
