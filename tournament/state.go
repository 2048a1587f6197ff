/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import "sort"

// ComputeScore sums the game points of the given match records.
func ComputeScore(matches []Match) float64 {
	score := 0.0
	for _, match := range matches {
		score += match.Score.Points()
	}
	return score
}

// StateBeforeRound returns a copy of the tournament as it stood before
// the given zero-based round: match histories truncated, unaccelerated
// scores recomputed from the remaining records, rank indices reassigned
// (score first, previous rank as the unique tie-break), and color
// preferences re-derived. Acceleration values carry over unchanged. The
// receiver is never mutated.
func (t *Tournament) StateBeforeRound(round int) *Tournament {
	if round > t.PlayedRounds {
		round = t.PlayedRounds
	}

	state := &Tournament{
		Players:      make([]Player, len(t.Players)),
		PlayedRounds: round,
	}
	for idx := range t.Players {
		player := t.Players[idx]
		if len(player.Matches) > round {
			player.Matches = player.Matches[:round]
		}
		player.Matches = append([]Match(nil), player.Matches...)
		player.ScoreWithoutAcceleration = ComputeScore(player.Matches)
		player.ColorPreference, player.AbsoluteColorPreference,
			player.StrongColorPreference = DeriveColorPreference(player.Matches)
		state.Players[idx] = player
	}

	order := make([]int, len(state.Players))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := &state.Players[order[a]], &state.Players[order[b]]
		if pa.ScoreWithoutAcceleration != pb.ScoreWithoutAcceleration {
			return pa.ScoreWithoutAcceleration > pb.ScoreWithoutAcceleration
		}
		return t.Players[order[a]].RankIndex < t.Players[order[b]].RankIndex
	})
	for rank, idx := range order {
		state.Players[idx].RankIndex = rank
	}

	return state
}
