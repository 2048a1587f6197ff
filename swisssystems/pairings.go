/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swisssystems

import (
	"fmt"

	"github.com/mikeb26/swissreport/tournament"
)

// RoundPairings reconstructs the pairings of an already-recorded round
// from the players' match histories. Rounds without a played game for a
// player (byes, forfeits, unplayed) become self-paired byes. A played
// record counts only when the opponent's record for the same round
// corroborates it; uncorroborated records are dropped so no player ever
// appears in more than one pairing. This only recovers existing
// pairings; it never decides new ones.
func RoundPairings(
	t *tournament.Tournament, round int) ([]Pairing, error) {

	if round < 0 || round >= t.PlayedRounds {
		return nil, fmt.Errorf("round %d outside played range 1..%d",
			round+1, t.PlayedRounds)
	}

	seen := make([]bool, len(t.Players))
	var pairs []Pairing
	for idx := range t.Players {
		if seen[idx] {
			continue
		}
		seen[idx] = true

		player := &t.Players[idx]
		if round >= len(player.Matches) {
			// player joined after this round
			continue
		}
		match := player.Matches[round]
		if !match.GameWasPlayed || match.Opponent == idx {
			pairs = append(pairs, Pairing{White: idx, Black: idx})
			continue
		}

		opp := match.Opponent
		if opp < 0 || opp >= len(t.Players) {
			return nil, fmt.Errorf(
				"player %d round %d references invalid opponent %d",
				idx+1, round+1, opp+1)
		}
		oppMatches := t.Players[opp].Matches
		corroborated := round < len(oppMatches) &&
			oppMatches[round].GameWasPlayed &&
			oppMatches[round].Opponent == idx
		if seen[opp] || !corroborated {
			continue
		}
		seen[opp] = true
		if match.Color == tournament.ColorWhite {
			pairs = append(pairs, Pairing{White: idx, Black: opp})
		} else {
			pairs = append(pairs, Pairing{White: opp, Black: idx})
		}
	}

	return pairs, nil
}

// PublicationOrder flattens sorted pairings into the per-player order the
// checklist is printed in: white before black within each pairing, bye
// players once.
func PublicationOrder(
	pairs []Pairing, t *tournament.Tournament) []*tournament.Player {

	players := make([]*tournament.Player, 0, len(pairs)*2)
	for _, pair := range pairs {
		players = append(players, &t.Players[pair.White])
		if !pair.IsBye() {
			players = append(players, &t.Players[pair.Black])
		}
	}
	return players
}
