/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uschess

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/mikeb26/swissreport/tournament"
)

// ToTournament converts one section's cross table into the tournament
// data model used by the reporting core: one Match per recorded round per
// player, unaccelerated scores, unique rank indices in standings order,
// and derived color preferences. The ratings API does not publish
// acceleration values, so converted tournaments carry none.
func (xt *CrossTable) ToTournament() (*tournament.Tournament, error) {
	// pair numbers are 1-based ordinals within the section
	indexByPairNum := make(map[int]int, len(xt.PlayerEntries))
	for idx, entry := range xt.PlayerEntries {
		if _, dup := indexByPairNum[entry.PairNum]; dup {
			return nil, fmt.Errorf("duplicate pair number %d in %v",
				entry.PairNum, xt.SectionName)
		}
		indexByPairNum[entry.PairNum] = idx
	}

	t := &tournament.Tournament{
		Players:      make([]tournament.Player, len(xt.PlayerEntries)),
		PlayedRounds: xt.NumRounds,
	}

	for idx, entry := range xt.PlayerEntries {
		player := tournament.Player{
			ID:                       idx,
			ScoreWithoutAcceleration: entry.TotalPoints,
		}
		for _, res := range entry.Results {
			match, err := convertRoundResult(res, idx, indexByPairNum)
			if err != nil {
				return nil, fmt.Errorf("player %v: %w", entry.PlayerName, err)
			}
			player.Matches = append(player.Matches, match)
		}
		player.ColorPreference, player.AbsoluteColorPreference,
			player.StrongColorPreference =
			tournament.DeriveColorPreference(player.Matches)
		t.Players[idx] = player
	}

	assignRankIndices(t, xt)

	return t, nil
}

func convertRoundResult(res RoundResult, selfIdx int,
	indexByPairNum map[int]int) (tournament.Match, error) {

	match := tournament.Match{
		Opponent: selfIdx,
		Color:    tournament.ColorNone,
	}

	switch res.Outcome {
	case ResultWin, ResultLoss, ResultDraw:
		oppIdx, ok := indexByPairNum[res.OpponentPairNum]
		if !ok {
			return match, fmt.Errorf("round references unknown opponent %d",
				res.OpponentPairNum)
		}
		match.Opponent = oppIdx
		match.GameWasPlayed = true
		switch res.Color {
		case "white":
			match.Color = tournament.ColorWhite
		case "black":
			match.Color = tournament.ColorBlack
		default:
			return match, fmt.Errorf("played round is missing a color")
		}
	case ResultWinByForfeit:
		// forfeits award points but contribute no color information
		if oppIdx, ok := indexByPairNum[res.OpponentPairNum]; ok {
			match.Opponent = oppIdx
		}
	case ResultLossByForfeit:
		if oppIdx, ok := indexByPairNum[res.OpponentPairNum]; ok {
			match.Opponent = oppIdx
		}
	}
	match.Score = outcomeScore(res.Outcome)

	return match, nil
}

func outcomeScore(outcome Result) tournament.MatchScore {
	switch outcome {
	case ResultWin, ResultWinByForfeit, ResultFullBye:
		return tournament.MatchScoreWin
	case ResultDraw, ResultHalfBye:
		return tournament.MatchScoreDraw
	default:
		return tournament.MatchScoreLoss
	}
}

// assignRankIndices orders players by unaccelerated score, then pre-event
// rating, then pair number, and records each player's unique position.
func assignRankIndices(t *tournament.Tournament, xt *CrossTable) {
	order := make([]int, len(t.Players))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := &t.Players[order[a]], &t.Players[order[b]]
		if pa.ScoreWithoutAcceleration != pb.ScoreWithoutAcceleration {
			return pa.ScoreWithoutAcceleration > pb.ScoreWithoutAcceleration
		}
		ra := ratingOrZero(xt.PlayerEntries[order[a]].PlayerRatingPre)
		rb := ratingOrZero(xt.PlayerEntries[order[b]].PlayerRatingPre)
		if ra != rb {
			return ra > rb
		}
		return xt.PlayerEntries[order[a]].PairNum <
			xt.PlayerEntries[order[b]].PairNum
	})
	for rank, idx := range order {
		t.Players[idx].RankIndex = rank
	}
}

func ratingOrZero(rating string) int {
	r, err := strconv.Atoi(rating)
	if err != nil {
		return 0
	}
	return r
}
