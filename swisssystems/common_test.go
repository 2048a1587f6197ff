/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swisssystems

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mikeb26/swissreport/tournament"
)

func playedGame(opp int, color tournament.Color) tournament.Match {
	return tournament.Match{
		Opponent:      opp,
		Color:         color,
		GameWasPlayed: true,
	}
}

func unplayedGame(self int) tournament.Match {
	return tournament.Match{
		Opponent: self,
		Color:    tournament.ColorNone,
	}
}

// historyPlayer builds a player whose played colors, in round order, are
// the given sequence.
func historyPlayer(colors ...tournament.Color) *tournament.Player {
	p := &tournament.Player{}
	for _, c := range colors {
		p.Matches = append(p.Matches, playedGame(1, c))
	}
	return p
}

func TestFindFirstColorDifference(t *testing.T) {
	const (
		W = tournament.ColorWhite
		B = tournament.ColorBlack
		N = tournament.ColorNone
	)
	cases := []struct {
		name         string
		player0      *tournament.Player
		player1      *tournament.Player
		want0, want1 tournament.Color
	}{
		{
			// fixtures are round order; viewed most recent first they
			// read p0 = [W B W], p1 = [B B W] and diverge immediately
			name:    "divergence on most recent round",
			player0: historyPlayer(W, B, W),
			player1: historyPlayer(W, B, B),
			want0:   W,
			want1:   B,
		},
		{
			name:    "divergence on an earlier round",
			player0: historyPlayer(W, B, W),
			player1: historyPlayer(B, B, W),
			want0:   W,
			want1:   B,
		},
		{
			name:    "identical histories yield no color",
			player0: historyPlayer(W, B, W),
			player1: historyPlayer(W, B, W),
			want0:   N,
			want1:   N,
		},
		{
			name:    "no played games yields no color",
			player0: &tournament.Player{},
			player1: historyPlayer(B),
			want0:   N,
			want1:   B,
		},
		{
			name:    "shorter identical history exhausts one side",
			player0: historyPlayer(B, W),
			player1: historyPlayer(B, B, W),
			want0:   N,
			want1:   B,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got0, got1 := FindFirstColorDifference(c.player0, c.player1)
			if got0 != c.want0 || got1 != c.want1 {
				t.Errorf("got (%v, %v); want (%v, %v)", got0, got1,
					c.want0, c.want1)
			}
		})
	}
}

// TestFindFirstColorDifferenceSkipsUnplayed verifies unplayed rounds are
// transparent: inserting one anywhere must not change the result.
func TestFindFirstColorDifferenceSkipsUnplayed(t *testing.T) {
	const (
		W = tournament.ColorWhite
		B = tournament.ColorBlack
	)
	base := historyPlayer(W, B, W)
	other := historyPlayer(B, B, W)
	want0, want1 := FindFirstColorDifference(base, other)

	for insertAt := 0; insertAt <= len(base.Matches); insertAt++ {
		padded := &tournament.Player{}
		padded.Matches = append(padded.Matches, base.Matches[:insertAt]...)
		padded.Matches = append(padded.Matches, unplayedGame(0))
		padded.Matches = append(padded.Matches, base.Matches[insertAt:]...)

		got0, got1 := FindFirstColorDifference(padded, other)
		if got0 != want0 || got1 != want1 {
			t.Errorf("insert at %d: got (%v, %v); want (%v, %v)", insertAt,
				got0, got1, want0, want1)
		}
	}
}

// scoreTournament builds a tournament whose player i has the given
// unaccelerated score and rank index i (standings order = input order).
func scoreTournament(scores ...float64) *tournament.Tournament {
	t := &tournament.Tournament{}
	for i, score := range scores {
		t.Players = append(t.Players, tournament.Player{
			ID:                       i,
			ScoreWithoutAcceleration: score,
			RankIndex:                i,
		})
	}
	return t
}

// TestSortResultsPrecedence replays the rule-precedence example: the
// 4-vs-4 pairing precedes the 5-vs-3 pairing, and the bye goes last
// despite belonging to the highest scorer.
func TestSortResultsPrecedence(t *testing.T) {
	tourney := scoreTournament(6.0, 5.0, 4.0, 4.0, 3.0)
	pairs := []Pairing{
		{White: 0, Black: 0}, // bye, score 6
		{White: 1, Black: 4}, // 5 vs 3
		{White: 2, Black: 3}, // 4 vs 4
	}

	SortResults(pairs, tourney)

	want := []Pairing{
		{White: 2, Black: 3},
		{White: 1, Black: 4},
		{White: 0, Black: 0},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("got %v; want %v", pairs, want)
	}
}

// TestSortResultsOrientationIndependence verifies that swapping
// white/black within pairings does not change the published order of the
// underlying games.
func TestSortResultsOrientationIndependence(t *testing.T) {
	tourney := scoreTournament(5.0, 4.5, 4.5, 4.0, 3.0, 2.5)
	pairs := []Pairing{
		{White: 0, Black: 3},
		{White: 4, Black: 1},
		{White: 2, Black: 5},
	}
	flipped := []Pairing{
		{White: 3, Black: 0},
		{White: 1, Black: 4},
		{White: 5, Black: 2},
	}

	SortResults(pairs, tourney)
	SortResults(flipped, tourney)

	for i := range pairs {
		a, b := pairs[i], flipped[i]
		sameGame := (a.White == b.White && a.Black == b.Black) ||
			(a.White == b.Black && a.Black == b.White)
		if !sameGame {
			t.Errorf("position %d: %v vs flipped %v", i, a, b)
		}
	}
}

// TestSortResultsIdempotent verifies re-sorting sorted output is a no-op.
func TestSortResultsIdempotent(t *testing.T) {
	tourney := scoreTournament(5.0, 4.5, 4.5, 4.0, 3.0, 2.5, 2.0)
	pairs := []Pairing{
		{White: 6, Black: 6},
		{White: 0, Black: 3},
		{White: 4, Black: 1},
		{White: 2, Black: 5},
	}

	SortResults(pairs, tourney)
	once := append([]Pairing(nil), pairs...)
	SortResults(pairs, tourney)

	if !reflect.DeepEqual(pairs, once) {
		t.Errorf("second sort changed order: %v vs %v", pairs, once)
	}
}

// TestSortResultsTotalOrder verifies antisymmetry and transitivity of
// the pairing comparison over a mixed set of keys.
func TestSortResultsTotalOrder(t *testing.T) {
	tourney := scoreTournament(5.0, 4.5, 4.5, 4.0, 3.0, 2.5, 2.0, 2.0)
	pairs := []Pairing{
		{White: 0, Black: 1},
		{White: 1, Black: 0},
		{White: 2, Black: 3},
		{White: 4, Black: 5},
		{White: 6, Black: 6},
		{White: 7, Black: 7},
		{White: 0, Black: 7},
	}

	keys := make([]pairingSortKey, len(pairs))
	for i, pair := range pairs {
		keys[i] = publicationKey(pair, tourney)
	}

	for i := range keys {
		for j := range keys {
			less, greater := keys[i].less(keys[j]), keys[j].less(keys[i])
			if less && greater {
				t.Errorf("keys %d and %d order both ways", i, j)
			}
			if keys[i] != keys[j] && !less && !greater {
				t.Errorf("distinct keys %d and %d are unordered", i, j)
			}
			for k := range keys {
				if less && keys[j].less(keys[k]) && !keys[i].less(keys[k]) {
					t.Errorf("transitivity violated for %d, %d, %d", i, j, k)
				}
			}
		}
	}
}

// TestSortResultsByesLast verifies byes sort after every game regardless
// of score.
func TestSortResultsByesLast(t *testing.T) {
	tourney := scoreTournament(9.0, 1.0, 0.5)
	pairs := []Pairing{
		{White: 0, Black: 0}, // bye with the top score
		{White: 1, Black: 2},
	}

	SortResults(pairs, tourney)

	if !pairs[1].IsBye() || pairs[0].IsBye() {
		t.Errorf("bye did not sort last: %v", pairs)
	}
}

func TestSortResultsInvalidIndexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for invalid player index")
		}
	}()
	SortResults([]Pairing{{White: 0, Black: 5}}, scoreTournament(1.0))
}

// checklistTournament is a fully-scored 3 player, 2 round tournament used
// by the formatting tests.
func checklistTournament() *tournament.Tournament {
	return &tournament.Tournament{
		PlayedRounds: 2,
		Players: []tournament.Player{
			{
				ID:                       0,
				ScoreWithoutAcceleration: 2.0,
				RankIndex:                0,
				ColorPreference:          tournament.ColorWhite,
				Matches: []tournament.Match{
					{Opponent: 1, Color: tournament.ColorWhite,
						Score: tournament.MatchScoreWin, GameWasPlayed: true},
					{Opponent: 2, Color: tournament.ColorBlack,
						Score: tournament.MatchScoreWin, GameWasPlayed: true},
				},
			},
			{
				ID:                       1,
				ScoreWithoutAcceleration: 1.0,
				RankIndex:                1,
				ColorPreference:          tournament.ColorWhite,
				StrongColorPreference:    true,
				Matches: []tournament.Match{
					{Opponent: 0, Color: tournament.ColorBlack,
						Score: tournament.MatchScoreLoss, GameWasPlayed: true},
					{Opponent: 1, Color: tournament.ColorNone,
						Score: tournament.MatchScoreWin, GameWasPlayed: false},
				},
			},
			{
				ID:                       2,
				ScoreWithoutAcceleration: 0.0,
				RankIndex:                2,
				ColorPreference:          tournament.ColorBlack,
				StrongColorPreference:    true,
				Matches: []tournament.Match{
					{Opponent: 2, Color: tournament.ColorNone,
						Score: tournament.MatchScoreLoss, GameWasPlayed: false},
					{Opponent: 0, Color: tournament.ColorWhite,
						Score: tournament.MatchScoreLoss, GameWasPlayed: true},
				},
			},
		},
	}
}

// checklistFields splits checklist output into per-line trimmed cells.
func checklistFields(out string) [][]string {
	var lines [][]string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			lines = append(lines, nil)
			continue
		}
		var cells []string
		for _, cell := range strings.Split(strings.TrimSuffix(line, "\t"),
			"\t") {
			cells = append(cells, strings.TrimSpace(cell))
		}
		lines = append(lines, cells)
	}
	return lines
}

func TestBuildChecklistOutput(t *testing.T) {
	tourney := checklistTournament()
	ordered := []*tournament.Player{
		&tourney.Players[0], &tourney.Players[1], &tourney.Players[2],
	}

	out := BuildChecklistOutput(BursteinInfo{}, tourney, ordered)
	lines := checklistFields(out)

	wantLines := [][]string{
		nil, // leading blank line
		{"ID", "Pts", "---", "Pref", "SB", "Buch", "Med", "", "R1", "R2"},
		nil, // scoregroup break before the first player
		{"1", "2", "WB", "w", "1.00", "1.0", "0.0", "", "2", "3"},
		nil,
		{"2", "1", "B", "(W)", "0.00", "2.0", "0.0", "", "1", ""},
		nil,
		{"3", "0", "W", "(B)", "0.00", "2.0", "0.0", "", "", "1"},
		nil, // trailing newline
		nil,
	}
	if !reflect.DeepEqual(lines, wantLines) {
		t.Errorf("got %q; want %q", lines, wantLines)
	}
}

// TestBuildChecklistScoregroupBreaks verifies tied accelerated scores share
// a group with no separator between them.
func TestBuildChecklistScoregroupBreaks(t *testing.T) {
	tourney := checklistTournament()
	tourney.Players[1].ScoreWithoutAcceleration = 2.0

	ordered := []*tournament.Player{
		&tourney.Players[0], &tourney.Players[1], &tourney.Players[2],
	}
	lines := checklistFields(BuildChecklistOutput(BursteinInfo{}, tourney,
		ordered))

	// header, break, two tied rows back to back, break, last row
	if lines[3] == nil || lines[4] == nil || lines[5] != nil {
		t.Errorf("unexpected scoregroup separators in %q", lines)
	}
}

// TestBuildChecklistAcceleratedScoreDisplayed verifies the Pts column shows
// the accelerated score even though ordering ignores it.
func TestBuildChecklistAcceleratedScoreDisplayed(t *testing.T) {
	tourney := checklistTournament()
	tourney.Players[0].Acceleration = 0.5

	ordered := []*tournament.Player{&tourney.Players[0]}
	lines := checklistFields(BuildChecklistOutput(BursteinInfo{}, tourney,
		ordered))

	if got := lines[3][1]; got != "2½" {
		t.Errorf("Pts cell = %q; want 2½", got)
	}
}

// TestBuildChecklistOutputTooLarge verifies representation-limit failures
// degrade to a single error line rather than a partial report.
func TestBuildChecklistOutputTooLarge(t *testing.T) {
	tourney := checklistTournament()
	tourney.PlayedRounds = maxChecklistRounds

	out := BuildChecklistOutput(BursteinInfo{}, tourney, nil)
	want := "Error: checklists for tournaments this large are not supported.\n"
	if out != want {
		t.Errorf("got %q; want %q", out, want)
	}
}
