/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"testing"
)

// TestScoreWithAcceleration verifies that acceleration only affects the
// accelerated score.
func TestScoreWithAcceleration(t *testing.T) {
	p := Player{ScoreWithoutAcceleration: 3.5, Acceleration: 1.0}
	if got := p.ScoreWithAcceleration(); got != 4.5 {
		t.Errorf("ScoreWithAcceleration = %v; want 4.5", got)
	}
	if p.ScoreWithoutAcceleration != 3.5 {
		t.Errorf("ScoreWithoutAcceleration = %v; want 3.5",
			p.ScoreWithoutAcceleration)
	}
}

// TestUnacceleratedScoreRankCompare verifies the standings comparator is
// a strict total order driven by score then rank index, ignoring
// acceleration.
func TestUnacceleratedScoreRankCompare(t *testing.T) {
	cases := []struct {
		name   string
		p0, p1 Player
		want   bool
	}{
		{
			name: "lower score ranks below",
			p0:   Player{ScoreWithoutAcceleration: 2.0, RankIndex: 0},
			p1:   Player{ScoreWithoutAcceleration: 3.0, RankIndex: 5},
			want: true,
		},
		{
			name: "acceleration is ignored",
			p0: Player{ScoreWithoutAcceleration: 2.0, Acceleration: 2.0,
				RankIndex: 0},
			p1:   Player{ScoreWithoutAcceleration: 3.0, RankIndex: 5},
			want: true,
		},
		{
			name: "equal scores fall back to rank index",
			p0:   Player{ScoreWithoutAcceleration: 3.0, RankIndex: 4},
			p1:   Player{ScoreWithoutAcceleration: 3.0, RankIndex: 2},
			want: true,
		},
		{
			name: "better rank does not rank below",
			p0:   Player{ScoreWithoutAcceleration: 3.0, RankIndex: 1},
			p1:   Player{ScoreWithoutAcceleration: 3.0, RankIndex: 2},
			want: false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := UnacceleratedScoreRankCompare(&c.p0, &c.p1); got != c.want {
				t.Errorf("got %v; want %v", got, c.want)
			}
			// strictness: at most one direction holds
			if c.want && UnacceleratedScoreRankCompare(&c.p1, &c.p0) {
				t.Errorf("comparator is not antisymmetric")
			}
		})
	}
}

func played(color Color) Match {
	return Match{Color: color, GameWasPlayed: true}
}

// TestDeriveColorPreference covers imbalance, repetition, and empty
// histories.
func TestDeriveColorPreference(t *testing.T) {
	cases := []struct {
		name         string
		matches      []Match
		wantPref     Color
		wantAbsolute bool
		wantStrong   bool
	}{
		{
			name:     "no played games",
			matches:  []Match{{Color: ColorNone, GameWasPlayed: false}},
			wantPref: ColorNone,
		},
		{
			name:       "single white game",
			matches:    []Match{played(ColorWhite)},
			wantPref:   ColorBlack,
			wantStrong: true,
		},
		{
			name: "balanced history alternates away from last color",
			matches: []Match{
				played(ColorWhite), played(ColorBlack),
				played(ColorBlack), played(ColorWhite),
			},
			wantPref: ColorBlack,
		},
		{
			name: "double imbalance is absolute",
			matches: []Match{
				played(ColorWhite), played(ColorBlack),
				played(ColorWhite), played(ColorWhite),
			},
			wantPref:     ColorBlack,
			wantAbsolute: true,
			wantStrong:   true,
		},
		{
			name: "repeated color is absolute even when balanced by byes",
			matches: []Match{
				played(ColorBlack),
				{Color: ColorNone, GameWasPlayed: false},
				played(ColorBlack),
			},
			wantPref:     ColorWhite,
			wantAbsolute: true,
			wantStrong:   true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pref, absolute, strong := DeriveColorPreference(c.matches)
			if pref != c.wantPref || absolute != c.wantAbsolute ||
				strong != c.wantStrong {
				t.Errorf("got (%v, %v, %v); want (%v, %v, %v)",
					pref, absolute, strong,
					c.wantPref, c.wantAbsolute, c.wantStrong)
			}
			if absolute && !strong {
				t.Errorf("absolute preference must imply strong")
			}
		})
	}
}

// TestStateBeforeRound verifies truncation recomputes scores and ranks
// without mutating the receiver.
func TestStateBeforeRound(t *testing.T) {
	full := &Tournament{
		PlayedRounds: 2,
		Players: []Player{
			{
				ID:                       0,
				ScoreWithoutAcceleration: 2.0,
				RankIndex:                0,
				Matches: []Match{
					{Opponent: 1, Color: ColorWhite, Score: MatchScoreWin,
						GameWasPlayed: true},
					{Opponent: 1, Color: ColorBlack, Score: MatchScoreWin,
						GameWasPlayed: true},
				},
			},
			{
				ID:                       1,
				ScoreWithoutAcceleration: 0.0,
				RankIndex:                1,
				Matches: []Match{
					{Opponent: 0, Color: ColorBlack, Score: MatchScoreLoss,
						GameWasPlayed: true},
					{Opponent: 0, Color: ColorWhite, Score: MatchScoreLoss,
						GameWasPlayed: true},
				},
			},
		},
	}

	state := full.StateBeforeRound(1)
	if state.PlayedRounds != 1 {
		t.Fatalf("PlayedRounds = %d; want 1", state.PlayedRounds)
	}
	if got := state.Players[0].ScoreWithoutAcceleration; got != 1.0 {
		t.Errorf("player 1 truncated score = %v; want 1.0", got)
	}
	if len(state.Players[0].Matches) != 1 {
		t.Errorf("player 1 truncated matches = %d; want 1",
			len(state.Players[0].Matches))
	}
	if state.Players[0].RankIndex != 0 || state.Players[1].RankIndex != 1 {
		t.Errorf("unexpected rank indices: %d, %d",
			state.Players[0].RankIndex, state.Players[1].RankIndex)
	}

	// receiver must be untouched
	if full.PlayedRounds != 2 || len(full.Players[0].Matches) != 2 ||
		full.Players[0].ScoreWithoutAcceleration != 2.0 {
		t.Errorf("StateBeforeRound mutated its receiver: %+v", full)
	}
}

// TestComputeScore verifies byes and forfeits still award their points.
func TestComputeScore(t *testing.T) {
	matches := []Match{
		{Score: MatchScoreWin, GameWasPlayed: true},
		{Score: MatchScoreDraw, GameWasPlayed: true},
		{Score: MatchScoreWin, GameWasPlayed: false},  // full bye
		{Score: MatchScoreDraw, GameWasPlayed: false}, // half bye
		{Score: MatchScoreLoss, GameWasPlayed: false}, // forfeit loss
	}
	if got := ComputeScore(matches); got != 3.0 {
		t.Errorf("ComputeScore = %v; want 3.0", got)
	}
}
