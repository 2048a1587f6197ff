/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package tournament holds the read-only data model shared by the pairing
// engine and the reporting layer: players, their per-round match records,
// and the standings comparator used when ordering pairings for publication.
package tournament

// Color is the color assigned to a player in a single game. ColorNone is
// also used as the "no information" answer when scanning color histories.
type Color int

const (
	ColorWhite Color = iota
	ColorBlack
	ColorNone
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	default:
		return "none"
	}
}

// Invert returns the opposing color; ColorNone inverts to itself.
func (c Color) Invert() Color {
	switch c {
	case ColorWhite:
		return ColorBlack
	case ColorBlack:
		return ColorWhite
	default:
		return ColorNone
	}
}

// MatchScore is the game outcome from this player's perspective.
type MatchScore int

const (
	MatchScoreLoss MatchScore = iota
	MatchScoreDraw
	MatchScoreWin
)

// Points returns the score value of the outcome in game points.
func (ms MatchScore) Points() float64 {
	switch ms {
	case MatchScoreWin:
		return 1.0
	case MatchScoreDraw:
		return 0.5
	default:
		return 0.0
	}
}

// Match is one round's record for one player. For a bye the Opponent index
// refers back to the player itself and GameWasPlayed is false. Unplayed
// games (byes, forfeits) contribute no color information.
type Match struct {
	// Opponent is the index into Tournament.Players of the opponent.
	Opponent int
	// Color assigned to this player for the round.
	Color Color
	// Score is the outcome from this player's perspective. It is
	// meaningful whether or not the game was played (forfeits and byes
	// still award points).
	Score MatchScore
	// GameWasPlayed is false for byes, forfeits, and other unplayed
	// rounds.
	GameWasPlayed bool
}

// Player is one tournament participant. Matches is append-only and ordered
// by round; the reporting core only ever reads these fields.
type Player struct {
	// ID is the zero-based player index, displayed one-based.
	ID int
	// ScoreWithoutAcceleration is the cumulative game-point score.
	ScoreWithoutAcceleration float64
	// Acceleration is the pairing-only bonus currently applied to the
	// player's score. It never participates in publication ordering.
	Acceleration float64
	// RankIndex is the player's position in the current standings order,
	// precomputed by the caller. Rank indices are unique.
	RankIndex int

	// ColorPreference is the color the player is due next round, with
	// the strength flags below. AbsoluteColorPreference implies
	// StrongColorPreference; ColorNone implies neither.
	ColorPreference         Color
	AbsoluteColorPreference bool
	StrongColorPreference   bool

	Matches []Match
}

// ScoreWithAcceleration returns the score used for pairing decisions and
// for display, with the acceleration bonus applied.
func (p *Player) ScoreWithAcceleration() float64 {
	return p.ScoreWithoutAcceleration + p.Acceleration
}

// Tournament owns the ordered player list; player indices are stable for
// the tournament's duration.
type Tournament struct {
	Players []Player
	// PlayedRounds is the number of completed rounds.
	PlayedRounds int
}

// UnacceleratedScoreRankCompare reports whether p0 ranks strictly below p1
// in the current standings, ignoring acceleration. It is a strict total
// order because rank indices are unique.
func UnacceleratedScoreRankCompare(p0, p1 *Player) bool {
	if p0.ScoreWithoutAcceleration != p1.ScoreWithoutAcceleration {
		return p0.ScoreWithoutAcceleration < p1.ScoreWithoutAcceleration
	}
	return p0.RankIndex > p1.RankIndex
}
