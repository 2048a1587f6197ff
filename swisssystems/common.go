/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package swisssystems contains the publication-ordering and color-history
// logic shared by all supported Swiss pairing systems, plus the per-system
// capability interface used to build the round checklist.
package swisssystems

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mikeb26/swissreport/internal"
	"github.com/mikeb26/swissreport/tournament"
)

// Pairing is one game of a round, identified by player indices. White ==
// Black denotes a bye; that is the only valid self-reference.
type Pairing struct {
	White int
	Black int
}

// IsBye reports whether the pairing is a bye.
func (pair Pairing) IsBye() bool {
	return pair.White == pair.Black
}

// skipUnplayed moves i backward to the most recent played game at or
// before position i, returning -1 if none remains.
func skipUnplayed(matches []tournament.Match, i int) int {
	for i >= 0 && !matches[i].GameWasPlayed {
		i--
	}
	return i
}

// FindFirstColorDifference scans both players' match histories from the
// most recent round backward, ignoring unplayed games, and returns the
// colors each held on the most recent round where those colors differed.
// A player whose played history is exhausted before a difference is found
// (including a player with no played games at all) gets ColorNone; two
// players with identical color histories get (ColorNone, ColorNone). That
// is a defined answer, not an error.
func FindFirstColorDifference(
	player0, player1 *tournament.Player) (tournament.Color, tournament.Color) {

	i0 := skipUnplayed(player0.Matches, len(player0.Matches)-1)
	i1 := skipUnplayed(player1.Matches, len(player1.Matches)-1)
	for i0 >= 0 && i1 >= 0 &&
		player0.Matches[i0].Color == player1.Matches[i1].Color {

		i0 = skipUnplayed(player0.Matches, i0-1)
		i1 = skipUnplayed(player1.Matches, i1-1)
	}

	color0 := tournament.ColorNone
	if i0 >= 0 {
		color0 = player0.Matches[i0].Color
	}
	color1 := tournament.ColorNone
	if i1 >= 0 {
		color1 = player1.Matches[i1].Color
	}
	return color0, color1
}

// pairingSortKey is the publication-order key of one pairing, reduced to
// an orientation-independent (higher player, lower player) form. Keys are
// computed once per pairing per sort.
type pairingSortKey struct {
	bye         bool
	higherScore float64
	lowerScore  float64
	higherRank  int
}

func (k pairingSortKey) less(o pairingSortKey) bool {
	if k.bye != o.bye {
		return !k.bye
	}
	if k.higherScore != o.higherScore {
		return k.higherScore < o.higherScore
	}
	if k.lowerScore != o.lowerScore {
		return k.lowerScore < o.lowerScore
	}
	return k.higherRank < o.higherRank
}

// publicationKey resolves which side of the pairing is the higher-ranked
// player under the standings comparator and builds the sort key from the
// unaccelerated scores. White/black orientation carries no standings
// information, so it must not influence the key.
func publicationKey(pair Pairing, t *tournament.Tournament) pairingSortKey {
	if pair.White < 0 || pair.White >= len(t.Players) ||
		pair.Black < 0 || pair.Black >= len(t.Players) {
		panic(fmt.Sprintf(
			"swisssystems: pairing references invalid player index (%d, %d)",
			pair.White, pair.Black))
	}

	higher := &t.Players[pair.White]
	lower := &t.Players[pair.Black]
	if tournament.UnacceleratedScoreRankCompare(higher, lower) {
		higher, lower = lower, higher
	}

	return pairingSortKey{
		bye:         pair.IsBye(),
		higherScore: higher.ScoreWithoutAcceleration,
		lowerScore:  lower.ScoreWithoutAcceleration,
		higherRank:  higher.RankIndex,
	}
}

type pairingOrder struct {
	pairs []Pairing
	keys  []pairingSortKey
}

func (po pairingOrder) Len() int { return len(po.pairs) }

func (po pairingOrder) Swap(i, j int) {
	po.pairs[i], po.pairs[j] = po.pairs[j], po.pairs[i]
	po.keys[i], po.keys[j] = po.keys[j], po.keys[i]
}

func (po pairingOrder) Less(i, j int) bool {
	return po.keys[i].less(po.keys[j])
}

// SortResults sorts the round's pairings in place into the canonical
// publication order: byes after all games, then by the higher player's
// unaccelerated score, then by the lower player's unaccelerated score,
// then by the higher player's rank index. Acceleration bonuses affect the
// displayed score but deliberately never the published board order. The
// key tuple is a total order, so re-sorting sorted input is a no-op.
func SortResults(pairs []Pairing, t *tournament.Tournament) {
	po := pairingOrder{
		pairs: pairs,
		keys:  make([]pairingSortKey, len(pairs)),
	}
	for i, pair := range pairs {
		po.keys[i] = publicationKey(pair, t)
	}
	sort.Sort(po)
}

const (
	// maxChecklistRounds bounds the number of rounds the checklist
	// formatter will attempt to index.
	maxChecklistRounds = 1 << 20
	// maxCellLen bounds the width of any single checklist cell.
	maxCellLen = math.MaxInt32
)

var errChecklistTooLarge = errors.New(
	"checklist exceeds representation limits")

// checklistHeader builds the header row: fixed columns, the system's
// specialty columns, a separator, and one column per played round.
func checklistHeader(info Info, t *tournament.Tournament) ([]string, error) {
	if t.PlayedRounds < 0 || t.PlayedRounds >= maxChecklistRounds {
		return nil, errChecklistTooLarge
	}
	header := []string{
		"ID",
		"Pts",
		strings.Repeat("-", t.PlayedRounds+1),
		"Pref",
	}
	header = append(header, info.SpecialtyHeaders()...)
	header = append(header, "")
	for r := 0; r < t.PlayedRounds; r++ {
		header = append(header, "R"+strconv.Itoa(r+1))
	}
	return header, nil
}

// checklistRow builds one player's row: one-based id, accelerated score,
// compact color history of played games, color-preference cell, specialty
// columns, a separator, and the one-based opponent id per round (blank
// for unplayed rounds).
func checklistRow(
	info Info, player *tournament.Player, t *tournament.Tournament) []string {

	var colors strings.Builder
	for _, match := range player.Matches {
		if !match.GameWasPlayed {
			continue
		}
		if match.Color == tournament.ColorWhite {
			colors.WriteByte('W')
		} else {
			colors.WriteByte('B')
		}
	}

	prefersWhite := player.ColorPreference == tournament.ColorWhite
	var pref string
	switch {
	case player.AbsoluteColorPreference:
		if prefersWhite {
			pref = "W "
		} else {
			pref = "B "
		}
	case player.StrongColorPreference:
		if prefersWhite {
			pref = "(W)"
		} else {
			pref = "(B)"
		}
	case player.ColorPreference == tournament.ColorNone:
		pref = "A "
	default:
		if prefersWhite {
			pref = "w "
		} else {
			pref = "b "
		}
	}

	row := []string{
		strconv.Itoa(player.ID + 1),
		internal.ScoreToString(player.ScoreWithAcceleration()),
		colors.String(),
		pref,
	}
	row = append(row, info.SpecialtyColumns(player, t)...)
	row = append(row, "")
	for r := 0; r < t.PlayedRounds; r++ {
		cell := ""
		if r < len(player.Matches) && player.Matches[r].GameWasPlayed {
			cell = strconv.Itoa(player.Matches[r].Opponent + 1)
		}
		row = append(row, cell)
	}
	return row
}

// updateColumnWidths widens each column to fit the given row. Row length
// must match the header; a mismatch is a bug in the Info implementation.
func updateColumnWidths(widths []int, row []string) error {
	if len(row) != len(widths) {
		panic(fmt.Sprintf(
			"swisssystems: checklist row has %d columns, header has %d",
			len(row), len(widths)))
	}
	for i, cell := range row {
		if len(cell) > maxCellLen {
			return errChecklistTooLarge
		}
		if len(cell) > widths[i] {
			widths[i] = len(cell)
		}
	}
	return nil
}

func writeChecklistRow(sb *strings.Builder, row []string, widths []int) {
	for i, cell := range row {
		fmt.Fprintf(sb, "%*s\t", widths[i], cell)
	}
	sb.WriteByte('\n')
}

func buildChecklist(
	info Info,
	t *tournament.Tournament,
	orderedPlayers []*tournament.Player) (string, error) {

	header, err := checklistHeader(info, t)
	if err != nil {
		return "", err
	}

	// Single pre-pass over all rows to size the columns.
	widths := make([]int, len(header))
	if err := updateColumnWidths(widths, header); err != nil {
		return "", err
	}
	rows := make([][]string, 0, len(orderedPlayers))
	for _, player := range orderedPlayers {
		row := checklistRow(info, player, t)
		if err := updateColumnWidths(widths, row); err != nil {
			return "", err
		}
		rows = append(rows, row)
	}

	var sb strings.Builder
	sb.WriteByte('\n')
	writeChecklistRow(&sb, header, widths)
	var prev *tournament.Player
	for i, player := range orderedPlayers {
		// Extra blank separator between scoregroups (and before the
		// first player). Cosmetic only; never affects ordering.
		if prev == nil ||
			prev.ScoreWithAcceleration() != player.ScoreWithAcceleration() {
			sb.WriteByte('\n')
		}
		writeChecklistRow(&sb, rows[i], widths)
		prev = player
	}
	sb.WriteByte('\n')

	return sb.String(), nil
}

// BuildChecklistOutput formats the round checklist for the given players
// in publication order. Representation-limit failures degrade to a single
// error line in place of the report body; the result is always well
// formed.
func BuildChecklistOutput(
	info Info,
	t *tournament.Tournament,
	orderedPlayers []*tournament.Player) string {

	out, err := buildChecklist(info, t, orderedPlayers)
	if err != nil {
		return "Error: checklists for tournaments this large are not supported.\n"
	}
	return out
}

// PrintChecklist writes BuildChecklistOutput to w.
func PrintChecklist(
	w io.Writer,
	info Info,
	t *tournament.Tournament,
	orderedPlayers []*tournament.Player) error {

	_, err := io.WriteString(w, BuildChecklistOutput(info, t, orderedPlayers))
	return err
}
