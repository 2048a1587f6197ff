/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uschess

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikeb26/swissreport/internal"
	"github.com/mikeb26/swissreport/swisssystems"
)

// BuildStandingsOutput formats a section's standings into an aligned
// string output.
func BuildStandingsOutput(xt *CrossTable) string {
	entries := append([]CrossTableEntry(nil), xt.PlayerEntries...)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})

	type row struct{ rank, player, score string }
	var rows []row
	priorScore := -1.0
	place := 0
	for idx, e := range entries {
		var rank string
		if idx != 0 && e.TotalPoints == priorScore {
			rank = ""
		} else {
			place = idx + 1
			rank = fmt.Sprintf("%v.", place)
			priorScore = e.TotalPoints
		}
		rows = append(rows, row{
			rank:   rank,
			player: e.PlayerName,
			score:  internal.ScoreToString(e.TotalPoints),
		})
	}

	// Compute column widths
	maxP, maxN, maxS := len("Place"), len("Name"), len("Score")
	for _, r := range rows {
		if l := len(r.rank); l > maxP {
			maxP = l
		}
		if l := len(r.player); l > maxN {
			maxN = l
		}
		if l := len(r.score); l > maxS {
			maxS = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", xt.SectionName))
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, "Place", maxN,
		"Name", maxS, "Score"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, r.rank,
			maxN, r.player, maxS, r.score))
	}

	return sb.String()
}

// BuildChecklistOutput converts a section crosstable into tournament data
// and renders the pairing checklist for the given round (latest recorded
// round when 0) under the given swiss system.
func BuildChecklistOutput(xt *CrossTable, round int,
	system swisssystems.SwissSystem) (string, error) {

	full, err := xt.ToTournament()
	if err != nil {
		return "", fmt.Errorf("unable to convert crosstable: %w", err)
	}

	if round == 0 {
		round = full.PlayedRounds
	}
	if round < 1 || round > full.PlayedRounds {
		return "", fmt.Errorf("round %d outside played range 1..%d", round,
			full.PlayedRounds)
	}

	pairs, err := swisssystems.RoundPairings(full, round-1)
	if err != nil {
		return "", err
	}

	// the checklist reflects the standings going into the round
	state := full.StateBeforeRound(round - 1)
	swisssystems.SortResults(pairs, state)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%v, round %d\n", xt.SectionName, round))
	sb.WriteString(swisssystems.BuildChecklistOutput(
		swisssystems.GetInfo(system), state,
		swisssystems.PublicationOrder(pairs, state)))

	return sb.String(), nil
}
