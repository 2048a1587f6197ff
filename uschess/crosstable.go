/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uschess

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swissreport/internal"
)

type EventID int
type MemID int

// Event summarizes one rated event.
type Event struct {
	EndDate time.Time
	Name    string
	ID      EventID
}

// Result represents the outcome of a round.
type Result int

const (
	ResultWin Result = iota
	ResultLoss
	ResultDraw
	ResultFullBye
	ResultHalfBye
	ResultLossByForfeit
	ResultWinByForfeit
	ResultUnplayedGame
	ResultUnknown
)

// RoundResult holds the result of a single round for a player. Color is
// "white", "black", or "" when the round had no game.
type RoundResult struct {
	OpponentPairNum int
	Outcome         Result
	Color           string
}

// CrossTableEntry holds the data for one player in the cross table.
type CrossTableEntry struct {
	PairNum          int
	PlayerName       string
	PlayerId         MemID
	PlayerRatingPre  string
	PlayerRatingPost string
	TotalPoints      float64
	Results          []RoundResult
}

// CrossTable holds the full cross table data, one per section.
type CrossTable struct {
	SectionName   string
	NumRounds     int
	NumPlayers    int
	PlayerEntries []CrossTableEntry
}

// Tournament encapsulates the overall event and its cross tables.
type Tournament struct {
	Event       Event
	NumSections int

	CrossTables []*CrossTable
}

type apiRatedEventResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	SectionCount int    `json:"sectionCount"`
	Sections     []struct {
		ID     string `json:"id"`
		Number int    `json:"number"`
		Name   string `json:"name"`
	} `json:"sections"`
}

type apiStandingsResponse struct {
	Items []apiStandingItem `json:"items"`
}

type apiStandingItem struct {
	Ordinal       int               `json:"ordinal"`
	PairingNumber int               `json:"pairingNumber"`
	MemberID      string            `json:"memberId"`
	FirstName     string            `json:"firstName"`
	LastName      string            `json:"lastName"`
	Score         float64           `json:"score"`
	RoundOutcomes []apiRoundOutcome `json:"roundOutcomes"`
	Ratings       []apiRatingChange `json:"ratings"`
}

type apiRoundOutcome struct {
	RoundNumber           int    `json:"roundNumber"`
	Outcome               string `json:"outcome"`
	Color                 string `json:"color"`
	OpponentOrdinal       int    `json:"opponentOrdinal"`
	OpponentPairingNumber int    `json:"opponentPairingNumber"`
}

type apiRatingChange struct {
	PreRating    int    `json:"preRating"`
	PostRating   int    `json:"postRating"`
	RatingSystem string `json:"ratingSystem"`
}

// FetchCrossTables retrieves a Tournament with all sections' cross tables
// for the given event id. Sections are fetched concurrently; a section
// whose standings cannot be fetched fails the whole fetch rather than
// silently producing a partial event.
func (client *Client) FetchCrossTables(ctx context.Context,
	id EventID) (*Tournament, error) {

	eventData, err := client.fetchRatedEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	standingsData := make(map[string]*apiStandingsResponse)
	g, gctx := errgroup.WithContext(ctx)
	for _, section := range eventData.Sections {
		section := section
		g.Go(func() error {
			oneStandingsData, err := client.fetchSectionStandings(gctx, id,
				section.Number)
			if err != nil {
				return fmt.Errorf("section %d (%v): %w", section.Number,
					section.Name, err)
			}
			mu.Lock()
			standingsData[section.Name] = oneStandingsData
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("unable to fetch standings for event %v: %w",
			id, err)
	}

	crossTables := make([]*CrossTable, 0, len(standingsData))
	for secName, oneStandings := range standingsData {
		crossTables = append(crossTables,
			standingsToCrossTable(oneStandings, secName))
	}
	sort.Slice(crossTables, func(i, j int) bool {
		return crossTables[i].SectionName < crossTables[j].SectionName
	})

	endDate, err := internal.ParseDateOrZero(eventData.EndDate)
	if err != nil {
		return nil, fmt.Errorf("unable to parse event end date %v: %w",
			eventData.EndDate, err)
	}

	return &Tournament{
		Event: Event{
			EndDate: endDate,
			Name:    eventData.Name,
			ID:      id,
		},
		NumSections: len(crossTables),
		CrossTables: crossTables,
	}, nil
}

func (client *Client) fetchRatedEvent(ctx context.Context,
	id EventID) (*apiRatedEventResponse, error) {

	url := fmt.Sprintf("https://ratings-api.uschess.org/api/v1/rated-events/%v",
		id)
	var eventData apiRatedEventResponse
	if err := client.getJSON(ctx, url, &eventData); err != nil {
		return nil, fmt.Errorf("unable to fetch event: %w", err)
	}

	return &eventData, nil
}

func (client *Client) fetchSectionStandings(ctx context.Context,
	eventID EventID, sectionNum int) (*apiStandingsResponse, error) {

	url := fmt.Sprintf("https://ratings-api.uschess.org/api/v1/rated-events/%v/sections/%d/standings",
		eventID, sectionNum)
	var standingsData apiStandingsResponse
	if err := client.getJSON(ctx, url, &standingsData); err != nil {
		return nil, fmt.Errorf("unable to fetch standings: %w", err)
	}

	return &standingsData, nil
}

func (client *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("unable to create request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "application/json")

	// rated events are rarely (if ever) updated once posted
	resp, err := client.httpClient30day.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode,
			string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}

func standingsToCrossTable(standings *apiStandingsResponse,
	sectionName string) *CrossTable {

	var entries []CrossTableEntry
	var numRounds int

	for _, item := range standings.Items {
		var results []RoundResult
		for _, outcome := range item.RoundOutcomes {
			results = append(results, RoundResult{
				OpponentPairNum: outcome.OpponentOrdinal,
				Outcome:         convertOutcome(outcome.Outcome),
				Color:           convertColor(outcome.Color),
			})
		}
		if len(results) > numRounds {
			numRounds = len(results)
		}

		memberID, err := strconv.Atoi(item.MemberID)
		if err != nil {
			memberID = 0
		}

		name := internal.NormalizeName(item.FirstName + " " + item.LastName)
		entries = append(entries, CrossTableEntry{
			PairNum:          item.Ordinal,
			PlayerName:       name,
			PlayerId:         MemID(memberID),
			PlayerRatingPre:  regularRating(item.Ratings, false),
			PlayerRatingPost: regularRating(item.Ratings, true),
			TotalPoints:      item.Score,
			Results:          results,
		})
	}

	return &CrossTable{
		SectionName:   fmt.Sprintf("Section %s", sectionName),
		NumRounds:     numRounds,
		NumPlayers:    len(entries),
		PlayerEntries: entries,
	}
}

// regularRating extracts the regular-system rating change, preferring
// "R"/"D" systems in dual-rated sections.
func regularRating(ratings []apiRatingChange, post bool) string {
	for _, rating := range ratings {
		if rating.RatingSystem != "R" && rating.RatingSystem != "D" {
			continue
		}
		val := rating.PreRating
		if post {
			val = rating.PostRating
		}
		if val > 0 {
			return strconv.Itoa(val)
		}
		return ""
	}
	return ""
}

func convertOutcome(outcome string) Result {
	switch outcome {
	case "Win":
		return ResultWin
	case "Loss":
		return ResultLoss
	case "Draw":
		return ResultDraw
	case "ByeFull":
		return ResultFullBye
	case "ByeHalf":
		return ResultHalfBye
	case "LossByForfeit", "LossForfeit":
		return ResultLossByForfeit
	case "WinForfeit", "WinByForfeit":
		return ResultWinByForfeit
	case "Unplayed", "Unpaired":
		return ResultUnplayedGame
	default:
		return ResultUnknown
	}
}

func convertColor(color string) string {
	switch color {
	case "White", "white":
		return "white"
	case "Black", "black":
		return "black"
	default:
		return ""
	}
}
