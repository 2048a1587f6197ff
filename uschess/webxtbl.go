/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uschess

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/swissreport/internal"
)

// reGameCell matches played-game cells such as "W12(w)", "L8(b)", "D3(w)".
var reGameCell = regexp.MustCompile(`^([WLD])(\d+)\(([wb])\)$`)

// FetchCrossTableWeb retrieves a crosstable published as an HTML table on
// a club website, for events not yet visible in the ratings API.
func (client *Client) FetchCrossTableWeb(ctx context.Context,
	url string) (*CrossTable, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create crosstable request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	// event pages change while an event runs; keep the cache TTL short
	resp, err := client.httpClient1day.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch crosstable page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to parse crosstable page: %w", err)
	}

	return ParseCrossTableDoc(doc)
}

// ParseCrossTableDoc extracts a CrossTable from an HTML document holding a
// table with columns No, Name, Rating, Pts, R1..Rn. Round cells use the
// usual crosstable shorthand: "W12(w)", "L8(b)", "D3(w)", "BYE(1)",
// "BYE(½)", "BYE(0)", and "W*"/"L*" for forfeits.
func ParseCrossTableDoc(doc *goquery.Document) (*CrossTable, error) {
	tableSel := doc.Find("table#crosstable")
	if tableSel.Length() == 0 {
		// fall back to the first table whose header cells look right
		doc.Find("table").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			ths := s.Find("th")
			if ths.Length() >= 4 &&
				strings.TrimSpace(ths.Eq(0).Text()) == "No" &&
				strings.TrimSpace(ths.Eq(1).Text()) == "Name" {
				tableSel = s
				return false
			}
			return true
		})
	}
	if tableSel.Length() == 0 {
		return nil, fmt.Errorf("no crosstable table found in document")
	}

	xt := &CrossTable{
		SectionName: strings.TrimSpace(doc.Find("h1, h2").First().Text()),
	}

	var parseErr error
	tableSel.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if parseErr != nil {
			return
		}
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}
		entry, err := parseCrossTableRow(cells)
		if err != nil {
			parseErr = err
			return
		}
		if entry == nil {
			return
		}
		if len(entry.Results) > xt.NumRounds {
			xt.NumRounds = len(entry.Results)
		}
		xt.PlayerEntries = append(xt.PlayerEntries, *entry)
	})
	if parseErr != nil {
		return nil, parseErr
	}

	xt.NumPlayers = len(xt.PlayerEntries)
	if xt.NumPlayers == 0 {
		return nil, fmt.Errorf("crosstable table contains no player rows")
	}
	return xt, nil
}

func parseCrossTableRow(cells *goquery.Selection) (*CrossTableEntry, error) {
	numText := strings.TrimSpace(strings.TrimSuffix(
		strings.TrimSpace(cells.Eq(0).Text()), "."))
	pairNum, err := strconv.Atoi(numText)
	if err != nil {
		// header or filler row
		return nil, nil
	}

	entry := &CrossTableEntry{
		PairNum:    pairNum,
		PlayerName: internal.NormalizeName(cells.Eq(1).Text()),
	}

	ratingText := strings.TrimSpace(cells.Eq(2).Text())
	if pre, post, found := strings.Cut(ratingText, "->"); found {
		entry.PlayerRatingPre = strings.TrimSpace(pre)
		entry.PlayerRatingPost = strings.TrimSpace(post)
	} else {
		entry.PlayerRatingPre = ratingText
	}

	entry.TotalPoints, err = parsePoints(strings.TrimSpace(cells.Eq(3).Text()))
	if err != nil {
		return nil, fmt.Errorf("player %d: %w", pairNum, err)
	}

	for i := 4; i < cells.Length(); i++ {
		res, err := parseRoundCell(strings.TrimSpace(cells.Eq(i).Text()))
		if err != nil {
			return nil, fmt.Errorf("player %d round %d: %w", pairNum, i-3, err)
		}
		entry.Results = append(entry.Results, res)
	}

	return entry, nil
}

// parsePoints handles both "2.5" and "2½" score renderings.
func parsePoints(text string) (float64, error) {
	if text == "" {
		return 0, nil
	}
	half := 0.0
	if strings.HasSuffix(text, "½") {
		half = 0.5
		text = strings.TrimSuffix(text, "½")
		if text == "" {
			return half, nil
		}
	}
	pts, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable points value %q", text)
	}
	return pts + half, nil
}

func parseRoundCell(text string) (RoundResult, error) {
	switch text {
	case "", "U", "-":
		return RoundResult{Outcome: ResultUnplayedGame}, nil
	case "BYE(1)":
		return RoundResult{Outcome: ResultFullBye}, nil
	case "BYE(½)", "BYE(.5)", "BYE(0.5)":
		return RoundResult{Outcome: ResultHalfBye}, nil
	case "BYE(0)":
		return RoundResult{Outcome: ResultUnplayedGame}, nil
	case "W*":
		return RoundResult{Outcome: ResultWinByForfeit}, nil
	case "L*":
		return RoundResult{Outcome: ResultLossByForfeit}, nil
	}

	m := reGameCell.FindStringSubmatch(text)
	if m == nil {
		return RoundResult{}, fmt.Errorf("unparseable round cell %q", text)
	}
	res := RoundResult{}
	switch m[1] {
	case "W":
		res.Outcome = ResultWin
	case "L":
		res.Outcome = ResultLoss
	default:
		res.Outcome = ResultDraw
	}
	res.OpponentPairNum, _ = strconv.Atoi(m[2])
	if m[3] == "w" {
		res.Color = "white"
	} else {
		res.Color = "black"
	}
	return res, nil
}
