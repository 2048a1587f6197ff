/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// checklist fetches a rated event's crosstable and prints the pairing
// checklist for one of its rounds: players in publication order with
// their color histories, color preferences, and tie-break columns.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mikeb26/swissreport/swisssystems"
	"github.com/mikeb26/swissreport/uschess"
)

type config struct {
	eventID int64
	url     string
	section string
	round   int
	system  string
}

func parseArgs() config {
	var cfg config
	flag.Int64Var(&cfg.eventID, "event", 0, "US Chess rated event id")
	flag.StringVar(&cfg.url, "url", "", "URL of an HTML crosstable page")
	flag.StringVar(&cfg.section, "section", "",
		"section name (substring match); first section when empty")
	flag.IntVar(&cfg.round, "round", 0,
		"round to print the checklist for; latest when 0")
	flag.StringVar(&cfg.system, "system", "burstein", "swiss system variant")
	flag.Usage = usage
	flag.Parse()

	if (cfg.eventID == 0) == (cfg.url == "") {
		flag.Usage()
		os.Exit(1)
	}

	return cfg
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage:\n\n%v -event <id> [-section <name>] [-round <n>] [-system <name>]\n%v -url <crosstable url> [-round <n>] [-system <name>]\n\nPrint the round checklist for a Swiss tournament section.\n",
		os.Args[0], os.Args[0])
	flag.PrintDefaults()
}

func main() {
	cfg := parseArgs()

	system, err := swisssystems.ParseSwissSystem(cfg.system)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	ctx := context.Background()
	client := uschess.NewClient(ctx)

	xt, err := fetchCrossTable(ctx, client, cfg)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	out, err := uschess.BuildChecklistOutput(xt, cfg.round, system)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	fmt.Print(out)
}

func fetchCrossTable(ctx context.Context, client *uschess.Client,
	cfg config) (*uschess.CrossTable, error) {

	if cfg.url != "" {
		return client.FetchCrossTableWeb(ctx, cfg.url)
	}

	tourney, err := client.FetchCrossTables(ctx, uschess.EventID(cfg.eventID))
	if err != nil {
		return nil, err
	}
	if len(tourney.CrossTables) == 0 {
		return nil, fmt.Errorf("event %d has no sections", cfg.eventID)
	}
	if cfg.section == "" {
		return tourney.CrossTables[0], nil
	}
	for _, xt := range tourney.CrossTables {
		if strings.Contains(strings.ToLower(xt.SectionName),
			strings.ToLower(cfg.section)) {
			return xt, nil
		}
	}
	return nil, fmt.Errorf("no section matching %q in event %d", cfg.section,
		cfg.eventID)
}
