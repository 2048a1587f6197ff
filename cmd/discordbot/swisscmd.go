/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/swissreport/swisssystems"
	"github.com/mikeb26/swissreport/uschess"
)

type SwissSubCommand string

const (
	SwissAboutCmd     SwissSubCommand = "about"
	SwissHelpCmd      SwissSubCommand = "help"
	SwissChecklistCmd SwissSubCommand = "checklist"
	SwissStandingsCmd SwissSubCommand = "standings"
)

var swissSubCmdHdlrs = map[SwissSubCommand]CmdHandler{
	SwissAboutCmd:     swissAboutCmdHandler,
	SwissHelpCmd:      swissHelpCmdHandler,
	SwissChecklistCmd: swissChecklistCmdHandler,
	SwissStandingsCmd: swissStandingsCmdHandler,
}

func swissCmdHandler(
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := swissHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := swissSubCmdHdlrs[SwissSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(inter)
}

//go:embed about.txt
var aboutText string

func swissAboutCmdHandler(
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func swissHelpCmdHandler(
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	resp.Data.Content = truncateContent(helpText)

	return resp
}

// reportOpts are the options shared by the checklist and standings
// subcommands.
type reportOpts struct {
	eventID   int64
	section   string
	round     int
	broadcast bool
}

func parseReportOpts(data discordgo.ApplicationCommandInteractionData) (
	reportOpts, error) {

	var opts reportOpts
	found := false
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			switch opt.Name {
			case "eventid":
				opts.eventID = opt.IntValue()
				found = true
			case "section":
				opts.section = opt.StringValue()
			case "round":
				opts.round = int(opt.IntValue())
			case "broadcast":
				opts.broadcast = opt.BoolValue()
			}
		}
	}
	if !found {
		return opts, fmt.Errorf("Please provide an event ID.")
	}

	return opts, nil
}

// fetchSection retrieves the requested section's crosstable for an event.
func fetchSection(ctx context.Context, opts reportOpts) (
	*uschess.CrossTable, error) {

	uscClient := uschess.NewClient(ctx)
	tourney, err := uscClient.FetchCrossTables(ctx,
		uschess.EventID(opts.eventID))
	if err != nil {
		return nil, fmt.Errorf("Error fetching event %d: %v", opts.eventID, err)
	}
	if len(tourney.CrossTables) == 0 {
		return nil, fmt.Errorf("Event %d has no sections.", opts.eventID)
	}
	if opts.section == "" {
		return tourney.CrossTables[0], nil
	}
	for _, xt := range tourney.CrossTables {
		if strings.Contains(strings.ToLower(xt.SectionName),
			strings.ToLower(opts.section)) {
			return xt, nil
		}
	}
	return nil, fmt.Errorf("No section matching %q in event %d.", opts.section,
		opts.eventID)
}

// swissChecklistCmdHandler handles the /swiss checklist command.
func swissChecklistCmdHandler(
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	opts, err := parseReportOpts(inter.ApplicationCommandData())
	if err != nil {
		resp.Data.Content = err.Error()
		log.Printf("discordbot.checklist: %v", resp.Data.Content)
		return resp
	}

	xt, err := fetchSection(context.Background(), opts)
	if err != nil {
		resp.Data.Content = err.Error()
		log.Printf("discordbot.checklist: %v", resp.Data.Content)
		return resp
	}

	out, err := uschess.BuildChecklistOutput(xt, opts.round,
		swisssystems.Burstein)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error building checklist for event %d: %v",
			opts.eventID, err)
		log.Printf("discordbot.checklist: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```", truncateContent(out))
	if opts.broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// swissStandingsCmdHandler handles the /swiss standings command.
func swissStandingsCmdHandler(
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	opts, err := parseReportOpts(inter.ApplicationCommandData())
	if err != nil {
		resp.Data.Content = err.Error()
		log.Printf("discordbot.standings: %v", resp.Data.Content)
		return resp
	}

	xt, err := fetchSection(context.Background(), opts)
	if err != nil {
		resp.Data.Content = err.Error()
		log.Printf("discordbot.standings: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(uschess.BuildStandingsOutput(xt)))
	if opts.broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

func newEphemeralResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
