/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swisssystems

import (
	"fmt"

	"github.com/mikeb26/swissreport/tournament"
)

// SwissSystem identifies a supported pairing system. The set is closed
// and known at build time.
type SwissSystem int

const (
	Burstein SwissSystem = iota
)

func (s SwissSystem) String() string {
	if s == Burstein {
		return "burstein"
	}
	return fmt.Sprintf("SwissSystem(%d)", int(s))
}

// ParseSwissSystem maps a system name to its identifier.
func ParseSwissSystem(name string) (SwissSystem, error) {
	if name == "burstein" {
		return Burstein, nil
	}
	return 0, fmt.Errorf("unknown swiss system %q", name)
}

// Info is the per-system capability set used by the checklist: the titles
// of the system-specific tie-break columns and, per player, the values
// for those columns. SpecialtyColumns results align positionally with
// SpecialtyHeaders.
type Info interface {
	SpecialtyHeaders() []string
	SpecialtyColumns(
		player *tournament.Player, t *tournament.Tournament) []string
}

var infoBySystem = map[SwissSystem]Info{
	Burstein: BursteinInfo{},
}

// GetInfo retrieves the Info implementation for the given system.
// Requesting an unsupported system is a caller bug and panics rather than
// risking incorrect published output.
func GetInfo(s SwissSystem) Info {
	info, ok := infoBySystem[s]
	if !ok {
		panic(fmt.Sprintf("swisssystems: unsupported swiss system %v", s))
	}
	return info
}
