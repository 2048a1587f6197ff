/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

// DeriveColorPreference computes the color a player is due next round
// from the played-game history: the side of the color imbalance, absolute
// when the imbalance reaches two or the last two played games repeated a
// color, strong when the imbalance is exactly one, mild otherwise
// (alternating away from the most recent color). A player with no played
// games has no preference.
func DeriveColorPreference(matches []Match) (
	pref Color, absolute, strong bool) {

	imbalance := 0 // whites minus blacks over played games
	var recent []Color
	for i := len(matches) - 1; i >= 0; i-- {
		if !matches[i].GameWasPlayed {
			continue
		}
		if matches[i].Color == ColorWhite {
			imbalance++
		} else {
			imbalance--
		}
		if len(recent) < 2 {
			recent = append(recent, matches[i].Color)
		}
	}

	if len(recent) == 0 {
		return ColorNone, false, false
	}

	switch {
	case imbalance > 0:
		pref = ColorBlack
	case imbalance < 0:
		pref = ColorWhite
	default:
		pref = recent[0].Invert()
	}

	repeated := len(recent) == 2 && recent[0] == recent[1]
	absolute = imbalance >= 2 || imbalance <= -2 || repeated
	strong = absolute || imbalance == 1 || imbalance == -1

	return pref, absolute, strong
}
