// SPDX-License-Identifier: GPL-3.0-or-later
package relay

import (
	"strings"
	"unicode/utf8"
)

// Break at a newline if possible, otherwise after a comma. The rightmost
// candidate within the limit wins.
var messageBreakers = []string{"\n", ", "}

// splitMessage cuts text into chat-sized segments of at most max bytes.
// The byte at each cut position is consumed as a separator; segments are
// never empty. If no breaker occurs within the window the text is hard-cut
// at the highest rune boundary that still fits.
func splitMessage(text string, max int) []string {
	if len(text) <= max {
		return []string{text}
	}

	cut := -1
	for _, breaker := range messageBreakers {
		if i := strings.LastIndex(text[:max], breaker); i > cut {
			cut = i
		}
	}

	if cut < 0 {
		boundary := max
		for boundary > 0 && !utf8.RuneStart(text[boundary]) {
			boundary--
		}
		if boundary == 0 {
			// Not valid UTF-8, only continuation bytes up to the limit.
			// Cut at the limit so the segmentation always makes progress.
			boundary = max
		}
		return append([]string{text[:boundary]}, splitMessage(text[boundary:], max)...)
	}

	// len(text) > max guarantees a non-empty remainder after the cut.
	head := text[:cut]
	rest := text[cut+1:]
	if len(head) == 0 {
		return splitMessage(rest, max)
	}

	return append([]string{head}, splitMessage(rest, max)...)
}
