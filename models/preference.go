package models

import (
	"fmt"
	"strings"
)

// PreferenceSummary is derived from a renter's swipe history. It is never
// stored.
type PreferenceSummary struct {
	LikeCount       int
	DislikeCount    int
	LikedListingIDs []string
	// Empty is set when the renter has no swipe records at all.
	Empty bool
}

// Text renders the summary as the sentence prepended to a chat message.
func (p PreferenceSummary) Text() string {
	if p.Empty {
		return "No past swipes recorded for this user."
	}
	text := fmt.Sprintf("User has %d like(s) and %d dislike(s).", p.LikeCount, p.DislikeCount)
	if len(p.LikedListingIDs) > 0 {
		text += fmt.Sprintf(" IDs of liked listings: %s.", strings.Join(p.LikedListingIDs, ", "))
	}
	return text
}
