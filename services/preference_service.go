package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"swipe_server/models"
)

// SwipeLister reads a renter's swipe history.
type SwipeLister interface {
	ListSwipes(ctx context.Context, renterID string) ([]models.SwipeLogRecord, error)
}

// PreferenceService derives a renter's preference summary from past swipes.
type PreferenceService struct {
	swipes SwipeLister
}

// NewPreferenceService creates a PreferenceService.
func NewPreferenceService(swipes SwipeLister) (*PreferenceService, error) {
	if swipes == nil {
		return nil, errors.New("preference: swipe lister must not be nil")
	}
	return &PreferenceService{swipes: swipes}, nil
}

// Summarize returns the renter's summary. The boolean is false when the
// history could not be read; failures are logged and never returned.
func (ps *PreferenceService) Summarize(ctx context.Context, renterID string) (models.PreferenceSummary, bool) {
	records, err := ps.swipes.ListSwipes(ctx, renterID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("renter_id", renterID).Msg("swipe history unavailable, continuing without context")
		return models.PreferenceSummary{}, false
	}
	return summarizeSwipes(records), true
}

func summarizeSwipes(records []models.SwipeLogRecord) models.PreferenceSummary {
	if len(records) == 0 {
		return models.PreferenceSummary{Empty: true}
	}
	var summary models.PreferenceSummary
	for _, rec := range records {
		switch rec.Fields.Action {
		case models.SwipeActionLike:
			summary.LikeCount++
			if len(rec.Fields.Listing) > 0 {
				summary.LikedListingIDs = append(summary.LikedListingIDs, rec.Fields.Listing[0])
			}
		case models.SwipeActionDislike:
			summary.DislikeCount++
		}
	}
	return summary
}
