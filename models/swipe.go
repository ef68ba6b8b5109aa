package models

// SwipeRequest is the inbound payload of POST /airtable/swipe.
type SwipeRequest struct {
	RenterID        string `json:"renterId"`
	ListingRecordID string `json:"listingRecordId"`
	SwipeAction     string `json:"swipeAction"`
	Timestamp       string `json:"timestamp"`
}

// MissingFields returns the JSON names of every empty required field.
func (r SwipeRequest) MissingFields() []string {
	var missing []string
	if r.RenterID == "" {
		missing = append(missing, "renterId")
	}
	if r.ListingRecordID == "" {
		missing = append(missing, "listingRecordId")
	}
	if r.SwipeAction == "" {
		missing = append(missing, "swipeAction")
	}
	if r.Timestamp == "" {
		missing = append(missing, "timestamp")
	}
	return missing
}

// SwipeFields is the field set written to the swipe table. The field names
// are fixed by the table schema.
type SwipeFields struct {
	RenterID  string   `json:"Renter_ID"`
	Listing   []string `json:"Listing"`
	Action    string   `json:"Action"`
	Timestamp string   `json:"Timestamp"`
}

// NewSwipeFields builds the table fields for a swipe request.
func NewSwipeFields(r SwipeRequest) SwipeFields {
	return SwipeFields{
		RenterID:  r.RenterID,
		Listing:   []string{r.ListingRecordID},
		Action:    r.SwipeAction,
		Timestamp: r.Timestamp,
	}
}
