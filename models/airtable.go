package models

// SwipeLogRecord is one row of the swipe table as returned by a list query.
// Only the fields requested by the preference lookup are decoded.
type SwipeLogRecord struct {
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime,omitempty"`
	Fields      struct {
		Action  string   `json:"Action"`
		Listing []string `json:"Listing"`
	} `json:"fields"`
}

// SwipeLogPage is a single page of a list query.
type SwipeLogPage struct {
	Records []SwipeLogRecord `json:"records"`
	Offset  string           `json:"offset,omitempty"`
}

// CreateRecord is one entry of a create request.
type CreateRecord struct {
	Fields SwipeFields `json:"fields"`
}

// CreateRecordsRequest is the body of a create request.
type CreateRecordsRequest struct {
	Records  []CreateRecord `json:"records"`
	Typecast bool           `json:"typecast"`
}
