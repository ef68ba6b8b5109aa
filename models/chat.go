package models

// ChatRequest is the inbound payload of POST /chat.
type ChatRequest struct {
	Message  string `json:"message"`
	RenterID string `json:"renterId,omitempty"`
}

// ChatReply is the outbound payload of POST /chat.
type ChatReply struct {
	Reply string `json:"reply"`
}
