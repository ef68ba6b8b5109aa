package models

// Thread is an assistant conversation thread.
type Thread struct {
	ID        string `json:"id"`
	Object    string `json:"object,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// RunError is the failure reason reported on a failed run.
type RunError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Run is a single execution of an assistant against a thread.
type Run struct {
	ID          string    `json:"id"`
	ThreadID    string    `json:"thread_id"`
	AssistantID string    `json:"assistant_id"`
	Status      string    `json:"status"`
	LastError   *RunError `json:"last_error,omitempty"`
}

// MessageText is the payload of a text content segment.
type MessageText struct {
	Value string `json:"value"`
}

// MessageContent is one segment of a thread message.
type MessageContent struct {
	Type string       `json:"type"`
	Text *MessageText `json:"text,omitempty"`
}

// ThreadMessage is a message posted to a thread.
type ThreadMessage struct {
	ID       string           `json:"id"`
	ThreadID string           `json:"thread_id"`
	Role     string           `json:"role"`
	RunID    string           `json:"run_id,omitempty"`
	Content  []MessageContent `json:"content"`
}

// ThreadMessageList is the list response for thread messages.
type ThreadMessageList struct {
	Data    []ThreadMessage `json:"data"`
	HasMore bool            `json:"has_more"`
}

// NewMessageRequest is the body used to post a message to a thread.
type NewMessageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewRunRequest is the body used to start a run.
type NewRunRequest struct {
	AssistantID string `json:"assistant_id"`
}
