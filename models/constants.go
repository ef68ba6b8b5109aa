package models

// Swipe actions, as stored in the swipe table's Action field
const (
	SwipeActionLike    = "Like"
	SwipeActionDislike = "Dislike"
)

// Assistant run statuses
const (
	RunStatusQueued         = "queued"
	RunStatusInProgress     = "in_progress"
	RunStatusCompleted      = "completed"
	RunStatusFailed         = "failed"
	RunStatusCancelled      = "cancelled"
	RunStatusExpired        = "expired"
	RunStatusIncomplete     = "incomplete"
	RunStatusRequiresAction = "requires_action"
)

// Thread message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message content segment types
const (
	ContentTypeText = "text"
)

// NoReply is the reply sent when a completed run produced no assistant text.
const NoReply = "[No reply]"

// IsValidSwipeAction reports whether action is one the swipe table accepts.
func IsValidSwipeAction(action string) bool {
	return action == SwipeActionLike || action == SwipeActionDislike
}

// IsRunPending reports whether a run is still waiting to finish.
func IsRunPending(status string) bool {
	return status == RunStatusQueued || status == RunStatusInProgress
}
