package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"swipe_server/metrics"
	"swipe_server/models"
)

// contextDelimiter separates the preference summary from the renter's message.
const contextDelimiter = "\n---\n\n"

// AssistantClient is the subset of the assistant API the relay drives.
type AssistantClient interface {
	CreateThread(ctx context.Context) (models.Thread, error)
	AddMessage(ctx context.Context, threadID, role, content string) error
	CreateRun(ctx context.Context, threadID, assistantID string) (models.Run, error)
	GetRun(ctx context.Context, threadID, runID string) (models.Run, error)
	ListMessages(ctx context.Context, threadID, runID string) ([]models.ThreadMessage, error)
}

// PreferenceSummarizer supplies optional renter context.
type PreferenceSummarizer interface {
	Summarize(ctx context.Context, renterID string) (models.PreferenceSummary, bool)
}

// ChatService relays one renter message to the assistant and returns its reply.
type ChatService struct {
	assistant   AssistantClient
	preferences PreferenceSummarizer
	assistantID string
	poll        PollConfig
}

// NewChatService creates a ChatService. preferences may be nil, in which case
// messages are never enriched.
func NewChatService(assistant AssistantClient, preferences PreferenceSummarizer, assistantID string, poll PollConfig) (*ChatService, error) {
	if assistant == nil {
		return nil, errors.New("chat: assistant client must not be nil")
	}
	if strings.TrimSpace(assistantID) == "" {
		return nil, errors.New("chat: assistant id must not be empty")
	}
	return &ChatService{
		assistant:   assistant,
		preferences: preferences,
		assistantID: assistantID,
		poll:        poll,
	}, nil
}

// Reply runs the full thread/run sequence for a single message. Threads are
// created per call and never deleted.
func (cs *ChatService) Reply(ctx context.Context, req models.ChatRequest) (models.ChatReply, error) {
	message := req.Message
	if strings.TrimSpace(message) == "" {
		return models.ChatReply{}, ValidationError("message is required")
	}
	logger := zerolog.Ctx(ctx)

	if renterID := strings.TrimSpace(req.RenterID); renterID != "" && cs.preferences != nil {
		if summary, ok := cs.preferences.Summarize(ctx, renterID); ok {
			message = summary.Text() + contextDelimiter + message
		}
	}

	thread, err := cs.assistant.CreateThread(ctx)
	if err != nil {
		return models.ChatReply{}, relayError("create thread", err)
	}
	if err := cs.assistant.AddMessage(ctx, thread.ID, models.RoleUser, message); err != nil {
		return models.ChatReply{}, relayError("add message", err)
	}
	run, err := cs.assistant.CreateRun(ctx, thread.ID, cs.assistantID)
	if err != nil {
		return models.ChatReply{}, relayError("start run", err)
	}
	logger.Debug().Str("thread_id", thread.ID).Str("run_id", run.ID).Msg("assistant run started")

	run, err = cs.waitForRun(ctx, thread.ID, run)
	if err != nil {
		return models.ChatReply{}, err
	}

	switch run.Status {
	case models.RunStatusCompleted:
	case models.RunStatusFailed:
		reason := "assistant run failed"
		if run.LastError != nil && run.LastError.Message != "" {
			reason = run.LastError.Message
		}
		return models.ChatReply{}, newError(KindUpstream, reason, nil)
	default:
		return models.ChatReply{}, newError(KindUpstream, fmt.Sprintf("assistant run ended with status %q", run.Status), nil)
	}

	messages, err := cs.assistant.ListMessages(ctx, thread.ID, run.ID)
	if err != nil {
		return models.ChatReply{}, relayError("list messages", err)
	}
	reply := collectReply(messages, run.ID)
	if reply == "" {
		reply = models.NoReply
	}
	return models.ChatReply{Reply: reply}, nil
}

func (cs *ChatService) waitForRun(ctx context.Context, threadID string, run models.Run) (models.Run, error) {
	current := run
	attempts, err := Poll(ctx, cs.poll, func(ctx context.Context) (bool, error) {
		if !models.IsRunPending(current.Status) {
			return true, nil
		}
		next, err := cs.assistant.GetRun(ctx, threadID, current.ID)
		if err != nil {
			return false, err
		}
		current = next
		return !models.IsRunPending(current.Status), nil
	})
	metrics.RunPolls.Observe(float64(attempts))

	switch {
	case err == nil:
		return current, nil
	case errors.Is(err, ErrPollTimeout):
		return models.Run{}, newError(KindTimeout, "assistant run did not finish in time", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return models.Run{}, newError(KindUpstream, "assistant run polling aborted", err)
	default:
		return models.Run{}, relayError("poll run", err)
	}
}

// collectReply joins the text segments of the run's assistant messages.
func collectReply(messages []models.ThreadMessage, runID string) string {
	var parts []string
	for _, msg := range messages {
		if msg.Role != models.RoleAssistant {
			continue
		}
		if msg.RunID != "" && runID != "" && msg.RunID != runID {
			continue
		}
		for _, content := range msg.Content {
			if content.Type != models.ContentTypeText || content.Text == nil {
				continue
			}
			parts = append(parts, content.Text.Value)
		}
	}
	return strings.Join(parts, "\n")
}

// relayError wraps an assistant API failure so the caller sees a plain
// upstream failure rather than the assistant API's own status code.
func relayError(step string, err error) *Error {
	return newError(KindUpstream, "assistant "+step+" failed", err)
}
