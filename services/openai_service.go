package services

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"swipe_server/metrics"
	"swipe_server/models"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	assistantsBetaHeader = "assistants=v2"
	messagesPageSize     = "100"
	maxMessagePages      = 10
)

// OpenAIService talks to the assistant threads API and the stateless chat
// completions endpoint.
type OpenAIService struct {
	client *resty.Client
}

// NewOpenAIService creates a client with the bearer credential injected on
// every request.
func NewOpenAIService(apiKey, baseURL string, timeout time.Duration) (*OpenAIService, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openai: api key must not be empty")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAIService{client: newRestyClient(baseURL, apiKey, timeout)}, nil
}

func (s *OpenAIService) assistantRequest(ctx context.Context) *resty.Request {
	return withContext(ctx, s.client).SetHeader("OpenAI-Beta", assistantsBetaHeader)
}

// CreateThread opens a new, empty conversation thread.
func (s *OpenAIService) CreateThread(ctx context.Context) (models.Thread, error) {
	var thread models.Thread
	req := s.assistantRequest(ctx).SetBody(map[string]any{})
	if err := sendJSON(req, metrics.UpstreamOpenAI, "create_thread", http.MethodPost, "/threads", &thread); err != nil {
		return models.Thread{}, err
	}
	if thread.ID == "" {
		return models.Thread{}, upstreamTransportError("openai create_thread returned no thread id", nil)
	}
	return thread, nil
}

// AddMessage posts a message into a thread.
func (s *OpenAIService) AddMessage(ctx context.Context, threadID, role, content string) error {
	req := s.assistantRequest(ctx).SetBody(models.NewMessageRequest{Role: role, Content: content})
	return sendJSON(req, metrics.UpstreamOpenAI, "add_message", http.MethodPost, threadPath(threadID, "messages"), nil)
}

// CreateRun starts a run of the given assistant against a thread.
func (s *OpenAIService) CreateRun(ctx context.Context, threadID, assistantID string) (models.Run, error) {
	var run models.Run
	req := s.assistantRequest(ctx).SetBody(models.NewRunRequest{AssistantID: assistantID})
	if err := sendJSON(req, metrics.UpstreamOpenAI, "create_run", http.MethodPost, threadPath(threadID, "runs"), &run); err != nil {
		return models.Run{}, err
	}
	if run.ID == "" {
		return models.Run{}, upstreamTransportError("openai create_run returned no run id", nil)
	}
	return run, nil
}

// GetRun fetches the current state of a run.
func (s *OpenAIService) GetRun(ctx context.Context, threadID, runID string) (models.Run, error) {
	var run models.Run
	path := threadPath(threadID, "runs", runID)
	if err := sendJSON(s.assistantRequest(ctx), metrics.UpstreamOpenAI, "get_run", http.MethodGet, path, &run); err != nil {
		return models.Run{}, err
	}
	return run, nil
}

// ListMessages returns the thread's messages produced by runID, oldest first.
func (s *OpenAIService) ListMessages(ctx context.Context, threadID, runID string) ([]models.ThreadMessage, error) {
	var all []models.ThreadMessage
	after := ""
	for page := 0; ; page++ {
		if page == maxMessagePages {
			zerolog.Ctx(ctx).Warn().
				Str("thread_id", threadID).
				Str("run_id", runID).
				Int("messages", len(all)).
				Msg("thread messages truncated at page limit")
			break
		}
		req := s.assistantRequest(ctx).
			SetQueryParam("order", "asc").
			SetQueryParam("limit", messagesPageSize)
		if runID != "" {
			req.SetQueryParam("run_id", runID)
		}
		if after != "" {
			req.SetQueryParam("after", after)
		}

		var list models.ThreadMessageList
		if err := sendJSON(req, metrics.UpstreamOpenAI, "list_messages", http.MethodGet, threadPath(threadID, "messages"), &list); err != nil {
			return nil, err
		}
		all = append(all, list.Data...)
		if !list.HasMore || len(list.Data) == 0 {
			break
		}
		after = list.Data[len(list.Data)-1].ID
	}
	return all, nil
}

// Complete forwards body verbatim to the chat completions endpoint.
func (s *OpenAIService) Complete(ctx context.Context, body []byte) (RawResponse, error) {
	req := withContext(ctx, s.client).SetBody(body)
	return sendRaw(req, metrics.UpstreamOpenAI, "chat_completion", http.MethodPost, "/chat/completions")
}

func threadPath(threadID string, segments ...string) string {
	parts := []string{"/threads", url.PathEscape(threadID)}
	for _, seg := range segments {
		parts = append(parts, url.PathEscape(seg))
	}
	return strings.Join(parts, "/")
}
