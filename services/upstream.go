package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"swipe_server/metrics"
	"swipe_server/utils"
)

// RawResponse is an upstream response relayed without transformation.
type RawResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsSuccess reports whether the upstream answered with a 2xx status.
func (r RawResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func newRestyClient(baseURL, token string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
}

// sendRaw executes req and returns the upstream response untouched. Only a
// transport failure is an error.
func sendRaw(req *resty.Request, upstream, operation, method, path string) (RawResponse, error) {
	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		metrics.ObserveUpstream(upstream, operation, metrics.OutcomeTransport, start)
		return RawResponse{}, upstreamTransportError(fmt.Sprintf("%s %s request failed", upstream, operation), err)
	}
	raw := RawResponse{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}
	outcome := metrics.OutcomeSuccess
	if !raw.IsSuccess() {
		outcome = metrics.OutcomeError
	}
	metrics.ObserveUpstream(upstream, operation, outcome, start)
	return raw, nil
}

// sendJSON executes req, turns non-2xx answers into an upstream *Error and
// decodes a successful body into result when result is non-nil.
func sendJSON(req *resty.Request, upstream, operation, method, path string, result any) error {
	raw, err := sendRaw(req, upstream, operation, method, path)
	if err != nil {
		return err
	}
	if !raw.IsSuccess() {
		return statusError(upstream, operation, raw)
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(raw.Body, result); err != nil {
		return upstreamTransportError(fmt.Sprintf("%s %s returned a malformed body", upstream, operation), err)
	}
	return nil
}

func statusError(upstream, operation string, raw RawResponse) *Error {
	return upstreamStatusError(
		fmt.Sprintf("%s %s returned status %d", upstream, operation, raw.StatusCode),
		raw.StatusCode,
		utils.ExtractErrorMessage(raw.Body),
	)
}

func withContext(ctx context.Context, client *resty.Client) *resty.Request {
	return client.R().SetContext(ctx)
}
