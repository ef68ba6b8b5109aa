package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"swipe_server/metrics"
	"swipe_server/models"
	"swipe_server/utils"
)

const (
	defaultAirtableBaseURL = "https://api.airtable.com/v0"
	maxSwipePages          = 20
)

// AirtableService reads and writes records of a single Airtable base.
type AirtableService struct {
	client     *resty.Client
	swipeTable string
}

// NewAirtableService creates a client scoped to baseID.
func NewAirtableService(apiKey, baseURL, baseID, swipeTable string, timeout time.Duration) (*AirtableService, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("airtable: api key must not be empty")
	}
	if strings.TrimSpace(baseID) == "" {
		return nil, errors.New("airtable: base id must not be empty")
	}
	if strings.TrimSpace(swipeTable) == "" {
		return nil, errors.New("airtable: swipe table must not be empty")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultAirtableBaseURL
	}
	base := strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(baseID)
	return &AirtableService{
		client:     newRestyClient(base, apiKey, timeout),
		swipeTable: swipeTable,
	}, nil
}

// Query issues a GET against a table with a pre-encoded query string. The
// response is returned as-is; non-2xx answers become an upstream *Error.
func (s *AirtableService) Query(ctx context.Context, table, params string) (RawResponse, error) {
	path := tablePath(table)
	if params = strings.TrimPrefix(params, "?"); params != "" {
		path += "?" + utils.EscapeRawQuery(params)
	}
	raw, err := sendRaw(withContext(ctx, s.client), metrics.UpstreamAirtable, "query", http.MethodGet, path)
	if err != nil {
		return RawResponse{}, err
	}
	if !raw.IsSuccess() {
		return raw, statusError(metrics.UpstreamAirtable, "query", raw)
	}
	return raw, nil
}

// ListSwipes returns every swipe record of renterID, in table order.
func (s *AirtableService) ListSwipes(ctx context.Context, renterID string) ([]models.SwipeLogRecord, error) {
	formula := fmt.Sprintf("{Renter_ID} = '%s'", utils.EscapeFormulaString(renterID))

	var records []models.SwipeLogRecord
	offset := ""
	for page := 0; ; page++ {
		if page == maxSwipePages {
			zerolog.Ctx(ctx).Warn().
				Str("renter_id", renterID).
				Int("pages", page).
				Int("records", len(records)).
				Msg("swipe history truncated at page limit")
			break
		}
		query := url.Values{}
		query.Set("filterByFormula", formula)
		query.Add("fields[]", "Action")
		query.Add("fields[]", "Listing")
		if offset != "" {
			query.Set("offset", offset)
		}

		var result models.SwipeLogPage
		req := withContext(ctx, s.client).SetQueryParamsFromValues(query)
		if err := sendJSON(req, metrics.UpstreamAirtable, "list_swipes", http.MethodGet, tablePath(s.swipeTable), &result); err != nil {
			return nil, err
		}
		records = append(records, result.Records...)
		if result.Offset == "" {
			break
		}
		offset = result.Offset
	}
	return records, nil
}

// CreateSwipe inserts a single swipe record and returns the store's answer.
func (s *AirtableService) CreateSwipe(ctx context.Context, swipe models.SwipeRequest) (RawResponse, error) {
	body := models.CreateRecordsRequest{
		Records: []models.CreateRecord{{Fields: models.NewSwipeFields(swipe)}},
	}
	req := withContext(ctx, s.client).SetBody(body)
	raw, err := sendRaw(req, metrics.UpstreamAirtable, "create_swipe", http.MethodPost, tablePath(s.swipeTable))
	if err != nil {
		return RawResponse{}, err
	}
	if !raw.IsSuccess() {
		return raw, statusError(metrics.UpstreamAirtable, "create_swipe", raw)
	}
	return raw, nil
}

func tablePath(table string) string {
	return "/" + url.PathEscape(table)
}
