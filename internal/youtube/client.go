// Package youtube fetches trending videos and category listings per region from the
// YouTube Data API v3.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"trending-insights-go/internal/types"
)

const (
	opVideos     = "videos.list"
	opCategories = "videoCategories.list"
)

// FetchError is a failed per-region call.
type FetchError struct {
	Region string
	Op     string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s for region %s: %v", e.Op, e.Region, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Reason     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("youtube api: status %d (%s): %s", e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("youtube api: status %d: %s", e.StatusCode, e.Message)
}

type Options struct {
	BaseURL    string
	APIKey     string
	MaxResults int
	// Timeout bounds a single HTTP request and also the total retry time of one call.
	Timeout time.Duration
	// RequestInterval is the minimum spacing between two API calls. Zero disables pacing.
	RequestInterval time.Duration
	HTTPClient      *http.Client
}

type Client struct {
	baseURL        string
	apiKey         string
	maxResults     int
	httpClient     *http.Client
	limiter        *rate.Limiter
	maxElapsed     time.Duration
	initialBackoff time.Duration
}

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}
	limit := rate.Inf
	if opts.RequestInterval > 0 {
		limit = rate.Every(opts.RequestInterval)
	}
	return &Client{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		apiKey:         opts.APIKey,
		maxResults:     maxResults,
		httpClient:     hc,
		limiter:        rate.NewLimiter(limit, 1),
		maxElapsed:     timeout,
		initialBackoff: 500 * time.Millisecond,
	}
}

// FetchTrending returns the region's most popular videos.
func (c *Client) FetchTrending(ctx context.Context, region string) ([]types.RawVideoRecord, error) {
	q := url.Values{}
	q.Set("part", "snippet,statistics,contentDetails,topicDetails")
	q.Set("chart", "mostPopular")
	q.Set("regionCode", region)
	q.Set("maxResults", strconv.Itoa(c.maxResults))

	var resp videoListResponse
	if err := c.doJSON(ctx, "/videos", q, &resp); err != nil {
		return nil, &FetchError{Region: region, Op: opVideos, Err: err}
	}
	out := make([]types.RawVideoRecord, 0, len(resp.Items))
	for _, it := range resp.Items {
		rec := types.RawVideoRecord{
			Region:       region,
			VideoID:      it.ID,
			Title:        it.Snippet.Title,
			ChannelTitle: it.Snippet.ChannelTitle,
			CategoryID:   it.Snippet.CategoryID,
			PublishedAt:  it.Snippet.PublishedAt,
			LikeCount:    parseCount(it.Statistics.LikeCount),
			CommentCount: parseCount(it.Statistics.CommentCount),
			Duration:     it.ContentDetails.Duration,
			Description:  it.Snippet.Description,
		}
		if v := parseCount(it.Statistics.ViewCount); v != nil {
			rec.ViewCount = *v
		}
		if it.TopicDetails != nil {
			rec.TopicIDs = it.TopicDetails.TopicIDs
		}
		out = append(out, rec)
	}
	return out, nil
}

// FetchCategories returns the region's category id -> title listing.
func (c *Client) FetchCategories(ctx context.Context, region string) (map[string]string, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("regionCode", region)

	var resp categoryListResponse
	if err := c.doJSON(ctx, "/videoCategories", q, &resp); err != nil {
		return nil, &FetchError{Region: region, Op: opCategories, Err: err}
	}
	out := make(map[string]string, len(resp.Items))
	for _, it := range resp.Items {
		if it.ID != "" && it.Snippet.Title != "" {
			out[it.ID] = it.Snippet.Title
		}
	}
	return out, nil
}

// doJSON waits for the pacing limiter, then GETs path and decodes the body into target.
// Transport errors, 429 and 5xx are retried with exponential backoff; anything else fails
// at once.
func (c *Client) doJSON(ctx context.Context, path string, q url.Values, target interface{}) error {
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	endpoint := c.baseURL + path + "?" + q.Encode()

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.initialBackoff
	exp.MaxElapsedTime = c.maxElapsed
	bo := backoff.WithContext(exp, ctx)

	op := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode >= 300 {
			apiErr := decodeAPIError(resp.StatusCode, body)
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return apiErr
			}
			return backoff.Permanent(apiErr)
		}
		if len(body) == 0 {
			return backoff.Permanent(errors.New("empty body"))
		}
		if err := json.Unmarshal(body, target); err != nil {
			return backoff.Permanent(fmt.Errorf("json decode error: %w", err))
		}
		return nil
	}
	return backoff.Retry(op, bo)
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error.Message != "" {
		apiErr.Message = er.Error.Message
		if len(er.Error.Errors) > 0 {
			apiErr.Reason = er.Error.Errors[0].Reason
		}
	}
	return apiErr
}

func parseCount(s *string) *int64 {
	if s == nil {
		return nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(*s), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
