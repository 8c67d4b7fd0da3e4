package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const defaultStatsAPIURL = "https://alfa-leetcode-api.onrender.com"

// FetchErrorKind classifies why a stats fetch failed.
type FetchErrorKind int

const (
	// RateLimited means the API answered 429. Cached data stays valid.
	RateLimited FetchErrorKind = iota
	// HTTPStatus means the API answered with a non-success status other than 429.
	HTTPStatus
	// Unreachable means the request never produced an HTTP response.
	Unreachable
	// MalformedPayload means the response body was not the JSON we expect.
	MalformedPayload
)

// String returns a plain-language description suitable for the UI.
func (k FetchErrorKind) String() string {
	switch k {
	case RateLimited:
		return "API rate limited"
	case HTTPStatus:
		return "API error"
	case Unreachable:
		return "API unreachable"
	case MalformedPayload:
		return "unexpected API response"
	default:
		return "unknown error"
	}
}

// FetchError is the only error type FetchProfileStats returns. Every failure
// mode of the external API maps onto one of the four kinds; none of them is
// fatal to the widget.
type FetchError struct {
	Kind   FetchErrorKind
	Status int // HTTP status code, set for HTTPStatus
	err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case HTTPStatus:
		return fmt.Sprintf("%s: status %d", e.Kind, e.Status)
	default:
		if e.err != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.err)
		}
		return e.Kind.String()
	}
}

func (e *FetchError) Unwrap() error { return e.err }

// LeetCodeClient talks to the public LeetCode statistics API.
// The API sits behind caching intermediaries that like to serve stale
// profiles, so every request carries cache-defeating parameters.
type LeetCodeClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewLeetCodeClient creates a client for the given API base URL.
// An empty baseURL selects the public endpoint.
func NewLeetCodeClient(baseURL string) *LeetCodeClient {
	if baseURL == "" {
		baseURL = defaultStatsAPIURL
	}
	return &LeetCodeClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

// statsPayload mirrors the userProfile response. Numeric fields are pointers
// so a field the API omitted can be told apart from a genuine zero.
type statsPayload struct {
	TotalSolved        *int              `json:"totalSolved"`
	EasySolved         *int              `json:"easySolved"`
	MediumSolved       *int              `json:"mediumSolved"`
	HardSolved         *int              `json:"hardSolved"`
	SubmissionCalendar map[string]int    `json:"submissionCalendar"`
	TotalSubmissions   []submissionCount `json:"totalSubmissions"`
}

type submissionCount struct {
	Submissions *int `json:"submissions"`
}

// FetchProfileStats performs one fetch against the userProfile endpoint.
// Fields missing from the response fall back to the matching field of prior,
// so a partial payload never regresses a previously known value. On any
// failure the returned error is a *FetchError and prior is returned unchanged.
func (c *LeetCodeClient) FetchProfileStats(ctx context.Context, username string, prior ProfileStats) (ProfileStats, error) {
	endpoint := fmt.Sprintf("%s/userProfile/%s", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return prior, &FetchError{Kind: Unreachable, err: err}
	}

	// Unique nonce per call plus no-cache directives, so intermediaries
	// cannot answer from a stale copy.
	q := req.URL.Query()
	q.Set("nonce", uuid.NewString())
	q.Set("ts", strconv.FormatInt(time.Now().UnixNano(), 10))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return prior, &FetchError{Kind: Unreachable, err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return prior, &FetchError{Kind: RateLimited, Status: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return prior, &FetchError{Kind: HTTPStatus, Status: resp.StatusCode}
	}

	var payload statsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return prior, &FetchError{Kind: MalformedPayload, err: err}
	}

	return mergeStats(payload, prior), nil
}

// mergeStats builds a full snapshot from a possibly partial payload,
// filling gaps from the previous snapshot.
func mergeStats(payload statsPayload, prior ProfileStats) ProfileStats {
	stats := ProfileStats{
		TotalSolved:      intOr(payload.TotalSolved, prior.TotalSolved),
		EasySolved:       intOr(payload.EasySolved, prior.EasySolved),
		MediumSolved:     intOr(payload.MediumSolved, prior.MediumSolved),
		HardSolved:       intOr(payload.HardSolved, prior.HardSolved),
		TotalSubmissions: prior.TotalSubmissions,
	}

	// The API reports totals as an array of difficulty buckets; the overall
	// count is the first entry. Anything else keeps the previous value.
	if len(payload.TotalSubmissions) > 0 && payload.TotalSubmissions[0].Submissions != nil {
		stats.TotalSubmissions = *payload.TotalSubmissions[0].Submissions
	}

	if payload.SubmissionCalendar != nil {
		stats.SubmissionCalendar = normalizeCalendar(payload.SubmissionCalendar)
	} else {
		stats.SubmissionCalendar = prior.SubmissionCalendar
	}

	return stats
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

// normalizeCalendar converts the wire calendar (decimal-string keys) into a
// SubmissionCalendar keyed by UTC-midnight Unix seconds. Timestamp
// normalization happens here, at ingestion; lookups at display time are by
// exact key. Keys that collapse onto the same day are summed, unparseable
// keys are skipped.
func normalizeCalendar(wire map[string]int) SubmissionCalendar {
	cal := make(SubmissionCalendar, len(wire))
	for key, count := range wire {
		sec, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		t := time.Unix(sec, 0).UTC()
		midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix()
		cal[midnight] += count
	}
	return cal
}
