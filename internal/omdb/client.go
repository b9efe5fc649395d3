// Package omdb is a thin client for the OMDb movie catalog API.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go-movie-watchlist/pkg/apierror"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL string, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SearchHit is a single search result as OMDb returns it.
type SearchHit struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type SearchResult struct {
	Hits         []SearchHit
	TotalResults int
}

// Detail is a full record from a lookup by IMDb identifier.
type Detail struct {
	Title      string `json:"Title"`
	Released   string `json:"Released"`
	Genre      string `json:"Genre"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Type       string `json:"Type"`
}

type searchEnvelope struct {
	Search       []SearchHit `json:"Search"`
	TotalResults string      `json:"totalResults"`
	Response     string      `json:"Response"`
	Error        string      `json:"Error"`
}

type detailEnvelope struct {
	Detail
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Search runs a free-text title search. mediaType is optional ("movie",
// "series", ...) and passed through when non-empty.
func (c *Client) Search(ctx context.Context, title string, page int, mediaType string) (SearchResult, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("s", title)
	params.Set("page", strconv.Itoa(page))
	if mediaType != "" {
		params.Set("type", mediaType)
	}

	var envelope searchEnvelope
	if err := c.get(ctx, params, &envelope); err != nil {
		return SearchResult{}, err
	}

	if envelope.Response != "True" {
		return SearchResult{}, catalogError(envelope.Error)
	}

	total, _ := strconv.Atoi(envelope.TotalResults)
	return SearchResult{Hits: envelope.Search, TotalResults: total}, nil
}

// ByID looks a title up by its exact IMDb identifier.
func (c *Client) ByID(ctx context.Context, imdbID string) (Detail, error) {
	params := url.Values{}
	params.Set("i", imdbID)

	var envelope detailEnvelope
	if err := c.get(ctx, params, &envelope); err != nil {
		return Detail{}, err
	}

	if envelope.Response != "True" {
		return Detail{}, catalogError(envelope.Error)
	}

	return envelope.Detail, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call movie catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apierror.BadRequest("Movie catalog request failed.")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}

	return nil
}

func catalogError(message string) error {
	if message == "" {
		message = "Movie catalog request failed."
	}
	return apierror.BadRequest(message)
}

// ParseReleased converts OMDb's release date ("02 Jan 2006") into a time,
// returning nil for "N/A" or any unparseable value.
func ParseReleased(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "N/A" {
		return nil
	}

	t, err := time.Parse("02 Jan 2006", raw)
	if err != nil {
		return nil
	}

	return &t
}

// ParseRating converts OMDb's rating string, tolerating "N/A".
func ParseRating(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}

	return v
}
