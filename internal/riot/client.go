package riot

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

	"riftlens/internal/apperr"

	"github.com/rs/zerolog"
)

const defaultTimeout = 10 * time.Second

// Client is a Riot API client that authenticates with a static X-Riot-Token header
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL sends every request to url instead of https://<host> (useful for testing)
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets a custom timeout for each request
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Riot API client. An empty key is accepted here;
// every request then fails with a configuration error.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Error implements error so the envelope can travel inside an apperr.Error
func (s *StatusError) Error() string {
	return fmt.Sprintf("%d: %s", s.StatusCode, s.Message)
}

func (c *Client) urlFor(host, path string) string {
	if c.baseURL != "" {
		return c.baseURL + path
	}
	return "https://" + host + path
}

// doRequest performs a GET against host+path and decodes the JSON body into result
func (c *Client) doRequest(ctx context.Context, host, path string, result interface{}) error {
	if c.apiKey == "" {
		return apperr.Configuration("RIOT_API_KEY is not set; add it to the environment or a .env file")
	}

	reqURL := c.urlFor(host, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("host", host).Str("path", path).Msg("Request failed")
		return apperr.Network(err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("host", host).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Riot API request")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.Network(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := apperr.HTTP(resp.StatusCode, reasonPhrase(resp))
		var envelope struct {
			Status *StatusError `json:"status"`
		}
		if json.Unmarshal(body, &envelope) == nil && envelope.Status != nil {
			httpErr.Err = envelope.Status
		}
		return httpErr
	}

	if err := json.Unmarshal(body, result); err != nil {
		return apperr.Decode(path, err)
	}
	return nil
}

// reasonPhrase extracts "Not Found" from "404 Not Found"
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

// ResolveAccount returns the PUUID for a Riot ID (gameName#tagLine)
func (c *Client) ResolveAccount(ctx context.Context, gameName, tagLine, routingHost string) (string, error) {
	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s",
		url.PathEscape(gameName), url.PathEscape(tagLine))

	var account AccountResponse
	if err := c.doRequest(ctx, routingHost, path, &account); err != nil {
		var status *StatusError
		if apperr.CodeOf(err) == apperr.CodeHTTP && errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
			return "", apperr.NotFound(status.Message)
		}
		return "", err
	}

	if account.PUUID == "" {
		message := account.Message
		if account.Status != nil && account.Status.Message != "" {
			message = account.Status.Message
		}
		return "", apperr.NotFound(message)
	}

	return account.PUUID, nil
}

// GetSummoner fetches the summoner profile for a PUUID from a platform host
func (c *Client) GetSummoner(ctx context.Context, puuid, platformHost string) (*Summoner, error) {
	path := fmt.Sprintf("/lol/summoner/v4/summoners/by-puuid/%s", url.PathEscape(puuid))

	var summoner Summoner
	if err := c.doRequest(ctx, platformHost, path, &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

// ListMatchIDs fetches one page of match IDs, newest first
func (c *Client) ListMatchIDs(ctx context.Context, puuid, routingHost string, start, count int) ([]string, error) {
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d",
		url.PathEscape(puuid), start, count)

	var matchIDs []string
	if err := c.doRequest(ctx, routingHost, path, &matchIDs); err != nil {
		return nil, err
	}
	return matchIDs, nil
}

// GetMatchDetail fetches match details
func (c *Client) GetMatchDetail(ctx context.Context, matchID, routingHost string) (*Match, error) {
	path := fmt.Sprintf("/lol/match/v5/matches/%s", url.PathEscape(matchID))

	var match Match
	if err := c.doRequest(ctx, routingHost, path, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// GetMatchDetails fetches each match in order. The first failure aborts the
// whole page and no partial result is returned.
func (c *Client) GetMatchDetails(ctx context.Context, matchIDs []string, routingHost string) ([]*Match, error) {
	matches := make([]*Match, 0, len(matchIDs))
	for _, id := range matchIDs {
		match, err := c.GetMatchDetail(ctx, id, routingHost)
		if err != nil {
			c.logger.Warn().Err(err).Str("match_id", id).Msg("Match fetch failed, discarding page")
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, nil
}
