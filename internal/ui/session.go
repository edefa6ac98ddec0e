package ui

import (
	"strings"

	"riftlens/internal/apperr"
	"riftlens/internal/riot"

	"github.com/google/uuid"
)

// PageSize is how many matches one search or "load more" fetches
const PageSize = 5

// placeholderRegion is what the dropdown shows before a choice is made
const placeholderRegion = "Select a Region"

// SearchRequest is the main view's input form
type SearchRequest struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
	Platform string `json:"platform"`
}

// Validate only checks the platform; empty names go to the API as-is
func (r SearchRequest) Validate() error {
	platform := strings.TrimSpace(r.Platform)
	if platform == "" || platform == placeholderRegion || !riot.IsPlatform(platform) {
		return apperr.Validation("Please select a region.")
	}
	return nil
}

// Session is the pagination cursor for one search. Each search gets a new
// Session; results tagged with an older ID are dropped.
type Session struct {
	ID           string
	Request      SearchRequest
	RoutingHost  string
	PlatformHost string
	PUUID        string
	NextStart    int
	PageSize     int
}

// NewSession validates the request and resolves both hosts
func NewSession(req SearchRequest) (*Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Platform = strings.TrimSpace(req.Platform)

	routing, err := riot.RoutingHost(req.Platform)
	if err != nil {
		return nil, err
	}
	platform, err := riot.PlatformHost(req.Platform)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:           uuid.NewString(),
		Request:      req,
		RoutingHost:  routing,
		PlatformHost: platform,
		PageSize:     PageSize,
	}, nil
}

// Snapshot returns a copy safe to hand to a background job
func (s *Session) Snapshot() Session {
	return *s
}
