package riot

import (
	"context"
	"errors"
	"net/http"

	"riftlens/internal/apperr"
)

// statusEndpoint is the cheapest authenticated call on a platform host
const statusEndpoint = "/lol/status/v4/platform-data"

// PlatformStatus is the subset of platform-data used to confirm a key works
type PlatformStatus struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ValidateKey checks the client's key against a platform host.
// A 401/403 answer means the key is invalid and is not an error;
// any other failure keeps its apperr code (CONFIGURATION, HTTP, NETWORK, DECODE).
func (c *Client) ValidateKey(ctx context.Context, platformHost string) (bool, error) {
	var status PlatformStatus
	err := c.doRequest(ctx, platformHost, statusEndpoint, &status)
	if err == nil {
		return true, nil
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Code == apperr.CodeHTTP &&
		(appErr.Status == http.StatusUnauthorized || appErr.Status == http.StatusForbidden) {
		return false, nil
	}
	return false, err
}
