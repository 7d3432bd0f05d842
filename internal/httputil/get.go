// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by provider clients.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrRateLimited is returned when the remote answers HTTP 429.
var ErrRateLimited = errors.New("rate limited by remote service")

// StatusError reports a non-200 response other than 429.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.Code, e.URL)
}

// Get issues a single GET request with the given User-Agent and returns
// the response when the status is 200. The caller closes the body.
//
// HTTP 429 is reported as ErrRateLimited and any other status as a
// *StatusError; in both cases the body is drained and closed. Get never
// retries.
func Get(ctx context.Context, client *http.Client, url, userAgent string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}

	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	return nil, &StatusError{Code: resp.StatusCode, URL: url}
}
