package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// CredentialParam is the query parameter that carries the suite access
// token on every authorized call.
const CredentialParam = "suite_access_token"

const maxResponseBytes = 1 << 20

// Client issues the remote calls. It is immutable after construction
// and safe for concurrent use when the underlying *http.Client is.
type Client struct {
	base string
	http *http.Client
}

// NewClient describes the newclient operation and its observable behavior.
//
// NewClient may return an error when input validation, dependency calls, or security checks fail.
// NewClient does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, errors.New("base url required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.New("invalid base url")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		base: baseURL,
		http: httpClient,
	}, nil
}

// Post issues exactly one POST to base+path with query encoded into the
// URL and body marshaled as JSON, then unwraps the response envelope.
//
// A non-zero errcode returns *RemoteError. Transport failures (dial
// errors, context cancellation, a body that is not the documented JSON
// envelope) propagate unchanged. out may be nil when the caller only
// needs the success/failure discriminator.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body any, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}

	var envelope Result
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return err
	}
	if err := envelope.Err(); err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return err
		}
	}

	return nil
}
