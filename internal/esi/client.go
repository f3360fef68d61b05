package esi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://esi.evetech.net/latest"
	userAgent      = "eve-scout/1.0 (github.com)"

	// One bounded timeout per call, no retries.
	requestTimeout = 20 * time.Second
)

// RemoteError wraps any transport-level ESI failure: network error, timeout,
// non-200 status, or a body that is not JSON at all. Malformed entries inside
// an otherwise valid payload are skipped at parse time instead.
type RemoteError struct {
	URL string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("esi: %s: %v", e.URL, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Client is a sequential ESI HTTP client. Every call blocks until response
// or timeout; there is no caching and no retry.
type Client struct {
	http *http.Client
	base string
}

// NewClient creates an ESI client against the production Tranquility cluster.
func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: requestTimeout},
		base: defaultBaseURL,
	}
}

// NewClientWithBase creates a client against an alternate base URL (tests).
func NewClientWithBase(base string) *Client {
	c := NewClient()
	c.base = base
	return c
}

// get issues a GET and returns the raw body and response headers.
func (c *Client) get(url string) ([]byte, http.Header, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, &RemoteError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &RemoteError{URL: url, Err: err}
	}
	if resp.StatusCode != 200 {
		return nil, nil, &RemoteError{URL: url, Err: fmt.Errorf("ESI %d: %s", resp.StatusCode, string(body))}
	}
	return body, resp.Header, nil
}

// post issues a POST with a JSON body and returns the raw response body.
func (c *Client) post(url string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RemoteError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteError{URL: url, Err: err}
	}
	if resp.StatusCode != 200 {
		return nil, &RemoteError{URL: url, Err: fmt.Errorf("ESI %d: %s", resp.StatusCode, string(body))}
	}
	return body, nil
}

// GetJSON fetches a URL and decodes the JSON body into dst.
func (c *Client) GetJSON(url string, dst interface{}) error {
	body, _, err := c.get(url)
	if err != nil {
		return err
	}
	if !json.Valid(body) {
		return &RemoteError{URL: url, Err: fmt.Errorf("response is not valid JSON")}
	}
	return json.Unmarshal(body, dst)
}

// decodeList splits a JSON array body into its raw elements. A body that is
// valid JSON but not an array yields zero elements; a non-JSON body is a
// RemoteError.
func decodeList(url string, body []byte) ([]json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, &RemoteError{URL: url, Err: fmt.Errorf("response is not valid JSON")}
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}
